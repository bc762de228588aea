package dock

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// VersionTag is the leading section of every voxdock perspective string.
const VersionTag = "voxdock1"

// Direction is a pane's dock edge.
type Direction string

// Dock directions.
const (
	Centre Direction = "centre"
	Left   Direction = "left"
	Right  Direction = "right"
	Top    Direction = "top"
	Bottom Direction = "bottom"
)

// Pane holds one pane's identity and geometry.
type Pane struct {
	Name    string
	Caption string
	Dir     Direction
	Row     int
	Pos     int
	Prop    int  // relative proportion within its dock, percent
	Float   bool // floating rather than docked
}

// Sentinel errors for engine operations.
var (
	// ErrPaneExists is returned when adding a pane whose name is taken.
	ErrPaneExists = errors.New("pane already exists")

	// ErrPaneUnknown is returned when a named pane is not managed here.
	ErrPaneUnknown = errors.New("unknown pane")

	// ErrBadPerspective is returned for perspective strings this engine
	// cannot parse (missing or wrong version tag, malformed sections).
	ErrBadPerspective = errors.New("bad perspective")
)

// Engine is the in-process pane manager backing one container (the main
// frame or one view panel). Panes keep creation order internally, which is
// the order SavePerspective emits them in.
type Engine struct {
	panes     []*Pane
	dockSizes map[string]int // "dir,row" -> size in cells
}

// NewEngine creates an empty pane manager.
func NewEngine() *Engine {
	return &Engine{dockSizes: make(map[string]int)}
}

// AddPane starts managing a pane. The zero geometry docks it centre.
func (e *Engine) AddPane(p Pane) error {
	if p.Name == "" {
		return fmt.Errorf("add pane: empty name")
	}
	if _, ok := e.pane(p.Name); ok {
		return fmt.Errorf("add pane %q: %w", p.Name, ErrPaneExists)
	}
	if p.Dir == "" {
		p.Dir = Centre
	}
	if p.Prop == 0 {
		p.Prop = 100
	}
	e.panes = append(e.panes, &p)
	return nil
}

// RemovePane stops managing the named pane. Removing an unknown pane is a
// no-op.
func (e *Engine) RemovePane(name string) {
	for i, p := range e.panes {
		if p.Name == name {
			e.panes = append(e.panes[:i], e.panes[i+1:]...)
			return
		}
	}
}

// Pane returns a copy of the named pane's current state.
func (e *Engine) Pane(name string) (Pane, bool) {
	p, ok := e.pane(name)
	if !ok {
		return Pane{}, false
	}
	return *p, true
}

func (e *Engine) pane(name string) (*Pane, bool) {
	for _, p := range e.panes {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// SetDockSize records the size of one dock edge/row.
func (e *Engine) SetDockSize(dir Direction, row, size int) {
	e.dockSizes[string(dir)+","+strconv.Itoa(row)] = size
}

// PaneNames implements Manager. Names come back in creation order.
func (e *Engine) PaneNames() []string {
	out := make([]string, len(e.panes))
	for i, p := range e.panes {
		out[i] = p.Name
	}
	return out
}

// SavePerspective implements Manager.
func (e *Engine) SavePerspective() string {
	var b strings.Builder
	b.WriteString(VersionTag)
	b.WriteByte('|')
	for _, key := range e.sortedDockKeys() {
		fmt.Fprintf(&b, "dock_size(%s)=%d|", key, e.dockSizes[key])
	}
	for _, p := range e.panes {
		b.WriteString(encodePane(p))
		b.WriteByte('|')
	}
	return b.String()
}

// SavePaneInfo implements Manager.
func (e *Engine) SavePaneInfo(name string) (string, error) {
	p, ok := e.pane(name)
	if !ok {
		return "", fmt.Errorf("save pane info %q: %w", name, ErrPaneUnknown)
	}
	return encodePane(p), nil
}

// LoadPerspective implements Manager. Pane sections naming panes this
// engine does not manage are skipped; panes absent from the perspective
// keep their current geometry.
func (e *Engine) LoadPerspective(perspective string) error {
	sections := SplitSections(perspective)
	if len(sections) == 0 || sections[0] != VersionTag {
		return fmt.Errorf("%w: missing %q tag", ErrBadPerspective, VersionTag)
	}
	for _, sec := range sections[1:] {
		if IsPaneSection(sec) {
			p, err := decodePane(sec)
			if err != nil {
				return err
			}
			if cur, ok := e.pane(p.Name); ok {
				*cur = p
			}
			continue
		}
		if err := e.loadGlobal(sec); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) loadGlobal(sec string) error {
	key, val, ok := strings.Cut(sec, "=")
	if !ok {
		return fmt.Errorf("%w: global section %q", ErrBadPerspective, sec)
	}
	if inner, found := strings.CutPrefix(key, "dock_size("); found {
		inner = strings.TrimSuffix(inner, ")")
		size, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("%w: dock size %q", ErrBadPerspective, sec)
		}
		e.dockSizes[inner] = size
		return nil
	}
	// Unrecognized global keys pass through silently; newer writers may
	// emit keys this engine predates.
	return nil
}

func (e *Engine) sortedDockKeys() []string {
	keys := make([]string, 0, len(e.dockSizes))
	for k := range e.dockSizes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func encodePane(p *Pane) string {
	state := "dock"
	if p.Float {
		state = "float"
	}
	return fmt.Sprintf("name=%s;caption=%s;state=%s;dir=%s;row=%d;pos=%d;prop=%d",
		p.Name, p.Caption, state, p.Dir, p.Row, p.Pos, p.Prop)
}

func decodePane(sec string) (Pane, error) {
	var p Pane
	for _, field := range strings.Split(sec, ";") {
		key, val, ok := strings.Cut(field, "=")
		if !ok {
			return Pane{}, fmt.Errorf("%w: pane field %q", ErrBadPerspective, field)
		}
		switch key {
		case "name":
			p.Name = val
		case "caption":
			p.Caption = val
		case "state":
			p.Float = val == "float"
		case "dir":
			p.Dir = Direction(val)
		case "row", "pos", "prop":
			n, err := strconv.Atoi(val)
			if err != nil {
				return Pane{}, fmt.Errorf("%w: pane field %q", ErrBadPerspective, field)
			}
			switch key {
			case "row":
				p.Row = n
			case "pos":
				p.Pos = n
			case "prop":
				p.Prop = n
			}
		}
	}
	if p.Name == "" {
		return Pane{}, fmt.Errorf("%w: pane section without name: %q", ErrBadPerspective, sec)
	}
	return p, nil
}

// SplitSections splits a perspective string into trimmed, non-empty
// sections.
func SplitSections(perspective string) []string {
	var out []string
	for _, sec := range strings.Split(perspective, "|") {
		sec = strings.TrimSpace(sec)
		if sec != "" {
			out = append(out, sec)
		}
	}
	return out
}

// IsPaneSection reports whether a section describes a pane, i.e. carries a
// "name=" key. Everything else (version tag, global keys) is not a pane
// section.
func IsPaneSection(sec string) bool {
	return strings.Contains(sec, "name=")
}

var _ Manager = (*Engine)(nil)

// Package layout implements the layout codec: it converts the live
// hierarchy of the main frame (view panels, their control panels, and each
// container's pane-manager perspective) into a single reconstructable text
// document, and parses such documents back into a structured description.
//
// Document format, newline-separated:
//
//	<comma-separated qualified view type refs>
//	<opaque frame perspective string>
//	<control refs>;<panel k=v props>;<aux k=v props>
//	<opaque view perspective string>
//	... (last two lines repeated per view panel) ...
//
// Perspective strings belong to the pane manager and are never interpreted
// here beyond section boundaries and the presence of "name=" keys.
package layout

import (
	"errors"
	"fmt"
	"strings"

	"voxview/internal/dock"
	"voxview/internal/panel"
)

// ErrMalformedDocument is returned by Deserialize for structural errors:
// missing lines, wrong field counts, or entries that cannot be split into
// key=value form.
var ErrMalformedDocument = errors.New("malformed layout document")

// ErrEmptyFrame is returned by Serialize when the frame holds no view
// panels. A document needs at least one view to be parseable, so there is
// nothing meaningful to write.
var ErrEmptyFrame = errors.New("frame has no view panels")

// TypeRef is a textual reference to a panel type. Current-format documents
// carry qualified refs ("<pkg>.<Name>"); documents written by older
// versions may carry bare short names, which resolve through the resolver's
// priority search.
type TypeRef string

// Qualified reports whether the reference is a qualified path rather than
// a legacy short name.
func (r TypeRef) Qualified() bool {
	return strings.Contains(string(r), ".")
}

// Prop is one key/value pair.
type Prop struct {
	Key   string
	Value string
}

// Props is an ordered sequence of key/value pairs. Order is semantically
// significant: properties are applied in sequence and later assignments may
// depend on earlier ones having taken effect.
type Props []Prop

// Get returns the value for key and whether it is present.
func (p Props) Get(key string) (string, bool) {
	for _, pr := range p {
		if pr.Key == key {
			return pr.Value, true
		}
	}
	return "", false
}

// Set replaces the value for key in place, or appends a new pair.
func (p *Props) Set(key, value string) {
	for i, pr := range *p {
		if pr.Key == key {
			(*p)[i].Value = value
			return
		}
	}
	*p = append(*p, Prop{Key: key, Value: value})
}

// Encode renders the pairs as comma-joined "key=value" entries.
func (p Props) Encode() string {
	parts := make([]string, len(p))
	for i, pr := range p {
		parts[i] = pr.Key + "=" + pr.Value
	}
	return strings.Join(parts, ",")
}

// ParseProps parses comma-joined "key=value" entries, preserving order and
// skipping empty entries. An entry without '=' is a structural error.
func ParseProps(s string) (Props, error) {
	var out Props
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("%w: property entry %q has no '='", ErrMalformedDocument, entry)
		}
		out = append(out, Prop{Key: key, Value: value})
	}
	return out, nil
}

// ViewBlock describes one view panel within a Document.
type ViewBlock struct {
	// ChildRefs are the view panel's control panels, in display order.
	ChildRefs []TypeRef
	// PanelProps apply to the view panel object itself.
	PanelProps Props
	// AuxProps apply to the view panel's auxiliary options object.
	AuxProps Props
	// ContainerLayout is the view panel's perspective string, patched so
	// pane order matches centre-then-ChildRefs order.
	ContainerLayout string
}

// Document is the decoded form of one layout document.
type Document struct {
	// FrameChildren are the frame's view panels, in display order.
	FrameChildren []TypeRef
	// FrameLayout is the frame perspective, patched to FrameChildren order.
	FrameLayout string
	// Blocks has one entry per FrameChildren element, same order.
	Blocks []ViewBlock
}

// Frame is the live main-frame surface. The codec only reads it; the
// applier also mutates it. Both must run on the goroutine owning the UI.
type Frame interface {
	Manager() dock.Manager
	// ViewPanels returns the open view panels in frame display order.
	ViewPanels() []ViewPanel
	// AddViewPanel creates and attaches a view panel of the given type,
	// without its default internal layout.
	AddViewPanel(t *panel.Type) (ViewPanel, error)
	RemoveAllViewPanels()
}

// ViewPanel is one live view panel.
type ViewPanel interface {
	PanelType() *panel.Type
	// PaneName is the panel's pane name within the frame's manager.
	PaneName() string
	// Manager owns the view panel's internal container.
	Manager() dock.Manager
	// CentrePaneName is the pane name of the primary content area.
	CentrePaneName() string
	// ControlPanels returns the open control panels in display order.
	ControlPanels() []ControlPanel
	AddControlPanel(t *panel.Type) (ControlPanel, error)
	// Props is the panel's own property holder.
	Props() panel.PropertyHolder
	// Aux is the auxiliary object's holder, nil when the kind has none.
	Aux() panel.PropertyHolder
}

// ControlPanel is one live control panel.
type ControlPanel interface {
	PanelType() *panel.Type
	PaneName() string
}

package layout

import (
	"fmt"
	"strings"

	"voxview/internal/panel"
)

// Codec converts between a live frame and the layout document text form.
// It holds no state beyond its collaborators and performs no I/O; a Codec
// value may be shared freely across goroutines as long as no two calls
// touch the same live frame.
type Codec struct {
	Resolver *panel.Resolver
}

// NewCodec creates a codec resolving type references through res.
func NewCodec(res *panel.Resolver) *Codec {
	return &Codec{Resolver: res}
}

// Serialize renders the frame's current arrangement as a layout document.
//
// The frame perspective is patched with rename=true so recreated frames
// number their panes 1..N; view perspectives are patched with rename=false
// since centre and control pane names are stable per kind.
func (c *Codec) Serialize(f Frame) (string, error) {
	views := f.ViewPanels()
	if len(views) == 0 {
		return "", ErrEmptyFrame
	}
	refs := make([]string, len(views))
	paneNames := make([]string, len(views))
	for i, vp := range views {
		refs[i] = vp.PanelType().Qualified()
		paneNames[i] = vp.PaneName()
	}

	frameLayout, err := PatchPerspective(f.Manager().SavePerspective(), paneNames, f.Manager(), true)
	if err != nil {
		return "", fmt.Errorf("serialize frame layout: %w", err)
	}

	lines := []string{strings.Join(refs, ","), frameLayout}
	for _, vp := range views {
		config, viewLayout, err := c.serializeView(vp)
		if err != nil {
			return "", fmt.Errorf("serialize view %s: %w", vp.PaneName(), err)
		}
		lines = append(lines, config, viewLayout)
	}
	return strings.Join(lines, "\n"), nil
}

func (c *Codec) serializeView(vp ViewPanel) (config, viewLayout string, err error) {
	ctrls := vp.ControlPanels()
	ctrlRefs := make([]string, len(ctrls))
	panes := make([]string, 0, len(ctrls)+1)
	panes = append(panes, vp.CentrePaneName())
	for i, cp := range ctrls {
		ctrlRefs[i] = cp.PanelType().Qualified()
		panes = append(panes, cp.PaneName())
	}

	viewLayout, err = PatchPerspective(vp.Manager().SavePerspective(), panes, vp.Manager(), false)
	if err != nil {
		return "", "", err
	}

	t := vp.PanelType()
	panelProps, err := serializeProps(vp.Props(), t.PanelProps)
	if err != nil {
		return "", "", err
	}
	auxProps, err := serializeProps(vp.Aux(), t.AuxProps)
	if err != nil {
		return "", "", err
	}

	config = strings.Join(ctrlRefs, ",") + ";" + panelProps.Encode() + ";" + auxProps.Encode()
	return config, viewLayout, nil
}

// serializeProps reads the named properties from holder in list order.
// Kinds without a fixed property list, or without the matching holder,
// serialize no properties.
func serializeProps(holder panel.PropertyHolder, names []string) (Props, error) {
	if holder == nil || len(names) == 0 {
		return nil, nil
	}
	out := make(Props, 0, len(names))
	for _, name := range names {
		value, err := holder.SerializeProperty(name)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", name, err)
		}
		out = append(out, Prop{Key: name, Value: value})
	}
	return out, nil
}

// Deserialize parses a layout document. Every type reference is resolved
// (views against the view registries, controls against the control
// registries) so that unknown panel types surface here rather than halfway
// through an apply. Structural violations return ErrMalformedDocument.
func (c *Codec) Deserialize(doc string) (*Document, error) {
	lines := splitLines(doc)
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: need at least children and frame layout lines, got %d", ErrMalformedDocument, len(lines))
	}

	children, err := c.parseRefs(lines[0], panel.KindView)
	if err != nil {
		return nil, fmt.Errorf("frame children: %w", err)
	}
	if want := 2 + 2*len(children); len(lines) != want {
		return nil, fmt.Errorf("%w: %d view panels need %d lines, got %d", ErrMalformedDocument, len(children), want, len(lines))
	}

	out := &Document{
		FrameChildren: children,
		FrameLayout:   lines[1],
		Blocks:        make([]ViewBlock, 0, len(children)),
	}
	for i := range children {
		block, err := c.parseBlock(lines[2+2*i], lines[3+2*i])
		if err != nil {
			return nil, fmt.Errorf("view panel %d: %w", i, err)
		}
		out.Blocks = append(out.Blocks, block)
	}
	return out, nil
}

func (c *Codec) parseBlock(config, viewLayout string) (ViewBlock, error) {
	fields := strings.Split(config, ";")
	if len(fields) != 3 {
		return ViewBlock{}, fmt.Errorf("%w: config line has %d fields, want 3", ErrMalformedDocument, len(fields))
	}
	childRefs, err := c.parseRefs(fields[0], panel.KindControl)
	if err != nil {
		return ViewBlock{}, err
	}
	panelProps, err := ParseProps(fields[1])
	if err != nil {
		return ViewBlock{}, err
	}
	auxProps, err := ParseProps(fields[2])
	if err != nil {
		return ViewBlock{}, err
	}
	return ViewBlock{
		ChildRefs:       childRefs,
		PanelProps:      panelProps,
		AuxProps:        auxProps,
		ContainerLayout: viewLayout,
	}, nil
}

// parseRefs splits a comma-joined reference list and resolves each entry.
// The resolved types are discarded here; the applier resolves again when
// instantiating, so the document stays purely textual.
func (c *Codec) parseRefs(s string, k panel.Kind) ([]TypeRef, error) {
	var out []TypeRef
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if _, err := c.Resolver.Resolve(entry, k); err != nil {
			return nil, err
		}
		out = append(out, TypeRef(entry))
	}
	return out, nil
}

func splitLines(doc string) []string {
	var out []string
	for _, line := range strings.Split(doc, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

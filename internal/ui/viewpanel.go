package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"voxview/internal/dock"
	"voxview/internal/layout"
	"voxview/internal/panel"
	"voxview/internal/pty"
	"voxview/internal/ui/textutil"
)

// controlCaptionWidth caps control pane captions; docked columns are
// narrow, so long plugin captions get an ellipsis rather than a wide box.
const controlCaptionWidth = 24

// ViewPanel is a content panel hosted by the frame. It owns a nested dock
// engine whose "centre" pane holds the view content and whose remaining
// panes hold control panels.
type ViewPanel struct {
	typ      *panel.Type
	pane     string
	engine   *dock.Engine
	controls []*ControlPanel
	props    *PropBag
	aux      panel.PropertyHolder
	scene    *SceneOpts
	canvas   *CanvasOpts
	runner   pty.Runner

	width, height int
}

var _ layout.ViewPanel = (*ViewPanel)(nil)

// newViewPanel builds a live panel for the given type. paneName is the
// frame-level pane hosting it. runner backs any TerminalPanel added later.
func newViewPanel(t *panel.Type, paneName string, runner pty.Runner) (*ViewPanel, error) {
	engine := dock.NewEngine()
	if err := engine.AddPane(dock.Pane{Name: "centre"}); err != nil {
		return nil, err
	}

	vp := &ViewPanel{
		typ:    t,
		pane:   paneName,
		engine: engine,
		props:  NewPropBag(t, t.PanelProps),
		runner: runner,
	}

	switch {
	case t.Aux == panel.AuxNone:
		// no aux object
	case t.Pkg != PackagePath:
		// Plugin kinds carry a generic bag; their aux property names are
		// whatever the plugin declared.
		vp.aux = NewPropBag(t, t.AuxProps)
	case t.Aux == panel.AuxScene:
		scene, err := NewSceneOpts(t)
		if err != nil {
			return nil, err
		}
		vp.scene = scene
		vp.aux = scene
		// A layout mode change re-fits the slices, which discards any
		// manual zoom. Property order in the serialized document relies
		// on this: zoom must be applied after layout.
		vp.props.OnSet = func(name, _ string) {
			if name == "layout" {
				scene.ResetZoom()
			}
		}
	case t.Aux == panel.AuxCanvas:
		canvas, err := NewCanvasOpts(t)
		if err != nil {
			return nil, err
		}
		vp.canvas = canvas
		vp.aux = canvas
	}

	return vp, nil
}

// PanelType implements layout.ViewPanel.
func (v *ViewPanel) PanelType() *panel.Type { return v.typ }

// PaneName implements layout.ViewPanel.
func (v *ViewPanel) PaneName() string { return v.pane }

// Manager implements layout.ViewPanel.
func (v *ViewPanel) Manager() dock.Manager { return v.engine }

// CentrePaneName implements layout.ViewPanel.
func (v *ViewPanel) CentrePaneName() string { return "centre" }

// ControlPanels implements layout.ViewPanel.
func (v *ViewPanel) ControlPanels() []layout.ControlPanel {
	out := make([]layout.ControlPanel, len(v.controls))
	for i, c := range v.controls {
		out[i] = c
	}
	return out
}

// Props implements layout.ViewPanel.
func (v *ViewPanel) Props() panel.PropertyHolder { return v.props }

// Aux implements layout.ViewPanel. Nil when the kind has no aux object.
func (v *ViewPanel) Aux() panel.PropertyHolder { return v.aux }

// defaultControlDir places a control kind on its usual edge.
func defaultControlDir(name string) dock.Direction {
	switch name {
	case "LocationPanel", "TerminalPanel":
		return dock.Bottom
	default:
		return dock.Left
	}
}

// AddControlPanel implements layout.ViewPanel. The pane is named after the
// type so perspective strings stay stable.
func (v *ViewPanel) AddControlPanel(t *panel.Type) (layout.ControlPanel, error) {
	if err := v.engine.AddPane(dock.Pane{
		Name:    t.Name,
		Caption: t.Caption,
		Dir:     defaultControlDir(t.Name),
	}); err != nil {
		return nil, fmt.Errorf("add control pane %s: %w", t.Name, err)
	}

	cp := &ControlPanel{typ: t, pane: t.Name}
	switch t.Name {
	case "OverlayListPanel":
		cp.body = newOverlayListBody()
	case "LocationPanel":
		cp.body = &locationBody{}
	case "LookupTablePanel":
		cp.body = newLookupTableBody()
	case "TerminalPanel":
		if v.runner != nil {
			cp.body = newTerminalBody(v.runner)
		}
	}
	v.controls = append(v.controls, cp)
	return cp, nil
}

// RemoveControlPanel detaches the named control and its dock pane.
func (v *ViewPanel) RemoveControlPanel(paneName string) bool {
	for i, c := range v.controls {
		if c.pane != paneName {
			continue
		}
		if tb, ok := c.body.(*terminalBody); ok {
			tb.Close()
		}
		v.engine.RemovePane(paneName)
		v.controls = append(v.controls[:i], v.controls[i+1:]...)
		return true
	}
	return false
}

// Init implements View.
func (v *ViewPanel) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, c := range v.controls {
		if cmd := c.Init(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// Update implements View.
func (v *ViewPanel) Update(msg tea.Msg) (View, tea.Cmd) {
	if sz, ok := msg.(tea.WindowSizeMsg); ok {
		v.width = sz.Width
		v.height = sz.Height
	}
	var cmds []tea.Cmd
	for i, c := range v.controls {
		body, cmd := c.Update(msg)
		v.controls[i] = body.(*ControlPanel)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return v, tea.Batch(cmds...)
}

// View implements View. Control panes are drawn on their docked edges
// around the centre content.
func (v *ViewPanel) View() string {
	centre := v.centreView()

	var left, right, bottom []string
	for _, c := range v.controls {
		p, ok := v.engine.Pane(c.pane)
		if !ok {
			continue
		}
		caption := textutil.Truncate(c.typ.Caption, controlCaptionWidth)
		box := Styles.PaneBorder.Render(
			Styles.Caption.Render(caption) + "\n" + c.View())
		switch p.Dir {
		case dock.Left:
			left = append(left, box)
		case dock.Right:
			right = append(right, box)
		default:
			bottom = append(bottom, box)
		}
	}

	cols := make([]string, 0, 3)
	if len(left) > 0 {
		cols = append(cols, lipgloss.JoinVertical(lipgloss.Left, left...))
	}
	cols = append(cols, centre)
	if len(right) > 0 {
		cols = append(cols, lipgloss.JoinVertical(lipgloss.Left, right...))
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, cols...)
	if len(bottom) > 0 {
		body = lipgloss.JoinVertical(lipgloss.Left,
			append([]string{body}, bottom...)...)
	}
	return body
}

// centreView renders a summary of the view content. Actual volume rendering
// is out of scope for the terminal front end; the centre pane shows the
// active display state instead.
func (v *ViewPanel) centreView() string {
	s := Styles.Title.Render(v.typ.Caption) + "\n"
	for _, name := range v.typ.PanelProps {
		s += fmt.Sprintf("  %s = %s\n", name, v.props.Get(name))
	}
	if v.aux != nil {
		for _, name := range v.typ.AuxProps {
			if val, err := v.aux.SerializeProperty(name); err == nil {
				s += Styles.Muted.Render(fmt.Sprintf("  %s = %s", name, val)) + "\n"
			}
		}
	}
	return s
}

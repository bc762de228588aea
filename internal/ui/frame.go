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

// maxCaptionWidth caps pane caption width in columns; narrower terminals
// shrink it further so captions never push boxes past the frame edge.
const maxCaptionWidth = 28

// Frame is the top-level pane host. View panels dock into its engine under
// names of the form "<TypeName> <n>"; n counts up from 1 and resets when the
// frame is cleared, so a layout applied to a fresh frame reproduces the pane
// names it was saved with.
type Frame struct {
	engine  *dock.Engine
	views   []*ViewPanel
	counter int
	runner  pty.Runner
	focus   *FocusManager

	width, height int
}

var _ layout.Frame = (*Frame)(nil)

// NewFrame creates an empty frame. runner backs terminal panels and may be
// nil outside the live app.
func NewFrame(runner pty.Runner) *Frame {
	return &Frame{
		engine: dock.NewEngine(),
		runner: runner,
		focus:  &FocusManager{},
	}
}

// Manager implements layout.Frame.
func (f *Frame) Manager() dock.Manager { return f.engine }

// ViewPanels implements layout.Frame.
func (f *Frame) ViewPanels() []layout.ViewPanel {
	out := make([]layout.ViewPanel, len(f.views))
	for i, v := range f.views {
		out[i] = v
	}
	return out
}

// AddViewPanel implements layout.Frame.
func (f *Frame) AddViewPanel(t *panel.Type) (layout.ViewPanel, error) {
	f.counter++
	name := fmt.Sprintf("%s %d", t.Name, f.counter)
	caption := fmt.Sprintf("%s %d", t.Caption, f.counter)
	if err := f.engine.AddPane(dock.Pane{Name: name, Caption: caption}); err != nil {
		f.counter--
		return nil, fmt.Errorf("add view pane %s: %w", name, err)
	}
	vp, err := newViewPanel(t, name, f.runner)
	if err != nil {
		f.engine.RemovePane(name)
		f.counter--
		return nil, err
	}
	f.views = append(f.views, vp)
	f.focus.Order = append(f.focus.Order, name)
	if f.focus.Current == "" {
		f.focus.Current = name
	}
	return vp, nil
}

// RemoveAllViewPanels implements layout.Frame. Resets the pane name counter.
func (f *Frame) RemoveAllViewPanels() {
	for _, v := range f.views {
		for _, c := range v.controls {
			if tb, ok := c.body.(*terminalBody); ok {
				tb.Close()
			}
		}
		f.engine.RemovePane(v.pane)
	}
	f.views = nil
	f.counter = 0
	f.focus.Order = nil
	f.focus.Current = ""
}

// FocusNext rotates focus to the next view pane and returns its name.
func (f *Frame) FocusNext() string { return f.focus.Next() }

// FocusedView returns the focused view panel, or nil for an empty frame.
func (f *Frame) FocusedView() *ViewPanel {
	for _, v := range f.views {
		if v.pane == f.focus.Current {
			return v
		}
	}
	return nil
}

// Init implements View.
func (f *Frame) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, v := range f.views {
		if cmd := v.Init(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// Update implements View. Key input goes to the focused view only; other
// messages are broadcast.
func (f *Frame) Update(msg tea.Msg) (View, tea.Cmd) {
	if sz, ok := msg.(tea.WindowSizeMsg); ok {
		f.width = sz.Width
		f.height = sz.Height
	}

	if _, isKey := msg.(tea.KeyMsg); isKey {
		if focused := f.FocusedView(); focused != nil {
			_, cmd := focused.Update(msg)
			return f, cmd
		}
		return f, nil
	}

	var cmds []tea.Cmd
	for _, v := range f.views {
		_, cmd := v.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return f, tea.Batch(cmds...)
}

// View implements View. Panes are grouped by dock edge: centre panes side
// by side in the middle, top and bottom rows above and below.
func (f *Frame) View() string {
	if len(f.views) == 0 {
		return Styles.Muted.Render("no views — SPC l l to pick a layout")
	}

	captionWidth := maxCaptionWidth
	if f.width > 0 {
		if w := f.width/len(f.views) - 2; w < captionWidth {
			captionWidth = w
		}
	}

	var top, middle, bottom []string
	for _, v := range f.views {
		p, ok := f.engine.Pane(v.pane)
		if !ok {
			continue
		}
		style := Styles.PaneBorder
		if v.pane == f.focus.Current {
			style = Styles.PaneFocused
		}
		caption := textutil.Truncate(p.Caption, captionWidth)
		box := style.Render(Styles.Caption.Render(caption) + "\n" + v.View())
		switch p.Dir {
		case dock.Top:
			top = append(top, box)
		case dock.Bottom:
			bottom = append(bottom, box)
		default:
			middle = append(middle, box)
		}
	}

	rows := make([]string, 0, 3)
	if len(top) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, top...))
	}
	if len(middle) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, middle...))
	}
	if len(bottom) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, bottom...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

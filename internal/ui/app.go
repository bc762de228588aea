package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"voxview/internal/apply"
	"voxview/internal/layout"
	"voxview/internal/registry"
	"voxview/internal/ui/textutil"
)

// overlayMode is the modal overlay state of the app.
type overlayMode int

const (
	overlayNone overlayMode = iota
	overlayPicker
	overlaySave
)

// ApplyLayoutMsg asks the app to apply a named layout to the frame.
type ApplyLayoutMsg struct {
	ID string
}

// layoutFetchedMsg carries a layout read from the registry and decoded,
// ready to be applied to the frame. Commands run on their own goroutines,
// so the frame mutation itself happens in Update, never here.
type layoutFetchedMsg struct {
	ID  string
	Doc *layout.Document
	Err error
}

// LayoutSavedMsg reports the outcome of saving the current frame state.
type LayoutSavedMsg struct {
	ID  string
	Err error
}

// App is the root Bubble Tea model: the frame, the leader-key dispatcher,
// a status bar, and modal overlays for picking and saving layouts.
type App struct {
	frame   *Frame
	reg     *registry.Registry
	applier *apply.Applier
	codec   *layout.Codec
	logger  *log.Logger

	keys    *KeyHandler
	mode    overlayMode
	picker  list.Model
	input   textinput.Model
	current string // id of the last applied layout
	status  string
	failed  bool

	width, height int
}

// NewApp wires the app model together. startLayout is applied on Init; pass
// "" to start with an empty frame.
func NewApp(frame *Frame, reg *registry.Registry, applier *apply.Applier, codec *layout.Codec, logger *log.Logger, startLayout string) *App {
	a := &App{
		frame:   frame,
		reg:     reg,
		applier: applier,
		codec:   codec,
		logger:  logger,
		current: startLayout,
	}

	binds := NewKeybindRegistry()
	binds.BindWithDesc("q", tea.Quit, "Quit")
	binds.Bind("ctrl+c", tea.Quit)
	binds.BindWithDesc("tab", func() tea.Msg { return focusNextMsg{} }, "Next view")
	binds.BindWithDesc("SPC l l", func() tea.Msg { return openPickerMsg{} }, "Pick layout")
	binds.BindWithDesc("SPC l s", func() tea.Msg { return openSaveMsg{} }, "Save layout")
	binds.BindWithDesc("SPC l r", func() tea.Msg { return ApplyLayoutMsg{ID: a.current} }, "Reapply layout")
	a.keys = NewKeyHandler(binds)

	ti := textinput.New()
	ti.Placeholder = "layout name"
	ti.CharLimit = 64
	a.input = ti

	return a
}

type focusNextMsg struct{}
type openPickerMsg struct{}
type openSaveMsg struct{}

func (a *App) openPicker() {
	items := []list.Item{}
	for _, l := range a.reg.List() {
		items = append(items, layoutItem{l})
	}
	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = Styles.Selected
	d.Styles.SelectedDesc = Styles.Muted
	a.picker = list.New(items, d, 40, 14)
	a.picker.Title = "Layouts"
	a.picker.SetShowStatusBar(false)
	a.picker.SetFilteringEnabled(true)
	a.mode = overlayPicker
}

func (a *App) openSave() {
	a.input.SetValue("")
	a.input.Focus()
	a.mode = overlaySave
}

// layoutItem adapts a registry.Layout to bubbles/list.
type layoutItem struct {
	l registry.Layout
}

func (i layoutItem) Title() string       { return i.l.ID }
func (i layoutItem) Description() string { return i.l.Title + " (" + i.l.Origin.String() + ")" }
func (i layoutItem) FilterValue() string { return i.l.ID + " " + i.l.Title }

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.frame.Init()}
	if a.current != "" {
		id := a.current
		cmds = append(cmds, func() tea.Msg { return ApplyLayoutMsg{ID: id} })
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		_, cmd := a.frame.Update(msg)
		return a, cmd

	case focusNextMsg:
		a.frame.FocusNext()
		return a, nil

	case openPickerMsg:
		a.openPicker()
		return a, nil

	case openSaveMsg:
		a.openSave()
		return a, nil

	case ApplyLayoutMsg:
		return a, a.fetchLayout(msg.ID)

	case layoutFetchedMsg:
		err := msg.Err
		if err == nil {
			err = a.applier.Apply(context.Background(), a.frame, msg.Doc)
		}
		if err != nil {
			a.setStatus("apply "+msg.ID+": "+err.Error(), true)
			return a, nil
		}
		a.current = msg.ID
		a.setStatus("layout: "+msg.ID, false)
		return a, a.frame.Init()

	case LayoutSavedMsg:
		if msg.Err != nil {
			a.setStatus("save "+msg.ID+": "+msg.Err.Error(), true)
		} else {
			a.setStatus("saved layout "+msg.ID, false)
		}
		return a, nil

	case tea.KeyMsg:
		return a.updateKey(msg)
	}

	_, cmd := a.frame.Update(msg)
	return a, cmd
}

func (a *App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.mode {
	case overlayPicker:
		switch msg.String() {
		case "esc":
			a.mode = overlayNone
			return a, nil
		case "enter":
			a.mode = overlayNone
			if item, ok := a.picker.SelectedItem().(layoutItem); ok {
				return a, func() tea.Msg { return ApplyLayoutMsg{ID: item.l.ID} }
			}
			return a, nil
		}
		var cmd tea.Cmd
		a.picker, cmd = a.picker.Update(msg)
		return a, cmd

	case overlaySave:
		switch msg.String() {
		case "esc":
			a.mode = overlayNone
			return a, nil
		case "enter":
			a.mode = overlayNone
			id := strings.TrimSpace(a.input.Value())
			if id == "" {
				return a, nil
			}
			doc, err := a.codec.Serialize(a.frame)
			if err != nil {
				a.setStatus("save "+id+": "+err.Error(), true)
				return a, nil
			}
			return a, a.persistLayout(id, doc)
		}
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}

	// Terminal panels get raw keys; the leader key would be unusable
	// inside a shell otherwise.
	if fv := a.frame.FocusedView(); fv != nil && hasFocusedTerminal(fv) {
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		_, cmd := a.frame.Update(msg)
		return a, cmd
	}

	if consumed, cmd := a.keys.Handle(msg); consumed {
		return a, cmd
	}
	_, cmd := a.frame.Update(msg)
	return a, cmd
}

// hasFocusedTerminal reports whether the view hosts a terminal panel.
func hasFocusedTerminal(v *ViewPanel) bool {
	for _, c := range v.controls {
		if _, ok := c.body.(*terminalBody); ok {
			return true
		}
	}
	return false
}

// fetchLayout reads and decodes a layout off the event loop. The frame is
// shared with View, so the decoded document is handed back as a message and
// applied in Update.
func (a *App) fetchLayout(id string) tea.Cmd {
	return func() tea.Msg {
		l, err := a.reg.Get(id)
		if err != nil {
			return layoutFetchedMsg{ID: id, Err: err}
		}
		doc, err := a.codec.Deserialize(l.Document)
		if err != nil {
			return layoutFetchedMsg{ID: id, Err: err}
		}
		return layoutFetchedMsg{ID: id, Doc: doc}
	}
}

// persistLayout writes an already-serialized document to the registry.
func (a *App) persistLayout(id, document string) tea.Cmd {
	return func() tea.Msg {
		if err := a.reg.Save(id, id, document); err != nil {
			return LayoutSavedMsg{ID: id, Err: err}
		}
		return LayoutSavedMsg{ID: id}
	}
}

func (a *App) setStatus(s string, failed bool) {
	a.status = s
	a.failed = failed
	if failed {
		a.logger.Error(s)
	}
}

// View implements tea.Model.
func (a *App) View() string {
	body := a.frame.View()

	switch a.mode {
	case overlayPicker:
		body = lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
			Styles.Overlay.Render(a.picker.View()))
	case overlaySave:
		prompt := Styles.Title.Render("Save layout") + "\n\n" + a.input.View() +
			"\n\n" + Styles.Hint.Render("enter: save  esc: cancel")
		body = lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
			Styles.Overlay.Render(prompt))
	}

	status := a.status
	if status == "" {
		status = "layout: " + a.current
	}
	if a.width > 0 {
		status = textutil.PadRight(status, a.width)
	}
	bar := Styles.Hint.Render(status)
	if a.failed {
		bar = Styles.Error.Render(status)
	}
	return body + "\n" + bar
}

var _ tea.Model = (*App)(nil)

package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"voxview/internal/panel"
)

// ControlPanel is a secondary panel docked inside a view panel. Its pane
// name is the type name, which keeps saved perspectives stable across
// sessions.
type ControlPanel struct {
	typ  *panel.Type
	pane string
	body View
}

// PanelType implements layout.ControlPanel.
func (c *ControlPanel) PanelType() *panel.Type { return c.typ }

// PaneName implements layout.ControlPanel.
func (c *ControlPanel) PaneName() string { return c.pane }

// Init implements View.
func (c *ControlPanel) Init() tea.Cmd {
	if c.body == nil {
		return nil
	}
	return c.body.Init()
}

// Update implements View.
func (c *ControlPanel) Update(msg tea.Msg) (View, tea.Cmd) {
	if c.body == nil {
		return c, nil
	}
	var cmd tea.Cmd
	c.body, cmd = c.body.Update(msg)
	return c, cmd
}

// View implements View.
func (c *ControlPanel) View() string {
	if c.body == nil {
		return Styles.Muted.Render("(" + c.typ.Caption + ")")
	}
	return c.body.View()
}

// listItem adapts a plain string to bubbles/list.
type listItem string

func (i listItem) Title() string       { return string(i) }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return string(i) }

func newStringList(title string, entries []string) list.Model {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = listItem(e)
	}
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.ShowDescription = false
	d.Styles.SelectedTitle = Styles.Selected
	d.Styles.NormalTitle = Styles.Muted
	l := list.New(items, d, 24, 8)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	return l
}

// overlayListBody lists the loaded overlays.
type overlayListBody struct {
	list list.Model
}

func newOverlayListBody() *overlayListBody {
	return &overlayListBody{list: newStringList("Overlays", nil)}
}

func (b *overlayListBody) Init() tea.Cmd { return nil }

func (b *overlayListBody) Update(msg tea.Msg) (View, tea.Cmd) {
	if sz, ok := msg.(tea.WindowSizeMsg); ok {
		b.list.SetSize(sz.Width, sz.Height)
		return b, nil
	}
	var cmd tea.Cmd
	b.list, cmd = b.list.Update(msg)
	return b, cmd
}

func (b *overlayListBody) View() string { return b.list.View() }

// locationBody shows the cursor location in world and voxel coordinates.
type locationBody struct {
	worldX, worldY, worldZ float64
	voxelX, voxelY, voxelZ int
}

func (b *locationBody) Init() tea.Cmd                  { return nil }
func (b *locationBody) Update(tea.Msg) (View, tea.Cmd) { return b, nil }
func (b *locationBody) View() string {
	return fmt.Sprintf("world  %7.2f %7.2f %7.2f\nvoxel  %7d %7d %7d",
		b.worldX, b.worldY, b.worldZ, b.voxelX, b.voxelY, b.voxelZ)
}

// lookupTableBody lists the available colour lookup tables.
type lookupTableBody struct {
	list list.Model
}

func newLookupTableBody() *lookupTableBody {
	return &lookupTableBody{list: newStringList("Lookup tables", []string{
		"greyscale", "red-yellow", "blue-lightblue", "random",
	})}
}

func (b *lookupTableBody) Init() tea.Cmd { return nil }

func (b *lookupTableBody) Update(msg tea.Msg) (View, tea.Cmd) {
	if sz, ok := msg.(tea.WindowSizeMsg); ok {
		b.list.SetSize(sz.Width, sz.Height)
		return b, nil
	}
	var cmd tea.Cmd
	b.list, cmd = b.list.Update(msg)
	return b, cmd
}

func (b *lookupTableBody) View() string { return b.list.View() }

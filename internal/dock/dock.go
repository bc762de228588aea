// Package dock implements the pane manager: it owns pane geometry
// (dock direction, row, position, proportion, floating state) for one
// container and produces/consumes the voxdock perspective string.
//
// The perspective grammar is private to this package. Sections are
// '|'-separated with a trailing '|'; the first section is the format
// version tag; the rest are either global keys ("dock_size(dir,row)=px")
// or pane sections (';'-joined "key=value" pairs, always carrying "name=").
// Everything outside this package treats perspective strings as opaque.
package dock

// Manager is the pane-manager surface consumed by the layout codec and
// applier. Engine is the in-process implementation; tests substitute fakes.
type Manager interface {
	// SavePerspective serializes the whole container: version tag, global
	// keys, then one section per pane. Pane order follows creation order,
	// not any caller-visible display order.
	SavePerspective() string

	// LoadPerspective applies a perspective string to the container.
	// Sections naming unknown panes are ignored.
	LoadPerspective(perspective string) error

	// SavePaneInfo serializes the current geometry of a single pane.
	SavePaneInfo(name string) (string, error)

	// PaneNames returns the pane names in creation order.
	PaneNames() []string
}

// Package panel defines the view/control panel type system: type
// descriptors, per-package registration tables, and the resolver that maps
// textual type references (qualified paths or legacy short names) back to
// registered types.
package panel

// Kind distinguishes the two panel families a frame can host.
type Kind int

const (
	// KindView is a top-level content panel hosted by the main frame.
	KindView Kind = iota
	// KindControl is a secondary panel hosted inside a view panel.
	KindControl
)

// String returns "view" or "control".
func (k Kind) String() string {
	if k == KindControl {
		return "control"
	}
	return "view"
}

// AuxFamily identifies which auxiliary options object a view panel kind
// carries, if any.
type AuxFamily int

const (
	// AuxNone means the kind has no auxiliary object.
	AuxNone AuxFamily = iota
	// AuxScene is the scene-options family (slice-based views).
	AuxScene
	// AuxCanvas is the plot-canvas family (plotting views).
	AuxCanvas
)

// Type describes a registered panel type. It is a pure descriptor: the live
// UI layer decides how to construct an instance for a given Type.
type Type struct {
	// Pkg is the package path the type belongs to, e.g.
	// "voxview/internal/ui". Plugin types use a "plugins.<name>" namespace.
	Pkg string
	// Name is the simple type name, e.g. "OrthoView".
	Name string
	// Caption is the human-readable title used for pane captions.
	Caption string
	Kind    Kind

	// Aux names the auxiliary-object family for view kinds.
	Aux AuxFamily

	// PanelProps is the fixed, ordered list of property names serialized
	// for the panel object itself. Order is the application order.
	PanelProps []string
	// AuxProps is the fixed, ordered list of property names serialized for
	// the auxiliary object. Empty when Aux is AuxNone.
	AuxProps []string

	// Defaults holds initial values for the names in PanelProps/AuxProps.
	// Application order always comes from the lists, never from this map.
	Defaults map[string]string
}

// Default returns the default value for a property name, or "".
func (t *Type) Default(name string) string {
	return t.Defaults[name]
}

// Qualified returns the unambiguous reference for the type:
// "<pkg>.<Name>".
func (t *Type) Qualified() string {
	return t.Pkg + "." + t.Name
}

// PropertyHolder is implemented by panel objects and their auxiliary
// objects. Properties are addressed by name; encoding/decoding of the value
// is the holder's business.
type PropertyHolder interface {
	SerializeProperty(name string) (string, error)
	DeserializeProperty(name, value string) error
}

// Table holds the types registered under one package path, in registration
// order.
type Table struct {
	Pkg   string
	types []*Type
}

// NewTable creates an empty registration table for the given package path.
func NewTable(pkg string) *Table {
	return &Table{Pkg: pkg}
}

// Register adds t to the table and stamps its Pkg. Registering two types
// with the same name is a programming error and replaces the earlier entry.
func (tb *Table) Register(t *Type) *Type {
	t.Pkg = tb.Pkg
	for i, existing := range tb.types {
		if existing.Name == t.Name {
			tb.types[i] = t
			return t
		}
	}
	tb.types = append(tb.types, t)
	return t
}

// Lookup returns the type with the given simple name.
func (tb *Table) Lookup(name string) (*Type, bool) {
	for _, t := range tb.types {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}

// Types returns the registered types in registration order.
func (tb *Table) Types() []*Type {
	out := make([]*Type, len(tb.types))
	copy(out, tb.types)
	return out
}

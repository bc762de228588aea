// Package plugin loads Lua plugins and collects what they contribute:
// additional view/control panel types and named layouts. Plugins are plain
// .lua files in the configured plugin directories; each file gets a fresh
// Lua state with a "voxview" API table and runs once at load time.
package plugin

import (
	"voxview/internal/panel"
)

// Layout is a plugin-contributed named layout, registered into the named
// layout registry by the caller after loading.
type Layout struct {
	ID       string
	Title    string
	Document string
}

// Registry collects plugin contributions. One Registry serves all loaded
// plugins; each plugin's types live under a "plugins.<name>" namespace so
// qualified references stay unambiguous across plugins.
type Registry struct {
	tables  map[string]*panel.Table
	order   []string
	layouts []Layout
}

// NewRegistry creates an empty plugin registry.
func NewRegistry() *Registry {
	return &Registry{tables: make(map[string]*panel.Table)}
}

// table returns the namespace table for a plugin, creating it on first use.
func (r *Registry) table(pluginName string) *panel.Table {
	pkg := "plugins." + pluginName
	tb, ok := r.tables[pkg]
	if !ok {
		tb = panel.NewTable(pkg)
		r.tables[pkg] = tb
		r.order = append(r.order, pkg)
	}
	return tb
}

// Tables returns the per-plugin namespace tables in load order, for
// registration with the resolver's qualified lookup.
func (r *Registry) Tables() []*panel.Table {
	out := make([]*panel.Table, 0, len(r.order))
	for _, pkg := range r.order {
		out = append(out, r.tables[pkg])
	}
	return out
}

// Source returns the short-name lookup source over all plugin types.
// Plugins are walked in load order, types in registration order, so
// resolution stays deterministic for a fixed set of loaded plugins.
func (r *Registry) Source() panel.Source {
	return panel.Source{
		Name: "plugin",
		List: func(k panel.Kind) []*panel.Type {
			var out []*panel.Type
			for _, pkg := range r.order {
				for _, t := range r.tables[pkg].Types() {
					if t.Kind == k {
						out = append(out, t)
					}
				}
			}
			return out
		},
	}
}

// Layouts returns plugin-contributed layouts in registration order.
func (r *Registry) Layouts() []Layout {
	out := make([]Layout, len(r.layouts))
	copy(out, r.layouts)
	return out
}

func (r *Registry) addLayout(l Layout) {
	for i, existing := range r.layouts {
		if existing.ID == l.ID {
			r.layouts[i] = l
			return
		}
	}
	r.layouts = append(r.layouts, l)
}

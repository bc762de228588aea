package panel

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for type resolution.
var (
	// ErrUnresolvedModule is returned when a qualified reference names a
	// package that is not registered.
	ErrUnresolvedModule = errors.New("unresolved module")

	// ErrUnresolvedType is returned when the referenced type cannot be
	// found in its package or, for short names, in any source.
	ErrUnresolvedType = errors.New("unresolved type")
)

// Source is one short-name lookup source. Sources are tried in the order
// they were added to the resolver; the list is data, so new sources can be
// appended without touching the resolver itself.
type Source struct {
	// Name identifies the source in error messages ("builtin", "plugin").
	Name string
	// List returns the source's types of the given kind, in a stable order
	// for a fixed set of registered types.
	List func(k Kind) []*Type
}

// Resolver maps textual panel-type references to registered types. A
// reference containing a '.' is a qualified path ("<pkg>.<Name>"); anything
// else is a legacy short name resolved by a priority search across the
// resolver's sources.
type Resolver struct {
	pkgs    map[string]*Table
	pkgList []string // registration order, for deterministic iteration
	sources []Source
}

// NewResolver creates an empty resolver.
func NewResolver() *Resolver {
	return &Resolver{pkgs: make(map[string]*Table)}
}

// AddPackage registers a package table for qualified lookups. The first
// registered table for a path wins; re-registering the same path replaces
// its table.
func (r *Resolver) AddPackage(tb *Table) {
	if _, ok := r.pkgs[tb.Pkg]; !ok {
		r.pkgList = append(r.pkgList, tb.Pkg)
	}
	r.pkgs[tb.Pkg] = tb
}

// AddSource appends a short-name source. Earlier sources take priority.
func (r *Resolver) AddSource(s Source) {
	r.sources = append(r.sources, s)
}

// Resolve maps ref to a registered type of the given kind.
//
// Qualified references resolve through the package tables and ignore kind:
// a qualified path names exactly one type regardless of name collisions
// elsewhere. Short names search the sources in priority order and return
// the first type of the matching kind whose simple name equals ref.
func (r *Resolver) Resolve(ref string, k Kind) (*Type, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("%w: empty reference", ErrUnresolvedType)
	}
	if i := strings.LastIndex(ref, "."); i >= 0 {
		return r.resolveQualified(ref[:i], ref[i+1:])
	}
	for _, src := range r.sources {
		for _, t := range src.List(k) {
			if t.Name == ref {
				return t, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: no %s type named %q in any source", ErrUnresolvedType, k, ref)
}

func (r *Resolver) resolveQualified(pkg, name string) (*Type, error) {
	tb, ok := r.pkgs[pkg]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnresolvedModule, pkg)
	}
	t, ok := tb.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q has no type %q", ErrUnresolvedType, pkg, name)
	}
	return t, nil
}

// Packages returns the registered package paths in registration order.
func (r *Resolver) Packages() []string {
	out := make([]string, len(r.pkgList))
	copy(out, r.pkgList)
	return out
}

// TableSource adapts a list of package tables into a short-name Source
// filtered by kind. Tables are walked in the given order, types in
// registration order, which keeps resolution deterministic for a fixed set
// of registered types.
func TableSource(name string, tables ...*Table) Source {
	return Source{
		Name: name,
		List: func(k Kind) []*Type {
			var out []*Type
			for _, tb := range tables {
				for _, t := range tb.Types() {
					if t.Kind == k {
						out = append(out, t)
					}
				}
			}
			return out
		},
	}
}

// Package registry manages named layouts: the built-in table, layouts the
// user has saved to disk, and layouts contributed by plugins. Layouts are
// addressed by id; built-in ids are reserved and neither built-in nor
// plugin layouts can be deleted.
//
// The registry stores document text only. Encoding and decoding documents
// is the layout package's business; persistence is this package's.
package registry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Sentinel errors for registry operations.
var (
	// ErrReservedName is returned when saving under a built-in id, or when
	// deleting a layout the user does not own.
	ErrReservedName = errors.New("reserved layout id")

	// ErrNotFound is returned when no layout has the requested id.
	ErrNotFound = errors.New("layout not found")

	// ErrBadID is returned for ids unusable as file names.
	ErrBadID = errors.New("invalid layout id")
)

// Origin says where a layout came from.
type Origin int

// Layout origins.
const (
	OriginBuiltin Origin = iota
	OriginUser
	OriginPlugin
)

// String returns "builtin", "user" or "plugin".
func (o Origin) String() string {
	switch o {
	case OriginUser:
		return "user"
	case OriginPlugin:
		return "plugin"
	default:
		return "builtin"
	}
}

// Layout is one named layout: an id, a display title, and the layout
// document in text form.
type Layout struct {
	ID       string
	Title    string
	Document string
	Origin   Origin
}

// Registry is the merged view over built-in, user and plugin layouts.
// It is loaded once at startup; Save and Delete keep the user directory
// and the in-memory view in step.
type Registry struct {
	dir     string
	user    map[string]Layout
	plugins []Layout
}

// fileExt is the extension for user-saved layout files. The first line of
// a file is the layout title; the rest is the document.
const fileExt = ".layout"

// Load reads the user layout directory into a new registry. A missing
// directory is not an error; it is created on first save.
func Load(dir string) (*Registry, error) {
	r := &Registry{dir: dir, user: make(map[string]Layout)}
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return r, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read layout dir: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), fileExt) {
			continue
		}
		id := strings.TrimSuffix(entry.Name(), fileExt)
		if _, ok := builtinLayout(id); ok {
			// Built-in ids are reserved; Save refuses them, so a file
			// with such a name is stray and would duplicate the List
			// entry.
			continue
		}
		l, err := readLayoutFile(filepath.Join(dir, entry.Name()), id)
		if err != nil {
			return nil, err
		}
		r.user[id] = l
	}
	return r, nil
}

func readLayoutFile(path, id string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read layout %q: %w", id, err)
	}
	title, document, _ := strings.Cut(string(data), "\n")
	return Layout{
		ID:       id,
		Title:    strings.TrimSpace(title),
		Document: strings.TrimRight(document, "\n"),
		Origin:   OriginUser,
	}, nil
}

// List returns all layouts: built-ins in table order, then user layouts
// sorted by id, then plugin layouts in registration order.
func (r *Registry) List() []Layout {
	out := make([]Layout, 0, len(builtinLayouts)+len(r.user)+len(r.plugins))
	out = append(out, builtinLayouts...)
	ids := make([]string, 0, len(r.user))
	for id := range r.user {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		out = append(out, r.user[id])
	}
	out = append(out, r.plugins...)
	return out
}

// Get returns the layout with the given id. Built-ins shadow user layouts,
// which shadow plugin layouts.
func (r *Registry) Get(id string) (Layout, error) {
	if l, ok := builtinLayout(id); ok {
		return l, nil
	}
	if l, ok := r.user[id]; ok {
		return l, nil
	}
	for _, l := range r.plugins {
		if l.ID == id {
			return l, nil
		}
	}
	return Layout{}, fmt.Errorf("%w: %q", ErrNotFound, id)
}

// Save persists a user layout. Saving under a built-in id fails with
// ErrReservedName before anything touches the disk. Saving over an
// existing user layout replaces it.
func (r *Registry) Save(id, title, document string) error {
	if err := checkID(id); err != nil {
		return err
	}
	if _, ok := builtinLayout(id); ok {
		return fmt.Errorf("save layout %q: %w", id, ErrReservedName)
	}
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("save layout %q: %w", id, err)
	}
	data := title + "\n" + document + "\n"
	if err := os.WriteFile(r.path(id), []byte(data), 0o644); err != nil {
		return fmt.Errorf("save layout %q: %w", id, err)
	}
	r.user[id] = Layout{ID: id, Title: title, Document: document, Origin: OriginUser}
	return nil
}

// Delete removes a user layout. Built-in and plugin layouts cannot be
// deleted.
func (r *Registry) Delete(id string) error {
	if _, ok := builtinLayout(id); ok {
		return fmt.Errorf("delete layout %q: %w", id, ErrReservedName)
	}
	if _, ok := r.user[id]; ok {
		if err := os.Remove(r.path(id)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("delete layout %q: %w", id, err)
		}
		delete(r.user, id)
		return nil
	}
	for _, l := range r.plugins {
		if l.ID == id {
			return fmt.Errorf("delete layout %q: %w", id, ErrReservedName)
		}
	}
	return fmt.Errorf("%w: %q", ErrNotFound, id)
}

// AddPlugin registers a plugin-provided layout. Plugin layouts cannot
// shadow built-in ids.
func (r *Registry) AddPlugin(id, title, document string) error {
	if err := checkID(id); err != nil {
		return err
	}
	if _, ok := builtinLayout(id); ok {
		return fmt.Errorf("plugin layout %q: %w", id, ErrReservedName)
	}
	for i, l := range r.plugins {
		if l.ID == id {
			r.plugins[i] = Layout{ID: id, Title: title, Document: document, Origin: OriginPlugin}
			return nil
		}
	}
	r.plugins = append(r.plugins, Layout{ID: id, Title: title, Document: document, Origin: OriginPlugin})
	return nil
}

func (r *Registry) path(id string) string {
	return filepath.Join(r.dir, id+fileExt)
}

func checkID(id string) error {
	if id == "" || strings.ContainsAny(id, `/\`) || id != strings.TrimSpace(id) {
		return fmt.Errorf("%w: %q", ErrBadID, id)
	}
	return nil
}

package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = "voxview/internal/ui.OrthoView\nvoxdock1|name=OrthoView 1;caption=Ortho View 1;state=dock;dir=centre;row=0;pos=0;prop=100|\n;;\nvoxdock1|name=centre;caption=;state=dock;dir=centre;row=0;pos=0;prop=100|"

func TestLoad_MissingDir(t *testing.T) {
	r, err := Load(filepath.Join(t.TempDir(), "nothere"))
	require.NoError(t, err)
	// Built-ins are always present.
	assert.Len(t, r.List(), len(BuiltinIDs()))
}

func TestSaveGetDelete(t *testing.T) {
	dir := t.TempDir()
	r, err := Load(dir)
	require.NoError(t, err)

	require.NoError(t, r.Save("mine", "My Layout", sampleDoc))

	got, err := r.Get("mine")
	require.NoError(t, err)
	assert.Equal(t, "My Layout", got.Title)
	assert.Equal(t, sampleDoc, got.Document)
	assert.Equal(t, OriginUser, got.Origin)

	// A fresh registry sees the file.
	r2, err := Load(dir)
	require.NoError(t, err)
	got2, err := r2.Get("mine")
	require.NoError(t, err)
	assert.Equal(t, got.Title, got2.Title)
	assert.Equal(t, got.Document, got2.Document)

	require.NoError(t, r.Delete("mine"))
	_, err = r.Get("mine")
	assert.ErrorIs(t, err, ErrNotFound)
	if _, err := os.Stat(filepath.Join(dir, "mine"+fileExt)); !os.IsNotExist(err) {
		t.Errorf("layout file still exists after delete")
	}
}

func TestSave_ReservedID(t *testing.T) {
	dir := t.TempDir()
	r, err := Load(dir)
	require.NoError(t, err)

	for _, id := range BuiltinIDs() {
		err := r.Save(id, "Shadow", sampleDoc)
		assert.ErrorIs(t, err, ErrReservedName, "id %q", id)
	}
	// No file was written.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSave_BadID(t *testing.T) {
	r, err := Load(t.TempDir())
	require.NoError(t, err)
	for _, id := range []string{"", "a/b", `a\b`, " padded "} {
		assert.ErrorIs(t, r.Save(id, "t", sampleDoc), ErrBadID, "id %q", id)
	}
}

func TestDelete_Protected(t *testing.T) {
	r, err := Load(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, r.AddPlugin("surfaces", "Surface Workbench", sampleDoc))

	assert.ErrorIs(t, r.Delete("default"), ErrReservedName)
	assert.ErrorIs(t, r.Delete("surfaces"), ErrReservedName)
	assert.ErrorIs(t, r.Delete("ghost"), ErrNotFound)
}

func TestAddPlugin(t *testing.T) {
	r, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.ErrorIs(t, r.AddPlugin("default", "Shadow", sampleDoc), ErrReservedName)
	require.NoError(t, r.AddPlugin("surfaces", "Surface Workbench", sampleDoc))
	require.NoError(t, r.AddPlugin("surfaces", "Surface Workbench v2", sampleDoc))

	got, err := r.Get("surfaces")
	require.NoError(t, err)
	assert.Equal(t, "Surface Workbench v2", got.Title)
	assert.Equal(t, OriginPlugin, got.Origin)

	// Re-registration does not duplicate the list entry.
	count := 0
	for _, l := range r.List() {
		if l.ID == "surfaces" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestList_Order(t *testing.T) {
	r, err := Load(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, r.Save("zeta", "Z", sampleDoc))
	require.NoError(t, r.Save("alpha", "A", sampleDoc))
	require.NoError(t, r.AddPlugin("plug", "P", sampleDoc))

	got := r.List()
	ids := make([]string, len(got))
	for i, l := range got {
		ids[i] = l.ID
	}
	want := append(append([]string{}, BuiltinIDs()...), "alpha", "zeta", "plug")
	assert.Equal(t, want, ids)
}

func TestGet_BuiltinShadowsUserFile(t *testing.T) {
	dir := t.TempDir()
	// A stray file using a reserved id (e.g. written by an older version)
	// must not shadow the built-in.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "default"+fileExt), []byte("Stray\ndoc\n"), 0o644))
	r, err := Load(dir)
	require.NoError(t, err)

	got, err := r.Get("default")
	require.NoError(t, err)
	assert.Equal(t, OriginBuiltin, got.Origin)

	// The stray file is skipped entirely, so List shows a single entry
	// for the id rather than built-in plus user duplicates.
	seen := 0
	for _, l := range r.List() {
		if l.ID == "default" {
			seen++
		}
	}
	assert.Equal(t, 1, seen)
}

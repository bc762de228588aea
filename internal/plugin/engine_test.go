package plugin

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voxview/internal/panel"
)

const surfacePlugin = `
voxview.register_view("SurfaceView", {
	caption   = "Surface View",
	aux       = "scene",
	props     = { "shading=flat", "wireframe=false" },
	aux_props = { "zoom=100" },
})
voxview.register_control("SurfaceListPanel", {
	caption = "Surface List",
})
voxview.register_layout("surfaces", "Surface Workbench",
	"plugins.surface.SurfaceView\nvoxdock1|name=SurfaceView 1;caption=Surface View 1;state=dock;dir=centre;row=0;pos=0;prop=100|\n;shading=flat,wireframe=false;zoom=100\nvoxdock1|name=centre;caption=;state=dock;dir=centre;row=0;pos=0;prop=100|")
`

func writePlugin(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func testLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
}

func TestLoadFile_RegistersTypes(t *testing.T) {
	dir := t.TempDir()
	path := writePlugin(t, dir, "surface.lua", surfacePlugin)

	reg := NewRegistry()
	eng := NewEngine(reg, testLogger())
	require.NoError(t, eng.LoadFile(path))

	tables := reg.Tables()
	require.Len(t, tables, 1)
	assert.Equal(t, "plugins.surface", tables[0].Pkg)

	view, ok := tables[0].Lookup("SurfaceView")
	require.True(t, ok)
	assert.Equal(t, panel.KindView, view.Kind)
	assert.Equal(t, "Surface View", view.Caption)
	assert.Equal(t, panel.AuxScene, view.Aux)
	assert.Equal(t, []string{"shading", "wireframe"}, view.PanelProps)
	assert.Equal(t, []string{"zoom"}, view.AuxProps)
	assert.Equal(t, "flat", view.Default("shading"))
	assert.Equal(t, "100", view.Default("zoom"))

	ctrl, ok := tables[0].Lookup("SurfaceListPanel")
	require.True(t, ok)
	assert.Equal(t, panel.KindControl, ctrl.Kind)
	assert.Equal(t, panel.AuxNone, ctrl.Aux)

	layouts := reg.Layouts()
	require.Len(t, layouts, 1)
	assert.Equal(t, "surfaces", layouts[0].ID)
	assert.Equal(t, "Surface Workbench", layouts[0].Title)
}

func TestLoadFile_ResolvesThroughResolver(t *testing.T) {
	dir := t.TempDir()
	path := writePlugin(t, dir, "surface.lua", surfacePlugin)

	reg := NewRegistry()
	eng := NewEngine(reg, testLogger())
	require.NoError(t, eng.LoadFile(path))

	res := panel.NewResolver()
	for _, tb := range reg.Tables() {
		res.AddPackage(tb)
	}
	res.AddSource(reg.Source())

	byShort, err := res.Resolve("SurfaceView", panel.KindView)
	require.NoError(t, err)
	byQualified, err := res.Resolve("plugins.surface.SurfaceView", panel.KindView)
	require.NoError(t, err)
	assert.Same(t, byShort, byQualified)
}

func TestLoadDir_SkipsBrokenPlugins(t *testing.T) {
	dir := t.TempDir()
	writePlugin(t, dir, "broken.lua", `voxview.register_view(`)
	writePlugin(t, dir, "good.lua", `voxview.register_control("HelperPanel", { caption = "Helper" })`)
	writePlugin(t, dir, "notes.txt", `not a plugin`)

	reg := NewRegistry()
	eng := NewEngine(reg, testLogger())
	require.NoError(t, eng.LoadDir(dir))

	require.Len(t, reg.Tables(), 1)
	_, ok := reg.Tables()[0].Lookup("HelperPanel")
	assert.True(t, ok)
}

func TestLoadDir_Missing(t *testing.T) {
	reg := NewRegistry()
	eng := NewEngine(reg, testLogger())
	require.NoError(t, eng.LoadDir(filepath.Join(t.TempDir(), "nope")))
	assert.Empty(t, reg.Tables())
}

func TestLoadFile_RuntimeError(t *testing.T) {
	dir := t.TempDir()
	path := writePlugin(t, dir, "angry.lua", `error("no thanks")`)

	eng := NewEngine(NewRegistry(), testLogger())
	assert.Error(t, eng.LoadFile(path))
}

func TestLoadFile_ChunkCache(t *testing.T) {
	dir := t.TempDir()
	path := writePlugin(t, dir, "surface.lua", surfacePlugin)

	reg := NewRegistry()
	eng := NewEngine(reg, testLogger())
	require.NoError(t, eng.LoadFile(path))
	// Second load reuses the compiled chunk and replaces, not duplicates,
	// the registrations.
	require.NoError(t, eng.LoadFile(path))
	require.Len(t, reg.Tables(), 1)
	assert.Len(t, reg.Layouts(), 1)
}

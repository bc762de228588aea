package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDir_EnvOverride(t *testing.T) {
	t.Setenv("VOXVIEW_CONFIG_DIR", "/tmp/voxtest")
	if got := Dir(); got != "/tmp/voxtest" {
		t.Errorf("Dir() = %q, want env override", got)
	}
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("VOXVIEW_CONFIG_DIR", dir)

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LayoutsDir != filepath.Join(dir, "layouts") {
		t.Errorf("LayoutsDir = %q", cfg.LayoutsDir)
	}
	if cfg.DefaultLayout != "default" {
		t.Errorf("DefaultLayout = %q", cfg.DefaultLayout)
	}
	if len(cfg.PluginDirs) != 1 || cfg.PluginDirs[0] != filepath.Join(dir, "plugins") {
		t.Errorf("PluginDirs = %v", cfg.PluginDirs)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("VOXVIEW_CONFIG_DIR", dir)

	content := `
layouts_dir = "/data/layouts"
plugin_dirs = ["/data/plugins", "/opt/vox"]
default_layout = "lightbox"
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LayoutsDir != "/data/layouts" {
		t.Errorf("LayoutsDir = %q", cfg.LayoutsDir)
	}
	if cfg.DefaultLayout != "lightbox" {
		t.Errorf("DefaultLayout = %q", cfg.DefaultLayout)
	}
	if len(cfg.PluginDirs) != 2 {
		t.Errorf("PluginDirs = %v", cfg.PluginDirs)
	}
}

func TestLoad_PartialFileKeepsOtherDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("VOXVIEW_CONFIG_DIR", dir)

	if err := os.WriteFile(filepath.Join(dir, "config.toml"),
		[]byte(`default_layout = "analysis"`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DefaultLayout != "analysis" {
		t.Errorf("DefaultLayout = %q", cfg.DefaultLayout)
	}
	if cfg.LayoutsDir != filepath.Join(dir, "layouts") {
		t.Errorf("LayoutsDir = %q, want default", cfg.LayoutsDir)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("VOXVIEW_CONFIG_DIR", dir)

	if err := os.WriteFile(filepath.Join(dir, "config.toml"),
		[]byte(`layouts_dir = [not toml`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Error("want parse error")
	}
}

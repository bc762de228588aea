// Package config loads the voxview configuration file.
//
// Configuration lives in <dir>/config.toml where <dir> is ~/.voxview, or
// $VOXVIEW_CONFIG_DIR when set. A missing file yields the defaults; a
// malformed one is an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const fileName = "config.toml"

// Config is the on-disk configuration.
type Config struct {
	// LayoutsDir is where user-saved layouts are stored.
	LayoutsDir string `toml:"layouts_dir"`
	// PluginDirs are scanned for *.lua plugins at startup.
	PluginDirs []string `toml:"plugin_dirs"`
	// DefaultLayout is applied when the app starts.
	DefaultLayout string `toml:"default_layout"`
}

// Dir returns the configuration directory: $VOXVIEW_CONFIG_DIR if set,
// otherwise ~/.voxview.
func Dir() string {
	if d := os.Getenv("VOXVIEW_CONFIG_DIR"); d != "" {
		return d
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".voxview"
	}
	return filepath.Join(home, ".voxview")
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	dir := Dir()
	return &Config{
		LayoutsDir:    filepath.Join(dir, "layouts"),
		PluginDirs:    []string{filepath.Join(dir, "plugins")},
		DefaultLayout: "default",
	}
}

// Load reads the configuration file, filling unset fields from Default.
func Load() (*Config, error) {
	return loadFile(filepath.Join(Dir(), fileName))
}

func loadFile(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var file Config
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if file.LayoutsDir != "" {
		cfg.LayoutsDir = file.LayoutsDir
	}
	if len(file.PluginDirs) > 0 {
		cfg.PluginDirs = file.PluginDirs
	}
	if file.DefaultLayout != "" {
		cfg.DefaultLayout = file.DefaultLayout
	}
	return cfg, nil
}

package cli

import (
	"fmt"

	"github.com/charmbracelet/log"

	"voxview/internal/config"
	"voxview/internal/layout"
	"voxview/internal/panel"
	"voxview/internal/plugin"
	"voxview/internal/registry"
	"voxview/internal/ui"
)

// env is the shared command environment: configuration, the layout
// registry, and a resolver covering built-in and plugin panel types.
type env struct {
	cfg     *config.Config
	reg     *registry.Registry
	res     *panel.Resolver
	codec   *layout.Codec
	plugins *plugin.Registry
	logger  *log.Logger
}

// setup loads configuration, plugins, and the layout registry. Plugin
// failures are logged and skipped; a broken plugin must not take the CLI
// down.
func setup(logger *log.Logger) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	plugins := plugin.NewRegistry()
	engine := plugin.NewEngine(plugins, logger)
	for _, dir := range cfg.PluginDirs {
		if err := engine.LoadDir(dir); err != nil {
			logger.Warn("plugin dir skipped", "dir", dir, "err", err)
		}
	}

	res := panel.NewResolver()
	builtins := ui.BuiltinTypes()
	res.AddPackage(builtins)
	for _, tb := range plugins.Tables() {
		res.AddPackage(tb)
	}
	// Short-name search order: built-ins always win over plugins.
	res.AddSource(panel.TableSource("builtin", builtins))
	res.AddSource(plugins.Source())

	reg, err := registry.Load(cfg.LayoutsDir)
	if err != nil {
		return nil, fmt.Errorf("load layouts: %w", err)
	}
	for _, l := range plugins.Layouts() {
		if err := reg.AddPlugin(l.ID, l.Title, l.Document); err != nil {
			logger.Warn("plugin layout rejected", "id", l.ID, "err", err)
		}
	}

	return &env{
		cfg:     cfg,
		reg:     reg,
		res:     res,
		codec:   layout.NewCodec(res),
		plugins: plugins,
		logger:  logger,
	}, nil
}

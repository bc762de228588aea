package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"voxview/internal/apply"
	"voxview/internal/obs"
	"voxview/internal/pty"
	"voxview/internal/ui"
)

var (
	version string // semantic version (e.g. "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version. Called by
// the main package with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the voxview CLI and returns an error if any command fails.
// With no subcommand, the TUI starts.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "voxview",
		Short:        "voxview is a terminal workspace for volumetric images",
		Long:         "voxview displays volumetric images in dockable terminal panels.\nNamed layouts capture and restore the whole workspace arrangement.",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context())
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("voxview %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newLayoutCmd())

	return root.ExecuteContext(ctx)
}

func runTUI(ctx context.Context) error {
	logger := loggerFromContext(ctx)

	e, err := setup(logger)
	if err != nil {
		return err
	}

	tracing, err := obs.Setup(ctx)
	if err != nil {
		logger.Warn("tracing disabled", "err", err)
	}
	defer tracing.Shutdown(context.Background())

	applier := apply.New(e.res, logger, tracing.Tracer())
	frame := ui.NewFrame(pty.SystemPTY{})
	app := ui.NewApp(frame, e.reg, applier, e.codec, logger, e.cfg.DefaultLayout)

	_, err = tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

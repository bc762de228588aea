package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"voxview/internal/apply"
	"voxview/internal/dock"
	"voxview/internal/ui"
)

func newLayoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Manage named workspace layouts",
	}
	cmd.AddCommand(newLayoutListCmd())
	cmd.AddCommand(newLayoutShowCmd())
	cmd.AddCommand(newLayoutSaveCmd())
	cmd.AddCommand(newLayoutDeleteCmd())
	cmd.AddCommand(newLayoutExportCmd())
	cmd.AddCommand(newLayoutImportCmd())
	cmd.AddCommand(newLayoutTmuxCmd())
	return cmd
}

func newLayoutListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available layouts",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(loggerFromContext(cmd.Context()))
			if err != nil {
				return err
			}
			for _, l := range e.reg.List() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %-8s %s\n", l.ID, l.Origin, l.Title)
			}
			return nil
		},
	}
}

func newLayoutShowCmd() *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a layout document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(loggerFromContext(cmd.Context()))
			if err != nil {
				return err
			}
			l, err := e.reg.Get(args[0])
			if err != nil {
				return err
			}
			if raw {
				fmt.Fprintln(cmd.OutOrStdout(), l.Document)
				return nil
			}
			doc, err := e.codec.Deserialize(l.Document)
			if err != nil {
				return fmt.Errorf("layout %q does not parse: %w", l.ID, err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s, %s)\n", l.ID, l.Title, l.Origin)
			for i, ref := range doc.FrameChildren {
				fmt.Fprintf(out, "  view %d: %s\n", i+1, ref)
				for _, ctrl := range doc.Blocks[i].ChildRefs {
					fmt.Fprintf(out, "    control: %s\n", ctrl)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print the raw document instead of a summary")
	return cmd
}

func newLayoutSaveCmd() *cobra.Command {
	var title string
	cmd := &cobra.Command{
		Use:   "save <id>",
		Short: "Save a layout document read from stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(loggerFromContext(cmd.Context()))
			if err != nil {
				return err
			}
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}
			return saveDocument(e, args[0], title, string(data))
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "display title (defaults to the id)")
	return cmd
}

func newLayoutDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(loggerFromContext(cmd.Context()))
			if err != nil {
				return err
			}
			return e.reg.Delete(args[0])
		},
	}
}

func newLayoutExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <id> <file>",
		Short: "Write a layout document to a file (- for stdout)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(loggerFromContext(cmd.Context()))
			if err != nil {
				return err
			}
			l, err := e.reg.Get(args[0])
			if err != nil {
				return err
			}
			if args[1] == "-" {
				fmt.Fprintln(cmd.OutOrStdout(), l.Document)
				return nil
			}
			return os.WriteFile(args[1], []byte(l.Document+"\n"), 0o644)
		},
	}
}

func newLayoutImportCmd() *cobra.Command {
	var title string
	cmd := &cobra.Command{
		Use:   "import <id> <file>",
		Short: "Import a layout document from a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(loggerFromContext(cmd.Context()))
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}
			return saveDocument(e, args[0], title, string(data))
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "display title (defaults to the id)")
	return cmd
}

// saveDocument validates and stores a document under id. Documents that do
// not deserialize are rejected; the registry never holds unparsable text.
func saveDocument(e *env, id, title, document string) error {
	if title == "" {
		title = id
	}
	document = strings.TrimRight(document, "\n")
	if _, err := e.codec.Deserialize(document); err != nil {
		return fmt.Errorf("invalid layout document: %w", err)
	}
	return e.reg.Save(id, title, document)
}

func newLayoutTmuxCmd() *cobra.Command {
	var session string
	cmd := &cobra.Command{
		Use:   "tmux <id>",
		Short: "Mirror a layout into a tmux session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			e, err := setup(logger)
			if err != nil {
				return err
			}
			l, err := e.reg.Get(args[0])
			if err != nil {
				return err
			}
			doc, err := e.codec.Deserialize(l.Document)
			if err != nil {
				return err
			}

			// Materialize the layout on a headless frame to get the
			// frame-level pane geometry.
			frame := ui.NewFrame(nil)
			applier := apply.New(e.res, logger, nil)
			if err := applier.Apply(cmd.Context(), frame, doc); err != nil {
				return err
			}
			eng := frame.Manager().(*dock.Engine)
			var panes []dock.Pane
			for _, name := range eng.PaneNames() {
				if p, ok := eng.Pane(name); ok {
					panes = append(panes, p)
				}
			}

			if err := dock.NewTmuxBridge(session).Export(panes); err != nil {
				return err
			}
			logger.Info("layout exported to tmux", "layout", l.ID, "session", session)
			return nil
		},
	}
	cmd.Flags().StringVar(&session, "session", "voxview", "tmux session name")
	return cmd
}

package dock

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/GianlucaP106/gotmux/gotmux"
)

// TmuxBridge mirrors a dock layout into a tmux session: one tmux pane per
// dock pane, split on the pane's docked edge. Inspection goes through
// gotmux; mutation shells out, since tmux's CLI is its stable API.
type TmuxBridge struct {
	Session string
}

// NewTmuxBridge targets the named tmux session.
func NewTmuxBridge(session string) *TmuxBridge {
	return &TmuxBridge{Session: session}
}

func run(args ...string) error {
	cmd := exec.Command("tmux", args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("tmux %s: %w: %s", args[0], err, strings.TrimSpace(out.String()))
	}
	return nil
}

// SessionExists reports whether the target session is alive.
func (b *TmuxBridge) SessionExists() (bool, error) {
	t, err := gotmux.DefaultTmux()
	if err != nil {
		return false, fmt.Errorf("connect tmux: %w", err)
	}
	sessions, err := t.ListSessions()
	if err != nil {
		return false, fmt.Errorf("list sessions: %w", err)
	}
	for _, s := range sessions {
		if s.Name == b.Session {
			return true, nil
		}
	}
	return false, nil
}

// PaneTitles returns the pane titles of the session's first window, in tmux
// pane order.
func (b *TmuxBridge) PaneTitles() ([]string, error) {
	cmd := exec.Command("tmux", "list-panes", "-t", b.Session, "-F", "#{pane_title}")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("tmux list-panes: %w: %s", err, strings.TrimSpace(out.String()))
	}
	var titles []string
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		if line != "" {
			titles = append(titles, line)
		}
	}
	return titles, nil
}

// Export builds the session from the given panes. An existing session with
// the same name is replaced. Docked-bottom and docked-top panes become
// vertical splits; everything else splits horizontally. Each tmux pane is
// titled with its dock pane name.
func (b *TmuxBridge) Export(panes []Pane) error {
	if len(panes) == 0 {
		return fmt.Errorf("export session %q: no panes", b.Session)
	}
	if exists, err := b.SessionExists(); err == nil && exists {
		if err := run("kill-session", "-t", b.Session); err != nil {
			return err
		}
	}
	if err := run("new-session", "-d", "-s", b.Session); err != nil {
		return err
	}
	if err := b.titlePane(0, panes[0].Name); err != nil {
		return err
	}
	for i, p := range panes[1:] {
		split := "-h"
		if p.Dir == Top || p.Dir == Bottom {
			split = "-v"
		}
		if err := run("split-window", split, "-t", b.Session+":0"); err != nil {
			return err
		}
		if err := b.titlePane(i+1, p.Name); err != nil {
			return err
		}
	}
	return run("select-layout", "-t", b.Session+":0", "tiled")
}

func (b *TmuxBridge) titlePane(index int, title string) error {
	target := fmt.Sprintf("%s:0.%d", b.Session, index)
	return run("select-pane", "-t", target, "-T", title)
}

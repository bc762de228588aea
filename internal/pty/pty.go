// Package pty wraps pseudo-terminal allocation for the embedded terminal
// panel.
package pty

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/creack/pty"
)

// Size is the terminal size in character cells.
type Size struct {
	Rows uint16
	Cols uint16
}

// Runner spawns and controls a PTY. The concrete implementation is injected
// so tests can substitute a fake.
type Runner interface {
	Start(ctx context.Context, cmd *exec.Cmd, size Size) (io.ReadWriteCloser, error)
	Resize(rwc io.ReadWriteCloser, size Size) error
}

// SystemPTY implements Runner on github.com/creack/pty.
type SystemPTY struct{}

var _ Runner = (*SystemPTY)(nil)

// Start spawns cmd in a fresh PTY with the given size. A sane TERM is set
// when the environment lacks one, so curses programs inside the terminal
// panel behave. Cancelling ctx kills the child and hangs up the PTY.
func (SystemPTY) Start(ctx context.Context, cmd *exec.Cmd, size Size) (io.ReadWriteCloser, error) {
	if cmd.Env == nil {
		cmd.Env = os.Environ()
	}
	if !hasEnv(cmd.Env, "TERM") {
		cmd.Env = append(cmd.Env, "TERM=xterm-256color")
	}
	f, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: size.Rows, Cols: size.Cols})
	if err != nil {
		return nil, err
	}
	if done := ctx.Done(); done != nil {
		go func() {
			<-done
			if cmd.Process != nil {
				_ = cmd.Process.Kill()
			}
			_ = f.Close()
		}()
	}
	return f, nil
}

// Resize changes the PTY size. rwc must be the *os.File returned by Start;
// anything else is a no-op.
func (SystemPTY) Resize(rwc io.ReadWriteCloser, size Size) error {
	f, ok := rwc.(*os.File)
	if !ok {
		return nil
	}
	return pty.Setsize(f, &pty.Winsize{Rows: size.Rows, Cols: size.Cols})
}

func hasEnv(env []string, key string) bool {
	prefix := key + "="
	for _, e := range env {
		if len(e) >= len(prefix) && e[:len(prefix)] == prefix {
			return true
		}
	}
	return false
}

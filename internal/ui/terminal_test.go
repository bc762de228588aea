package ui

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"testing"

	"voxview/internal/pty"
)

// recordingRunner captures the context passed to Start and refuses to
// spawn, keeping the test free of real PTYs.
type recordingRunner struct {
	ctx context.Context
}

func (r *recordingRunner) Start(ctx context.Context, cmd *exec.Cmd, size pty.Size) (io.ReadWriteCloser, error) {
	r.ctx = ctx
	return nil, errors.New("no pty in tests")
}

func (r *recordingRunner) Resize(rwc io.ReadWriteCloser, size pty.Size) error { return nil }

func TestTerminalBody_StartReceivesContext(t *testing.T) {
	runner := &recordingRunner{}
	body := newTerminalBody(runner)

	if cmd := body.Init(); cmd != nil {
		t.Fatal("no output command expected when the spawn fails")
	}
	if runner.ctx == nil {
		t.Fatal("Start must receive a context the runner can use for teardown")
	}
}

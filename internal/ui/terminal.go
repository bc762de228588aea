package ui

import (
	"bytes"
	"context"
	"io"
	"os/exec"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"voxview/internal/pty"
)

// TerminalOutputMsg carries bytes read from the PTY for display.
type TerminalOutputMsg struct {
	Data []byte
}

// terminalBody is a PTY-backed shell embedded in a TerminalPanel. Output is
// displayed in a viewport; key input is passed through while the panel has
// focus.
type terminalBody struct {
	runner   pty.Runner
	ptmx     io.ReadWriteCloser
	content  *bytes.Buffer
	viewport viewport.Model
	width    int
	height   int
	outputCh chan []byte
}

const defaultTerminalWidth = 80
const defaultTerminalHeight = 12

func newTerminalBody(runner pty.Runner) *terminalBody {
	return &terminalBody{
		runner:   runner,
		content:  &bytes.Buffer{},
		viewport: viewport.New(defaultTerminalWidth, defaultTerminalHeight),
		width:    defaultTerminalWidth,
		height:   defaultTerminalHeight,
		outputCh: make(chan []byte, 64),
	}
}

// Init implements View. Spawns the shell and starts reading from the PTY.
func (t *terminalBody) Init() tea.Cmd {
	shell := "sh"
	if path, err := exec.LookPath("bash"); err == nil {
		shell = path
	}
	cmd := exec.Command(shell)

	sz := pty.Size{Rows: uint16(t.height), Cols: uint16(t.width)}
	ptmx, err := t.runner.Start(context.Background(), cmd, sz)
	if err != nil {
		t.content.WriteString("failed to spawn shell: " + err.Error() + "\r\n")
		t.viewport.SetContent(t.content.String())
		return nil
	}
	t.ptmx = ptmx

	go func() {
		buf := make([]byte, 256)
		for {
			n, err := ptmx.Read(buf)
			if n > 0 {
				cp := make([]byte, n)
				copy(cp, buf[:n])
				select {
				case t.outputCh <- cp:
				default:
					// Channel full, drop rather than block the reader.
				}
			}
			if err != nil {
				close(t.outputCh)
				return
			}
		}
	}()

	return t.waitForOutput()
}

func (t *terminalBody) waitForOutput() tea.Cmd {
	return func() tea.Msg {
		data, ok := <-t.outputCh
		if !ok {
			return nil
		}
		return TerminalOutputMsg{Data: data}
	}
}

// Update implements View.
func (t *terminalBody) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case TerminalOutputMsg:
		if t.ptmx != nil {
			t.content.Write(msg.Data)
			t.viewport.SetContent(t.content.String())
			t.viewport.GotoBottom()
		}
		return t, t.waitForOutput()
	case tea.KeyMsg:
		if t.ptmx != nil {
			if b := keyToPTYBytes(msg); len(b) > 0 {
				t.ptmx.Write(b)
			}
		}
		return t, t.waitForOutput()
	case tea.WindowSizeMsg:
		t.width = msg.Width
		t.height = msg.Height
		t.viewport.Width = msg.Width
		t.viewport.Height = msg.Height
		if t.ptmx != nil && t.runner != nil {
			t.runner.Resize(t.ptmx, pty.Size{Rows: uint16(msg.Height), Cols: uint16(msg.Width)})
		}
		t.viewport.SetContent(t.content.String())
		return t, t.waitForOutput()
	}

	var cmd tea.Cmd
	t.viewport, cmd = t.viewport.Update(msg)
	return t, tea.Batch(cmd, t.waitForOutput())
}

// View implements View.
func (t *terminalBody) View() string {
	return t.viewport.View()
}

// Close releases the PTY. Call when the hosting pane is removed.
func (t *terminalBody) Close() error {
	if t.ptmx != nil {
		if c, ok := t.ptmx.(io.Closer); ok {
			return c.Close()
		}
	}
	return nil
}

// keyToPTYBytes converts a Bubble Tea KeyMsg to the bytes the PTY expects.
func keyToPTYBytes(msg tea.KeyMsg) []byte {
	switch msg.Type {
	case tea.KeyEnter:
		return []byte{'\r'}
	case tea.KeyBackspace:
		return []byte{0x7f}
	case tea.KeyTab:
		return []byte{'\t'}
	case tea.KeySpace:
		return []byte{' '}
	case tea.KeyUp:
		return []byte{0x1b, '[', 'A'}
	case tea.KeyDown:
		return []byte{0x1b, '[', 'B'}
	case tea.KeyRight:
		return []byte{0x1b, '[', 'C'}
	case tea.KeyLeft:
		return []byte{0x1b, '[', 'D'}
	case tea.KeyCtrlC:
		return []byte{0x03}
	case tea.KeyCtrlD:
		return []byte{0x04}
	case tea.KeyEsc:
		return []byte{0x1b}
	case tea.KeyRunes:
		return []byte(string(msg.Runes))
	default:
		if len(msg.Runes) > 0 {
			return []byte(string(msg.Runes))
		}
		return nil
	}
}

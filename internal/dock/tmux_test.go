package dock

import (
	"os"
	"testing"
)

func TestTmuxBridge_Export(t *testing.T) {
	if os.Getenv("TMUX") == "" {
		t.Skip("Skipping tmux test: not running inside tmux")
	}
	b := NewTmuxBridge("voxview-test-export")
	defer run("kill-session", "-t", b.Session)

	panes := []Pane{
		{Name: "OrthoView 1", Dir: Centre},
		{Name: "TimeSeriesView 2", Dir: Bottom},
		{Name: "OverlayListPanel", Dir: Left},
	}
	if err := b.Export(panes); err != nil {
		t.Fatalf("Export: %v", err)
	}

	exists, err := b.SessionExists()
	if err != nil {
		t.Fatalf("SessionExists: %v", err)
	}
	if !exists {
		t.Fatal("session missing after export")
	}

	titles, err := b.PaneTitles()
	if err != nil {
		t.Fatalf("PaneTitles: %v", err)
	}
	if len(titles) != len(panes) {
		t.Fatalf("got %d tmux panes, want %d", len(titles), len(panes))
	}
	if titles[0] != "OrthoView 1" {
		t.Errorf("first pane title = %q", titles[0])
	}
}

func TestTmuxBridge_ExportEmpty(t *testing.T) {
	b := NewTmuxBridge("voxview-test-empty")
	if err := b.Export(nil); err == nil {
		t.Error("want error for empty pane list")
	}
}

func TestTmuxBridge_ReplacesExistingSession(t *testing.T) {
	if os.Getenv("TMUX") == "" {
		t.Skip("Skipping tmux test: not running inside tmux")
	}
	b := NewTmuxBridge("voxview-test-replace")
	defer run("kill-session", "-t", b.Session)

	panes := []Pane{{Name: "OrthoView 1", Dir: Centre}}
	if err := b.Export(panes); err != nil {
		t.Fatalf("first export: %v", err)
	}
	if err := b.Export(panes); err != nil {
		t.Fatalf("second export: %v", err)
	}
	titles, err := b.PaneTitles()
	if err != nil {
		t.Fatal(err)
	}
	if len(titles) != 1 {
		t.Errorf("got %d panes after re-export, want 1", len(titles))
	}
}

package dock

import (
	"errors"
	"strings"
	"testing"
)

func TestEngine_SavePerspective(t *testing.T) {
	e := NewEngine()
	if err := e.AddPane(Pane{Name: "OrthoView 1", Caption: "Ortho View 1"}); err != nil {
		t.Fatalf("AddPane: %v", err)
	}
	if err := e.AddPane(Pane{Name: "TimeSeriesView 2", Caption: "Time Series View 2", Dir: Bottom}); err != nil {
		t.Fatalf("AddPane: %v", err)
	}
	e.SetDockSize(Bottom, 0, 12)

	got := e.SavePerspective()
	want := VersionTag +
		"|dock_size(bottom,0)=12" +
		"|name=OrthoView 1;caption=Ortho View 1;state=dock;dir=centre;row=0;pos=0;prop=100" +
		"|name=TimeSeriesView 2;caption=Time Series View 2;state=dock;dir=bottom;row=0;pos=0;prop=100|"
	if got != want {
		t.Errorf("SavePerspective:\n got  %q\n want %q", got, want)
	}
}

func TestEngine_AddPaneDuplicate(t *testing.T) {
	e := NewEngine()
	if err := e.AddPane(Pane{Name: "centre"}); err != nil {
		t.Fatalf("AddPane: %v", err)
	}
	if err := e.AddPane(Pane{Name: "centre"}); !errors.Is(err, ErrPaneExists) {
		t.Errorf("duplicate add: got %v, want ErrPaneExists", err)
	}
}

func TestEngine_SavePaneInfo(t *testing.T) {
	e := NewEngine()
	if err := e.AddPane(Pane{Name: "LocationPanel", Caption: "Location", Dir: Bottom, Pos: 1}); err != nil {
		t.Fatalf("AddPane: %v", err)
	}
	info, err := e.SavePaneInfo("LocationPanel")
	if err != nil {
		t.Fatalf("SavePaneInfo: %v", err)
	}
	want := "name=LocationPanel;caption=Location;state=dock;dir=bottom;row=0;pos=1;prop=100"
	if info != want {
		t.Errorf("SavePaneInfo = %q, want %q", info, want)
	}
	if _, err := e.SavePaneInfo("nope"); !errors.Is(err, ErrPaneUnknown) {
		t.Errorf("unknown pane: got %v, want ErrPaneUnknown", err)
	}
}

func TestEngine_LoadPerspective(t *testing.T) {
	e := NewEngine()
	for _, name := range []string{"OrthoView 1", "TimeSeriesView 2"} {
		if err := e.AddPane(Pane{Name: name}); err != nil {
			t.Fatalf("AddPane: %v", err)
		}
	}

	perspective := VersionTag +
		"|dock_size(right,0)=30" +
		"|name=TimeSeriesView 2;caption=Time Series;state=dock;dir=bottom;row=0;pos=0;prop=40" +
		"|name=OrthoView 1;caption=Ortho;state=float;dir=centre;row=0;pos=0;prop=100" +
		"|name=GhostPanel;caption=;state=dock;dir=left;row=0;pos=0;prop=100|"
	if err := e.LoadPerspective(perspective); err != nil {
		t.Fatalf("LoadPerspective: %v", err)
	}

	ortho, ok := e.Pane("OrthoView 1")
	if !ok || !ortho.Float {
		t.Errorf("OrthoView 1 = %+v, want floating", ortho)
	}
	ts, _ := e.Pane("TimeSeriesView 2")
	if ts.Dir != Bottom || ts.Prop != 40 {
		t.Errorf("TimeSeriesView 2 = %+v, want bottom/40", ts)
	}
	// GhostPanel is not managed here and must not appear.
	if _, ok := e.Pane("GhostPanel"); ok {
		t.Error("LoadPerspective created a pane for an unknown section")
	}
	// Creation order survives geometry updates.
	if names := e.PaneNames(); names[0] != "OrthoView 1" {
		t.Errorf("PaneNames = %v, want creation order", names)
	}
}

func TestEngine_LoadPerspectiveErrors(t *testing.T) {
	tests := []struct {
		name        string
		perspective string
	}{
		{"empty", ""},
		{"wrong tag", "aui2|name=x;caption=;state=dock;dir=centre;row=0;pos=0;prop=100|"},
		{"bad pane field", VersionTag + "|name=x;caption=;state=dock;dir=centre;row=zero;pos=0;prop=100|"},
		{"bare global", VersionTag + "|justakey|"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine()
			if err := e.AddPane(Pane{Name: "x"}); err != nil {
				t.Fatalf("AddPane: %v", err)
			}
			if err := e.LoadPerspective(tt.perspective); !errors.Is(err, ErrBadPerspective) {
				t.Errorf("got %v, want ErrBadPerspective", err)
			}
		})
	}
}

func TestEngine_RoundTrip(t *testing.T) {
	e := NewEngine()
	if err := e.AddPane(Pane{Name: "centre", Caption: ""}); err != nil {
		t.Fatalf("AddPane: %v", err)
	}
	if err := e.AddPane(Pane{Name: "OverlayListPanel", Caption: "Overlay List", Dir: Left}); err != nil {
		t.Fatalf("AddPane: %v", err)
	}
	e.SetDockSize(Left, 0, 24)

	saved := e.SavePerspective()

	other := NewEngine()
	for _, name := range []string{"centre", "OverlayListPanel"} {
		if err := other.AddPane(Pane{Name: name}); err != nil {
			t.Fatalf("AddPane: %v", err)
		}
	}
	if err := other.LoadPerspective(saved); err != nil {
		t.Fatalf("LoadPerspective: %v", err)
	}
	if other.SavePerspective() != saved {
		t.Errorf("round trip changed the perspective:\n got  %q\n want %q", other.SavePerspective(), saved)
	}
}

func TestSplitSections(t *testing.T) {
	got := SplitSections("a| b |||c|")
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("SplitSections = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("section %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestIsPaneSection(t *testing.T) {
	if IsPaneSection("dock_size(left,0)=24") {
		t.Error("global key classified as pane section")
	}
	if !IsPaneSection("name=centre;caption=;state=dock") {
		t.Error("pane section not recognized")
	}
	if IsPaneSection(strings.TrimSpace(VersionTag)) {
		t.Error("version tag classified as pane section")
	}
}

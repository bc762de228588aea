package ui

import "testing"

func TestSceneOpts_RoundTrip(t *testing.T) {
	scene, err := NewSceneOpts(mustType(t, "LightboxView"))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		value string
	}{
		{"zoom", "130"},
		{"sliceSpacing", "2.5"},
		{"zrange", "0.25:0.75"},
	}
	for _, tt := range tests {
		if err := scene.DeserializeProperty(tt.name, tt.value); err != nil {
			t.Fatalf("set %s: %v", tt.name, err)
		}
		got, err := scene.SerializeProperty(tt.name)
		if err != nil {
			t.Fatalf("get %s: %v", tt.name, err)
		}
		if got != tt.value {
			t.Errorf("%s = %q, want %q", tt.name, got, tt.value)
		}
	}
}

func TestSceneOpts_BadValues(t *testing.T) {
	scene, err := NewSceneOpts(mustType(t, "OrthoView"))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		value string
	}{
		{"zoom", "lots"},
		{"showXCanvas", "maybe"},
		{"zrange", "0.5"},
		{"nope", "1"},
	}
	for _, tt := range tests {
		if err := scene.DeserializeProperty(tt.name, tt.value); err == nil {
			t.Errorf("set %s=%q: want error", tt.name, tt.value)
		}
	}
}

// Changing the layout mode re-fits the scene, which resets any manual zoom.
func TestViewPanel_LayoutChangeResetsZoom(t *testing.T) {
	vp, err := newViewPanel(mustType(t, "OrthoView"), "OrthoView 1", nil)
	if err != nil {
		t.Fatal(err)
	}

	if err := vp.aux.DeserializeProperty("zoom", "250"); err != nil {
		t.Fatal(err)
	}
	if vp.scene.Zoom != 250 {
		t.Fatalf("zoom = %d, want 250", vp.scene.Zoom)
	}

	if err := vp.props.DeserializeProperty("layout", "horizontal"); err != nil {
		t.Fatal(err)
	}
	if vp.scene.Zoom != 100 {
		t.Errorf("zoom after layout change = %d, want default 100", vp.scene.Zoom)
	}

	// Other panel properties leave the zoom alone.
	if err := vp.aux.DeserializeProperty("zoom", "250"); err != nil {
		t.Fatal(err)
	}
	if err := vp.props.DeserializeProperty("showCursor", "false"); err != nil {
		t.Fatal(err)
	}
	if vp.scene.Zoom != 250 {
		t.Errorf("zoom after showCursor change = %d, want 250", vp.scene.Zoom)
	}
}

func TestCanvasOpts_Defaults(t *testing.T) {
	canvas, err := NewCanvasOpts(mustType(t, "HistogramView"))
	if err != nil {
		t.Fatal(err)
	}
	if canvas.XLabel != "Intensity" || canvas.YLabel != "Count" {
		t.Errorf("labels = %q/%q, want Intensity/Count", canvas.XLabel, canvas.YLabel)
	}
	if canvas.Legend {
		t.Error("legend should default off for histograms")
	}
}

func TestPropBag_RejectsUnknown(t *testing.T) {
	bag := NewPropBag(mustType(t, "TimeSeriesView"), []string{"usePixdim", "plotMode"})
	if err := bag.DeserializeProperty("bogus", "1"); err == nil {
		t.Error("want error for unknown property")
	}
	if _, err := bag.SerializeProperty("bogus"); err == nil {
		t.Error("want error for unknown property")
	}
	if got := bag.Get("plotMode"); got != "normal" {
		t.Errorf("plotMode default = %q, want normal", got)
	}
}

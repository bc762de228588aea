package ui

import "voxview/internal/panel"

// PackagePath is the registration namespace for the built-in panel kinds.
// Serialized layouts refer to these types as "voxview/internal/ui.<Name>".
const PackagePath = "voxview/internal/ui"

// BuiltinTypes returns the registration table of built-in panel kinds.
//
// The PanelProps/AuxProps lists are the serialization order for layout
// documents. Saved layouts depend on them; extend at the end, never reorder.
func BuiltinTypes() *panel.Table {
	tb := panel.NewTable(PackagePath)

	tb.Register(&panel.Type{
		Name:       "OrthoView",
		Caption:    "Ortho View",
		Kind:       panel.KindView,
		Aux:        panel.AuxScene,
		PanelProps: []string{"displaySpace", "layout", "showCursor", "showLabels"},
		AuxProps:   []string{"zoom", "showXCanvas", "showYCanvas", "showZCanvas"},
		Defaults: map[string]string{
			"displaySpace": "world",
			"layout":       "grid",
			"showCursor":   "true",
			"showLabels":   "true",
			"zoom":         "100",
			"showXCanvas":  "true",
			"showYCanvas":  "true",
			"showZCanvas":  "true",
		},
	})

	tb.Register(&panel.Type{
		Name:       "LightboxView",
		Caption:    "Lightbox View",
		Kind:       panel.KindView,
		Aux:        panel.AuxScene,
		PanelProps: []string{"showCursor", "highlightSlice"},
		AuxProps:   []string{"zoom", "sliceSpacing", "zrange"},
		Defaults: map[string]string{
			"showCursor":     "true",
			"highlightSlice": "false",
			"zoom":           "75",
			"sliceSpacing":   "2",
			"zrange":         "0:1",
		},
	})

	tb.Register(&panel.Type{
		Name:       "TimeSeriesView",
		Caption:    "Time Series View",
		Kind:       panel.KindView,
		Aux:        panel.AuxCanvas,
		PanelProps: []string{"usePixdim", "plotMode"},
		AuxProps:   []string{"xlabel", "ylabel", "legend"},
		Defaults: map[string]string{
			"usePixdim": "false",
			"plotMode":  "normal",
			"xlabel":    "Volume",
			"ylabel":    "Intensity",
			"legend":    "true",
		},
	})

	tb.Register(&panel.Type{
		Name:       "HistogramView",
		Caption:    "Histogram View",
		Kind:       panel.KindView,
		Aux:        panel.AuxCanvas,
		PanelProps: []string{"histType", "autoBin"},
		AuxProps:   []string{"xlabel", "ylabel", "legend"},
		Defaults: map[string]string{
			"histType": "probability",
			"autoBin":  "true",
			"xlabel":   "Intensity",
			"ylabel":   "Count",
			"legend":   "false",
		},
	})

	tb.Register(&panel.Type{
		Name:    "OverlayListPanel",
		Caption: "Overlay List",
		Kind:    panel.KindControl,
	})
	tb.Register(&panel.Type{
		Name:    "LocationPanel",
		Caption: "Location",
		Kind:    panel.KindControl,
	})
	tb.Register(&panel.Type{
		Name:    "LookupTablePanel",
		Caption: "Lookup Table",
		Kind:    panel.KindControl,
	})
	tb.Register(&panel.Type{
		Name:    "TerminalPanel",
		Caption: "Terminal",
		Kind:    panel.KindControl,
	})

	return tb
}

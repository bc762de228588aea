package registry

// builtinLayouts is the fixed built-in layout table. Ids here are reserved:
// Save rejects them and Delete refuses to touch them. Document text uses
// qualified type references only.
var builtinLayouts = []Layout{
	{
		ID:     "default",
		Title:  "Default",
		Origin: OriginBuiltin,
		Document: "voxview/internal/ui.OrthoView\n" +
			"voxdock1|name=OrthoView 1;caption=Ortho View 1;state=dock;dir=centre;row=0;pos=0;prop=100|\n" +
			"voxview/internal/ui.OverlayListPanel,voxview/internal/ui.LocationPanel;" +
			"displaySpace=world,layout=grid,showCursor=true,showLabels=true;" +
			"zoom=100,showXCanvas=true,showYCanvas=true,showZCanvas=true\n" +
			"voxdock1|dock_size(bottom,0)=8" +
			"|name=centre;caption=;state=dock;dir=centre;row=0;pos=0;prop=100" +
			"|name=OverlayListPanel;caption=Overlay List;state=dock;dir=left;row=0;pos=0;prop=100" +
			"|name=LocationPanel;caption=Location;state=dock;dir=bottom;row=0;pos=0;prop=100|",
	},
	{
		ID:     "lightbox",
		Title:  "Lightbox",
		Origin: OriginBuiltin,
		Document: "voxview/internal/ui.LightboxView\n" +
			"voxdock1|name=LightboxView 1;caption=Lightbox View 1;state=dock;dir=centre;row=0;pos=0;prop=100|\n" +
			"voxview/internal/ui.OverlayListPanel,voxview/internal/ui.LookupTablePanel;" +
			"showCursor=true,highlightSlice=false;" +
			"zoom=75,sliceSpacing=2,zrange=0:1\n" +
			"voxdock1" +
			"|name=centre;caption=;state=dock;dir=centre;row=0;pos=0;prop=100" +
			"|name=OverlayListPanel;caption=Overlay List;state=dock;dir=left;row=0;pos=0;prop=100" +
			"|name=LookupTablePanel;caption=Lookup Table;state=dock;dir=left;row=0;pos=1;prop=100|",
	},
	{
		ID:     "analysis",
		Title:  "Analysis",
		Origin: OriginBuiltin,
		Document: "voxview/internal/ui.OrthoView,voxview/internal/ui.TimeSeriesView,voxview/internal/ui.HistogramView\n" +
			"voxdock1|dock_size(bottom,0)=14" +
			"|name=OrthoView 1;caption=Ortho View 1;state=dock;dir=centre;row=0;pos=0;prop=100" +
			"|name=TimeSeriesView 2;caption=Time Series View 2;state=dock;dir=bottom;row=0;pos=0;prop=100" +
			"|name=HistogramView 3;caption=Histogram View 3;state=dock;dir=bottom;row=0;pos=1;prop=100|\n" +
			"voxview/internal/ui.OverlayListPanel,voxview/internal/ui.LocationPanel;" +
			"displaySpace=world,layout=grid,showCursor=true,showLabels=true;" +
			"zoom=100,showXCanvas=true,showYCanvas=true,showZCanvas=true\n" +
			"voxdock1" +
			"|name=centre;caption=;state=dock;dir=centre;row=0;pos=0;prop=100" +
			"|name=OverlayListPanel;caption=Overlay List;state=dock;dir=left;row=0;pos=0;prop=100" +
			"|name=LocationPanel;caption=Location;state=dock;dir=bottom;row=0;pos=0;prop=100|\n" +
			";usePixdim=false,plotMode=normal;xlabel=Volume,ylabel=Intensity,legend=true\n" +
			"voxdock1|name=centre;caption=;state=dock;dir=centre;row=0;pos=0;prop=100|\n" +
			";histType=probability,autoBin=true;xlabel=Intensity,ylabel=Count,legend=false\n" +
			"voxdock1|name=centre;caption=;state=dock;dir=centre;row=0;pos=0;prop=100|",
	},
}

func builtinLayout(id string) (Layout, bool) {
	for _, l := range builtinLayouts {
		if l.ID == id {
			return l, true
		}
	}
	return Layout{}, false
}

// BuiltinIDs returns the reserved built-in layout ids in table order.
func BuiltinIDs() []string {
	out := make([]string, len(builtinLayouts))
	for i, l := range builtinLayouts {
		out[i] = l.ID
	}
	return out
}

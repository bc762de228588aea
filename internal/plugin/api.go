package plugin

import (
	"strings"

	glua "github.com/yuin/gopher-lua"

	"voxview/internal/panel"
)

// registerAPI installs the voxview.* table into L, bound to one plugin's
// namespace.
//
//	voxview.register_view(name, {
//	    caption   = "Surface View",
//	    aux       = "scene",              -- "scene", "canvas" or absent
//	    props     = { "shading=flat" },   -- ordered "name=default" entries
//	    aux_props = { "zoom=100" },
//	})
//	voxview.register_control(name, { caption = "..." })
//	voxview.register_layout(id, title, document)
func (e *Engine) registerAPI(L *glua.LState, pluginName string) {
	api := L.NewTable()
	L.SetGlobal("voxview", api)

	L.SetField(api, "register_view", L.NewFunction(func(L *glua.LState) int {
		name := L.CheckString(1)
		spec := L.CheckTable(2)
		t := typeFromSpec(L, name, spec, panel.KindView)
		e.reg.table(pluginName).Register(t)
		return 0
	}))

	L.SetField(api, "register_control", L.NewFunction(func(L *glua.LState) int {
		name := L.CheckString(1)
		spec := L.CheckTable(2)
		t := typeFromSpec(L, name, spec, panel.KindControl)
		e.reg.table(pluginName).Register(t)
		return 0
	}))

	L.SetField(api, "register_layout", L.NewFunction(func(L *glua.LState) int {
		e.reg.addLayout(Layout{
			ID:       L.CheckString(1),
			Title:    L.CheckString(2),
			Document: L.CheckString(3),
		})
		return 0
	}))
}

func typeFromSpec(L *glua.LState, name string, spec *glua.LTable, k panel.Kind) *panel.Type {
	t := &panel.Type{
		Name:     name,
		Caption:  name,
		Kind:     k,
		Defaults: make(map[string]string),
	}
	if caption, ok := L.GetField(spec, "caption").(glua.LString); ok {
		t.Caption = string(caption)
	}
	switch L.GetField(spec, "aux") {
	case glua.LString("scene"):
		t.Aux = panel.AuxScene
	case glua.LString("canvas"):
		t.Aux = panel.AuxCanvas
	}
	t.PanelProps = propEntries(L, spec, "props", t.Defaults)
	t.AuxProps = propEntries(L, spec, "aux_props", t.Defaults)
	return t
}

// propEntries reads an ordered array of "name=default" strings from the
// spec table, recording defaults and returning the names in array order.
func propEntries(L *glua.LState, spec *glua.LTable, field string, defaults map[string]string) []string {
	arr, ok := L.GetField(spec, field).(*glua.LTable)
	if !ok {
		return nil
	}
	var names []string
	arr.ForEach(func(_, v glua.LValue) {
		entry, ok := v.(glua.LString)
		if !ok {
			return
		}
		name, def, _ := strings.Cut(string(entry), "=")
		name = strings.TrimSpace(name)
		if name == "" {
			return
		}
		names = append(names, name)
		defaults[name] = def
	})
	return names
}

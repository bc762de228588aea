// Package ui is the terminal front end: the main frame, its dockable view
// and control panels, and the Bubble Tea app model that ties them to the
// layout codec and registry.
//
// Core pieces:
//   - Frame: the top-level pane host; implements layout.Frame
//   - ViewPanel: a content panel (ortho, lightbox, time series, histogram)
//   - ControlPanel: a secondary panel docked inside a view panel
//   - KeybindRegistry / KeyHandler: leader-key (SPC) dispatch
//   - App: the root Bubble Tea model
//
// Panel kinds are registered in BuiltinTypes; the serialized property lists
// declared there are load-bearing for layout round-trips and must not be
// reordered.
package ui

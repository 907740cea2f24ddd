// Package tui provides immediate-mode drawing primitives over a terminal
// cell buffer.
//
// Core abstraction is Region, representing a rectangular area within a cell
// buffer. All drawing operations are relative to region bounds with
// automatic clipping.
//
// Design principles:
//   - Immediate mode: no retained widget state, app owns the render loop
//   - Zero allocation in hot paths: Region is a small value type
//   - Composable: regions nest via Sub(), widgets draw into any region
//
// Usage pattern:
//
//	cells := make([]terminal.Cell, w*h)
//	root := tui.NewRegion(cells, w, 0, 0, w, h)
//
//	tui.NewWaveform(cpuHistory, memHistory).
//		Border(tui.LineSingle, terminal.Gray).
//		TopStyle(tui.NewStyle(terminal.Green)).
//		BottomStyle(tui.NewStyle(terminal.Blue)).
//		Fade(true).
//		Render(root)
//
//	session.Flush(cells, w, h)
package tui

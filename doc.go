// Package kidpaint implements the drawing core of the KidBox paint app:
// a raster canvas, a stroke engine for a small fixed set of tools, a
// bounded undo stack, and the session glue that ties them to autosave
// and archive storage.
//
// # Overview
//
// The package is built around a single owned Session value. The host
// shell (launcher, window toolkit, test harness) feeds it pointer
// events and periodic ticks; the session mutates the canvas, records
// undo snapshots, and persists through an archive.Store.
//
//	store, _ := archive.Open(paintDir)
//	s := kidpaint.NewSession(1280, 800, store)
//
//	s.SetTool(kidpaint.ToolRound)
//	s.PointerDown(50, 50)
//	s.PointerUp(50, 50)
//	s.Undo()
//
//	s.Tick()  // autosave when the interval has elapsed
//	s.Flush() // synchronous save before yielding to the launcher
//
// # Design
//
// Everything runs on one goroutine: input handling, rasterization,
// undo snapshots, and autosave all interleave on the host's event
// loop, so the canvas is never read in a torn state. No method here
// blocks on anything but the single atomic file write at save time.
//
// Errors never reach the child. Persistence failures are logged (see
// [SetLogger]) and retried on the next tick; in the worst case the
// app degrades to "drawing works, nothing persists".
package kidpaint

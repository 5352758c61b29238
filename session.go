package kidpaint

import (
	"image"
	"image/color"
	"time"

	xdraw "golang.org/x/image/draw"

	"github.com/kidbox/kidpaint/archive"
)

// Session owns the live paint state: the one canvas, the undo stack,
// the stroke engine, and the persistence cadence. It is a single value
// passed explicitly through the host's event-handling path; there is
// no process-wide state beyond the logger.
//
// All methods must be called from the host's event-loop goroutine.
// The canvas is never snapshotted mid-stroke because strokes and
// autosave interleave on that one goroutine in strict sequence.
type Session struct {
	canvas *Canvas
	undo   *UndoStack
	engine *Engine
	store  *archive.Store

	autosaveEvery time.Duration
	lastAutosave  time.Time
	now           func() time.Time
}

// DefaultAutosaveInterval is the autosave cadence when none is configured.
const DefaultAutosaveInterval = 10 * time.Second

// NewSession creates a session with a blank canvas of the given
// dimensions. The store may be nil, in which case drawing works and
// nothing persists (the degraded mode for an unwritable data root).
func NewSession(width, height int, store *archive.Store, opts ...SessionOption) *Session {
	s := &Session{
		canvas:        NewCanvas(width, height),
		store:         store,
		autosaveEvery: DefaultAutosaveInterval,
		now:           time.Now,
	}
	o := sessionOptions{undoDepth: DefaultUndoDepth}
	for _, opt := range opts {
		opt(&o)
	}
	if o.clock != nil {
		s.now = o.clock
	}
	if o.autosaveEvery > 0 {
		s.autosaveEvery = o.autosaveEvery
	}
	s.undo = NewUndoStack(o.undoDepth)
	sizes := BrushSizes(width, height)
	s.engine = NewEngine(sizes[0], Black)
	s.lastAutosave = s.now()
	return s
}

// Canvas returns the live canvas. Callers must not retain it across a
// New or a recall load, both of which replace its contents wholesale.
func (s *Session) Canvas() *Canvas {
	return s.canvas
}

// UndoSize returns the number of strokes currently undoable.
func (s *Session) UndoSize() int {
	return s.undo.Len()
}

// SetTool selects the active tool for subsequent strokes.
func (s *Session) SetTool(t Tool) { s.engine.SetTool(t) }

// Tool returns the active tool.
func (s *Session) Tool() Tool { return s.engine.Tool() }

// SetBrushSize selects the brush diameter for subsequent strokes.
func (s *Session) SetBrushSize(size int) { s.engine.SetSize(size) }

// BrushSize returns the brush diameter.
func (s *Session) BrushSize() int { return s.engine.Size() }

// SetColor selects the draw color for subsequent strokes.
func (s *Session) SetColor(c color.Color) {
	s.engine.SetColor(FromColor(c))
}

// PointerDown begins a stroke. The pre-stroke canvas is snapshotted
// onto the undo stack exactly once, here, regardless of how many
// samples follow.
func (s *Session) PointerDown(x, y float64) {
	if s.engine.Active() {
		return
	}
	s.undo.Push(s.canvas)
	s.engine.Down(s.canvas, Sample{Point: Pt(x, y), Time: s.now()})
}

// PointerMove extends the stroke in progress, if any.
func (s *Session) PointerMove(x, y float64) {
	s.engine.Move(s.canvas, Sample{Point: Pt(x, y), Time: s.now()})
}

// PointerUp commits the stroke in progress, if any.
func (s *Session) PointerUp(x, y float64) {
	stroke, ok := s.engine.Up(s.canvas, Sample{Point: Pt(x, y), Time: s.now()})
	if ok {
		Logger().Debug("committed stroke",
			"id", stroke.ID,
			"tool", stroke.Tool.String(),
			"samples", len(stroke.Samples))
	}
}

// Undo reverts the most recent committed stroke. With nothing to undo
// it does nothing: no error, no visual change. Ignored mid-stroke; the
// undo control is unreachable while the pointer is down on the canvas.
func (s *Session) Undo() {
	if s.engine.Active() {
		return
	}
	if snap, ok := s.undo.Pop(); ok {
		s.canvas = snap
	}
}

// New archives the current canvas, then blanks it, resets the undo
// stack, and immediately autosaves the blank canvas. The archive write
// happens before the clear so a child's drawing is never lost; if the
// archive write fails, the clear is skipped and retried on the next
// tap rather than discarding unsaved work.
func (s *Session) New() {
	if s.engine.Active() {
		return
	}
	if s.store != nil {
		if _, err := s.store.Archive(s.canvas.ToImage()); err != nil {
			Logger().Warn("archive failed, keeping canvas", "error", err)
			return
		}
	}
	s.canvas.Clear()
	s.undo.Reset()
	s.autosave()
}

// Tick drives the autosave interval. The host calls it from its event
// loop; the write fires only when the interval has elapsed and no
// stroke is in progress. A failed write stays due, so the next tick
// retries it.
func (s *Session) Tick() {
	if s.engine.Active() {
		return
	}
	now := s.now()
	if now.Sub(s.lastAutosave) < s.autosaveEvery {
		return
	}
	if s.autosave() {
		s.lastAutosave = now
	}
}

// Flush autosaves synchronously regardless of the interval. The host
// calls it on Home/Escape before yielding control to the launcher, and
// once more before a clean process exit.
func (s *Session) Flush() {
	if s.autosave() {
		s.lastAutosave = s.now()
	}
}

// autosave writes the canvas to the latest slot, swallowing failures
// per the no-child-facing-errors rule. Reports whether the write
// landed.
func (s *Session) autosave() bool {
	if s.store == nil {
		return false
	}
	if err := s.store.WriteLatest(s.canvas.ToImage()); err != nil {
		Logger().Warn("autosave failed, will retry", "error", err)
		return false
	}
	return true
}

// LiveImage returns a snapshot of the live canvas for the recall
// overlay's first entry.
func (s *Session) LiveImage() image.Image {
	return s.canvas.Clone()
}

// Restore replaces the canvas with img, scaled to the canvas size if
// needed, resets the undo stack (a recalled image has no stroke
// history), and rewrites the latest slot so the restored image becomes
// the new autosave baseline.
func (s *Session) Restore(img image.Image) {
	b := img.Bounds()
	if b.Dx() == s.canvas.Width() && b.Dy() == s.canvas.Height() {
		s.canvas = FromImage(img)
	} else {
		dst := image.NewNRGBA(image.Rect(0, 0, s.canvas.Width(), s.canvas.Height()))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
		s.canvas = FromImage(dst)
	}
	s.undo.Reset()
	if s.autosave() {
		s.lastAutosave = s.now()
	}
}

package kidpaint

import "time"

// SessionOption configures a Session during creation.
//
// Example:
//
//	s := kidpaint.NewSession(1280, 800, store,
//	    kidpaint.WithAutosaveInterval(5*time.Second),
//	    kidpaint.WithUndoDepth(10),
//	)
type SessionOption func(*sessionOptions)

// sessionOptions holds optional configuration for Session creation.
type sessionOptions struct {
	clock         func() time.Time
	autosaveEvery time.Duration
	undoDepth     int
}

// WithClock overrides the session's time source. The clock drives the
// autosave interval and the fountain pen's speed response. Intended
// for tests.
func WithClock(now func() time.Time) SessionOption {
	return func(o *sessionOptions) {
		o.clock = now
	}
}

// WithAutosaveInterval sets how often Tick writes the latest slot.
// Non-positive values leave the default (DefaultAutosaveInterval).
func WithAutosaveInterval(d time.Duration) SessionOption {
	return func(o *sessionOptions) {
		o.autosaveEvery = d
	}
}

// WithUndoDepth caps the undo stack. Non-positive values leave the
// default (DefaultUndoDepth).
func WithUndoDepth(n int) SessionOption {
	return func(o *sessionOptions) {
		if n > 0 {
			o.undoDepth = n
		}
	}
}

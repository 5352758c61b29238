package kidpaint

// UndoStack is a bounded history of canvas snapshots: a deque pushed
// and popped at the top like a stack, with FIFO eviction at the bottom
// when full. Each entry is the full canvas as it was immediately before
// one committed stroke. Depth is capped (default 10), so popping K
// times restores the canvas exactly K strokes back, for any K up to
// the number of strokes since the last reset.
type UndoStack struct {
	entries  []*Canvas
	capacity int
}

// DefaultUndoDepth is the undo capacity when none is configured.
const DefaultUndoDepth = 10

// NewUndoStack creates a stack holding at most capacity snapshots.
// Non-positive capacities fall back to DefaultUndoDepth.
func NewUndoStack(capacity int) *UndoStack {
	if capacity <= 0 {
		capacity = DefaultUndoDepth
	}
	return &UndoStack{
		entries:  make([]*Canvas, 0, capacity),
		capacity: capacity,
	}
}

// Push records a snapshot of the canvas, evicting the oldest entry if
// the stack is at capacity. The snapshot is an independent clone; the
// caller may keep mutating c.
func (u *UndoStack) Push(c *Canvas) {
	if len(u.entries) == u.capacity {
		copy(u.entries, u.entries[1:])
		u.entries = u.entries[:len(u.entries)-1]
	}
	u.entries = append(u.entries, c.Clone())
}

// Pop removes and returns the most recent snapshot. Returns false when
// the stack is empty: undoing with nothing to undo is a no-op, not an
// error.
func (u *UndoStack) Pop() (*Canvas, bool) {
	if len(u.entries) == 0 {
		return nil, false
	}
	n := len(u.entries) - 1
	c := u.entries[n]
	u.entries[n] = nil
	u.entries = u.entries[:n]
	return c, true
}

// Reset discards all snapshots. Invoked by New and whenever the canvas
// is replaced wholesale (a recalled image has no stroke history).
func (u *UndoStack) Reset() {
	for i := range u.entries {
		u.entries[i] = nil
	}
	u.entries = u.entries[:0]
}

// Len returns the number of stored snapshots, always in [0, Cap].
func (u *UndoStack) Len() int {
	return len(u.entries)
}

// Cap returns the maximum number of snapshots.
func (u *UndoStack) Cap() int {
	return u.capacity
}

// Package recall implements the modal overlay that lets the child
// browse archived canvases and load one back into the live session.
//
// The overlay is a two-state machine over the archive catalog. It
// never deletes or renames anything: archive records are immutable and
// accumulate until a parent removes files outside the app.
package recall

import (
	"image"

	"github.com/kidbox/kidpaint"
	"github.com/kidbox/kidpaint/archive"
)

// State is the overlay's visibility state.
type State uint8

const (
	// Closed is the resting state: the overlay shows nothing and
	// ignores selection calls.
	Closed State = iota

	// Open means the entry strip is presented over the canvas.
	Open
)

// Controller is the session surface the overlay drives. Implemented by
// *kidpaint.Session.
type Controller interface {
	// LiveImage returns a snapshot of the live canvas for the first entry.
	LiveImage() image.Image

	// Restore replaces the live canvas with a recalled image, resetting
	// stroke history and rewriting the autosave baseline.
	Restore(img image.Image)
}

// Entry is one row of the open overlay: the live canvas first, then
// archive records newest-first.
type Entry struct {
	// Live marks the first entry, the not-yet-archived live canvas.
	Live bool
	// Path locates the archive record; empty for the live entry.
	Path string
	// Name is the record's file name; empty for the live entry.
	Name string
	// Thumb is the entry's scaled preview image.
	Thumb image.Image
}

// DefaultThumbSize is the preview edge length in pixels.
const DefaultThumbSize = 140

// Overlay is the recall browsing UI state. Like the session it belongs
// to, it is single-threaded: the host event loop calls Open, Select,
// and Dismiss in strict sequence.
type Overlay struct {
	store     *archive.Store
	ctrl      Controller
	thumbs    *thumbCache
	thumbSize int

	state   State
	entries []Entry
}

// Option configures an Overlay during creation.
type Option func(*Overlay)

// WithThumbSize overrides the preview edge length.
func WithThumbSize(px int) Option {
	return func(o *Overlay) {
		if px > 0 {
			o.thumbSize = px
		}
	}
}

// NewOverlay creates a closed overlay over the given store and session.
// The store may be nil in the degraded no-persistence mode; the overlay
// then only ever offers the live canvas.
func NewOverlay(store *archive.Store, ctrl Controller, opts ...Option) *Overlay {
	o := &Overlay{
		store:     store,
		ctrl:      ctrl,
		thumbs:    newThumbCache(),
		thumbSize: DefaultThumbSize,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// State returns the overlay's current state.
func (o *Overlay) State() State {
	return o.state
}

// Entries returns the presented entries, or nil when closed.
func (o *Overlay) Entries() []Entry {
	if o.state != Open {
		return nil
	}
	return o.entries
}

// Open populates the entry strip and presents it: the live canvas
// first, then archives newest-first. Records that cannot be read or
// decoded are skipped individually; a broken file never aborts the
// overlay.
func (o *Overlay) Open() {
	live := o.ctrl.LiveImage()
	entries := []Entry{{
		Live:  true,
		Thumb: scaleToFit(live, o.thumbSize, o.thumbSize),
	}}

	if o.store != nil {
		records, err := o.store.List()
		if err != nil {
			kidpaint.Logger().Warn("recall: listing archive failed", "error", err)
			records = nil
		}
		for _, rec := range records {
			thumb, err := o.thumbs.get(o.store, rec.Path, o.thumbSize)
			if err != nil {
				kidpaint.Logger().Warn("recall: skipping unreadable record",
					"path", rec.Path, "error", err)
				continue
			}
			entries = append(entries, Entry{
				Path:  rec.Path,
				Name:  rec.Name,
				Thumb: thumb,
			})
		}
	}

	o.entries = entries
	o.state = Open
}

// Select acts on a tap of entry i. Selecting the live entry just
// closes the overlay; nothing changes. Selecting an archive entry
// loads it into the session and closes. Out-of-range indexes and
// selections while closed are ignored. If the record fails to load,
// the overlay stays open so the child can pick another.
func (o *Overlay) Select(i int) {
	if o.state != Open || i < 0 || i >= len(o.entries) {
		return
	}
	entry := o.entries[i]
	if entry.Live {
		o.close()
		return
	}
	img, err := o.store.Load(entry.Path)
	if err != nil {
		kidpaint.Logger().Warn("recall: selected record unreadable",
			"path", entry.Path, "error", err)
		return
	}
	o.ctrl.Restore(img)
	o.close()
}

// Dismiss closes the overlay without selecting: a tap outside the
// strip or a Home/Escape action.
func (o *Overlay) Dismiss() {
	o.close()
}

func (o *Overlay) close() {
	o.state = Closed
	o.entries = nil
}

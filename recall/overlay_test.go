package recall

import (
	"image"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kidbox/kidpaint/archive"
)

// fakeSession is a minimal Controller that records restores.
type fakeSession struct {
	live     image.Image
	restored image.Image
}

func (f *fakeSession) LiveImage() image.Image  { return f.live }
func (f *fakeSession) Restore(img image.Image) { f.restored = img }

func markedImage(mark uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 32, 24))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
	img.Pix[0] = mark
	return img
}

func markOf(img image.Image) uint8 {
	r, _, _, _ := img.At(img.Bounds().Min.X, img.Bounds().Min.Y).RGBA()
	return uint8(r >> 8)
}

// newTestOverlay builds a store with two archive records (marks 1 then
// 2, one hour apart) and an overlay over it.
func newTestOverlay(t *testing.T) (*Overlay, *fakeSession, *archive.Store) {
	t.Helper()
	now := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
	store, err := archive.Open(t.TempDir(), archive.WithClock(func() time.Time { return now }))
	if err != nil {
		t.Fatalf("archive.Open: %v", err)
	}
	if _, err := store.Archive(markedImage(1)); err != nil {
		t.Fatalf("Archive: %v", err)
	}
	now = now.Add(time.Hour)
	if _, err := store.Archive(markedImage(2)); err != nil {
		t.Fatalf("Archive: %v", err)
	}

	ctrl := &fakeSession{live: markedImage(9)}
	return NewOverlay(store, ctrl), ctrl, store
}

// TestOpenListsLiveFirstThenNewest verifies entry order: the live
// canvas, then archives newest-first.
func TestOpenListsLiveFirstThenNewest(t *testing.T) {
	o, _, _ := newTestOverlay(t)

	o.Open()
	if got := o.State(); got != Open {
		t.Fatalf("state after Open: got %v, want Open", got)
	}
	entries := o.Entries()
	if len(entries) != 3 {
		t.Fatalf("entries: got %d, want 3", len(entries))
	}
	if !entries[0].Live {
		t.Error("first entry is not the live canvas")
	}
	if entries[1].Live || entries[2].Live {
		t.Error("archive entries marked live")
	}
	if entries[1].Name <= entries[2].Name {
		t.Errorf("archives not newest-first: %q before %q", entries[1].Name, entries[2].Name)
	}
	for i, e := range entries {
		if e.Thumb == nil {
			t.Errorf("entry %d has no thumbnail", i)
		}
	}
}

// TestSelectLiveIsNoop verifies selecting the live entry closes the
// overlay without touching the session.
func TestSelectLiveIsNoop(t *testing.T) {
	o, ctrl, _ := newTestOverlay(t)
	o.Open()
	o.Select(0)
	if got := o.State(); got != Closed {
		t.Errorf("state: got %v, want Closed", got)
	}
	if ctrl.restored != nil {
		t.Error("selecting the live entry restored an image")
	}
}

// TestSelectArchiveRestores verifies an archive selection loads that
// record into the session and closes.
func TestSelectArchiveRestores(t *testing.T) {
	o, ctrl, _ := newTestOverlay(t)
	o.Open()
	o.Select(1) // newest archive, mark 2
	if ctrl.restored == nil {
		t.Fatal("no image restored")
	}
	if got := markOf(ctrl.restored); got != 2 {
		t.Errorf("restored marker: got %d, want 2", got)
	}
	if got := o.State(); got != Closed {
		t.Errorf("state: got %v, want Closed", got)
	}
}

// TestCorruptRecordSkipped verifies an unreadable archive file is
// dropped from the strip without aborting the overlay.
func TestCorruptRecordSkipped(t *testing.T) {
	o, _, store := newTestOverlay(t)
	bad := filepath.Join(store.Dir(), "2026-08-26_120000.png")
	if err := os.WriteFile(bad, []byte("junk"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	o.Open()
	entries := o.Entries()
	if len(entries) != 3 {
		t.Fatalf("entries: got %d, want 3 (live + 2 readable archives)", len(entries))
	}
	for _, e := range entries {
		if e.Path == bad {
			t.Error("corrupt record listed")
		}
	}
}

// TestSelectUnreadableStaysOpen verifies a record that decays between
// Open and Select leaves the overlay open for another pick.
func TestSelectUnreadableStaysOpen(t *testing.T) {
	o, ctrl, _ := newTestOverlay(t)
	o.Open()
	victim := o.Entries()[1].Path
	if err := os.WriteFile(victim, []byte("junk"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	o.Select(1)
	if got := o.State(); got != Open {
		t.Errorf("state: got %v, want Open", got)
	}
	if ctrl.restored != nil {
		t.Error("unreadable selection restored an image")
	}
}

func TestDismissCloses(t *testing.T) {
	o, _, _ := newTestOverlay(t)
	o.Open()
	o.Dismiss()
	if got := o.State(); got != Closed {
		t.Errorf("state: got %v, want Closed", got)
	}
	if o.Entries() != nil {
		t.Error("entries still presented after dismiss")
	}
}

// TestSelectIgnoredWhenClosedOrOutOfRange verifies stray taps do nothing.
func TestSelectIgnoredWhenClosedOrOutOfRange(t *testing.T) {
	o, ctrl, _ := newTestOverlay(t)

	o.Select(1)
	if ctrl.restored != nil {
		t.Error("selection while closed restored an image")
	}

	o.Open()
	o.Select(-1)
	o.Select(99)
	if got := o.State(); got != Open {
		t.Errorf("state after out-of-range selects: got %v, want Open", got)
	}
	if ctrl.restored != nil {
		t.Error("out-of-range selection restored an image")
	}
}

// TestThumbnailsFitBounds verifies previews are scaled into the
// configured box, preserving aspect ratio.
func TestThumbnailsFitBounds(t *testing.T) {
	o, _, _ := newTestOverlay(t)
	o.Open()
	for i, e := range o.Entries() {
		b := e.Thumb.Bounds()
		if b.Dx() > DefaultThumbSize || b.Dy() > DefaultThumbSize {
			t.Errorf("entry %d thumb %dx%d exceeds %d", i, b.Dx(), b.Dy(), DefaultThumbSize)
		}
		// Source images are 32x24, so width should hit the box edge.
		if b.Dx() != DefaultThumbSize {
			t.Errorf("entry %d thumb width %d, want %d", i, b.Dx(), DefaultThumbSize)
		}
	}
}

// TestNilStoreOffersOnlyLive verifies the degraded no-persistence mode.
func TestNilStoreOffersOnlyLive(t *testing.T) {
	ctrl := &fakeSession{live: markedImage(9)}
	o := NewOverlay(nil, ctrl)
	o.Open()
	entries := o.Entries()
	if len(entries) != 1 || !entries[0].Live {
		t.Fatalf("entries: got %d, want only the live entry", len(entries))
	}
	o.Select(0)
	if o.State() != Closed {
		t.Error("overlay did not close")
	}
}

func TestWithThumbSize(t *testing.T) {
	ctrl := &fakeSession{live: markedImage(9)}
	o := NewOverlay(nil, ctrl, WithThumbSize(64))
	o.Open()
	b := o.Entries()[0].Thumb.Bounds()
	if b.Dx() != 64 {
		t.Errorf("thumb width: got %d, want 64", b.Dx())
	}
}

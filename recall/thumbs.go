package recall

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/kidbox/kidpaint/archive"
)

// thumbCache memoizes scaled previews keyed by record path and size.
// Archive records are immutable, so entries never need invalidating.
// The live-canvas preview is rebuilt on every Open and bypasses the
// cache. No locking: the overlay is single-threaded by contract.
type thumbCache struct {
	entries map[string]image.Image
}

func newThumbCache() *thumbCache {
	return &thumbCache{entries: make(map[string]image.Image)}
}

func (tc *thumbCache) get(store *archive.Store, path string, size int) (image.Image, error) {
	key := fmt.Sprintf("%s|%d", path, size)
	if img, ok := tc.entries[key]; ok {
		return img, nil
	}
	full, err := store.Load(path)
	if err != nil {
		return nil, err
	}
	thumb := scaleToFit(full, size, size)
	tc.entries[key] = thumb
	return thumb, nil
}

// scaleToFit scales src to fit within maxW x maxH, preserving aspect
// ratio, and never scales a degenerate image below one pixel.
func scaleToFit(src image.Image, maxW, maxH int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, 1, 1))
	}
	scale := min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	tw := int(float64(w) * scale)
	th := int(float64(h) * scale)
	if tw < 1 {
		tw = 1
	}
	if th < 1 {
		th = 1
	}
	dst := image.NewNRGBA(image.Rect(0, 0, tw, th))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

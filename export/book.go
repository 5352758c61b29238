// Package export renders the paint archive into a single PDF "drawing
// book": one page per archived canvas, newest first. It is a
// parent-facing utility run outside the kiosk session, so unlike the
// drawing path it reports errors normally.
package export

import (
	"fmt"
	"os"

	"github.com/jung-kurt/gofpdf"

	"github.com/kidbox/kidpaint/archive"
)

// A4 landscape content box in millimeters, inside 10mm margins.
const (
	pageWidth   = 297.0
	pageHeight  = 210.0
	pageMargin  = 10.0
	contentWide = pageWidth - 2*pageMargin
	contentHigh = pageHeight - 2*pageMargin
)

// WriteBook writes every archive record in store to a PDF at outPath,
// one page per drawing, newest first. Unreadable records are skipped.
// An empty archive produces an error rather than an empty book.
func WriteBook(store *archive.Store, outPath string) error {
	records, err := store.List()
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if len(records) == 0 {
		return fmt.Errorf("export: no archived drawings in %s", store.Dir())
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pages := 0

	for _, rec := range records {
		f, err := os.Open(rec.Path)
		if err != nil {
			continue
		}
		info := pdf.RegisterImageOptionsReader(rec.Name, opts, f)
		f.Close()
		if pdf.Err() {
			// A malformed record must not abort the whole book.
			pdf.ClearError()
			continue
		}

		w, h := fitExtent(info.Extent())
		pdf.AddPage()
		x := pageMargin + (contentWide-w)/2
		y := pageMargin + (contentHigh-h)/2
		pdf.ImageOptions(rec.Name, x, y, w, h, false, opts, 0, "")
		pages++
	}

	if pages == 0 {
		return fmt.Errorf("export: no readable drawings in %s", store.Dir())
	}
	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("export: write %s: %w", outPath, err)
	}
	return nil
}

// fitExtent scales an image extent to fit the content box, preserving
// aspect ratio.
func fitExtent(w, h float64) (float64, float64) {
	if w <= 0 || h <= 0 {
		return contentWide, contentHigh
	}
	scale := min(contentWide/w, contentHigh/h)
	return w * scale, h * scale
}

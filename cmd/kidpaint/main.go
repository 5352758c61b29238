// Command kidpaint drives the paint core without a window toolkit.
// The default mode replays a scripted drawing into a real session
// against the configured data root, exercising strokes, undo,
// autosave, and archival end to end. The export mode bundles the
// archive into a PDF drawing book for parents.
//
//	kidpaint -data-root ./data -v
//	kidpaint export -data-root ./data -out drawings.pdf
package main

import (
	"flag"
	"image/color"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/kidbox/kidpaint"
	"github.com/kidbox/kidpaint/archive"
	"github.com/kidbox/kidpaint/config"
	"github.com/kidbox/kidpaint/export"
	"github.com/kidbox/kidpaint/recall"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "export" {
		runExport(os.Args[2:])
		return
	}
	runDemo(os.Args[1:])
}

// paintDir resolves the data root (flag override first, then config)
// and ensures the paint directory exists.
func paintDir(cfg *config.Config, override string) string {
	if override != "" {
		cfg.DataRoot = override
	}
	root, err := cfg.ResolveDataRoot()
	if err != nil {
		log.Fatalf("Failed to resolve data root: %v", err)
	}
	dir, err := config.EnsureDirectories(root)
	if err != nil {
		log.Fatalf("Failed to prepare data root: %v", err)
	}
	return dir
}

func runDemo(args []string) {
	fs := flag.NewFlagSet("kidpaint", flag.ExitOnError)
	var (
		dataRoot = fs.String("data-root", "", "override the configured data root")
		width    = fs.Int("width", 1024, "canvas width")
		height   = fs.Int("height", 640, "canvas height")
		verbose  = fs.Bool("v", false, "log session lifecycle to stderr")
	)
	_ = fs.Parse(args)

	if *verbose {
		kidpaint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := config.LoadOrDefault()
	dir := paintDir(cfg, *dataRoot)

	store, err := archive.Open(dir)
	if err != nil {
		// Drawing still works; nothing persists.
		log.Printf("Archive unavailable (%v), running without persistence", err)
		store = nil
	}

	s := kidpaint.NewSession(*width, *height, store,
		kidpaint.WithAutosaveInterval(cfg.AutosaveInterval()),
		kidpaint.WithUndoDepth(cfg.Paint.UndoDepth),
	)
	palette := cfg.PaletteColors()
	sizes := kidpaint.BrushSizes(*width, *height)

	drawScribble(s, palette, sizes, *width, *height)

	// Prove the recall path against whatever the archive already holds.
	overlay := recall.NewOverlay(store, s)
	overlay.Open()
	n := len(overlay.Entries())
	overlay.Dismiss()

	s.Flush()
	if store != nil {
		log.Printf("Demo drawing saved to %s (%d recall entries)", store.LatestPath(), n)
	}
}

// drawScribble exercises every tool: a round-brush frame, a fountain
// squiggle whose nib responds to speed, an eraser pass, and a bucket
// fill of the framed region.
func drawScribble(s *kidpaint.Session, palette []color.NRGBA, sizes [3]int, w, h int) {
	fw, fh := float64(w), float64(h)

	// Frame.
	s.SetTool(kidpaint.ToolRound)
	s.SetBrushSize(sizes[2])
	if len(palette) > 0 {
		s.SetColor(palette[0])
	}
	s.PointerDown(fw*0.2, fh*0.2)
	s.PointerMove(fw*0.8, fh*0.2)
	s.PointerMove(fw*0.8, fh*0.8)
	s.PointerMove(fw*0.2, fh*0.8)
	s.PointerUp(fw*0.2, fh*0.2)

	// Fountain squiggle.
	s.SetTool(kidpaint.ToolFountain)
	s.SetBrushSize(sizes[1])
	if len(palette) > 2 {
		s.SetColor(palette[2])
	}
	s.PointerDown(fw*0.25, fh*0.5)
	for i := 1; i <= 40; i++ {
		t := float64(i) / 40
		s.PointerMove(fw*(0.25+0.5*t), fh*(0.5+0.15*math.Sin(t*4*math.Pi)))
	}
	s.PointerUp(fw*0.75, fh*0.5)

	// Erase a bite out of the squiggle.
	s.SetTool(kidpaint.ToolEraser)
	s.SetBrushSize(sizes[2])
	s.PointerDown(fw*0.5, fh*0.5)
	s.PointerMove(fw*0.55, fh*0.5)
	s.PointerUp(fw*0.6, fh*0.5)

	// Fill the frame corner.
	s.SetTool(kidpaint.ToolBucket)
	if len(palette) > 4 {
		s.SetColor(palette[4])
	}
	s.PointerDown(fw*0.22, fh*0.22)
	s.PointerUp(fw*0.22, fh*0.22)
}

func runExport(args []string) {
	fs := flag.NewFlagSet("kidpaint export", flag.ExitOnError)
	var (
		dataRoot = fs.String("data-root", "", "override the configured data root")
		out      = fs.String("out", "kidbox-drawings.pdf", "output PDF path")
	)
	_ = fs.Parse(args)

	cfg := config.LoadOrDefault()
	dir := paintDir(cfg, *dataRoot)

	store, err := archive.Open(dir, archive.ReadOnly())
	if err != nil {
		log.Fatalf("Failed to open archive: %v", err)
	}
	if err := export.WriteBook(store, *out); err != nil {
		log.Fatalf("Export failed: %v", err)
	}
	log.Printf("Drawing book written to %s", *out)
}

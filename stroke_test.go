package kidpaint

import (
	"testing"
	"time"
)

func sampleAt(x, y float64, ms int) Sample {
	base := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	return Sample{Point: Pt(x, y), Time: base.Add(time.Duration(ms) * time.Millisecond)}
}

// TestTapCommitsDot verifies a pointer-down immediately followed by
// pointer-up with no movement still marks the canvas.
func TestTapCommitsDot(t *testing.T) {
	for _, tool := range []Tool{ToolRound, ToolFountain, ToolEraser} {
		t.Run(tool.String(), func(t *testing.T) {
			c := NewCanvas(100, 100)
			if tool == ToolEraser {
				c.Fill(RGB(30, 144, 255))
			}
			e := NewEngine(6, RGB(220, 20, 60))
			e.SetTool(tool)

			e.Down(c, sampleAt(50, 50, 0))
			stroke, ok := e.Up(c, sampleAt(50, 50, 5))
			if !ok {
				t.Fatal("Up: got ok=false")
			}
			if len(stroke.Samples) != 1 {
				t.Errorf("samples: got %d, want 1", len(stroke.Samples))
			}
			want := RGB(220, 20, 60)
			if tool == ToolEraser {
				want = Background
			}
			if got := c.PixelAt(50, 50); got != want {
				t.Errorf("center pixel: got %v, want %v", got, want)
			}
			if got := c.PixelAt(90, 90); got == want && tool != ToolEraser {
				t.Error("far pixel was painted by a tap")
			}
		})
	}
}

// TestTapWithBucketFillsCanvas verifies a bucket tap floods the whole
// contiguous blank region.
func TestTapWithBucketFillsCanvas(t *testing.T) {
	c := NewCanvas(40, 40)
	e := NewEngine(6, RGB(255, 215, 0))
	e.SetTool(ToolBucket)

	e.Down(c, sampleAt(20, 20, 0))
	if _, ok := e.Up(c, sampleAt(20, 20, 5)); !ok {
		t.Fatal("Up: got ok=false")
	}
	for _, p := range [][2]int{{0, 0}, {39, 39}, {20, 20}} {
		if got := c.PixelAt(p[0], p[1]); got != RGB(255, 215, 0) {
			t.Errorf("pixel (%d,%d): got %v, want fill color", p[0], p[1], got)
		}
	}
}

// TestBucketFillEnclosedRegion verifies a fill bounded by a drawn
// rectangle changes only interior pixels.
func TestBucketFillEnclosedRegion(t *testing.T) {
	c := NewCanvas(60, 60)
	border := RGB(0, 0, 0)
	// Rectangle border from (10,10) to (40,40).
	for i := 10; i <= 40; i++ {
		c.SetPixel(i, 10, border)
		c.SetPixel(i, 40, border)
		c.SetPixel(10, i, border)
		c.SetPixel(40, i, border)
	}

	e := NewEngine(6, RGB(34, 139, 34))
	e.SetTool(ToolBucket)
	e.Down(c, sampleAt(25, 25, 0))
	e.Up(c, sampleAt(25, 25, 5))

	if got := c.PixelAt(25, 25); got != RGB(34, 139, 34) {
		t.Errorf("interior: got %v, want fill color", got)
	}
	if got := c.PixelAt(11, 11); got != RGB(34, 139, 34) {
		t.Errorf("interior corner: got %v, want fill color", got)
	}
	if got := c.PixelAt(5, 5); got != Background {
		t.Errorf("exterior: got %v, want background", got)
	}
	if got := c.PixelAt(50, 25); got != Background {
		t.Errorf("exterior right of box: got %v, want background", got)
	}
	if got := c.PixelAt(10, 25); got != border {
		t.Errorf("border: got %v, want border color", got)
	}
}

// TestBucketFillSameColorNoop verifies filling a region with its own
// color terminates without changing anything.
func TestBucketFillSameColorNoop(t *testing.T) {
	c := NewCanvas(20, 20)
	before := c.Clone()
	bucketFill(c, Pt(10, 10), Background)
	if !c.Equal(before) {
		t.Error("same-color fill modified the canvas")
	}
}

// TestEraserRestoresBackground verifies the eraser paints the blank
// color over existing marks.
func TestEraserRestoresBackground(t *testing.T) {
	c := NewCanvas(100, 100)
	c.Fill(RGB(220, 20, 60))

	e := NewEngine(12, RGB(0, 0, 0))
	e.SetTool(ToolEraser)
	e.Down(c, sampleAt(20, 50, 0))
	e.Move(c, sampleAt(80, 50, 40))
	e.Up(c, sampleAt(80, 50, 60))

	for x := 20; x <= 80; x += 10 {
		if got := c.PixelAt(x, 50); got != Background {
			t.Errorf("erased pixel (%d,50): got %v, want background", x, got)
		}
	}
	if got := c.PixelAt(50, 90); got != RGB(220, 20, 60) {
		t.Errorf("untouched pixel: got %v, want original color", got)
	}
}

// TestRoundBrushSegmentContinuous verifies stamped segments leave no
// gaps along the path.
func TestRoundBrushSegmentContinuous(t *testing.T) {
	c := NewCanvas(100, 100)
	e := NewEngine(6, RGB(0, 0, 0))
	e.Down(c, sampleAt(10, 50, 0))
	e.Move(c, sampleAt(90, 50, 50))
	e.Up(c, sampleAt(90, 50, 60))

	for x := 10; x <= 90; x++ {
		if got := c.PixelAt(x, 50); got != RGB(0, 0, 0) {
			t.Fatalf("gap at (%d,50): got %v", x, got)
		}
	}
}

// TestFountainWidthMonotonic verifies the speed-to-width mapping is
// monotonically decreasing and bounded.
func TestFountainWidthMonotonic(t *testing.T) {
	const size = 12
	if got, want := nibWidthFor(size, 0), float64(size)*MaxNibRatio; got != want {
		t.Errorf("width at rest: got %v, want %v", got, want)
	}

	prev := nibWidthFor(size, 0)
	for _, speed := range []float64{0.1, 0.5, 1, 2, 5, 20, 1000} {
		w := nibWidthFor(size, speed)
		if w > prev {
			t.Errorf("width not monotonic: %v at speed %v after %v", w, speed, prev)
		}
		if w < float64(size)*MinNibRatio || w > float64(size)*MaxNibRatio {
			t.Errorf("width %v at speed %v outside bounds", w, speed)
		}
		prev = w
	}
}

// TestFountainStrokeMarks verifies a fountain stroke deposits ink along
// its whole path.
func TestFountainStrokeMarks(t *testing.T) {
	c := NewCanvas(100, 100)
	e := NewEngine(8, RGB(65, 105, 225))
	e.SetTool(ToolFountain)

	e.Down(c, sampleAt(10, 50, 0))
	e.Move(c, sampleAt(50, 50, 20))
	e.Move(c, sampleAt(90, 50, 40))
	e.Up(c, sampleAt(90, 50, 50))

	for x := 10; x <= 90; x += 5 {
		if got := c.PixelAt(x, 50); got != RGB(65, 105, 225) {
			t.Errorf("fountain path pixel (%d,50): got %v", x, got)
		}
	}
}

// TestOutOfBoundsSamplesClamped verifies off-canvas samples are clamped
// silently rather than rejected.
func TestOutOfBoundsSamplesClamped(t *testing.T) {
	c := NewCanvas(50, 50)
	e := NewEngine(4, RGB(0, 0, 0))

	e.Down(c, sampleAt(-100, -100, 0))
	e.Move(c, sampleAt(200, 25, 20))
	stroke, ok := e.Up(c, sampleAt(200, 200, 30))
	if !ok {
		t.Fatal("Up: got ok=false")
	}
	if got := c.PixelAt(0, 0); got != RGB(0, 0, 0) {
		t.Errorf("clamped origin pixel: got %v, want draw color", got)
	}
	for _, s := range stroke.Samples {
		if s.X < 0 || s.X > 49 || s.Y < 0 || s.Y > 49 {
			t.Errorf("unclamped sample recorded: (%v,%v)", s.X, s.Y)
		}
	}
}

// TestMoveWithoutDownIgnored verifies stray motion events do nothing.
func TestMoveWithoutDownIgnored(t *testing.T) {
	c := NewCanvas(50, 50)
	before := c.Clone()
	e := NewEngine(4, RGB(0, 0, 0))
	e.Move(c, sampleAt(25, 25, 0))
	if !c.Equal(before) {
		t.Error("Move without Down modified the canvas")
	}
	if _, ok := e.Up(c, sampleAt(25, 25, 5)); ok {
		t.Error("Up without Down: got ok=true")
	}
}

// TestStrokeRecordsToolParameters verifies the committed stroke carries
// the tool state active at pointer-down.
func TestStrokeRecordsToolParameters(t *testing.T) {
	c := NewCanvas(50, 50)
	e := NewEngine(6, RGB(220, 20, 60))
	e.SetTool(ToolRound)
	e.Down(c, sampleAt(10, 10, 0))

	// Tool changes mid-stroke must not affect the live stroke.
	e.SetTool(ToolBucket)
	e.SetColor(RGB(0, 0, 0))

	stroke, _ := e.Up(c, sampleAt(12, 12, 10))
	if stroke.Tool != ToolRound {
		t.Errorf("tool: got %v, want round", stroke.Tool)
	}
	if stroke.Color != RGB(220, 20, 60) {
		t.Errorf("color: got %v, want the down-time color", stroke.Color)
	}
	if stroke.ID == "" {
		t.Error("stroke ID is empty")
	}
}

func TestBrushSizesStrictlyIncreasing(t *testing.T) {
	for _, dims := range [][2]int{{1366, 768}, {1024, 600}, {100, 100}, {3840, 2160}} {
		sizes := BrushSizes(dims[0], dims[1])
		if sizes[0] < 1 {
			t.Errorf("%v: smallest size %d below 1", dims, sizes[0])
		}
		if sizes[0] >= sizes[1] || sizes[1] >= sizes[2] {
			t.Errorf("%v: sizes %v not strictly increasing", dims, sizes)
		}
	}
}

func TestToolString(t *testing.T) {
	cases := map[Tool]string{
		ToolRound:    "round",
		ToolFountain: "fountain",
		ToolEraser:   "eraser",
		ToolBucket:   "bucket",
		Tool(99):     "unknown",
	}
	for tool, want := range cases {
		if got := tool.String(); got != want {
			t.Errorf("Tool(%d).String(): got %q, want %q", tool, got, want)
		}
	}
}

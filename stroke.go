package kidpaint

import (
	"image/color"

	"github.com/google/uuid"
)

// Stroke is one committed pointer-down-to-pointer-up drawing action:
// the ordered pointer samples plus the tool and parameters active when
// the stroke began. A Stroke is immutable once committed.
type Stroke struct {
	ID      string
	Tool    Tool
	Size    int
	Color   color.NRGBA
	Samples []Sample
}

// Engine converts pointer events into canvas mutations for the active
// tool. Samples are rasterized incrementally between Down and Up so
// the child sees live feedback; the undo snapshot for the whole stroke
// is the session's job and is taken once, at pointer-down.
//
// The engine holds no canvas of its own: the session passes the live
// canvas into each event, which keeps engine state valid across the
// wholesale canvas replacement done by New and Recall.
type Engine struct {
	tool  Tool
	size  int
	color color.NRGBA

	live     *Stroke
	nibWidth float64 // current fountain nib width, pixels
}

// NewEngine creates an engine with the given initial brush size and color.
func NewEngine(size int, col color.NRGBA) *Engine {
	return &Engine{tool: ToolRound, size: size, color: col}
}

// SetTool selects the active tool. Takes effect on the next stroke.
func (e *Engine) SetTool(t Tool) { e.tool = t }

// Tool returns the active tool.
func (e *Engine) Tool() Tool { return e.tool }

// SetSize selects the brush diameter in pixels. Takes effect on the
// next stroke.
func (e *Engine) SetSize(size int) {
	if size < 1 {
		size = 1
	}
	e.size = size
}

// Size returns the brush diameter.
func (e *Engine) Size() int { return e.size }

// SetColor selects the draw color. Takes effect on the next stroke.
func (e *Engine) SetColor(col color.NRGBA) { e.color = col }

// Color returns the draw color.
func (e *Engine) Color() color.NRGBA { return e.color }

// Active reports whether a stroke is between pointer-down and pointer-up.
func (e *Engine) Active() bool { return e.live != nil }

// drawColor is the color the current tool actually deposits.
func (e *Engine) drawColor() color.NRGBA {
	if e.tool == ToolEraser {
		return Background
	}
	return e.color
}

// Down begins a stroke at the given sample. The sample is clamped to
// the canvas. For the bucket tool the fill is applied immediately; for
// the other tools a dot is stamped so a tap with no motion still marks.
func (e *Engine) Down(c *Canvas, s Sample) {
	if e.live != nil {
		return
	}
	s.Point = s.Point.Clamp(c.Width(), c.Height())
	e.live = &Stroke{
		ID:      uuid.NewString(),
		Tool:    e.tool,
		Size:    e.size,
		Color:   e.drawColor(),
		Samples: []Sample{s},
	}

	switch e.tool {
	case ToolBucket:
		bucketFill(c, s.Point, e.color)
	case ToolFountain:
		// A motionless pen rests halfway between its width extremes.
		e.nibWidth = float64(e.size) * (MinNibRatio + MaxNibRatio) / 2
		stampDot(c, s.Point, e.nibWidth/2, e.live.Color)
	default:
		stampDot(c, s.Point, float64(e.size)/2, e.live.Color)
	}
}

// Move extends the live stroke to the given sample, rasterizing the
// new segment. Ignored when no stroke is active or for the bucket tool.
func (e *Engine) Move(c *Canvas, s Sample) {
	if e.live == nil || e.live.Tool == ToolBucket {
		return
	}
	s.Point = s.Point.Clamp(c.Width(), c.Height())
	last := e.live.Samples[len(e.live.Samples)-1]

	if e.live.Tool == ToolFountain {
		e.moveFountain(c, last, s)
	} else {
		stampSegment(c, last.Point, s.Point, float64(e.live.Size)/2, float64(e.live.Size)/2, e.live.Color, 2)
	}
	e.live.Samples = append(e.live.Samples, s)
}

// moveFountain advances the pen, narrowing the nib with pointer speed.
// The segment is densified into short pieces so the width transition
// stays smooth even on long input segments.
func (e *Engine) moveFountain(c *Canvas, last, s Sample) {
	dist := last.Point.Distance(s.Point)
	speed := 0.0
	if dt := s.Time.Sub(last.Time); dt > 0 {
		speed = dist / float64(dt.Milliseconds()+1)
	}
	target := nibWidthFor(e.live.Size, speed)

	steps := int(dist / 1.5)
	if steps < 1 {
		steps = 1
	}
	prev := last.Point
	w := e.nibWidth
	for i := 1; i <= steps; i++ {
		next := last.Point.Lerp(s.Point, float64(i)/float64(steps))
		smoothed := w + (target-w)*nibSmoothing
		stampSegment(c, prev, next, w/2, smoothed/2, e.live.Color, 1)
		w = smoothed
		prev = next
	}
	e.nibWidth = w
}

// Up ends the live stroke at the given sample and returns the committed
// Stroke. The second result is false when no stroke was active.
func (e *Engine) Up(c *Canvas, s Sample) (Stroke, bool) {
	if e.live == nil {
		return Stroke{}, false
	}
	s.Point = s.Point.Clamp(c.Width(), c.Height())
	last := e.live.Samples[len(e.live.Samples)-1]
	if s.Point != last.Point {
		e.Move(c, s)
	}
	committed := *e.live
	e.live = nil
	return committed, true
}

// nibWidthFor maps pointer speed (pixels per millisecond) to a nib
// width for the given brush size. Monotonically decreasing in speed
// and bounded to [MinNibRatio, MaxNibRatio] times the size: a resting
// pen draws its widest line, a fast flick its narrowest.
func nibWidthFor(size int, speed float64) float64 {
	if speed < 0 {
		speed = 0
	}
	ratio := MinNibRatio + (MaxNibRatio-MinNibRatio)/(1+speed/nibSpeedHalf)
	return float64(size) * ratio
}

// stampDot rasterizes a solid disc centered at p.
func stampDot(c *Canvas, p Point, radius float64, col color.NRGBA) {
	if radius < 0.5 {
		radius = 0.5
	}
	minX, maxX := int(p.X-radius), int(p.X+radius+1)
	minY, maxY := int(p.Y-radius), int(p.Y+radius+1)
	r2 := radius * radius
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			dx := float64(x) - p.X
			dy := float64(y) - p.Y
			if dx*dx+dy*dy <= r2 {
				c.SetPixel(x, y, col)
			}
		}
	}
}

// stampSegment rasterizes a line from a to b as a run of discs with
// the radius interpolated from r0 to r1. step controls the stamp
// spacing in pixels; discs overlap enough to leave no gaps.
func stampSegment(c *Canvas, a, b Point, r0, r1 float64, col color.NRGBA, step float64) {
	dist := a.Distance(b)
	steps := int(dist / step)
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		r := r0 + (r1-r0)*t
		stampDot(c, a.Lerp(b, t), r, col)
	}
}

// bucketFill flood-fills the contiguous region of the canvas that
// matches the color under p, using 4-connectivity bounded by the
// canvas edges. Filling a region that already has the fill color is
// a no-op rather than an infinite loop.
func bucketFill(c *Canvas, p Point, col color.NRGBA) {
	x, y := int(p.X), int(p.Y)
	target := c.PixelAt(x, y)
	if target == col {
		return
	}
	w, h := c.Width(), c.Height()
	stack := make([][2]int, 0, 64)
	stack = append(stack, [2]int{x, y})
	for len(stack) > 0 {
		n := len(stack) - 1
		cx, cy := stack[n][0], stack[n][1]
		stack = stack[:n]
		if cx < 0 || cy < 0 || cx >= w || cy >= h {
			continue
		}
		if c.PixelAt(cx, cy) != target {
			continue
		}
		c.SetPixel(cx, cy, col)
		stack = append(stack,
			[2]int{cx + 1, cy},
			[2]int{cx - 1, cy},
			[2]int{cx, cy + 1},
			[2]int{cx, cy - 1},
		)
	}
}

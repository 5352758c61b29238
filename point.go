package kidpaint

import (
	"math"
	"time"
)

// Point represents a 2D point or vector in canvas coordinates.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Clamp returns the point limited to the rectangle [0,w-1]x[0,h-1].
// Off-canvas pointer samples are clamped here, never rejected.
func (p Point) Clamp(w, h int) Point {
	return Point{
		X: math.Min(math.Max(p.X, 0), float64(w-1)),
		Y: math.Min(math.Max(p.Y, 0), float64(h-1)),
	}
}

// Sample is one pointer-motion sample: a position plus the time the
// event was observed. Times drive the fountain pen's speed response.
type Sample struct {
	Point
	Time time.Time
}

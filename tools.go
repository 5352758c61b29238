package kidpaint

// Tool identifies one of the fixed drawing tools. The set is closed by
// design: per-tool behavior lives in the stroke engine's dispatch, not
// in open-ended polymorphism.
type Tool uint8

const (
	// ToolRound is the round brush: a solid disc stamped along the
	// pointer path at the selected radius.
	ToolRound Tool = iota

	// ToolFountain is the fountain pen: like the round brush, but the
	// nib width follows the instantaneous pointer speed. Faster motion
	// narrows the nib, bounded between MinNibRatio and MaxNibRatio of
	// the selected size.
	ToolFountain

	// ToolEraser paints the background color at the brush radius.
	ToolEraser

	// ToolBucket flood-fills the contiguous same-color region under the
	// pointer using 4-connectivity, bounded by the canvas edges.
	ToolBucket
)

// String returns the tool name used in logs and stroke records.
func (t Tool) String() string {
	switch t {
	case ToolRound:
		return "round"
	case ToolFountain:
		return "fountain"
	case ToolEraser:
		return "eraser"
	case ToolBucket:
		return "bucket"
	default:
		return "unknown"
	}
}

// Fountain pen nib bounds, as a ratio of the selected brush size.
const (
	MinNibRatio = 0.2
	MaxNibRatio = 1.8

	// nibSpeedHalf is the pointer speed, in pixels per millisecond, at
	// which the nib sits halfway between its widest and narrowest. The
	// exact curve is a free parameter; only monotonicity and the bounds
	// above are contractual.
	nibSpeedHalf = 0.5

	// nibSmoothing blends the nib width toward its target per segment
	// so quick speed changes do not produce stepped edges.
	nibSmoothing = 0.35
)

// baseBrushSizes are the unscaled small/medium/large brush diameters.
var baseBrushSizes = [3]int{3, 6, 12}

// BrushSizes returns the small/medium/large brush diameters scaled for
// a display of the given dimensions (reference 1366x768). The result
// is strictly increasing so the three sizes never collapse together
// on small displays.
func BrushSizes(displayWidth, displayHeight int) [3]int {
	scale := min(float64(displayWidth)/1366, float64(displayHeight)/768)
	var sizes [3]int
	for i, base := range baseBrushSizes {
		s := int(float64(base)*scale + 0.5)
		if s < 1 {
			s = 1
		}
		sizes[i] = s
	}
	for i := 1; i < len(sizes); i++ {
		if sizes[i] <= sizes[i-1] {
			sizes[i] = sizes[i-1] + 1
		}
	}
	return sizes
}

package playback

import "math"

// PoseEvaluator applies the skinned pose for a clip-local time. It must be
// deterministic and cheap enough to call again with the same time.
type PoseEvaluator interface {
	Evaluate(clipTime float64)
}

// PoseEvaluatorFunc adapts a function to PoseEvaluator.
type PoseEvaluatorFunc func(clipTime float64)

func (f PoseEvaluatorFunc) Evaluate(clipTime float64) { f(clipTime) }

// ClipCursor owns the playback time inside one clip. It runs forward from a
// segment's start and halts exactly on the segment's end.
type ClipCursor struct {
	duration   float64
	time       float64
	boundStart float64
	boundEnd   float64
	halted     bool
	evaluator  PoseEvaluator
}

// NewClipCursor attaches a cursor to a clip. The cursor is halted at 0 until
// the first Reanchor.
func NewClipCursor(clipDuration float64, evaluator PoseEvaluator) *ClipCursor {
	if !isFinite(clipDuration) || clipDuration < 0 {
		clipDuration = 0
	}
	return &ClipCursor{
		duration:  clipDuration,
		halted:    true,
		evaluator: evaluator,
	}
}

// Reanchor jumps to a new segment and re-arms the cursor. The pose is
// re-evaluated immediately so the jump is visible before the next paint.
func (c *ClipCursor) Reanchor(start, end float64) {
	start = clamp(sanitize(start), 0, c.duration)
	end = math.Max(start, math.Min(sanitize(end), c.duration))

	c.boundStart = start
	c.boundEnd = end
	c.time = start
	c.halted = false
	c.evaluate()
}

// Advance moves the cursor by delta seconds. Crossing the segment end clamps
// the time onto the boundary and halts; the boundary pose is evaluated once.
func (c *ClipCursor) Advance(delta float64) {
	if c.halted || !isFinite(delta) {
		return
	}

	c.time += delta
	if c.time < c.boundStart {
		c.time = c.boundStart
	}
	if c.time >= c.boundEnd {
		c.time = c.boundEnd
		c.halted = true
	}
	c.evaluate()
}

func (c *ClipCursor) Time() float64 {
	return c.time
}

func (c *ClipCursor) Halted() bool {
	return c.halted
}

// Bounds returns the clamped interval of the active segment.
func (c *ClipCursor) Bounds() (start, end float64) {
	return c.boundStart, c.boundEnd
}

func (c *ClipCursor) Duration() float64 {
	return c.duration
}

func (c *ClipCursor) evaluate() {
	if c.evaluator != nil {
		c.evaluator.Evaluate(c.time)
	}
}

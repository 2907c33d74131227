package playback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingEvaluator struct {
	times []float64
}

func (r *recordingEvaluator) Evaluate(clipTime float64) {
	r.times = append(r.times, clipTime)
}

func TestClipCursor_StartsHalted(t *testing.T) {
	c := NewClipCursor(10, nil)

	assert.True(t, c.Halted())
	assert.Equal(t, 0.0, c.Time())

	c.Advance(1)
	assert.Equal(t, 0.0, c.Time(), "a cursor that was never anchored must not move")
}

func TestClipCursor_ReanchorClampsIntoClip(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		wantStart  float64
		wantEnd    float64
	}{
		{"inside clip", 2, 5, 2, 5},
		{"negative start", -3, 4, 0, 4},
		{"end past clip", 8, 20, 8, 10},
		{"start past clip", 12, 15, 10, 10},
		{"end before start", 6, 3, 6, 6},
		{"zero length", 4, 4, 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClipCursor(10, nil)
			c.Reanchor(tt.start, tt.end)

			start, end := c.Bounds()
			assert.Equal(t, tt.wantStart, c.Time())
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
			assert.False(t, c.Halted())
		})
	}
}

func TestClipCursor_ReanchorEvaluatesImmediately(t *testing.T) {
	eval := &recordingEvaluator{}
	c := NewClipCursor(10, eval)

	c.Reanchor(3, 6)

	require.Len(t, eval.times, 1)
	assert.Equal(t, 3.0, eval.times[0])
}

func TestClipCursor_HaltsExactlyOnBoundary(t *testing.T) {
	eval := &recordingEvaluator{}
	c := NewClipCursor(10, eval)
	c.Reanchor(4.9, 5)

	c.Advance(0.3)

	assert.Equal(t, 5.0, c.Time())
	assert.True(t, c.Halted())
	assert.Equal(t, 5.0, eval.times[len(eval.times)-1])
}

func TestClipCursor_TerminalPoseEvaluatedOnce(t *testing.T) {
	eval := &recordingEvaluator{}
	c := NewClipCursor(10, eval)
	c.Reanchor(0, 2)

	c.Advance(100)
	c.Advance(1)
	c.Advance(1)

	// one for the reanchor, one for the boundary
	assert.Equal(t, []float64{0, 2}, eval.times)
}

func TestClipCursor_ConvergesRegardlessOfSplit(t *testing.T) {
	splits := [][]float64{
		{3},
		{1, 1, 1},
		{0.5, 0.25, 0.25, 2},
		{0, 0, 2.75, 0.25},
		{10},
		{0.125, 0.125, 0.25, 0.5, 1, 1, 1},
	}

	for _, deltas := range splits {
		c := NewClipCursor(10, nil)
		c.Reanchor(2, 5)
		for _, d := range deltas {
			c.Advance(d)
		}
		assert.Equal(t, 5.0, c.Time(), "deltas %v", deltas)
		assert.True(t, c.Halted(), "deltas %v", deltas)
	}
}

func TestClipCursor_NegativeDeltaNeverRearms(t *testing.T) {
	c := NewClipCursor(10, nil)
	c.Reanchor(2, 5)

	c.Advance(1)
	c.Advance(-0.5)
	assert.InDelta(t, 2.5, c.Time(), 1e-9)

	c.Advance(-10)
	assert.Equal(t, 2.0, c.Time(), "rewind stops at the segment start")
	assert.False(t, c.Halted())

	c.Advance(5)
	require.True(t, c.Halted())
	c.Advance(-1)
	assert.Equal(t, 5.0, c.Time())
	assert.True(t, c.Halted())
}

func TestClipCursor_ReanchorRearmsAfterHalt(t *testing.T) {
	c := NewClipCursor(10, nil)
	c.Reanchor(0, 1)
	c.Advance(2)
	require.True(t, c.Halted())

	c.Reanchor(6, 8)

	assert.False(t, c.Halted())
	assert.Equal(t, 6.0, c.Time(), "jump is clip-local, not a replay from zero")
}

func TestClipCursor_ZeroLengthSegmentHaltsOnFirstTick(t *testing.T) {
	c := NewClipCursor(10, nil)
	c.Reanchor(4, 4)

	c.Advance(0)

	assert.True(t, c.Halted())
	assert.Equal(t, 4.0, c.Time())
}

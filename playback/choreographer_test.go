package playback

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmoothstep(t *testing.T) {
	assert.Equal(t, 0.0, Smoothstep(0))
	assert.Equal(t, 1.0, Smoothstep(1))
	assert.Equal(t, 0.5, Smoothstep(0.5))

	prev := Smoothstep(0)
	for i := 1; i <= 100; i++ {
		x := float64(i) / 100
		v := Smoothstep(x)
		assert.GreaterOrEqual(t, v, prev, "not monotonic at %v", x)
		assert.InDelta(t, 1-v, Smoothstep(1-x), 1e-12, "not symmetric at %v", x)
		prev = v
	}
}

func TestSmoothstep_ClampsOutOfRange(t *testing.T) {
	assert.Equal(t, 0.0, Smoothstep(-2))
	assert.Equal(t, 1.0, Smoothstep(3))
	assert.Equal(t, 0.0, Smoothstep(math.NaN()))
}

func TestChoreographer_SampleBeforeStart(t *testing.T) {
	var c Choreographer

	_, ok := c.Sample()
	assert.False(t, ok)
	assert.True(t, c.Done())

	_, changed := c.Advance(1)
	assert.False(t, changed)
}

func TestChoreographer_HalfwayExample(t *testing.T) {
	moveSeconds := 1.0
	seg := AnimationSegment{
		Start: 2,
		End:   5,
		Cam: CameraSpec{
			Position:    mgl64.Vec3{0, 1, 3},
			Target:      mgl64.Vec3{0, 0, 0},
			MoveSeconds: &moveSeconds,
		},
	}
	from := CameraPose{Position: mgl64.Vec3{0, 1, 0}, FOV: 45}

	var c Choreographer
	c.BeginTransition(from, seg.TargetPose(from.FOV), seg.MoveDuration())
	pose, changed := c.Advance(0.5)

	require.True(t, changed)
	assert.InDelta(t, 0.5, c.Progress(), 1e-12)
	assert.InDelta(t, 0.0, pose.Position[0], 1e-9)
	assert.InDelta(t, 1.0, pose.Position[1], 1e-9)
	assert.InDelta(t, 1.5, pose.Position[2], 1e-9)
	assert.Equal(t, 45.0, pose.FOV, "unset fov keeps the current camera fov")
}

func TestChoreographer_ClampsAtArrival(t *testing.T) {
	to := CameraPose{Position: mgl64.Vec3{4, 0, 0}, Target: mgl64.Vec3{0, 1, 0}, FOV: 30}

	var c Choreographer
	c.BeginTransition(CameraPose{FOV: 60}, to, 0.6)
	c.Advance(0.5)
	pose, _ := c.Advance(0.5)

	assert.Equal(t, 1.0, c.Progress())
	assert.True(t, c.Done())
	assert.True(t, pose.Position.ApproxEqual(to.Position))
	assert.True(t, pose.Target.ApproxEqual(to.Target))
	assert.InDelta(t, 30.0, pose.FOV, 1e-9)

	_, changed := c.Advance(0.1)
	assert.False(t, changed)
}

func TestChoreographer_DurationFloor(t *testing.T) {
	for _, d := range []float64{0, -1, 0.01, math.NaN(), math.Inf(-1)} {
		var c Choreographer
		c.BeginTransition(CameraPose{}, CameraPose{Position: mgl64.Vec3{1, 0, 0}}, d)

		assert.Equal(t, MinTransitionSeconds, c.Duration(), "duration %v", d)

		c.Advance(0.025)
		assert.InDelta(t, 0.5, c.Progress(), 1e-9, "duration %v", d)
		assert.False(t, math.IsNaN(c.Progress()))
	}
}

func TestChoreographer_MonotonicProgress(t *testing.T) {
	var c Choreographer
	c.BeginTransition(CameraPose{}, CameraPose{Position: mgl64.Vec3{0, 0, 10}}, 2)

	prev := 0.0
	for _, d := range []float64{0.1, -0.5, 0.3, 0, math.NaN(), 0.7, 5} {
		c.Advance(d)
		assert.GreaterOrEqual(t, c.Progress(), prev)
		prev = c.Progress()
	}
	assert.Equal(t, 1.0, prev)
}

func TestChoreographer_NewTransitionReplacesOld(t *testing.T) {
	var c Choreographer
	c.BeginTransition(CameraPose{}, CameraPose{Position: mgl64.Vec3{10, 0, 0}}, 1)
	mid, _ := c.Advance(0.5)

	c.BeginTransition(mid, CameraPose{Position: mgl64.Vec3{0, 0, -10}}, 1)

	assert.Equal(t, 0.0, c.Progress())
	pose, ok := c.Sample()
	require.True(t, ok)
	assert.True(t, pose.Position.ApproxEqual(mid.Position), "restarts from the captured pose")
}

package playback

import (
	"github.com/go-gl/mathgl/mgl64"
)

// CameraPose is a look-at camera: where it sits, what it looks at, and its
// vertical field of view in degrees.
type CameraPose struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
	FOV      float64
}

// Lerp blends two poses component-wise.
func (p CameraPose) Lerp(to CameraPose, t float64) CameraPose {
	return CameraPose{
		Position: lerpVec3(p.Position, to.Position, t),
		Target:   lerpVec3(p.Target, to.Target, t),
		FOV:      lerp(p.FOV, to.FOV, t),
	}
}

// Smoothstep is the cubic Hermite ease t²(3−2t). Its slope is zero at both
// ends so camera moves start and stop without a velocity jump.
func Smoothstep(t float64) float64 {
	t = clamp(sanitize(t), 0, 1)
	return t * t * (3 - 2*t)
}

// Choreographer tweens the camera from a captured pose to a segment's pose.
// It is paced by its own duration and is unaware of the clip cursor.
type Choreographer struct {
	from     CameraPose
	to       CameraPose
	current  CameraPose
	t        float64
	duration float64
	started  bool
}

// BeginTransition replaces any transition in flight. The duration is floored
// at MinTransitionSeconds.
func (c *Choreographer) BeginTransition(from, to CameraPose, durationSeconds float64) {
	c.from = from
	c.to = to
	c.current = from
	c.t = 0
	c.duration = floorDuration(durationSeconds)
	c.started = true
}

// Advance moves the tween forward and returns the interpolated pose. The
// second result reports whether the pose changed this call.
func (c *Choreographer) Advance(delta float64) (CameraPose, bool) {
	if !c.started || c.t >= 1 || !isFinite(delta) || delta <= 0 {
		return c.current, false
	}

	c.t = clamp(c.t+delta/c.duration, 0, 1)
	c.current = c.from.Lerp(c.to, Smoothstep(c.t))
	return c.current, true
}

// Sample returns the current pose. ok is false until the first transition.
func (c *Choreographer) Sample() (pose CameraPose, ok bool) {
	return c.current, c.started
}

// Progress is the raw, un-eased tween parameter in [0,1].
func (c *Choreographer) Progress() float64 {
	return c.t
}

func (c *Choreographer) Duration() float64 {
	return c.duration
}

// Done reports whether the camera has arrived. An idle choreographer is done.
func (c *Choreographer) Done() bool {
	return !c.started || c.t >= 1
}

func (c *Choreographer) Target() CameraPose {
	return c.to
}

func lerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

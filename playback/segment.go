package playback

import (
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// DefaultTransitionSeconds is used when a segment does not say how long the camera move takes.
	DefaultTransitionSeconds = 0.6
	// MinTransitionSeconds floors every camera move so a transition always has interpolation frames.
	MinTransitionSeconds = 0.05
)

// CameraSpec is the camera pose a segment flies to.
type CameraSpec struct {
	Position    mgl64.Vec3
	Target      mgl64.Vec3
	FOV         *float64 // degrees, nil keeps the current camera fov
	MoveSeconds *float64 // nil uses DefaultTransitionSeconds
}

// AnimationSegment is a contiguous interval of clip-local time paired with a camera pose.
type AnimationSegment struct {
	Start float64
	End   float64
	Cam   CameraSpec
}

// TargetPose returns the pose the camera should arrive at for this segment.
func (s AnimationSegment) TargetPose(currentFOV float64) CameraPose {
	fov := currentFOV
	if s.Cam.FOV != nil && isFinite(*s.Cam.FOV) {
		fov = *s.Cam.FOV
	}
	return CameraPose{
		Position: s.Cam.Position,
		Target:   s.Cam.Target,
		FOV:      fov,
	}
}

// MoveDuration returns the camera travel time with the default and floor applied.
func (s AnimationSegment) MoveDuration() float64 {
	d := DefaultTransitionSeconds
	if s.Cam.MoveSeconds != nil {
		d = *s.Cam.MoveSeconds
	}
	return floorDuration(d)
}

// SegmentTable is an immutable ordered list of segments.
type SegmentTable struct {
	segments []AnimationSegment
}

func NewSegmentTable(segments []AnimationSegment) SegmentTable {
	cp := make([]AnimationSegment, len(segments))
	copy(cp, segments)
	return SegmentTable{segments: cp}
}

func (t SegmentTable) Len() int {
	return len(t.segments)
}

// At returns the segment at index, clamped into the table. An index past the
// end resolves to the last segment. ok is false only for an empty table.
func (t SegmentTable) At(index int) (AnimationSegment, bool) {
	if len(t.segments) == 0 {
		return AnimationSegment{}, false
	}
	return t.segments[t.Clamp(index)], true
}

// Clamp maps any index onto a valid position in a non-empty table.
func (t SegmentTable) Clamp(index int) int {
	if index < 0 || len(t.segments) == 0 {
		return 0
	}
	if index >= len(t.segments) {
		return len(t.segments) - 1
	}
	return index
}

func (t SegmentTable) Segments() []AnimationSegment {
	cp := make([]AnimationSegment, len(t.segments))
	copy(cp, t.segments)
	return cp
}

// Clip identifies the animation clip the segments index into.
type Clip struct {
	Name     string
	URL      string
	Duration float64 // seconds
}

func floorDuration(d float64) float64 {
	if !isFinite(d) || d < MinTransitionSeconds {
		return MinTransitionSeconds
	}
	return d
}

package components

import (
	"math"

	"github.com/automoto/segview/playback"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// Bone is one segment of the preview skeleton in model space.
type Bone struct {
	From, To mgl64.Vec3
}

// PoseData is the last pose applied to the model.
type PoseData struct {
	ClipTime    float64
	Evaluations int
	Bones       []Bone
}

var Pose = donburi.NewComponentType[PoseData]()

// gaitPeriod is the length of one stride cycle of the preview skeleton, seconds.
const gaitPeriod = 1.2

// PoseEvaluator applies clip time to an entry's PoseData. The cursor calls it
// after every jump and every tick.
type PoseEvaluator struct {
	entry *donburi.Entry
}

var _ playback.PoseEvaluator = (*PoseEvaluator)(nil)

func NewPoseEvaluator(entry *donburi.Entry) *PoseEvaluator {
	return &PoseEvaluator{entry: entry}
}

func (p *PoseEvaluator) Evaluate(clipTime float64) {
	if p.entry == nil || !p.entry.Valid() {
		return
	}
	pose := Pose.Get(p.entry)
	model := Model.Get(p.entry)

	pose.ClipTime = clipTime
	pose.Evaluations++
	pose.Bones = SkeletonPose(model.Bounds, clipTime, pose.Bones[:0])
}

// SkeletonPose builds a stick-figure pose that fills bounds at clip time t.
// The result is appended to dst.
func SkeletonPose(bounds playback.Box, t float64, dst []Bone) []Bone {
	if bounds.Empty() {
		return dst
	}
	size := bounds.Size()
	base := bounds.Min
	cx := base[0] + size[0]/2
	cz := base[2] + size[2]/2
	h := size[1]
	w := size[0]

	at := func(dx, fy float64) mgl64.Vec3 {
		return mgl64.Vec3{cx + dx, base[1] + fy*h, cz}
	}

	phase := 2 * math.Pi * t / gaitPeriod
	swing := 0.6 * math.Sin(phase)

	hip := at(0, 0.5)
	neck := at(0, 0.82)
	head := at(0, 1)

	dst = append(dst, Bone{hip, neck}, Bone{neck, head})

	for _, side := range []float64{-1, 1} {
		shoulder := at(side*w*0.3, 0.8)
		arm := limb(shoulder, 0.34*h, side*swing)
		dst = append(dst, Bone{neck, shoulder}, Bone{shoulder, arm})

		hipJoint := at(side*w*0.15, 0.5)
		knee := limb(hipJoint, 0.25*h, -side*swing)
		foot := limb(knee, 0.25*h, -side*swing*0.5)
		dst = append(dst, Bone{hip, hipJoint}, Bone{hipJoint, knee}, Bone{knee, foot})
	}
	return dst
}

// limb hangs a bone of length from a joint, swung about the X axis.
func limb(from mgl64.Vec3, length, angle float64) mgl64.Vec3 {
	return from.Add(mgl64.Vec3{0, -length * math.Cos(angle), length * math.Sin(angle)})
}

package placement

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// HitTester casts the primary viewer ray against tracked surfaces. Results are
// written into one scratch matrix that is overwritten on every Cast, so callers
// must copy what they keep.
type HitTester struct {
	surfaces *SurfaceMap
	scratch  mgl64.Mat4
}

func NewHitTester(surfaces *SurfaceMap) *HitTester {
	return &HitTester{surfaces: surfaces}
}

// Cast returns the pose of the nearest surface hit along the ray. The pose
// sits on the surface, +Y up, turned about Y to face the ray origin.
func (h *HitTester) Cast(origin, dir mgl64.Vec3) (*mgl64.Mat4, bool) {
	if h.surfaces == nil || dir.Len() == 0 {
		return nil, false
	}
	dir = dir.Normalize()

	best := math.Inf(1)
	var hit mgl64.Vec3
	found := false

	for _, height := range h.surfaces.Heights() {
		if math.Abs(dir[1]) < 1e-9 {
			break
		}
		dist := (height - origin[1]) / dir[1]
		if dist <= 0 || dist >= best {
			continue
		}
		p := origin.Add(dir.Mul(dist))
		if _, ok := h.surfaces.SurfaceAt(p[0], p[2], height); !ok {
			continue
		}
		best = dist
		hit = mgl64.Vec3{p[0], height, p[2]}
		found = true
	}

	if !found {
		return nil, false
	}

	yaw := math.Atan2(origin[0]-hit[0], origin[2]-hit[2])
	h.scratch = mgl64.Translate3D(hit[0], hit[1], hit[2]).Mul4(mgl64.HomogRotate3DY(yaw))
	return &h.scratch, true
}

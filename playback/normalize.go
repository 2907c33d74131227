package playback

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Box is a world-space axis-aligned bounding box.
type Box struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// EmptyBox returns a box that any Extend call will replace.
func EmptyBox() Box {
	inf := math.Inf(1)
	return Box{
		Min: mgl64.Vec3{inf, inf, inf},
		Max: mgl64.Vec3{-inf, -inf, -inf},
	}
}

func (b Box) Empty() bool {
	return b.Max[0] < b.Min[0] || b.Max[1] < b.Min[1] || b.Max[2] < b.Min[2]
}

func (b Box) Extend(p mgl64.Vec3) Box {
	for i := 0; i < 3; i++ {
		b.Min[i] = math.Min(b.Min[i], p[i])
		b.Max[i] = math.Max(b.Max[i], p[i])
	}
	return b
}

func (b Box) Size() mgl64.Vec3 {
	if b.Empty() {
		return mgl64.Vec3{}
	}
	return b.Max.Sub(b.Min)
}

func (b Box) Center() mgl64.Vec3 {
	if b.Empty() {
		return mgl64.Vec3{}
	}
	return b.Max.Add(b.Min).Mul(0.5)
}

// Corners lists the eight box vertices, bottom face first.
func (b Box) Corners() [8]mgl64.Vec3 {
	lo, hi := b.Min, b.Max
	return [8]mgl64.Vec3{
		{lo[0], lo[1], lo[2]},
		{hi[0], lo[1], lo[2]},
		{hi[0], lo[1], hi[2]},
		{lo[0], lo[1], hi[2]},
		{lo[0], hi[1], lo[2]},
		{hi[0], hi[1], lo[2]},
		{hi[0], hi[1], hi[2]},
		{lo[0], hi[1], hi[2]},
	}
}

// Normalization recentres and uniformly rescales an object.
type Normalization struct {
	Offset mgl64.Vec3
	Scale  float64
}

// Normalize moves the box centre to the origin and scales its longest axis to
// desiredSize. Degenerate boxes keep scale 1.
func Normalize(box Box, desiredSize float64) Normalization {
	size := box.Size()
	n := Normalization{
		Offset: box.Center().Mul(-1),
		Scale:  1,
	}

	maxAxis := math.Max(size[0], math.Max(size[1], size[2]))
	if maxAxis > 0 && isFinite(maxAxis) && isFinite(desiredSize) && desiredSize > 0 {
		n.Scale = desiredSize / maxAxis
	}
	return n
}

// Matrix returns Scale * Translate(Offset).
func (n Normalization) Matrix() mgl64.Mat4 {
	return mgl64.Scale3D(n.Scale, n.Scale, n.Scale).
		Mul4(mgl64.Translate3D(n.Offset[0], n.Offset[1], n.Offset[2]))
}

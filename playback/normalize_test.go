package playback

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	box := Box{Min: mgl64.Vec3{-1, 0, -0.5}, Max: mgl64.Vec3{1, 6, 0.5}}

	n := Normalize(box, 3)

	assert.True(t, n.Offset.ApproxEqual(mgl64.Vec3{0, -3, 0}))
	assert.InDelta(t, 0.5, n.Scale, 1e-12)

	m := n.Matrix()
	top := m.Mul4x1(mgl64.Vec4{1, 6, 0.5, 1}).Vec3()
	centre := m.Mul4x1(box.Center().Vec4(1)).Vec3()
	assert.True(t, centre.ApproxEqual(mgl64.Vec3{}), "bbox centre lands on the origin")
	assert.True(t, top.ApproxEqual(mgl64.Vec3{0.5, 1.5, 0.25}))
}

func TestNormalize_DegenerateBox(t *testing.T) {
	flat := Box{Min: mgl64.Vec3{2, 2, 2}, Max: mgl64.Vec3{2, 2, 2}}
	n := Normalize(flat, 3)
	assert.Equal(t, 1.0, n.Scale)
	assert.True(t, n.Offset.ApproxEqual(mgl64.Vec3{-2, -2, -2}))

	empty := Normalize(EmptyBox(), 3)
	assert.Equal(t, 1.0, empty.Scale)
	assert.Equal(t, mgl64.Vec3{}, empty.Offset)
}

func TestBox_Extend(t *testing.T) {
	b := EmptyBox()
	assert.True(t, b.Empty())

	b = b.Extend(mgl64.Vec3{1, -1, 0}).Extend(mgl64.Vec3{-2, 3, 4})

	assert.False(t, b.Empty())
	assert.Equal(t, mgl64.Vec3{-2, -1, 0}, b.Min)
	assert.Equal(t, mgl64.Vec3{1, 3, 4}, b.Max)
	assert.Equal(t, mgl64.Vec3{3, 4, 4}, b.Size())
}

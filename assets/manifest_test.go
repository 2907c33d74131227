package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultManifest(t *testing.T) {
	m, err := DefaultManifest()
	require.NoError(t, err)

	require.NotNil(t, m.Clip)
	assert.Equal(t, "Take 001", m.Clip.Name)
	assert.Equal(t, 12.0, m.Clip.Duration)
	assert.Equal(t, 4, m.Segments.Len())
	assert.True(t, m.Placement.Enabled)
	assert.Len(t, m.Placement.Surfaces, 2)
	assert.False(t, m.Bounds.Empty())

	for i, seg := range m.Segments.Segments() {
		assert.LessOrEqual(t, seg.Start, seg.End, "segment %d", i)
		assert.LessOrEqual(t, seg.End, m.Clip.Duration, "segment %d", i)
	}
}

func TestParseManifest_SegmentFields(t *testing.T) {
	data := []byte(`
clip: {url: /model.glb, name: Walk, duration: 6}
segments:
  - start: 2
    end: 5
    cam:
      position: [0, 1, 3]
      target: [0, 0, 0]
      moveSeconds: 1
  - start: 5
    end: 6
    cam:
      position: [1, 1, 1]
      target: [0, 0.5, 0]
      fov: 30
`)

	m, err := ParseManifest(data)
	require.NoError(t, err)
	require.Equal(t, 2, m.Segments.Len())

	first, _ := m.Segments.At(0)
	assert.Equal(t, 2.0, first.Start)
	assert.Equal(t, 5.0, first.End)
	assert.Equal(t, mgl64.Vec3{0, 1, 3}, first.Cam.Position)
	assert.Nil(t, first.Cam.FOV)
	require.NotNil(t, first.Cam.MoveSeconds)
	assert.Equal(t, 1.0, *first.Cam.MoveSeconds)

	second, _ := m.Segments.At(1)
	require.NotNil(t, second.Cam.FOV)
	assert.Equal(t, 30.0, *second.Cam.FOV)
	assert.Nil(t, second.Cam.MoveSeconds)

	assert.True(t, m.Bounds.Empty(), "no bounds given")
	assert.False(t, m.Placement.Enabled)
}

func TestParseManifest_KeepsOutOfRangeTimes(t *testing.T) {
	m, err := ParseManifest([]byte(`
clip: {duration: 3}
segments:
  - {start: -1, end: 10, cam: {position: [0, 0, 1], target: [0, 0, 0], moveSeconds: 0}}
`))
	require.NoError(t, err)

	seg, _ := m.Segments.At(0)
	assert.Equal(t, -1.0, seg.Start)
	assert.Equal(t, 10.0, seg.End)
}

func TestParseManifest_NoClip(t *testing.T) {
	m, err := ParseManifest([]byte(`segments: []`))
	require.NoError(t, err)
	assert.Nil(t, m.Clip)
	assert.Equal(t, 0, m.Segments.Len())
}

func TestParseManifest_Errors(t *testing.T) {
	tests := map[string]string{
		"bad yaml":        "segments: [",
		"short position":  "segments: [{cam: {position: [0, 1]}}]",
		"long target":     "segments: [{cam: {target: [0, 1, 2, 3]}}]",
		"short bounds":    "bounds: {min: [0], max: [1, 1, 1]}",
		"surface missing": "placement: {surfaces: [{id: floor, max: [1, 1]}]}",
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseManifest([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "viewer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("clip: {name: Idle, duration: 1}\n"), 0o644))

	m, err := LoadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, "Idle", m.Clip.Name)

	_, err = LoadManifest(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

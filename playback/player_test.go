package playback

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func testSegments() SegmentTable {
	return NewSegmentTable([]AnimationSegment{
		{Start: 0, End: 2, Cam: CameraSpec{Position: mgl64.Vec3{0, 1, 4}, MoveSeconds: floatPtr(1)}},
		{Start: 2, End: 5, Cam: CameraSpec{Position: mgl64.Vec3{0, 1, 3}, FOV: floatPtr(35), MoveSeconds: floatPtr(0.5)}},
		{Start: 5, End: 9, Cam: CameraSpec{Position: mgl64.Vec3{3, 2, 0}, Target: mgl64.Vec3{0, 1, 0}}},
	})
}

func TestSegmentTable_AtClampsIndex(t *testing.T) {
	table := testSegments()

	seg, ok := table.At(1)
	require.True(t, ok)
	assert.Equal(t, 2.0, seg.Start)

	last, ok := table.At(42)
	require.True(t, ok)
	assert.Equal(t, 5.0, last.Start)

	first, ok := table.At(-1)
	require.True(t, ok)
	assert.Equal(t, 0.0, first.Start)

	_, ok = NewSegmentTable(nil).At(0)
	assert.False(t, ok)
}

func TestSegmentTable_IsImmutable(t *testing.T) {
	src := []AnimationSegment{{Start: 1, End: 2}}
	table := NewSegmentTable(src)

	src[0].Start = 99
	out := table.Segments()
	out[0].End = 99

	seg, _ := table.At(0)
	assert.Equal(t, 1.0, seg.Start)
	assert.Equal(t, 2.0, seg.End)
}

func TestAnimationSegment_Defaults(t *testing.T) {
	var seg AnimationSegment
	assert.Equal(t, DefaultTransitionSeconds, seg.MoveDuration())
	assert.Equal(t, 50.0, seg.TargetPose(50).FOV)

	seg.Cam.MoveSeconds = floatPtr(0)
	assert.Equal(t, MinTransitionSeconds, seg.MoveDuration())

	seg.Cam.FOV = floatPtr(20)
	assert.Equal(t, 20.0, seg.TargetPose(50).FOV)
}

func TestPlayer_NothingToPlay(t *testing.T) {
	p := NewPlayer(nil)

	assert.ErrorIs(t, p.Load(nil, testSegments()), ErrNothingToPlay)
	assert.ErrorIs(t, p.Load(&Clip{Duration: 9}, NewSegmentTable(nil)), ErrNothingToPlay)
	assert.False(t, p.Active())
	assert.Nil(t, p.Cursor())

	assert.ErrorIs(t, p.Select(0, CameraPose{}, true), ErrNothingToPlay)
	_, changed := p.Advance(1)
	assert.False(t, changed)
}

func TestPlayer_IdleAfterFailedReload(t *testing.T) {
	p := NewPlayer(nil)
	require.NoError(t, p.Load(&Clip{Duration: 9}, testSegments()))

	assert.ErrorIs(t, p.Load(&Clip{Duration: 9}, SegmentTable{}), ErrNothingToPlay)
	assert.False(t, p.Active())
}

func TestPlayer_SelectReanchorsAndMovesCamera(t *testing.T) {
	eval := &recordingEvaluator{}
	p := NewPlayer(eval)
	require.NoError(t, p.Load(&Clip{Name: "Take 001", Duration: 9}, testSegments()))

	current := CameraPose{Position: mgl64.Vec3{0, 1, 0}, FOV: 45}
	require.NoError(t, p.Select(1, current, true))

	assert.Equal(t, 1, p.Index())
	assert.Equal(t, 2.0, p.Cursor().Time())
	assert.Equal(t, []float64{2}, eval.times)
	assert.Equal(t, 0.5, p.Camera().Duration())
	assert.Equal(t, 35.0, p.Camera().Target().FOV)

	pose, changed := p.Advance(0.25)
	require.True(t, changed)
	assert.InDelta(t, 1.5, pose.Position[2], 1e-9)
	assert.InDelta(t, 40.0, pose.FOV, 1e-9)
	assert.Equal(t, 2.25, p.Cursor().Time())
}

func TestPlayer_CameraAndCursorAreIndependent(t *testing.T) {
	p := NewPlayer(nil)
	require.NoError(t, p.Load(&Clip{Duration: 9}, testSegments()))
	require.NoError(t, p.Select(1, CameraPose{FOV: 45}, true))

	p.Advance(0.5)
	assert.True(t, p.Camera().Done(), "camera arrives first")
	assert.False(t, p.Cursor().Halted())

	p.Advance(3)
	assert.True(t, p.Cursor().Halted())
	assert.Equal(t, 5.0, p.Cursor().Time())
}

func TestPlayer_SelectWithoutCamera(t *testing.T) {
	p := NewPlayer(nil)
	require.NoError(t, p.Load(&Clip{Duration: 9}, testSegments()))

	require.NoError(t, p.Select(2, CameraPose{FOV: 45}, false))

	_, ok := p.Camera().Sample()
	assert.False(t, ok)
	assert.Equal(t, 5.0, p.Cursor().Time())
}

func TestPlayer_IndexPastEndPlaysLastSegment(t *testing.T) {
	p := NewPlayer(nil)
	require.NoError(t, p.Load(&Clip{Duration: 9}, testSegments()))

	require.NoError(t, p.Select(7, CameraPose{}, true))

	assert.Equal(t, 2, p.Index())
	assert.Equal(t, 5.0, p.Segment().Start)
}

func TestPlayer_ReplayIsDeterministic(t *testing.T) {
	run := func() (CameraPose, float64) {
		p := NewPlayer(nil)
		require.NoError(t, p.Load(&Clip{Duration: 9}, testSegments()))
		require.NoError(t, p.Select(0, CameraPose{FOV: 45}, true))

		var pose CameraPose
		for i, d := range []float64{1.0 / 60, 1.0 / 30, 0.1, 0.2, 1.0 / 60} {
			if i == 3 {
				require.NoError(t, p.Select(2, pose, true))
			}
			pose, _ = p.Advance(d)
		}
		return pose, p.Cursor().Time()
	}

	poseA, timeA := run()
	poseB, timeB := run()
	assert.Equal(t, poseA, poseB)
	assert.Equal(t, timeA, timeB)
}

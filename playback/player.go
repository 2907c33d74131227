package playback

import (
	"errors"
)

// ErrNothingToPlay is returned when there is no clip or no segment to play.
var ErrNothingToPlay = errors.New("playback: nothing to play")

// Player wires the segment table to a clip cursor and a camera choreographer.
// It is driven by a single frame loop and is not safe for concurrent use.
type Player struct {
	evaluator PoseEvaluator

	clip    Clip
	table   SegmentTable
	cursor  *ClipCursor
	camera  Choreographer
	index   int
	segment AnimationSegment
	active  bool
}

// NewPlayer returns an idle player. Pose evaluations are forwarded to evaluator.
func NewPlayer(evaluator PoseEvaluator) *Player {
	return &Player{evaluator: evaluator}
}

// Load attaches a clip and its segments. On ErrNothingToPlay the player is
// idle until a later successful Load.
func (p *Player) Load(clip *Clip, table SegmentTable) error {
	if clip == nil || table.Len() == 0 {
		p.reset()
		return ErrNothingToPlay
	}

	p.clip = *clip
	p.table = table
	p.cursor = NewClipCursor(clip.Duration, p.evaluator)
	p.camera = Choreographer{}
	p.index = 0
	p.segment = AnimationSegment{}
	p.active = true
	return nil
}

func (p *Player) reset() {
	p.clip = Clip{}
	p.table = SegmentTable{}
	p.cursor = nil
	p.camera = Choreographer{}
	p.index = 0
	p.segment = AnimationSegment{}
	p.active = false
}

// Select makes the segment at index active: the cursor jumps to its start and,
// when moveCamera is set, the camera starts flying from current to the segment
// pose. Any earlier transition is abandoned.
func (p *Player) Select(index int, current CameraPose, moveCamera bool) error {
	if !p.active {
		return ErrNothingToPlay
	}

	seg, _ := p.table.At(index)
	p.index = p.table.Clamp(index)
	p.segment = seg

	p.cursor.Reanchor(seg.Start, seg.End)
	if moveCamera {
		p.camera.BeginTransition(current, seg.TargetPose(current.FOV), seg.MoveDuration())
	}
	return nil
}

// Advance runs one frame: the cursor first, then the camera. It returns the
// camera pose and whether it changed.
func (p *Player) Advance(delta float64) (CameraPose, bool) {
	if !p.active {
		return CameraPose{}, false
	}
	p.cursor.Advance(delta)
	return p.camera.Advance(delta)
}

func (p *Player) Active() bool {
	return p.active
}

func (p *Player) Index() int {
	return p.index
}

func (p *Player) Segment() AnimationSegment {
	return p.segment
}

func (p *Player) Table() SegmentTable {
	return p.table
}

func (p *Player) Clip() Clip {
	return p.clip
}

// Cursor is nil while the player is idle.
func (p *Player) Cursor() *ClipCursor {
	return p.cursor
}

func (p *Player) Camera() *Choreographer {
	return &p.camera
}

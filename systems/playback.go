package systems

import (
	"math"

	"github.com/automoto/segview/components"
	cfg "github.com/automoto/segview/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayback advances the clip cursor and the camera tween by one frame.
// Camera poses are only written outside a placement session.
func UpdatePlayback(e *ecs.ECS) {
	viewer, ok := viewerEntry(e)
	if !ok {
		return
	}
	pb := components.Playback.Get(viewer)
	if pb.Idle {
		return
	}

	pose, changed := pb.Player.Advance(frameDelta())
	if !changed || components.Session.Get(viewer).Presenting {
		return
	}
	if camEntry, ok := cameraEntry(e); ok {
		components.Camera.Get(camEntry).Pose = pose
	}
}

// frameDelta is the fixed tick length in seconds, capped for long stalls.
func frameDelta() float64 {
	delta := cfg.Viewer.FrameDelta
	if delta <= 0 {
		delta = 1 / float64(ebiten.TPS())
	}
	if cfg.Viewer.MaxFrameDelta > 0 {
		delta = math.Min(delta, cfg.Viewer.MaxFrameDelta)
	}
	return delta
}

package systems

import (
	"fmt"
	"log"

	"github.com/automoto/segview/components"
	cfg "github.com/automoto/segview/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSegmentSelection turns navigation input into segment requests and
// applies the latest one. While a placement session is presenting the camera
// belongs to the viewer, so only the cursor jumps.
func UpdateSegmentSelection(e *ecs.ECS) {
	viewer, ok := viewerEntry(e)
	if !ok {
		return
	}
	pb := components.Playback.Get(viewer)
	if pb.Idle {
		return
	}
	player := pb.Player
	req := components.SegmentRequest.Get(viewer)
	input := getOrCreateInput(e)

	switch {
	case input.SegmentJump >= 0:
		req.Request(input.SegmentJump)
	case GetAction(input, cfg.ActionPrevSegment).JustPressed:
		StepSegment(e, -1)
	case GetAction(input, cfg.ActionNextSegment).JustPressed:
		StepSegment(e, 1)
	case GetAction(input, cfg.ActionReplaySegment).JustPressed:
		StepSegment(e, 0)
	}

	if !req.Pending {
		return
	}
	req.Pending = false

	camEntry, ok := cameraEntry(e)
	if !ok {
		return
	}
	camera := components.Camera.Get(camEntry)
	presenting := components.Session.Get(viewer).Presenting

	if err := player.Select(req.Index, camera.Pose, !presenting); err != nil {
		log.Printf("Warning: Could not select segment %d: %v", req.Index, err)
		return
	}

	seg := player.Segment()
	ShowToast(e, fmt.Sprintf("Segment %d/%d  %.1fs - %.1fs", player.Index()+1, player.Table().Len(), seg.Start, seg.End))
}

// StepSegment requests the segment step places away from the active one,
// stopping at either end of the table. A step of 0 replays it.
func StepSegment(e *ecs.ECS, step int) {
	viewer, ok := viewerEntry(e)
	if !ok {
		return
	}
	pb := components.Playback.Get(viewer)
	if pb.Idle {
		return
	}
	last := pb.Player.Table().Len() - 1
	index := min(max(pb.Player.Index()+step, 0), last)
	components.SegmentRequest.Get(viewer).Request(index)
}

// ViewerStatus is the state the control bar displays.
type ViewerStatus struct {
	Label      string
	Index      int
	Count      int
	Available  bool
	Presenting bool
}

func GetViewerStatus(e *ecs.ECS) ViewerStatus {
	viewer, ok := viewerEntry(e)
	if !ok {
		return ViewerStatus{}
	}
	session := components.Session.Get(viewer)
	status := ViewerStatus{
		Label:      "Nothing to play",
		Available:  session.Available,
		Presenting: session.Presenting,
	}
	if pb := components.Playback.Get(viewer); !pb.Idle {
		status.Index = pb.Player.Index()
		status.Count = pb.Player.Table().Len()
		status.Label = fmt.Sprintf("%d / %d", status.Index+1, status.Count)
	}
	return status
}

package systems

import (
	"github.com/automoto/segview/components"
	cfg "github.com/automoto/segview/config"
	"github.com/automoto/segview/placement"
	"github.com/yohamta/donburi/ecs"
)

const placementHint = "Tap a surface to place the model."

// ToggleSession flips the requested placement session. It does nothing when
// placement is unavailable.
func ToggleSession(e *ecs.ECS) {
	viewer, ok := viewerEntry(e)
	if !ok {
		return
	}
	session := components.Session.Get(viewer)
	if !session.Available {
		return
	}
	session.Requested = !session.Requested
}

// UpdateSession reconciles the presenting flag with the request and feeds it
// to the session watcher, which resets the tracker when a session ends.
// Entering or leaving a session replays the active segment.
func UpdateSession(e *ecs.ECS) {
	viewer, ok := viewerEntry(e)
	if !ok {
		return
	}
	session := components.Session.Get(viewer)

	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionToggleSession).JustPressed {
		ToggleSession(e)
	}

	presenting := session.Available && session.Requested
	changed := presenting != session.Presenting
	session.Presenting = presenting

	components.Placement.Get(viewer).Watcher.Observe(presenting)

	if !changed {
		return
	}
	if presenting {
		ShowToast(e, placementHint)
	} else {
		ShowToast(e, "Placement ended")
	}
	if !components.SegmentRequest.Get(viewer).Pending {
		StepSegment(e, 0)
	}
}

// UpdatePlacement casts the pointer ray against tracked surfaces and commits
// the candidate on select. It runs after UpdateCamera so the ray uses this
// frame's matrices.
func UpdatePlacement(e *ecs.ECS) {
	viewer, ok := viewerEntry(e)
	if !ok || !components.Session.Get(viewer).Presenting {
		return
	}
	camEntry, ok := cameraEntry(e)
	if !ok {
		return
	}
	pl := components.Placement.Get(viewer)
	input := getOrCreateInput(e)

	if origin, dir, ok := pickRay(components.Camera.Get(camEntry), input.Cursor.X, input.Cursor.Y); ok {
		if hit, ok := pl.HitTester.Cast(origin, dir); ok {
			pl.Tracker.OnHitTestResult(hit)
		}
	}

	if !input.Tapped && !GetAction(input, cfg.ActionSelect).JustPressed {
		return
	}
	before := pl.Tracker.State()
	pl.Tracker.OnSelect()
	if before == placement.Candidate && pl.Tracker.State() == placement.Committed {
		ShowToast(e, "Model placed")
	}
}

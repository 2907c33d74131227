package systems

import (
	"github.com/automoto/segview/components"
	cfg "github.com/automoto/segview/config"
	"github.com/automoto/segview/playback"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

var worldUp = mgl64.Vec3{0, 1, 0}

// UpdateCamera derives the view and projection matrices for this frame. While
// a placement session is presenting the pose is pinned to the viewer.
func UpdateCamera(e *ecs.ECS) {
	camEntry, ok := cameraEntry(e)
	if !ok {
		return
	}
	camera := components.Camera.Get(camEntry)

	if viewer, ok := viewerEntry(e); ok && components.Session.Get(viewer).Presenting {
		camera.Pose = viewerPose()
	}

	pose := camera.Pose
	eye, target := pose.Position, pose.Target
	if eye.Sub(target).Len() < 1e-9 {
		target = eye.Sub(mgl64.Vec3{0, 0, 1})
	}
	camera.View = mgl64.LookAtV(eye, target, worldUp)

	fov := pose.FOV
	if fov <= 0 || fov >= 180 {
		fov = cfg.Camera.StartFOV
	}
	camera.Projection = mgl64.Perspective(mgl64.DegToRad(fov), camera.Aspect, cfg.Camera.Near, cfg.Camera.Far)
}

func viewerPose() playback.CameraPose {
	return playback.CameraPose{
		Position: mgl64.Vec3(cfg.Camera.ViewerPosition),
		Target:   mgl64.Vec3(cfg.Camera.ViewerTarget),
		FOV:      cfg.Camera.ViewerFOV,
	}
}

// pickRay returns the world-space ray through screen pixel (x, y).
func pickRay(camera *components.CameraData, x, y float64) (origin, dir mgl64.Vec3, ok bool) {
	w, h := cfg.C.Width, cfg.C.Height
	win := mgl64.Vec3{x, float64(h) - y, 0}

	near, err := mgl64.UnProject(win, camera.View, camera.Projection, 0, 0, w, h)
	if err != nil {
		return origin, dir, false
	}
	win[2] = 1
	far, err := mgl64.UnProject(win, camera.View, camera.Projection, 0, 0, w, h)
	if err != nil {
		return origin, dir, false
	}
	return near, far.Sub(near), true
}

// project maps a world point to screen pixels. Points behind the near plane
// are reported as not visible.
func project(viewProj mgl64.Mat4, p mgl64.Vec3) (x, y float32, visible bool) {
	clip := viewProj.Mul4x1(p.Vec4(1))
	if clip[3] <= cfg.Camera.Near {
		return 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip[3])
	x = float32((ndc[0] + 1) / 2 * float64(cfg.C.Width))
	y = float32((1 - ndc[1]) / 2 * float64(cfg.C.Height))
	return x, y, true
}

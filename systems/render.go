package systems

import (
	"image/color"

	"github.com/automoto/segview/components"
	cfg "github.com/automoto/segview/config"
	"github.com/automoto/segview/placement"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// Box corner pairs, indexed as returned by playback.Box.Corners.
var boxEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// DrawScene renders the floor grid, tracked surfaces while presenting, and the
// model as a wireframe of its bounds and skeleton.
func DrawScene(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Background)

	camEntry, ok := cameraEntry(e)
	if !ok {
		return
	}
	camera := components.Camera.Get(camEntry)
	viewProj := camera.Projection.Mul4(camera.View)

	drawGrid(screen, viewProj)

	if viewer, ok := viewerEntry(e); ok && components.Session.Get(viewer).Presenting {
		drawSurfaces(screen, viewProj, components.Placement.Get(viewer))
	}

	if entry, ok := modelEntry(e); ok {
		model := components.Model.Get(entry)
		mvp := viewProj.Mul4(model.World)

		if !model.Bounds.Empty() {
			corners := model.Bounds.Corners()
			for _, edge := range boxEdges {
				drawSegment(screen, mvp, corners[edge[0]], corners[edge[1]], 1, cfg.HUD.WireColor)
			}
		}
		for _, bone := range components.Pose.Get(entry).Bones {
			drawSegment(screen, mvp, bone.From, bone.To, 2, cfg.HUD.BoneColor)
		}
	}
}

func drawGrid(screen *ebiten.Image, viewProj mgl64.Mat4) {
	n := float64(cfg.HUD.GridHalfLines)
	for i := -n; i <= n; i++ {
		drawSegment(screen, viewProj, mgl64.Vec3{i, 0, -n}, mgl64.Vec3{i, 0, n}, 1, cfg.HUD.GridColor)
		drawSegment(screen, viewProj, mgl64.Vec3{-n, 0, i}, mgl64.Vec3{n, 0, i}, 1, cfg.HUD.GridColor)
	}
}

func drawSurfaces(screen *ebiten.Image, viewProj mgl64.Mat4, pl *components.PlacementData) {
	for _, s := range pl.Surfaces.Surfaces() {
		quad := [4]mgl64.Vec3{
			{s.Min[0], s.Height, s.Min[1]},
			{s.Max[0], s.Height, s.Min[1]},
			{s.Max[0], s.Height, s.Max[1]},
			{s.Min[0], s.Height, s.Max[1]},
		}
		for i := range quad {
			drawSegment(screen, viewProj, quad[i], quad[(i+1)%4], 1, cfg.HUD.SurfaceColor)
		}
	}

	transform, ok := pl.Tracker.Transform()
	if !ok {
		return
	}
	x, y, visible := project(viewProj, transform.Col(3).Vec3())
	if !visible {
		return
	}
	clr := cfg.HUD.ReticleColor
	if pl.Tracker.State() == placement.Committed {
		clr = cfg.HUD.CommitColor
	}
	vector.StrokeCircle(screen, x, y, float32(cfg.Placement.ReticleRadius), 2, clr, true)
}

// drawSegment draws a 3D line. Segments with an endpoint behind the camera are
// skipped rather than clipped.
func drawSegment(screen *ebiten.Image, m mgl64.Mat4, a, b mgl64.Vec3, width float32, clr color.Color) {
	x0, y0, ok := project(m, a)
	if !ok {
		return
	}
	x1, y1, ok := project(m, b)
	if !ok {
		return
	}
	vector.StrokeLine(screen, x0, y0, x1, y1, width, clr, true)
}

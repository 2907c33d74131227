package factory

import (
	"log"

	"github.com/automoto/segview/archetypes"
	"github.com/automoto/segview/assets"
	"github.com/automoto/segview/components"
	cfg "github.com/automoto/segview/config"
	"github.com/automoto/segview/placement"
	"github.com/automoto/segview/playback"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateViewer spawns the entity that owns playback and placement for model.
// A manifest without a clip or segments leaves playback idle.
func CreateViewer(ecs *ecs.ECS, manifest *assets.Manifest, model *donburi.Entry) *donburi.Entry {
	viewer := archetypes.Viewer.Spawn(ecs)

	player := playback.NewPlayer(components.NewPoseEvaluator(model))
	idle := false
	if err := player.Load(manifest.Clip, manifest.Segments); err != nil {
		log.Printf("Warning: %v, viewer stays idle", err)
		idle = true
	}
	components.Playback.SetValue(viewer, components.PlaybackData{
		Player: player,
		Idle:   idle,
	})

	if !idle {
		components.SegmentRequest.Get(viewer).Request(cfg.Viewer.StartSegment)
	}

	extent := manifest.Placement.Extent
	if extent <= 0 {
		extent = cfg.Placement.SurfaceExtent
	}
	surfaces := placement.NewSurfaceMap(extent)
	for _, s := range manifest.Placement.Surfaces {
		surfaces.Add(s)
	}

	tracker := placement.NewTracker(func(transform *mgl64.Mat4) {
		components.Model.Get(model).Placed = transform
	})
	components.Placement.SetValue(viewer, components.PlacementData{
		Tracker:   tracker,
		Watcher:   placement.NewSessionWatcher(tracker),
		Surfaces:  surfaces,
		HitTester: placement.NewHitTester(surfaces),
	})

	available := cfg.Placement.Enabled && manifest.Placement.Enabled && surfaces.Len() > 0
	components.Session.SetValue(viewer, components.SessionData{
		Available: available,
		Requested: available && cfg.Viewer.StartPresenting,
	})
	components.HUD.SetValue(viewer, components.HUDData{Visible: cfg.Debug.ShowHUD})

	return viewer
}

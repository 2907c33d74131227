package scenes

import (
	"log"
	"sync"

	"github.com/automoto/segview/assets"
	cfg "github.com/automoto/segview/config"
	"github.com/automoto/segview/playback"
	"github.com/automoto/segview/systems"
	"github.com/automoto/segview/systems/factory"
	"github.com/automoto/segview/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// ViewerScene plays the segments of one model and hosts the placement session.
type ViewerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	controls     *ui.ControlsUI
	once         sync.Once
}

func NewViewerScene(sc SceneChanger) *ViewerScene {
	return &ViewerScene{sceneChanger: sc}
}

func (vs *ViewerScene) Update() {
	vs.once.Do(vs.configure)

	// Button callbacks queue requests that the systems below apply this frame
	vs.controls.Update()
	vs.ecs.Update()

	status := systems.GetViewerStatus(vs.ecs)
	vs.controls.SetSegment(status.Label, status.Index, status.Count)
	vs.controls.SetPlacement(status.Available, status.Presenting)
}

func (vs *ViewerScene) Draw(screen *ebiten.Image) {
	if vs.ecs == nil {
		screen.Fill(cfg.Background)
		return
	}
	vs.ecs.Draw(screen)
	vs.controls.UI.Draw(screen)
}

func (vs *ViewerScene) configure() {
	manifest := loadManifest()

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSession) // Before segment selection: session changes replay the segment
	ecs.AddSystem(systems.UpdateSegmentSelection)
	ecs.AddSystem(systems.UpdatePlayback)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdatePlacement) // Needs this frame's camera matrices
	ecs.AddSystem(systems.UpdateModel)
	ecs.AddSystem(systems.UpdateHUD)
	ecs.AddSystem(systems.UpdatePersistence)

	ecs.AddRenderer(cfg.Default, systems.DrawScene)
	ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)

	vs.ecs = ecs

	factory.CreateCamera(vs.ecs)
	model := factory.CreateModel(vs.ecs, manifest.Bounds)
	factory.CreateViewer(vs.ecs, manifest, model)

	vs.controls = ui.NewControlsUI(
		func() { systems.StepSegment(vs.ecs, -1) },
		func() { systems.StepSegment(vs.ecs, 1) },
		func() { systems.StepSegment(vs.ecs, 0) },
		func() { systems.ToggleSession(vs.ecs) },
	)
}

// loadManifest reads the configured manifest, falling back to the embedded
// one. If neither loads the viewer starts idle.
func loadManifest() *assets.Manifest {
	if cfg.Viewer.ManifestPath != "" {
		m, err := assets.LoadManifest(cfg.Viewer.ManifestPath)
		if err == nil {
			return m
		}
		log.Printf("Warning: Could not load manifest, using the bundled one: %v", err)
	}

	m, err := assets.DefaultManifest()
	if err != nil {
		log.Printf("Warning: Could not load bundled manifest: %v", err)
		return &assets.Manifest{Bounds: playback.EmptyBox()}
	}
	return m
}

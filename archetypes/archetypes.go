package archetypes

import (
	"github.com/automoto/segview/components"
	cfg "github.com/automoto/segview/config"
	"github.com/automoto/segview/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Viewer = newArchetype(
		tags.Viewer,
		components.Playback,
		components.SegmentRequest,
		components.Session,
		components.Placement,
		components.HUD,
		components.Toast,
	)
	Model = newArchetype(
		tags.Model,
		components.Model,
		components.Pose,
	)
	Camera = newArchetype(
		tags.Camera,
		components.Camera,
	)
	Input = newArchetype(
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

package factory

import (
	"github.com/automoto/segview/archetypes"
	"github.com/automoto/segview/components"
	cfg "github.com/automoto/segview/config"
	"github.com/automoto/segview/playback"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateModel spawns the viewed model with its bind-pose bounds.
func CreateModel(ecs *ecs.ECS, bounds playback.Box) *donburi.Entry {
	model := archetypes.Model.Spawn(ecs)
	components.Model.SetValue(model, components.ModelData{
		Bounds:        bounds,
		Normalization: playback.Normalize(bounds, cfg.Viewer.DesiredSize),
		World:         mgl64.Ident4(),
	})
	components.Pose.SetValue(model, components.PoseData{
		Bones: components.SkeletonPose(bounds, 0, nil),
	})
	return model
}

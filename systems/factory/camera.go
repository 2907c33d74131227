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

func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Pose: playback.CameraPose{
			Position: mgl64.Vec3(cfg.Camera.StartPosition),
			Target:   mgl64.Vec3(cfg.Camera.StartTarget),
			FOV:      cfg.Camera.StartFOV,
		},
		Aspect: float64(cfg.C.Width) / float64(cfg.C.Height),
	})
	return camera
}

package components

import (
	"github.com/automoto/segview/playback"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// ModelData positions the viewed model in the world.
type ModelData struct {
	Bounds        playback.Box // Bind-pose bounds in model space
	Normalization playback.Normalization
	RotationY     float64     // Drag rotation, radians
	Placed        *mgl64.Mat4 // Committed or candidate placement, nil when none
	World         mgl64.Mat4
}

var Model = donburi.NewComponentType[ModelData]()

package components

import (
	"github.com/automoto/segview/playback"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CameraData is the render camera. Systems write Pose; View and Projection are
// derived from it once per frame.
type CameraData struct {
	Pose       playback.CameraPose
	View       mgl64.Mat4
	Projection mgl64.Mat4
	Aspect     float64
}

var Camera = donburi.NewComponentType[CameraData]()

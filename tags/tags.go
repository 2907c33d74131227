package tags

import "github.com/yohamta/donburi"

var (
	Viewer = donburi.NewTag().SetName("Viewer")
	Model  = donburi.NewTag().SetName("Model")
	Camera = donburi.NewTag().SetName("Camera")
)

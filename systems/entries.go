package systems

import (
	"github.com/automoto/segview/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func viewerEntry(e *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Viewer.First(e.World)
}

func modelEntry(e *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Model.First(e.World)
}

func cameraEntry(e *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Camera.First(e.World)
}

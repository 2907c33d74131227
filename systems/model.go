package systems

import (
	"github.com/automoto/segview/components"
	cfg "github.com/automoto/segview/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

// UpdateModel computes the model's world matrix. Outside a placement session
// the model is centred and scaled to the viewer size and turns with mouse
// drags; while presenting it keeps its real scale and follows the placement.
func UpdateModel(e *ecs.ECS) {
	entry, ok := modelEntry(e)
	if !ok {
		return
	}
	model := components.Model.Get(entry)

	presenting := false
	if viewer, ok := viewerEntry(e); ok {
		presenting = components.Session.Get(viewer).Presenting
	}

	if presenting {
		if model.Placed != nil {
			model.World = *model.Placed
		} else {
			model.World = mgl64.Ident4()
		}
		return
	}

	input := getOrCreateInput(e)
	if input.Dragging {
		model.RotationY += input.DragDeltaX * cfg.Viewer.DragRotation
	}
	model.World = mgl64.HomogRotate3DY(model.RotationY).Mul4(model.Normalization.Matrix())
}

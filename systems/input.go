package systems

import (
	"github.com/automoto/segview/archetypes"
	"github.com/automoto/segview/components"
	cfg "github.com/automoto/segview/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE every system that reads actions.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, mouseUsed, gamepadUsed bool

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				input.Current[actionID] = true
				mouseUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	input.SegmentJump = -1
	for i, key := range cfg.Input.SegmentKeys {
		if inpututil.IsKeyJustPressed(key) {
			input.SegmentJump = i
			keyboardUsed = true
		}
	}

	if updatePointer(input) {
		mouseUsed = true
	}

	// Gamepad takes priority if several devices were used this frame
	switch {
	case gamepadUsed:
		input.LastInputMethod = components.InputGamepad
	case keyboardUsed:
		input.LastInputMethod = components.InputKeyboard
	case mouseUsed:
		input.LastInputMethod = components.InputMouse
	}
}

// updatePointer tracks taps and horizontal drags of the left button. Presses
// that start on the control bar belong to the UI and are ignored.
func updatePointer(input *components.InputData) bool {
	x, y := ebiten.CursorPosition()
	prevX := input.Cursor.X
	input.Cursor.X = float64(x)
	input.Cursor.Y = float64(y)

	input.Tapped = false
	input.DragDeltaX = 0

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if !onControlBar(float64(y)) {
			input.Tapped = true
			input.Dragging = true
		}
		return true
	}

	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		input.Dragging = false
		return false
	}

	if input.Dragging {
		input.DragDeltaX = float64(x) - prevX
	}
	return input.DragDeltaX != 0
}

func onControlBar(y float64) bool {
	return y >= float64(cfg.C.Height)-cfg.HUD.ControlsHeight
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = archetypes.Input.Spawn(ecs)
		components.Input.Get(entry).SegmentJump = -1
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

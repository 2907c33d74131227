package components

import (
	cfg "github.com/automoto/segview/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputMouse
	InputGamepad
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	LastInputMethod InputMethod

	Cursor      math.Vec2 // Mouse position in screen pixels
	Tapped      bool      // Left button pressed this frame outside the control bar
	Dragging    bool      // Left button held since a tap outside the control bar
	DragDeltaX  float64   // Horizontal drag since last frame, pixels
	SegmentJump int       // Digit key pressed this frame, -1 when none
}

var Input = donburi.NewComponentType[InputData]()

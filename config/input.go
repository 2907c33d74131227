package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical viewer action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionPrevSegment
	ActionNextSegment
	ActionReplaySegment
	ActionSelect
	ActionToggleSession
	ActionToggleHUD
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	MouseButtons           []ebiten.MouseButton
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Digit keys jump straight to a segment (1 = first)
	SegmentKeys []ebiten.Key
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionPrevSegment: {
				Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA, ebiten.KeyPageUp},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
					ebiten.StandardGamepadButtonFrontTopLeft,
				},
			},
			ActionNextSegment: {
				Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD, ebiten.KeyPageDown},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
					ebiten.StandardGamepadButtonFrontTopRight,
				},
			},
			ActionReplaySegment: {
				Keys: []ebiten.Key{ebiten.KeyR, ebiten.KeySpace},
				// Y / Triangle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightTop,
				},
			},
			ActionSelect: {
				Keys:         []ebiten.Key{ebiten.KeyEnter},
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonRight},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionToggleSession: {
				Keys: []ebiten.Key{ebiten.KeyV},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionToggleHUD: {
				Keys: []ebiten.Key{ebiten.KeyH, ebiten.KeyF1},
			},
		},
		SegmentKeys: []ebiten.Key{
			ebiten.Key1, ebiten.Key2, ebiten.Key3,
			ebiten.Key4, ebiten.Key5, ebiten.Key6,
			ebiten.Key7, ebiten.Key8, ebiten.Key9,
		},
	}
}

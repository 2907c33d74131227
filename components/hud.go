package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HUDData toggles the text overlay.
type HUDData struct {
	Visible bool
}

var HUD = donburi.NewComponentType[HUDData]()

// ToastData is a short status message that fades in, holds, and fades out.
type ToastData struct {
	Text  string
	Fade  *gween.Sequence
	Alpha float32
}

var Toast = donburi.NewComponentType[ToastData]()

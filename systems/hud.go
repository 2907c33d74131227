package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/segview/components"
	cfg "github.com/automoto/segview/config"
	"github.com/automoto/segview/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// ShowToast replaces the current toast and restarts its fade.
func ShowToast(e *ecs.ECS, msg string) {
	viewer, ok := viewerEntry(e)
	if !ok {
		return
	}
	toast := components.Toast.Get(viewer)
	toast.Text = msg
	toast.Alpha = 0
	toast.Fade = gween.NewSequence(
		gween.New(0, 1, cfg.HUD.ToastFadeIn, ease.OutQuad),
		gween.New(1, 1, cfg.HUD.ToastHold, ease.Linear),
		gween.New(1, 0, cfg.HUD.ToastFadeOut, ease.InQuad),
	)
}

// UpdateHUD toggles the overlay and advances the toast fade.
func UpdateHUD(e *ecs.ECS) {
	viewer, ok := viewerEntry(e)
	if !ok {
		return
	}

	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionToggleHUD).JustPressed {
		hud := components.HUD.Get(viewer)
		hud.Visible = !hud.Visible
	}

	toast := components.Toast.Get(viewer)
	if toast.Fade == nil {
		return
	}
	alpha, _, done := toast.Fade.Update(float32(frameDelta()))
	toast.Alpha = alpha
	if done {
		toast.Fade = nil
		toast.Alpha = 0
		toast.Text = ""
	}
}

// DrawHUD renders the playback and placement readout plus the toast.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	viewer, ok := viewerEntry(e)
	if !ok {
		return
	}

	if components.HUD.Get(viewer).Visible {
		face := fonts.Regular.Get()
		x := int(cfg.HUD.Margin)
		y := cfg.HUD.Margin + cfg.HUD.LineHeight
		for i, line := range hudLines(e) {
			clr := cfg.HUD.TextColor
			if i == 0 {
				clr = cfg.HUD.AccentColor
			}
			text.Draw(screen, line, face, x, int(y), clr)
			y += cfg.HUD.LineHeight
		}
	}

	toast := components.Toast.Get(viewer)
	if toast.Text == "" || toast.Alpha <= 0 {
		return
	}
	face := fonts.Bold.Get()
	width := text.BoundString(face, toast.Text).Dx()
	x := (cfg.C.Width - width) / 2
	y := int(cfg.HUD.Margin + 3*cfg.HUD.LineHeight)
	text.Draw(screen, toast.Text, face, x, y, fade(cfg.HUD.ToastColor, toast.Alpha))
}

func hudLines(e *ecs.ECS) []string {
	viewer, _ := viewerEntry(e)
	pb := components.Playback.Get(viewer)
	session := components.Session.Get(viewer)

	if pb.Idle {
		return []string{"Nothing to play"}
	}

	player := pb.Player
	clip := player.Clip()
	seg := player.Segment()
	cursor := player.Cursor()

	state := "playing"
	if cursor.Halted() {
		state = "halted"
	}
	lines := []string{
		fmt.Sprintf("Segment %d/%d  [%.2fs - %.2fs]", player.Index()+1, player.Table().Len(), seg.Start, seg.End),
		fmt.Sprintf("%s  t=%.2fs / %.2fs  %s", clip.Name, cursor.Time(), clip.Duration, state),
		fmt.Sprintf("Camera %3.0f%%", player.Camera().Progress()*100),
	}

	if entry, ok := modelEntry(e); ok {
		lines = append(lines, fmt.Sprintf("Pose evaluations %d", components.Pose.Get(entry).Evaluations))
	}

	switch {
	case !session.Available:
		lines = append(lines, "Placement unavailable")
	case session.Presenting:
		lines = append(lines, fmt.Sprintf("Placement %s", components.Placement.Get(viewer).Tracker.State()))
	default:
		lines = append(lines, "Placement off  (V to enter)")
	}
	return lines
}

func fade(c color.RGBA, alpha float32) color.RGBA {
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}

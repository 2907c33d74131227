package ui

import (
	"bytes"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	enterARLabel = "Enter AR"
	exitARLabel  = "Exit AR"
	hintLabel    = "Tap a surface to place the model."
)

// ControlsUI is the bottom bar of the viewer: segment navigation and the
// placement session toggle.
type ControlsUI struct {
	UI *ebitenui.UI

	OnPrev     func()
	OnNext     func()
	OnReplay   func()
	OnToggleAR func()

	segmentLabel *widget.Label
	hintLabel    *widget.Label
	arBtn        *widget.Button
	prevBtn      *widget.Button
	nextBtn      *widget.Button

	presenting bool

	normalFace text.Face
	smallFace  text.Face
}

func NewControlsUI(onPrev, onNext, onReplay, onToggleAR func()) *ControlsUI {
	ui := &ControlsUI{
		OnPrev:     onPrev,
		OnNext:     onNext,
		OnReplay:   onReplay,
		OnToggleAR: onToggleAR,
	}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *ControlsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 13}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 11}
}

func (ui *ControlsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 8, Bottom: 8, Left: 12, Right: 12}
	bar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{17, 24, 39, 180})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
				StretchHorizontal:  true,
			}),
		),
	)

	ui.prevBtn = ui.newButton("Prev", color.RGBA{60, 60, 80, 255}, func() {
		if ui.OnPrev != nil {
			ui.OnPrev()
		}
	})
	bar.AddChild(ui.prevBtn)

	bar.AddChild(ui.newButton("Replay", color.RGBA{60, 60, 80, 255}, func() {
		if ui.OnReplay != nil {
			ui.OnReplay()
		}
	}))

	ui.nextBtn = ui.newButton("Next", color.RGBA{60, 60, 80, 255}, func() {
		if ui.OnNext != nil {
			ui.OnNext()
		}
	})
	bar.AddChild(ui.nextBtn)

	ui.segmentLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{229, 231, 235, 255},
		}),
	)
	bar.AddChild(ui.segmentLabel)

	ui.arBtn = ui.newButton(enterARLabel, color.RGBA{40, 100, 40, 255}, func() {
		if ui.OnToggleAR != nil {
			ui.OnToggleAR()
		}
	})
	bar.AddChild(ui.arBtn)

	ui.hintLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	bar.AddChild(ui.hintLabel)

	rootContainer.AddChild(bar)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *ControlsUI) newButton(label string, idle color.RGBA, onClick func()) *widget.Button {
	hover := color.RGBA{idle.R + 20, idle.G + 20, idle.B + 20, 255}
	pressed := color.RGBA{idle.R - 20, idle.G - 20, idle.B - 20, 255}
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(72, 26)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(idle),
			Hover:    image.NewNineSliceColor(hover),
			Pressed:  image.NewNineSliceColor(pressed),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 50, 255}),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{200, 255, 200, 255},
			Pressed:  color.RGBA{150, 200, 150, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// SetSegment shows the active segment and disables navigation past either end.
func (ui *ControlsUI) SetSegment(label string, index, count int) {
	ui.segmentLabel.Label = label
	ui.prevBtn.GetWidget().Disabled = count == 0 || index <= 0
	ui.nextBtn.GetWidget().Disabled = count == 0 || index >= count-1
}

// SetPlacement updates the session toggle. The toggle is disabled when
// placement is unavailable.
func (ui *ControlsUI) SetPlacement(available, presenting bool) {
	ui.arBtn.GetWidget().Disabled = !available
	if presenting == ui.presenting {
		return
	}
	ui.presenting = presenting

	label, hint := enterARLabel, ""
	if presenting {
		label, hint = exitARLabel, hintLabel
	}
	if textWidget := ui.arBtn.Text(); textWidget != nil {
		textWidget.Label = label
	}
	ui.hintLabel.Label = hint
}

func (ui *ControlsUI) Update() {
	ui.UI.Update()
}

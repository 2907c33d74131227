package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/segview/config"
	"github.com/automoto/segview/fonts"
	"github.com/automoto/segview/scenes"
	"github.com/automoto/segview/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	loadFonts()

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewViewerScene(g)
	return g
}

func loadFonts() {
	for _, f := range []struct {
		name fonts.FontName
		ttf  []byte
		size float64
	}{
		{fonts.Regular, goregular.TTF, 13},
		{fonts.Bold, gobold.TTF, 18},
	} {
		if err := fonts.LoadFontWithSize(f.name, f.ttf, f.size); err != nil {
			log.Fatalf("Failed to load fonts: %v", err)
		}
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	manifest := flag.String("manifest", "", "Viewer manifest YAML (empty = bundled manifest)")
	segment := flag.Int("segment", -1, "Segment to start on (-1 = last viewed)")
	placement := flag.Bool("placement", true, "Enable placement mode")
	hud := flag.Bool("hud", true, "Show the HUD overlay")
	noPersist := flag.Bool("no-persist", false, "Do not read or write saved viewer state")
	flag.Parse()

	config.Viewer.ManifestPath = *manifest
	config.Placement.Enabled = *placement
	config.Debug.SkipPersisting = *noPersist

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load the last viewer state
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadViewerState(); err == nil && saved != nil {
		systems.ApplySavedViewerState(saved)
	}

	// Explicit flags win over saved state
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "segment":
			config.Viewer.StartSegment = *segment
		case "hud":
			config.Debug.ShowHUD = *hud
		}
	})
	if config.Viewer.StartSegment < 0 {
		config.Viewer.StartSegment = 0
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}

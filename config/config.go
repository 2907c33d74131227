package config

import "image/color"

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// ViewerConfig contains playback and model presentation values
type ViewerConfig struct {
	ManifestPath    string  // Empty uses the embedded manifest
	DesiredSize     float64 // Longest bbox axis after normalization, world units
	DragRotation    float64 // Radians of Y rotation per dragged pixel
	StartSegment    int
	StartPresenting bool    // Request a placement session on launch
	FrameDelta      float64 // Seconds per tick, 0 derives it from ebiten.TPS()
	MaxFrameDelta   float64 // Clamp for long stalls (window drag, breakpoint)
}

// CameraConfig contains the free camera and the placement viewer pose
type CameraConfig struct {
	StartPosition [3]float64
	StartTarget   [3]float64
	StartFOV      float64 // degrees
	Near          float64
	Far           float64

	// Viewer pose while presenting (standing adult, looking at the floor ahead)
	ViewerPosition [3]float64
	ViewerTarget   [3]float64
	ViewerFOV      float64
}

// PlacementConfig contains placement session configuration
type PlacementConfig struct {
	Enabled       bool    // Placement mode available at all
	SurfaceExtent float64 // Metres covered by the surface map when the manifest omits it
	ReticleRadius float64 // Pixels
}

// HUDConfig contains overlay layout and colors
type HUDConfig struct {
	Margin         float64
	LineHeight     float64
	TextColor      color.RGBA
	AccentColor    color.RGBA
	ToastColor     color.RGBA
	ToastFadeIn    float32 // seconds
	ToastHold      float32 // seconds
	ToastFadeOut   float32 // seconds
	WireColor      color.RGBA
	BoneColor      color.RGBA
	GridColor      color.RGBA
	SurfaceColor   color.RGBA
	ReticleColor   color.RGBA
	CommitColor    color.RGBA
	GridHalfLines  int
	ControlsHeight float64 // Pixels reserved for the control bar at the bottom
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowHUD        bool
	SkipPersisting bool // Do not read or write saved viewer state
}

// Global configuration instances
var C *Config
var Viewer ViewerConfig
var Camera CameraConfig
var Placement PlacementConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	LightBlue   = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	BrightGreen = color.RGBA{R: 34, G: 197, B: 94, A: 255}
	Orange      = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Gray        = color.RGBA{R: 70, G: 75, B: 90, A: 255}
	Background  = color.RGBA{R: 17, G: 24, B: 39, A: 255}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "segview",
	}

	Viewer = ViewerConfig{
		DesiredSize:   3.0,
		DragRotation:  0.01,
		StartSegment:  0,
		MaxFrameDelta: 0.1,
	}

	Camera = CameraConfig{
		StartPosition: [3]float64{0, 1.5, 6},
		StartTarget:   [3]float64{0, 0, 0},
		StartFOV:      45,
		Near:          0.05,
		Far:           100,

		ViewerPosition: [3]float64{0, 1.6, 2.5},
		ViewerTarget:   [3]float64{0, 0, 0},
		ViewerFOV:      60,
	}

	Placement = PlacementConfig{
		Enabled:       true,
		SurfaceExtent: 20,
		ReticleRadius: 8,
	}

	HUD = HUDConfig{
		Margin:         12,
		LineHeight:     16,
		TextColor:      White,
		AccentColor:    LightBlue,
		ToastColor:     White,
		ToastFadeIn:    0.15,
		ToastHold:      1.2,
		ToastFadeOut:   0.5,
		WireColor:      LightBlue,
		BoneColor:      Orange,
		GridColor:      Gray,
		SurfaceColor:   color.RGBA{R: 34, G: 197, B: 94, A: 90},
		ReticleColor:   White,
		CommitColor:    BrightGreen,
		GridHalfLines:  10,
		ControlsHeight: 44,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		ShowHUD:        true,
		SkipPersisting: false,
	}
}

package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/segview/components"
	cfg "github.com/automoto/segview/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

const viewerStateKey = "viewer"

// SavedViewerState represents the viewer state stored on disk
type SavedViewerState struct {
	SegmentIndex int  `json:"segmentIndex"`
	Presenting   bool `json:"presenting"`
	HUDVisible   bool `json:"hudVisible"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// Last state written, to skip redundant saves
var lastSaved *SavedViewerState

// InitPersistence initializes the gdata manager for viewer state storage
func InitPersistence() error {
	if cfg.Debug.SkipPersisting {
		return nil
	}
	m, err := gdata.Open(gdata.Config{
		AppName: "segview",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadViewerState loads the saved viewer state. A missing or unreadable item
// returns nil so the caller keeps its defaults.
func LoadViewerState() (*SavedViewerState, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(viewerStateKey)
	if err != nil {
		log.Printf("Warning: Could not load viewer state: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var state SavedViewerState
	if err := json.Unmarshal(data, &state); err != nil {
		log.Printf("Warning: Could not parse saved viewer state: %v", err)
		return nil, err
	}
	lastSaved = &state
	return &state, nil
}

// SaveViewerState writes s to disk
func SaveViewerState(s *SavedViewerState) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize viewer state: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(viewerStateKey, data); err != nil {
		log.Printf("Warning: Could not save viewer state: %v", err)
		return err
	}
	saved := *s
	lastSaved = &saved
	return nil
}

// ApplySavedViewerState seeds the global config from a saved state. Must run
// before the viewer scene is created.
func ApplySavedViewerState(saved *SavedViewerState) {
	if saved == nil {
		return
	}
	cfg.Viewer.StartSegment = saved.SegmentIndex
	cfg.Viewer.StartPresenting = saved.Presenting
	cfg.Debug.ShowHUD = saved.HUDVisible
}

// UpdatePersistence saves the viewer state whenever it differs from what is
// on disk.
func UpdatePersistence(e *ecs.ECS) {
	if !gdataInitialized {
		return
	}
	viewer, ok := viewerEntry(e)
	if !ok {
		return
	}

	pb := components.Playback.Get(viewer)
	if pb.Idle {
		return
	}
	current := SavedViewerState{
		SegmentIndex: pb.Player.Index(),
		Presenting:   components.Session.Get(viewer).Requested,
		HUDVisible:   components.HUD.Get(viewer).Visible,
	}
	if lastSaved != nil && *lastSaved == current {
		return
	}
	_ = SaveViewerState(&current)
}

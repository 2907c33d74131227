package components

import (
	"github.com/automoto/segview/placement"
	"github.com/yohamta/donburi"
)

// PlacementData holds the placement session machinery for the model.
type PlacementData struct {
	Tracker   *placement.Tracker
	Watcher   *placement.SessionWatcher
	Surfaces  *placement.SurfaceMap
	HitTester *placement.HitTester
}

var Placement = donburi.NewComponentType[PlacementData]()

// SessionData is the presenting flag of the placement session.
type SessionData struct {
	Available  bool // Placement mode enabled by configuration
	Requested  bool // User asked for a session
	Presenting bool // Session running
}

var Session = donburi.NewComponentType[SessionData]()

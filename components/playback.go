package components

import (
	"github.com/automoto/segview/playback"
	"github.com/yohamta/donburi"
)

// PlaybackData owns the segment player for the viewed clip.
type PlaybackData struct {
	Player *playback.Player
	Idle   bool // Nothing to play; systems leave the cursor and camera alone
}

var Playback = donburi.NewComponentType[PlaybackData]()

// SegmentRequestData carries a pending change of active segment. The latest
// request in a frame wins.
type SegmentRequestData struct {
	Pending bool
	Index   int
}

// Request replaces any pending request.
func (r *SegmentRequestData) Request(index int) {
	r.Pending = true
	r.Index = index
}

var SegmentRequest = donburi.NewComponentType[SegmentRequestData]()

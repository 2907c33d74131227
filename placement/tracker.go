package placement

import (
	"github.com/go-gl/mathgl/mgl64"
)

// State is the placement lifecycle of the model.
type State int

const (
	NoCandidate State = iota
	Candidate
	Committed
)

func (s State) String() string {
	switch s {
	case Candidate:
		return "candidate"
	case Committed:
		return "committed"
	default:
		return "none"
	}
}

// Observer receives a private copy of the placement transform, or nil when the
// placement is cleared.
type Observer func(transform *mgl64.Mat4)

// Tracker turns hit-test results and select events into a committed placement.
// Transforms handed in are copied; the tracker never keeps a caller's buffer.
type Tracker struct {
	state     State
	transform mgl64.Mat4
	observer  Observer
}

func NewTracker(observer Observer) *Tracker {
	return &Tracker{observer: observer}
}

// OnHitTestResult records a new candidate. It is ignored once committed.
func (t *Tracker) OnHitTestResult(transform *mgl64.Mat4) {
	if transform == nil || t.state == Committed {
		return
	}
	t.transform = *transform
	t.state = Candidate
	t.notify()
}

// OnSelect commits the current candidate. Without a candidate, or after a
// commit, it does nothing.
func (t *Tracker) OnSelect() {
	if t.state != Candidate {
		return
	}
	t.state = Committed
	t.notify()
}

// OnSessionEnd drops any candidate or commit.
func (t *Tracker) OnSessionEnd() {
	t.state = NoCandidate
	t.transform = mgl64.Mat4{}
	t.notify()
}

func (t *Tracker) State() State {
	return t.state
}

// Transform returns a copy of the tracked transform.
func (t *Tracker) Transform() (mgl64.Mat4, bool) {
	if t.state == NoCandidate {
		return mgl64.Mat4{}, false
	}
	return t.transform, true
}

// Stale reports whether the tracker holds state a finished session should clear.
func (t *Tracker) Stale() bool {
	return t.state != NoCandidate
}

func (t *Tracker) notify() {
	if t.observer == nil {
		return
	}
	if t.state == NoCandidate {
		t.observer(nil)
		return
	}
	m := t.transform
	t.observer(&m)
}

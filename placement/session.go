package placement

// SessionWatcher polls the presenting flag once per frame and clears the
// tracker whenever a session is observed inactive with placement state left over.
type SessionWatcher struct {
	tracker    *Tracker
	presenting bool

	// OnStart and OnEnd fire on presentation edges.
	OnStart func()
	OnEnd   func()
}

func NewSessionWatcher(tracker *Tracker) *SessionWatcher {
	return &SessionWatcher{tracker: tracker}
}

// Observe reports the session state for this frame.
func (w *SessionWatcher) Observe(presenting bool) {
	wasPresenting := w.presenting
	w.presenting = presenting

	if presenting {
		if !wasPresenting && w.OnStart != nil {
			w.OnStart()
		}
		return
	}

	if w.tracker.Stale() {
		w.tracker.OnSessionEnd()
	}
	if wasPresenting && w.OnEnd != nil {
		w.OnEnd()
	}
}

func (w *SessionWatcher) Presenting() bool {
	return w.presenting
}

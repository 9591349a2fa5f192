package srs

import "time"

// Scheduling defaults and clamp bounds.
const (
	InitialEase = 2.3
	MinEase     = 1.3
	MaxEase     = 2.7
)

// State is the per-card scheduling state: how confidently a card is known and
// when it should next be shown.
type State struct {
	Ease     float64   `json:"ease"`     // growth factor, clamped to [MinEase, MaxEase]
	Interval Duration  `json:"interval"` // last applied delay
	Reps     int       `json:"reps"`     // successful (non-again) reviews
	Lapses   int       `json:"lapses"`   // again grades
	Due      Timestamp `json:"due"`      // next eligible review time
}

// NewState returns the initial scheduling state for a card created at now:
// immediately due, no history.
func NewState(now time.Time) State {
	return State{
		Ease: InitialEase,
		Due:  At(now),
	}
}

// Reset reinitializes the state in place, discarding all review history.
// The card becomes immediately due again.
func (s *State) Reset(now time.Time) {
	*s = NewState(now)
}

// IsDue reports whether the card is eligible for review at now.
func (s State) IsDue(now time.Time) bool {
	return !s.Due.After(now)
}

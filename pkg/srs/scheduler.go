package srs

import (
	"math"
	"time"
)

// SchedulerConfig configures a Scheduler. Zero values produce the defaults
// tuned for a ten day cram window.
type SchedulerConfig struct {
	MaxInterval time.Duration // zero → 10 days; cap on any computed interval
	Baseline    time.Duration // zero → 8 hours; stands in for a not-yet-established interval
}

// Default scheduling knobs.
const (
	DefaultMaxInterval = 10 * 24 * time.Hour
	DefaultBaseline    = 8 * time.Hour
)

// Scheduler computes the next scheduling state for a graded card. It holds no
// mutable state; Review is a pure function of (state, grade, now).
type Scheduler struct {
	maxInterval time.Duration
	baseline    time.Duration
}

// NewScheduler creates a Scheduler from the given config, filling zero-value
// fields with defaults.
func NewScheduler(cfg SchedulerConfig) *Scheduler {
	max := cfg.MaxInterval
	if max == 0 {
		max = DefaultMaxInterval
	}
	base := cfg.Baseline
	if base == 0 {
		base = DefaultBaseline
	}
	return &Scheduler{maxInterval: max, baseline: base}
}

// Review applies a grade to the state at the given time and returns the next
// state. The input state is not mutated.
//
// The new due time is absolute (now + interval), not relative to the prior due
// time, so a card graded late catches up instead of compounding its delay.
// An unrecognized grade returns the state unchanged.
func (s *Scheduler) Review(state State, g Grade, now time.Time) State {
	first := state.Reps == 0

	prior := state.Interval.Std()
	if prior == 0 {
		prior = s.baseline
	}

	next := state
	var added time.Duration

	switch g {
	case Again:
		next.Lapses++
		next.Ease = clampEase(state.Ease - 0.2)
		added = 5 * time.Minute

	case Hard:
		next.Reps++
		next.Ease = clampEase(state.Ease - 0.05)
		if first {
			added = 20 * time.Minute
		} else {
			added = s.cap(scale(prior, 0.6))
		}

	case Good:
		next.Reps++
		if first {
			added = 8 * time.Hour
		} else {
			factor := state.Ease
			if factor < 1.7 {
				factor = 1.7
			}
			added = s.cap(scale(prior, factor))
		}

	case Easy:
		next.Reps++
		// Ease rises before the growth formula consumes it.
		next.Ease = clampEase(state.Ease + 0.05)
		if first {
			added = 24 * time.Hour
		} else {
			added = s.cap(scale(prior, next.Ease+0.15))
		}

	default:
		return state
	}

	next.Interval = Duration(added)
	next.Due = At(now.Add(added))
	return next
}

// Preview returns the interval each grade would produce for the state at now.
func (s *Scheduler) Preview(state State, now time.Time) map[Grade]time.Duration {
	out := make(map[Grade]time.Duration, 4)
	for _, g := range Grades() {
		out[g] = s.Review(state, g, now).Interval.Std()
	}
	return out
}

func (s *Scheduler) cap(d time.Duration) time.Duration {
	if d > s.maxInterval {
		return s.maxInterval
	}
	return d
}

// scale multiplies a duration by a float factor, rounding to the nearest
// nanosecond so exact products (8h × 2.3 = 18.4h) stay exact.
func scale(d time.Duration, factor float64) time.Duration {
	return time.Duration(math.Round(float64(d) * factor))
}

func clampEase(e float64) float64 {
	switch {
	case e < MinEase:
		return MinEase
	case e > MaxEase:
		return MaxEase
	default:
		return e
	}
}

package srs

import (
	"math"
	"testing"
	"time"
)

var t0 = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func defaultScheduler() *Scheduler {
	return NewScheduler(SchedulerConfig{})
}

func assertInterval(t *testing.T, got State, want time.Duration) {
	t.Helper()
	if got.Interval.Std() != want {
		t.Errorf("Interval = %v, want %v", got.Interval.Std(), want)
	}
	wantDue := t0.Add(want)
	if !got.Due.Equal(wantDue) {
		t.Errorf("Due = %v, want %v", got.Due, wantDue)
	}
}

// --- first review (reps == 0) ---

func TestFirstReviewIntervals(t *testing.T) {
	tests := []struct {
		grade Grade
		want  time.Duration
	}{
		{Again, 5 * time.Minute},
		{Hard, 20 * time.Minute},
		{Good, 8 * time.Hour},
		{Easy, 24 * time.Hour},
	}

	s := defaultScheduler()
	for _, tt := range tests {
		t.Run(tt.grade.String(), func(t *testing.T) {
			next := s.Review(NewState(t0.Add(-time.Hour)), tt.grade, t0)
			assertInterval(t, next, tt.want)
		})
	}
}

func TestFirstGoodCountsRep(t *testing.T) {
	s := defaultScheduler()
	next := s.Review(NewState(t0), Good, t0)
	if next.Reps != 1 {
		t.Errorf("Reps = %d, want 1", next.Reps)
	}
	if next.Lapses != 0 {
		t.Errorf("Lapses = %d, want 0", next.Lapses)
	}
	if next.Ease != InitialEase {
		t.Errorf("Ease = %v, want unchanged %v", next.Ease, InitialEase)
	}
}

// --- established cards ---

func TestGoodGrowsByEase(t *testing.T) {
	s := defaultScheduler()
	state := State{Ease: 2.3, Interval: Duration(8 * time.Hour), Reps: 1, Due: At(t0)}
	next := s.Review(state, Good, t0)
	// 8h × max(1.7, 2.3) = 18.4h
	assertInterval(t, next, 18*time.Hour+24*time.Minute)
}

func TestGoodFloorsFactor(t *testing.T) {
	s := defaultScheduler()
	state := State{Ease: 1.3, Interval: Duration(time.Hour), Reps: 3, Due: At(t0)}
	next := s.Review(state, Good, t0)
	// ease below 1.7 still grows by at least 1.7: 1h × 1.7 = 1h42m
	assertInterval(t, next, time.Hour+42*time.Minute)
	if next.Ease != 1.3 {
		t.Errorf("Ease = %v, want unchanged 1.3", next.Ease)
	}
}

func TestHardShrinksInterval(t *testing.T) {
	s := defaultScheduler()
	state := State{Ease: 2.3, Interval: Duration(10 * time.Hour), Reps: 2, Due: At(t0)}
	next := s.Review(state, Hard, t0)
	assertInterval(t, next, 6*time.Hour)
	if got, want := next.Ease, 2.25; math.Abs(got-want) > 1e-9 {
		t.Errorf("Ease = %v, want %v", got, want)
	}
	if next.Reps != 3 {
		t.Errorf("Reps = %d, want 3", next.Reps)
	}
}

func TestEasyUsesUpdatedEase(t *testing.T) {
	s := defaultScheduler()
	state := State{Ease: 2.3, Interval: Duration(4 * time.Hour), Reps: 1, Due: At(t0)}
	next := s.Review(state, Easy, t0)
	// Ease rises to 2.35 first, then the delay uses (2.35 + 0.15) = 2.5.
	if got, want := next.Ease, 2.35; math.Abs(got-want) > 1e-9 {
		t.Errorf("Ease = %v, want %v", got, want)
	}
	assertInterval(t, next, 10*time.Hour)
}

func TestScaledIntervalsRoundExactly(t *testing.T) {
	// Growth factors are not exactly representable in float64; the computed
	// interval must still land on the exact nanosecond, not one short.
	s := defaultScheduler()
	cases := []struct {
		name  string
		state State
		grade Grade
		want  time.Duration
	}{
		{"good 8h x 2.3", State{Ease: 2.3, Interval: Duration(8 * time.Hour), Reps: 1, Due: At(t0)}, Good, 18*time.Hour + 24*time.Minute},
		{"easy 4h x 2.5", State{Ease: 2.3, Interval: Duration(4 * time.Hour), Reps: 1, Due: At(t0)}, Easy, 10 * time.Hour},
		{"hard 1h x 0.6", State{Ease: 2.3, Interval: Duration(time.Hour), Reps: 1, Due: At(t0)}, Hard, 36 * time.Minute},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next := s.Review(tc.state, tc.grade, t0)
			if got := next.Interval.Std(); got != tc.want {
				t.Errorf("Interval = %v, want exactly %v", got, tc.want)
			}
		})
	}
}

func TestAgainAlwaysFiveMinutes(t *testing.T) {
	s := defaultScheduler()
	states := []State{
		NewState(t0),
		{Ease: 2.7, Interval: Duration(9 * 24 * time.Hour), Reps: 12, Due: At(t0)},
		{Ease: 1.3, Interval: Duration(time.Minute), Reps: 1, Lapses: 5, Due: At(t0)},
	}
	for i, state := range states {
		next := s.Review(state, Again, t0)
		assertInterval(t, next, 5*time.Minute)
		if next.Lapses != state.Lapses+1 {
			t.Errorf("state %d: Lapses = %d, want %d", i, next.Lapses, state.Lapses+1)
		}
		if next.Reps != state.Reps {
			t.Errorf("state %d: Reps = %d, want unchanged %d", i, next.Reps, state.Reps)
		}
	}
}

func TestBaselineSubstitutesZeroInterval(t *testing.T) {
	s := defaultScheduler()
	// Established card whose interval was zeroed (e.g. by a progress reset).
	state := State{Ease: 2.3, Interval: 0, Reps: 1, Due: At(t0)}
	next := s.Review(state, Good, t0)
	// baseline 8h × 2.3 = 18.4h
	assertInterval(t, next, 18*time.Hour+24*time.Minute)
}

// --- clamps ---

func TestIntervalCap(t *testing.T) {
	s := defaultScheduler()
	state := State{Ease: 2.7, Interval: Duration(9 * 24 * time.Hour), Reps: 5, Due: At(t0)}
	for _, g := range []Grade{Hard, Good, Easy} {
		next := s.Review(state, g, t0)
		if g != Hard && next.Interval.Std() != DefaultMaxInterval {
			t.Errorf("%s: Interval = %v, want capped at %v", g, next.Interval.Std(), DefaultMaxInterval)
		}
		if next.Interval.Std() > DefaultMaxInterval {
			t.Errorf("%s: Interval = %v exceeds cap", g, next.Interval.Std())
		}
	}
}

func TestCustomHorizon(t *testing.T) {
	s := NewScheduler(SchedulerConfig{MaxInterval: 36 * time.Hour})
	state := State{Ease: 2.7, Interval: Duration(30 * time.Hour), Reps: 4, Due: At(t0)}
	next := s.Review(state, Easy, t0)
	assertInterval(t, next, 36*time.Hour)
}

func TestEaseClamps(t *testing.T) {
	s := defaultScheduler()

	low := State{Ease: 1.3, Interval: Duration(time.Hour), Reps: 1, Due: At(t0)}
	if next := s.Review(low, Again, t0); next.Ease != MinEase {
		t.Errorf("again at floor: Ease = %v, want %v", next.Ease, MinEase)
	}
	if next := s.Review(low, Hard, t0); next.Ease != MinEase {
		t.Errorf("hard at floor: Ease = %v, want %v", next.Ease, MinEase)
	}

	high := State{Ease: 2.7, Interval: Duration(time.Hour), Reps: 1, Due: At(t0)}
	if next := s.Review(high, Easy, t0); next.Ease != MaxEase {
		t.Errorf("easy at ceiling: Ease = %v, want %v", next.Ease, MaxEase)
	}
}

// --- totality ---

func TestDueAlwaysInFuture(t *testing.T) {
	s := defaultScheduler()
	state := NewState(t0.Add(-30 * 24 * time.Hour)) // long overdue
	for _, g := range Grades() {
		next := s.Review(state, g, t0)
		if !next.Due.After(t0) {
			t.Errorf("%s: Due = %v, not after grading time %v", g, next.Due, t0)
		}
	}
}

func TestUnrecognizedGradeIsNoOp(t *testing.T) {
	s := defaultScheduler()
	state := State{Ease: 2.1, Interval: Duration(3 * time.Hour), Reps: 2, Lapses: 1, Due: At(t0)}
	for _, g := range []Grade{Grade(0), Grade(5), Grade(-1)} {
		if next := s.Review(state, g, t0); next != state {
			t.Errorf("Review with %v changed state: %+v", g, next)
		}
	}
}

func TestPreview(t *testing.T) {
	s := defaultScheduler()
	preview := s.Preview(NewState(t0), t0)
	if len(preview) != 4 {
		t.Fatalf("Preview returned %d entries, want 4", len(preview))
	}
	if preview[Good] != 8*time.Hour {
		t.Errorf("Preview[Good] = %v, want 8h", preview[Good])
	}
	if preview[Again] != 5*time.Minute {
		t.Errorf("Preview[Again] = %v, want 5m", preview[Again])
	}
}

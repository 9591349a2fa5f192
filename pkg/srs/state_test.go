package srs

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewState(t *testing.T) {
	s := NewState(t0)
	if s.Ease != InitialEase {
		t.Errorf("Ease = %v, want %v", s.Ease, InitialEase)
	}
	if s.Interval != 0 || s.Reps != 0 || s.Lapses != 0 {
		t.Errorf("history not zero: %+v", s)
	}
	if !s.Due.Equal(t0) {
		t.Errorf("Due = %v, want creation time", s.Due)
	}
	if !s.IsDue(t0) {
		t.Error("new state should be immediately due")
	}
}

func TestReset(t *testing.T) {
	s := State{Ease: 1.4, Interval: Duration(5 * time.Hour), Reps: 9, Lapses: 3, Due: At(t0.Add(time.Hour))}
	later := t0.Add(48 * time.Hour)
	s.Reset(later)
	if s != NewState(later) {
		t.Errorf("Reset = %+v, want %+v", s, NewState(later))
	}
}

func TestIsDue(t *testing.T) {
	s := State{Due: At(t0)}
	if !s.IsDue(t0) {
		t.Error("due exactly at now should count as due")
	}
	if !s.IsDue(t0.Add(time.Second)) {
		t.Error("past due should count as due")
	}
	if s.IsDue(t0.Add(-time.Second)) {
		t.Error("future due should not count as due")
	}
}

func TestStateWireFormat(t *testing.T) {
	s := State{
		Ease:     2.3,
		Interval: Duration(8 * time.Hour),
		Reps:     2,
		Lapses:   1,
		Due:      At(time.UnixMilli(1750000000000)),
	}
	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	// Interval and due travel as integer milliseconds.
	want := `{"ease":2.3,"interval":28800000,"reps":2,"lapses":1,"due":1750000000000}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var back State
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.Interval.Std() != 8*time.Hour {
		t.Errorf("Interval = %v, want 8h", back.Interval.Std())
	}
	if back.Due.UnixMilli() != 1750000000000 {
		t.Errorf("Due = %v", back.Due.UnixMilli())
	}
}

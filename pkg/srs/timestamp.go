package srs

import (
	"encoding/json"
	"time"
)

// Timestamp wraps time.Time and serializes as integer milliseconds since the
// Unix epoch, the deck snapshot wire format.
type Timestamp struct {
	time.Time
}

// At builds a Timestamp from a time.Time.
func At(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UnixMilli())
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var ms int64
	if err := json.Unmarshal(b, &ms); err != nil {
		return err
	}
	t.Time = time.UnixMilli(ms)
	return nil
}

// Duration serializes as integer milliseconds. Intervals are stored this way
// so snapshots stay readable and tool-friendly.
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).Milliseconds())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var ms int64
	if err := json.Unmarshal(b, &ms); err != nil {
		return err
	}
	*d = Duration(time.Duration(ms) * time.Millisecond)
	return nil
}

// Std returns the interval as a standard time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

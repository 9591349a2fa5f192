package srs

import (
	"encoding"
	"encoding/json"
	"fmt"
	"strings"
)

// Grade represents the user's self-assessed recall quality for a card.
type Grade int

const (
	Again Grade = iota + 1 // Failed to recall.
	Hard                   // Recalled with significant difficulty.
	Good                   // Recalled with some effort.
	Easy                   // Recalled effortlessly.
)

var (
	gradeNames = [...]string{Again: "again", Hard: "hard", Good: "good", Easy: "easy"}

	gradeAliases = map[string]Grade{
		"again": Again, "a": Again, "1": Again,
		"hard": Hard, "h": Hard, "2": Hard,
		"good": Good, "g": Good, "3": Good,
		"easy": Easy, "e": Easy, "4": Easy,
	}
)

// Compile-time interface checks.
var (
	_ fmt.Stringer             = Grade(0)
	_ encoding.TextMarshaler   = Grade(0)
	_ encoding.TextUnmarshaler = (*Grade)(nil)
)

// GradeForAlias resolves a user-typed token ("good", "g", "3") to a Grade.
// The boolean is false for unrecognized tokens.
func GradeForAlias(s string) (Grade, bool) {
	g, ok := gradeAliases[strings.ToLower(strings.TrimSpace(s))]
	return g, ok
}

// Grades lists the four valid grades in ascending order.
func Grades() []Grade {
	return []Grade{Again, Hard, Good, Easy}
}

// IsValid reports whether g is one of the four recognized grades.
func (g Grade) IsValid() bool {
	return g >= Again && g <= Easy
}

// String returns the lowercase name of the grade ("again" .. "easy").
// For invalid values it returns "Grade(n)".
func (g Grade) String() string {
	if g.IsValid() {
		return gradeNames[g]
	}
	return fmt.Sprintf("Grade(%d)", int(g))
}

// MarshalText implements encoding.TextMarshaler.
func (g Grade) MarshalText() ([]byte, error) {
	if !g.IsValid() {
		return nil, fmt.Errorf("srs: invalid grade: %d", int(g))
	}
	return []byte(gradeNames[g]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *Grade) UnmarshalText(text []byte) error {
	v, ok := gradeAliases[string(text)]
	if !ok {
		return fmt.Errorf("srs: invalid grade: %q", text)
	}
	*g = v
	return nil
}

// MarshalJSON implements json.Marshaler. Grade serializes as a JSON string.
func (g Grade) MarshalJSON() ([]byte, error) {
	text, err := g.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler. Expects a JSON string.
func (g *Grade) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("srs: invalid grade: %s", data)
	}
	return g.UnmarshalText([]byte(s))
}

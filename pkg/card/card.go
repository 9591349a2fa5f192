package card

import (
	"encoding"
	"encoding/json"
	"fmt"

	"tableflip.dev/cram/pkg/srs"
)

// Kind is the card format.
type Kind int

const (
	Basic Kind = iota + 1 // front/back pair
	Cloze                 // text with hidden spans
)

// NoBack is the placeholder answer for a line with no recognizable separator.
const NoBack = "(no back)"

var (
	kindNames = [...]string{Basic: "basic", Cloze: "cloze"}

	kindByName = map[string]Kind{
		"basic": Basic,
		"cloze": Cloze,
	}
)

var (
	_ fmt.Stringer             = Kind(0)
	_ encoding.TextMarshaler   = Kind(0)
	_ encoding.TextUnmarshaler = (*Kind)(nil)
)

func (k Kind) isValid() bool {
	return k == Basic || k == Cloze
}

func (k Kind) String() string {
	if k.isValid() {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.isValid() {
		return nil, fmt.Errorf("card: invalid kind: %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	v, ok := kindByName[string(text)]
	if !ok {
		return fmt.Errorf("card: invalid kind: %q", text)
	}
	*k = v
	return nil
}

// MarshalJSON implements json.Marshaler. Kind serializes as a JSON string.
func (k Kind) MarshalJSON() ([]byte, error) {
	text, err := k.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler. Expects a JSON string.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("card: invalid kind: %s", data)
	}
	return k.UnmarshalText([]byte(s))
}

// Card is a single flashcard with its scheduling state.
//
// ID is assigned at parse time (1-based, by line order) and is stable for the
// life of the deck: shuffling permutes storage order, never identity. Exactly
// the fields for the card's Kind are populated — Front/Back for Basic, Text
// for Cloze.
type Card struct {
	ID    int       `json:"id"`
	Kind  Kind      `json:"type"`
	Front string    `json:"front,omitempty"`
	Back  string    `json:"back,omitempty"`
	Text  string    `json:"text,omitempty"`
	SRS   srs.State `json:"srs"`
}

// Question returns the display text for the unrevealed side of the card.
func (c *Card) Question() string {
	if c.Kind == Cloze {
		return RenderCloze(c.Text, false)
	}
	return c.Front
}

// Answer returns the display text for the revealed side of the card.
func (c *Card) Answer() string {
	if c.Kind == Cloze {
		return RenderCloze(c.Text, true)
	}
	return c.Back
}

func (c *Card) String() string {
	if c.Kind == Cloze {
		return c.Text
	}
	return fmt.Sprintf("%s | %s", c.Front, c.Back)
}

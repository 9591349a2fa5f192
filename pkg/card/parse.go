package card

import (
	"regexp"
	"strings"
	"time"

	"tableflip.dev/cram/pkg/srs"
)

// clozeMark is the substring that promotes a line to a cloze card. Spans are
// not validated here; a malformed span simply never matches at render time.
const clozeMark = "{{c"

// separators are tried in priority order; the first pattern that matches a
// line determines the front/back split point.
var separators = []*regexp.Regexp{
	regexp.MustCompile(`\|+`),
	regexp.MustCompile(`::`),
	regexp.MustCompile(`\t`),
	regexp.MustCompile(`—`),
	regexp.MustCompile(` - `),
}

// ParseDeck converts raw newline-delimited text into an ordered deck of cards,
// each initialized with default scheduling state due at now.
//
// Parsing is total: every non-blank line maps to some card (a degenerate basic
// card with a "(no back)" answer at worst) and blank lines are dropped without
// consuming an ID. Empty input yields an empty deck.
func ParseDeck(text string, now time.Time) []*Card {
	cards := make([]*Card, 0)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		c := parseLine(line)
		c.ID = len(cards) + 1
		c.SRS = srs.NewState(now)
		cards = append(cards, c)
	}
	return cards
}

func parseLine(line string) *Card {
	if strings.Contains(line, clozeMark) {
		return &Card{Kind: Cloze, Text: line}
	}

	for _, sep := range separators {
		loc := sep.FindStringIndex(line)
		if loc == nil {
			continue
		}
		return &Card{
			Kind:  Basic,
			Front: strings.TrimSpace(line[:loc[0]]),
			Back:  strings.TrimSpace(line[loc[1]:]),
		}
	}

	return &Card{Kind: Basic, Front: line, Back: NoBack}
}

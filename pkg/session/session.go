// Package session implements the review session state machine: it owns the
// deck, selects the active card, enforces the reveal-before-grade gate, and
// tracks aggregate progress.
package session

import (
	"math/rand"
	"time"

	"tableflip.dev/cram/pkg/card"
	"tableflip.dev/cram/pkg/srs"
)

// Mode selects how the active card is chosen.
type Mode int

const (
	// Review shows the earliest-due eligible card until it is graded.
	Review Mode = iota
	// Browse walks the deck in storage order, wrapping at both ends.
	Browse
)

func (m Mode) String() string {
	if m == Browse {
		return "browse"
	}
	return "review"
}

// Config carries the session's injectable collaborators. Zero values produce
// defaults suitable for production use; tests inject Now and Rand.
type Config struct {
	Scheduler *srs.Scheduler   // nil → srs.NewScheduler defaults
	Now       func() time.Time // nil → time.Now
	Rand      *rand.Rand       // nil → time-seeded source
}

// Session is the single owner of an in-memory deck. All operations run to
// completion synchronously; there is no locking and no concurrent access.
type Session struct {
	cards    []*card.Card
	sched    *srs.Scheduler
	mode     Mode
	position int
	revealed bool
	now      func() time.Time
	rng      *rand.Rand
}

// New creates a session over the given deck. The session takes ownership of
// the slice; callers must not mutate it afterwards.
func New(cards []*card.Card, cfg Config) *Session {
	sched := cfg.Scheduler
	if sched == nil {
		sched = srs.NewScheduler(srs.SchedulerConfig{})
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Session{cards: cards, sched: sched, now: now, rng: rng}
}

// SetDeck replaces the deck, discarding all prior position and reveal state.
// Scheduling state travels with the cards themselves.
func (s *Session) SetDeck(cards []*card.Card) {
	s.cards = cards
	s.position = 0
	s.revealed = false
}

// Cards exposes the deck in storage order.
func (s *Session) Cards() []*card.Card {
	return s.cards
}

// Size returns the deck size.
func (s *Session) Size() int {
	return len(s.cards)
}

// Mode returns the current mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// SetMode switches between review and browse. Scheduling state and position
// are untouched; the answer is hidden again.
func (s *Session) SetMode(m Mode) {
	s.mode = m
	s.revealed = false
}

// Revealed reports whether the active card's answer is currently visible.
func (s *Session) Revealed() bool {
	return s.revealed
}

// Position returns the browse cursor.
func (s *Session) Position() int {
	return s.position
}

// ActiveCard returns the card currently being shown. In review mode this is
// the earliest-due card among those due now; ok is false when the deck is
// empty or, in review mode, when every card is scheduled in the future
// (all caught up).
func (s *Session) ActiveCard() (*card.Card, bool) {
	if len(s.cards) == 0 {
		return nil, false
	}
	if s.mode == Browse {
		return s.cards[s.position], true
	}
	return s.earliestDue()
}

// earliestDue scans the whole deck on every call. Decks are small and a full
// recompute avoids stale-index bugs after grading mutates due times.
func (s *Session) earliestDue() (*card.Card, bool) {
	now := s.now()
	var best *card.Card
	for _, c := range s.cards {
		if !c.SRS.IsDue(now) {
			continue
		}
		if best == nil || c.SRS.Due.Before(best.SRS.Due.Time) {
			best = c
		}
	}
	if best == nil {
		return nil, false
	}
	return best, true
}

// Next advances to the following card in browse mode, wrapping past the end.
// In review mode it only hides the answer; the active card is fixed by the
// due queue until a grade reschedules it.
func (s *Session) Next() {
	s.revealed = false
	if s.mode == Browse && len(s.cards) > 0 {
		s.position = (s.position + 1) % len(s.cards)
	}
}

// Prev retreats to the previous card in browse mode, wrapping past the start.
func (s *Session) Prev() {
	s.revealed = false
	if s.mode == Browse && len(s.cards) > 0 {
		s.position = (s.position - 1 + len(s.cards)) % len(s.cards)
	}
}

// Flip toggles answer visibility for the active card.
func (s *Session) Flip() {
	if _, ok := s.ActiveCard(); ok {
		s.revealed = !s.revealed
	}
}

// Grade applies a grade to the active card, gated behind a reveal: the first
// call with a hidden answer only reveals it, and the grade is discarded. With
// the answer visible the scheduler reschedules the card and the answer is
// hidden again. Unrecognized grades leave the session completely unchanged.
// It reports whether the card was actually rescheduled.
func (s *Session) Grade(g srs.Grade) bool {
	if !g.IsValid() {
		return false
	}
	c, ok := s.ActiveCard()
	if !ok {
		return false
	}
	if !s.revealed {
		s.revealed = true
		return false
	}
	c.SRS = s.sched.Review(c.SRS, g, s.now())
	s.revealed = false
	return true
}

// Shuffle permutes the deck uniformly at random. Card identity and scheduling
// state are untouched; the cursor returns to the top with the answer hidden.
func (s *Session) Shuffle() {
	s.rng.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
	s.position = 0
	s.revealed = false
}

// ResetProgress reinitializes every card's scheduling state, making the whole
// deck immediately due. Card content and order are preserved.
func (s *Session) ResetProgress() {
	now := s.now()
	for _, c := range s.cards {
		c.SRS.Reset(now)
	}
	s.position = 0
	s.revealed = false
}

// DueCount returns the number of cards currently due. In browse mode every
// card counts, by convention.
func (s *Session) DueCount() int {
	if s.mode == Browse {
		return len(s.cards)
	}
	now := s.now()
	due := 0
	for _, c := range s.cards {
		if c.SRS.IsDue(now) {
			due++
		}
	}
	return due
}

// Progress returns the percentage of the deck that is no longer due, rounded
// to the nearest integer. An empty deck reports 0.
func (s *Session) Progress() int {
	total := len(s.cards)
	if total == 0 {
		return 0
	}
	done := total - s.DueCount()
	return int(float64(done)/float64(total)*100 + 0.5)
}

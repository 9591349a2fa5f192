// Package shuffle provides the runner logic for shuffling the stored deck.
package shuffle

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/cram/pkg/printers"
	"tableflip.dev/cram/pkg/session"
	"tableflip.dev/cram/pkg/store"
)

// Shuffle permutes the stored deck uniformly at random. Card identity and
// scheduling state are preserved.
type Shuffle struct {
	Persistence store.Persistence
}

// Do shuffles and re-saves the deck.
func (n *Shuffle) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not shuffle, no persistence")
	}

	snap, err := n.Persistence.Snapshot(ctx)
	if err != nil {
		return err
	}
	if snap == nil {
		return errors.New("no deck loaded, run: cram load <file>")
	}

	s := session.New(snap.Cards, session.Config{})
	s.Shuffle()
	snap.Cards = s.Cards()

	if err := n.Persistence.Save(snap); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.TitleWithCount("Shuffled deck", len(snap.Cards))
	pp.Deck(snap.Cards...)

	return nil
}

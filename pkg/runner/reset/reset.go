// Package reset provides the runner logic for clearing scheduling progress.
package reset

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/cram/pkg/printers"
	"tableflip.dev/cram/pkg/session"
	"tableflip.dev/cram/pkg/store"
)

// Reset reinitializes every card's scheduling state, making the whole deck
// immediately due. Card content and order are preserved.
type Reset struct {
	Persistence store.Persistence
}

// Do resets and re-saves the deck.
func (n *Reset) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not reset, no persistence")
	}

	snap, err := n.Persistence.Snapshot(ctx)
	if err != nil {
		return err
	}
	if snap == nil {
		return errors.New("no deck loaded, run: cram load <file>")
	}

	s := session.New(snap.Cards, session.Config{})
	s.ResetProgress()

	if err := n.Persistence.Save(snap); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.TitleWithCount("Progress reset", len(snap.Cards))
	fmt.Println("")

	return nil
}

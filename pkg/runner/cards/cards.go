// Package cards provides the runner logic for listing the stored deck.
package cards

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/cram/pkg/printers"
	"tableflip.dev/cram/pkg/store"
)

// Cards lists the deck in storage order.
type Cards struct {
	ShowDue     bool
	Persistence store.Persistence
}

// Do renders the stored deck to stdout.
func (n *Cards) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not list cards, no persistence")
	}

	snap, err := n.Persistence.Snapshot(ctx)
	if err != nil {
		return err
	}
	if snap == nil {
		return errors.New("no deck loaded, run: cram load <file>")
	}

	pp := printers.PrettyPrint{ShowDue: n.ShowDue}
	fmt.Println("")
	pp.TitleWithCount("Deck", len(snap.Cards))
	pp.Deck(snap.Cards...)

	return nil
}

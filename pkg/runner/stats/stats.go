// Package stats provides the runner logic for the progress summary.
package stats

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/cram/pkg/printers"
	"tableflip.dev/cram/pkg/session"
	"tableflip.dev/cram/pkg/store"
)

// Stats reports deck size, due count, and progress.
type Stats struct {
	Persistence store.Persistence
}

// Do renders the progress summary to stdout.
func (n *Stats) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not report stats, no persistence")
	}

	snap, err := n.Persistence.Snapshot(ctx)
	if err != nil {
		return err
	}
	if snap == nil {
		return errors.New("no deck loaded, run: cram load <file>")
	}

	s := session.New(snap.Cards, session.Config{})

	reps, lapses := 0, 0
	for _, c := range snap.Cards {
		reps += c.SRS.Reps
		lapses += c.SRS.Lapses
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("Progress")
	pp.Stats(s.Size(), s.DueCount(), s.Progress(), reps, lapses)
	fmt.Println("")

	return nil
}

// Package review provides the interactive review TUI.
package review

import (
	"context"
	"errors"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/mattn/go-isatty"

	"tableflip.dev/cram/pkg/session"
	"tableflip.dev/cram/pkg/srs"
	"tableflip.dev/cram/pkg/store"
)

// Review launches the review TUI over the stored deck.
type Review struct {
	Horizon     time.Duration // zero → srs.DefaultMaxInterval
	Persistence store.Persistence
}

// Do loads the deck and runs the UI until the user quits.
func (n *Review) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not review, no persistence")
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errors.New("review needs a terminal, try: cram cards")
	}

	snap, err := n.Persistence.Snapshot(ctx)
	if err != nil {
		return err
	}
	if snap == nil {
		return errors.New("no deck loaded, run: cram load <file>")
	}

	sched := srs.NewScheduler(srs.SchedulerConfig{MaxInterval: n.Horizon})
	sess := session.New(snap.Cards, session.Config{
		Scheduler: sched,
		Rand:      rand.New(rand.NewSource(time.Now().UnixNano())),
	})

	watch, err := n.Persistence.Watch(ctx)
	if err != nil {
		// Reviewing still works without live reload.
		watch = nil
	}

	m := New(sess, sched, n.Persistence, snap.Text)
	m.watch = watch

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// Package load provides the runner logic for loading a deck from raw text.
package load

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"tableflip.dev/cram/pkg/card"
	"tableflip.dev/cram/pkg/printers"
	"tableflip.dev/cram/pkg/store"
)

// Load parses raw deck text and replaces the stored deck. All prior
// scheduling state is discarded; the new cards are immediately due.
type Load struct {
	Path        string // "-" or empty reads stdin
	Persistence store.Persistence
}

// Do executes the load operation.
func (n *Load) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not load, no persistence")
	}

	text, err := n.read()
	if err != nil {
		return err
	}

	cards := card.ParseDeck(text, time.Now())
	if err := n.Persistence.Save(&store.Snapshot{Text: text, Cards: cards}); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.TitleWithCount("Loaded deck", len(cards))
	pp.Deck(cards...)

	return nil
}

func (n *Load) read() (string, error) {
	if n.Path == "" || n.Path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(n.Path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", n.Path, err)
	}
	return string(data), nil
}

package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/cram/pkg/runner/load"
	"tableflip.dev/cram/pkg/store"
)

func addLoad(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "load [file]",
		Short: "Load a deck from a text file or stdin",
		Long: `Load parses newline-delimited card text and replaces the stored deck.

Each non-blank line becomes one card. A line containing {{c is a cloze card;
otherwise the first of |, ::, a tab, an em-dash, or " - " splits front from
back. Lines with no separator become a card with a "(no back)" answer.

Loading discards all prior scheduling progress.`,
		Example: `
cram load ./biology.txt
cat deck.txt | cram load
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := load.Load{Persistence: p}
			if len(args) == 1 {
				s.Path = args[0]
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

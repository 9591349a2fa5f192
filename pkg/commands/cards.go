package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/cram/pkg/runner/cards"
	"tableflip.dev/cram/pkg/store"
)

func addCards(topLevel *cobra.Command) {
	showDue := false

	cmd := &cobra.Command{
		Use:   "cards",
		Short: "List the stored deck",
		Example: `
cram cards
cram cards --due
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := cards.Cards{ShowDue: showDue, Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&showDue, "due", false, "Show when each card is next due.")

	topLevel.AddCommand(cmd)
}

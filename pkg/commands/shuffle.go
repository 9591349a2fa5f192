package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/cram/pkg/runner/shuffle"
	"tableflip.dev/cram/pkg/store"
)

func addShuffle(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "shuffle",
		Short: "Shuffle the stored deck",
		Long:  "Shuffle randomly permutes the deck order. Card identity and scheduling state are preserved.",
		Example: `
cram shuffle
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := shuffle.Shuffle{Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

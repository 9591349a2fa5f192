package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/cram/pkg/runner/review"
	"tableflip.dev/cram/pkg/store"
	"tableflip.dev/cram/pkg/timeutil"
)

func addReview(topLevel *cobra.Command) {
	horizon := ""

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Review due cards interactively",
		Long: `Review opens the interactive study screen over the stored deck.

The earliest-due card is shown until it is graded; grading before the answer
is revealed only reveals it. Keys: space flips, 1-4 grade, b toggles browse
mode, s shuffles, q quits.`,
		Example: `
cram review
cram review --horizon 36h
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cap, err := timeutil.ParseHorizon(horizon)
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := review.Review{Horizon: cap, Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&horizon, "horizon", "", "Interval cap, e.g. 10d or 36h. Defaults to 10d.")

	topLevel.AddCommand(cmd)
}

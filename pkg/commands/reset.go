package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/cram/pkg/runner/reset"
	"tableflip.dev/cram/pkg/store"
)

func addReset(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset all scheduling progress",
		Long:  "Reset makes every card immediately due again. Card content and order are preserved.",
		Example: `
cram reset
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := reset.Reset{Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/cram/pkg/runner/grades"
)

func addGrades(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "grades",
		Short: "Print the grade keys and what each one does",
		Example: `
cram grades
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			g := grades.Grades{}
			err := g.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

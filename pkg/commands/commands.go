package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "cram",
		Short: base.Wrap80("Flashcard cramming on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addLoad(topLevel)
	addReview(topLevel)
	addCards(topLevel)
	addStats(topLevel)
	addShuffle(topLevel)
	addReset(topLevel)
	addGrades(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
}

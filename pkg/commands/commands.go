package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "studyboard",
		Short: base.Wrap80("Track study progress on the command line: subjects, each with a row of boxes to check off."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addGet(topLevel)
	addAdd(topLevel)
	addRemove(topLevel)
	addRename(topLevel)
	addBox(topLevel)
	addClear(topLevel)
	addMove(topLevel)
	addReset(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addWatch(topLevel)
	addInfo(topLevel)
	addKey(topLevel)
	addVersion(topLevel)
	addUpgrade(topLevel)
	addCompletions(topLevel)
}

package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/studyboard/pkg/commands/options"
	"tableflip.dev/studyboard/pkg/prompt"
	"tableflip.dev/studyboard/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}
	ido := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "rm [id]",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove a subject.",
		Example: `
studyboard rm 3f2a
studyboard rm 3f2a --yes
`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: subjectCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			id, err := s.subjectID(args, 0, "Remove which subject?")
			if err != nil {
				return oo.HandleError(err)
			}
			r := remove.Remove{
				ID:      id,
				Confirm: prompt.For(co.Yes),
				ShowID:  ido.ShowID,
				Format:  oo.Format(),
				Store:   s.board,
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddConfirmArgs(cmd, co)
	options.AddShowIDArgs(cmd, ido)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

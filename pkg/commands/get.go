package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/studyboard/pkg/commands/options"
	"tableflip.dev/studyboard/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	ido := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "get [id]",
		Aliases: []string{"ls", "list"},
		Short:   "Show the board, or one subject and its boxes.",
		Example: `
studyboard get
studyboard get 3f2a --show-id
studyboard get --output yaml
`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: subjectCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			g := get.Get{
				ShowID: ido.ShowID,
				Format: oo.Format(),
				Store:  s.board,
				Out:    cmd.OutOrStdout(),
			}
			if len(args) == 1 {
				if g.SubjectID, err = s.board.Resolve(args[0]); err != nil {
					return oo.HandleError(err)
				}
			}
			return oo.HandleError(g.Do(cmd.Context()))
		},
	}

	options.AddShowIDArgs(cmd, ido)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

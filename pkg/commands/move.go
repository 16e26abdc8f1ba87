package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/studyboard/pkg/commands/options"
	"tableflip.dev/studyboard/pkg/runner/move"
)

func addMove(topLevel *cobra.Command) {
	ido := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "move <id> <before-id>",
		Aliases: []string{"mv"},
		Short:   "Move a subject so it sits right before another one.",
		Example: `
studyboard move 3f2a 9c1d
`,
		Args: cobra.ExactArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 1 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return subjectCompletions(cmd, nil, toComplete)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			m := move.Move{
				ShowID: ido.ShowID,
				Format: oo.Format(),
				Store:  s.board,
				Out:    cmd.OutOrStdout(),
			}
			if m.FromID, err = s.board.Resolve(args[0]); err != nil {
				return oo.HandleError(err)
			}
			if m.ToID, err = s.board.Resolve(args[1]); err != nil {
				return oo.HandleError(err)
			}
			return oo.HandleError(m.Do(cmd.Context()))
		},
	}

	options.AddShowIDArgs(cmd, ido)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

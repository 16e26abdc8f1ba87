package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/studyboard/pkg/commands/options"
	"tableflip.dev/studyboard/pkg/runner/rename"
)

func addRename(topLevel *cobra.Command) {
	ido := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a subject. An empty name becomes \"Sem nome\".",
		Example: `
studyboard rename 3f2a Álgebra linear
`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: subjectCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			id, err := s.board.Resolve(args[0])
			if err != nil {
				return oo.HandleError(err)
			}
			r := rename.Rename{
				ID:     id,
				Name:   strings.Join(args[1:], " "),
				ShowID: ido.ShowID,
				Format: oo.Format(),
				Store:  s.board,
				Out:    cmd.OutOrStdout(),
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddShowIDArgs(cmd, ido)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/studyboard/pkg/commands/options"
	"tableflip.dev/studyboard/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	bo := &options.BoxOptions{}
	ido := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a subject with a number of unchecked boxes.",
		Example: `
studyboard add Biologia --boxes 12
studyboard add "História do Brasil"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			a := add.Add{
				Name:   strings.Join(args, " "),
				Count:  bo.Count,
				ShowID: ido.ShowID,
				Format: oo.Format(),
				Store:  s.board,
				Out:    cmd.OutOrStdout(),
			}
			return oo.HandleError(a.Do(cmd.Context()))
		},
	}

	options.AddBoxArgs(cmd, bo)
	options.AddShowIDArgs(cmd, ido)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

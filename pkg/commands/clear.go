package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/studyboard/pkg/commands/options"
	"tableflip.dev/studyboard/pkg/prompt"
	"tableflip.dev/studyboard/pkg/runner/clearall"
)

func addClear(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}
	ido := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Uncheck every box of every subject.",
		Example: `
studyboard clear
studyboard clear --yes
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			c := clearall.Clear{
				Confirm: prompt.For(co.Yes),
				ShowID:  ido.ShowID,
				Format:  oo.Format(),
				Store:   s.board,
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(c.Do(cmd.Context()))
		},
	}

	options.AddConfirmArgs(cmd, co)
	options.AddShowIDArgs(cmd, ido)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

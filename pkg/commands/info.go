package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/studyboard/pkg/commands/options"
	"tableflip.dev/studyboard/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the board and where it is stored.",
		Example: `
studyboard info
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			i := info.Info{
				Config:  s.config,
				Backend: s.backend,
				Store:   s.board,
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(i.Do(cmd.Context()))
		},
	}

	options.AddErrorJSONArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/studyboard/pkg/commands/options"
	"tableflip.dev/studyboard/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	eo := &options.ExportOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the board to quadro-estudos-YYYY-MM-DD.json.",
		Example: `
studyboard export
studyboard export --out ~/backups
studyboard export --out - > board.json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			e := export.Export{
				Dir:   eo.Out,
				Store: s.board,
				Out:   cmd.OutOrStdout(),
			}
			return oo.HandleError(e.Do(cmd.Context()))
		},
	}

	options.AddExportArgs(cmd, eo)
	options.AddErrorJSONArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

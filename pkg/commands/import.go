package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/studyboard/pkg/commands/options"
	"tableflip.dev/studyboard/pkg/prompt"
	"tableflip.dev/studyboard/pkg/runner/importer"
)

func addImport(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}
	ido := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the board with the subjects in an export file.",
		Example: `
studyboard import quadro-estudos-2025-03-07.json
cat board.json | studyboard import - --yes
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context())
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			i := importer.Import{
				Path:    args[0],
				In:      cmd.InOrStdin(),
				Confirm: prompt.For(co.Yes),
				ShowID:  ido.ShowID,
				Format:  oo.Format(),
				Store:   s.board,
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(i.Do(cmd.Context()))
		},
	}

	options.AddConfirmArgs(cmd, co)
	options.AddShowIDArgs(cmd, ido)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

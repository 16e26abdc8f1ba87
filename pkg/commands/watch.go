package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/studyboard/pkg/commands/options"
	"tableflip.dev/studyboard/pkg/runner/watch"
	"tableflip.dev/studyboard/pkg/store"
)

func addWatch(topLevel *cobra.Command) {
	ido := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Reprint the board whenever another process changes it.",
		Long:  "Reprint the board whenever another process changes it. Only the disk backend reports changes.",
		Example: `
studyboard watch
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close()

			w := watch.Watch{
				ShowID: ido.ShowID,
				Store:  s.board,
				Out:    cmd.OutOrStdout(),
			}
			if watcher, ok := s.backend.(store.Watcher); ok {
				w.Watcher = watcher
			}
			return w.Do(cmd.Context())
		},
	}

	options.AddShowIDArgs(cmd, ido)

	topLevel.AddCommand(cmd)
}

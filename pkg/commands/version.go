package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	goversion "go.hein.dev/go-version"

	"tableflip.dev/studyboard/pkg/commands/options"
)

// Set at build time with -ldflags "-X tableflip.dev/studyboard/pkg/commands.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func addVersion(topLevel *cobra.Command) {
	vo := &options.VersionOptions{}

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Get studyboard version.",
		Example: `
studyboard version
studyboard version --short
studyboard version -o yaml
`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			resp := goversion.FuncWithOutput(vo.Short, version, commit, date, vo.Output)
			_, _ = fmt.Fprint(cmd.OutOrStdout(), resp)
		},
	}

	options.AddVersionArgs(cmd, vo)

	topLevel.AddCommand(cmd)
}

package commands

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/studyboard/pkg/commands/options"
)

// upgradeTarget is what `upgrade` hands to `go install`.
const upgradeTarget = "tableflip.dev/studyboard@latest"

// goInstall runs `go install pkg` and returns the command line that ran.
// Swapped in tests.
var goInstall = func(cmd *cobra.Command, pkg string) (string, error) {
	ex := exec.CommandContext(cmd.Context(), "go", "install", pkg)
	var stderr bytes.Buffer
	ex.Stderr = &stderr
	if err := ex.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("go install %s: %w: %s", pkg, err, msg)
		}
		return "", fmt.Errorf("go install %s: %w", pkg, err)
	}
	return ex.String(), nil
}

func addUpgrade(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Upgrade studyboard cli.",
		Example: `
studyboard upgrade
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ran, err := goInstall(cmd, upgradeTarget)
			if err != nil {
				return oo.HandleError(err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), ran)
			return nil
		},
	}

	options.AddErrorJSONArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

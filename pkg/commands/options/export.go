package options

import (
	"github.com/spf13/cobra"
)

// ExportOptions
type ExportOptions struct {
	Out string
}

func AddExportArgs(cmd *cobra.Command, o *ExportOptions) {
	cmd.Flags().StringVar(&o.Out, "out", ".",
		`Directory for the export file, or "-" for stdout.`)
}

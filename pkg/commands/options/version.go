package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/studyboard/pkg/printers"
)

// VersionOptions
type VersionOptions struct {
	Short  bool
	Output string
}

func AddVersionArgs(cmd *cobra.Command, o *VersionOptions) {
	o.Output = printers.FormatJSON
	cmd.Flags().BoolVarP(&o.Short, "short", "s", false,
		"Print just the version number.")
	cmd.Flags().VarP(&formatValue{p: &o.Output}, "output", "o",
		"Output format. One of 'json' or 'yaml'.")
}

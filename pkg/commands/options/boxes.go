package options

import (
	"github.com/spf13/cobra"
)

const defaultBoxes = 6

// BoxOptions
type BoxOptions struct {
	Count int
}

func AddBoxArgs(cmd *cobra.Command, o *BoxOptions) {
	cmd.Flags().IntVarP(&o.Count, "boxes", "b", defaultBoxes,
		`Number of boxes for the new subject, clamped to 1..100.`)
}

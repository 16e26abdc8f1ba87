// Package key provides CLI helpers to display the board legend.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/studyboard/pkg/printers"
	"tableflip.dev/studyboard/pkg/subject"
)

// Key prints a legend describing box glyphs and progress colors.
type Key struct {
	Out io.Writer
}

// Do renders the box and progress keys.
func (k *Key) Do(ctx context.Context) error {
	if k.Out == nil {
		k.Out = color.Output
	}
	_, _ = fmt.Fprintln(k.Out, "")

	k.Key(ctx, "Boxes", [][2]string{
		{printers.Strip([]bool{true}), "done"},
		{printers.Strip([]bool{false}), "to do"},
	})
	_, _ = fmt.Fprintln(k.Out, "")

	k.Key(ctx, "Progress", [][2]string{
		{printers.ProgressString(subject.Progress{Done: 3, Total: 3, Percent: 100}), "complete"},
		{printers.ProgressString(subject.Progress{Done: 1, Total: 3, Percent: 33}), "under way"},
		{printers.ProgressString(subject.Progress{Done: 0, Total: 3, Percent: 0}), "not started"},
	})

	_, _ = fmt.Fprintln(k.Out, "")
	return nil
}

// Key renders a two column legend table.
func (k *Key) Key(_ context.Context, title string, rows [][2]string) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint(title), bold.Sprint("Meaning"))
	for _, r := range rows {
		tbl.AddRow(r[0], r[1])
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(k.Out, tbl)
}

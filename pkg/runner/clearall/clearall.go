package clearall

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/studyboard/pkg/board"
	"tableflip.dev/studyboard/pkg/printers"
	"tableflip.dev/studyboard/pkg/prompt"
)

type Clear struct {
	Confirm prompt.ConfirmFunc

	ShowID bool
	Format string
	Store  *board.Store
	Out    io.Writer
}

func (n *Clear) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not clear, no store")
	}
	if n.Out == nil {
		n.Out = color.Output
	}
	if n.Confirm == nil {
		n.Confirm = prompt.Confirm
	}

	yes, err := n.Confirm("Uncheck every box of every subject?")
	if err != nil {
		return err
	}
	if !yes {
		_, _ = fmt.Fprintln(n.Out, "Nothing cleared.")
		return nil
	}

	if err := n.Store.ClearAllBoxes(ctx); err != nil {
		return err
	}
	return printers.PrintBoard(n.Out, n.Format, n.ShowID, n.Store.Board())
}

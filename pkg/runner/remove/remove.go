package remove

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

type Remove struct {
	ID      string
	Confirm prompt.ConfirmFunc

	ShowID bool
	Format string
	Store  *board.Store
	Out    io.Writer
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not remove, no store")
	}
	if n.Out == nil {
		n.Out = color.Output
	}
	if n.Confirm == nil {
		n.Confirm = prompt.Confirm
	}

	s, ok := n.Store.Subject(n.ID)
	if !ok {
		return fmt.Errorf("no subject with id %q", n.ID)
	}
	yes, err := n.Confirm(fmt.Sprintf("Remove %q?", s.Name))
	if err != nil {
		return err
	}
	if !yes {
		_, _ = fmt.Fprintln(n.Out, "Nothing removed.")
		return nil
	}

	if err := n.Store.RemoveSubject(ctx, n.ID); err != nil {
		return err
	}
	return printers.PrintBoard(n.Out, n.Format, n.ShowID, n.Store.Board())
}

package move

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/studyboard/pkg/board"
	"tableflip.dev/studyboard/pkg/printers"
)

// Move places FromID immediately before ToID.
type Move struct {
	FromID string
	ToID   string

	ShowID bool
	Format string
	Store  *board.Store
	Out    io.Writer
}

func (n *Move) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not move, no store")
	}
	if n.Out == nil {
		n.Out = color.Output
	}
	for _, id := range []string{n.FromID, n.ToID} {
		if _, ok := n.Store.Subject(id); !ok {
			return fmt.Errorf("no subject with id %q", id)
		}
	}

	if err := n.Store.Reorder(ctx, n.FromID, n.ToID); err != nil {
		return err
	}
	return printers.PrintBoard(n.Out, n.Format, n.ShowID, n.Store.Board())
}

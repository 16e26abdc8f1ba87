package rename

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/studyboard/pkg/board"
	"tableflip.dev/studyboard/pkg/printers"
)

type Rename struct {
	ID   string
	Name string

	ShowID bool
	Format string
	Store  *board.Store
	Out    io.Writer
}

func (n *Rename) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not rename, no store")
	}
	if n.Out == nil {
		n.Out = color.Output
	}
	if _, ok := n.Store.Subject(n.ID); !ok {
		return fmt.Errorf("no subject with id %q", n.ID)
	}

	if err := n.Store.RenameSubject(ctx, n.ID, n.Name); err != nil {
		return err
	}
	return printers.PrintBoard(n.Out, n.Format, n.ShowID, n.Store.Board())
}

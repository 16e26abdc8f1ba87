package add

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/studyboard/pkg/board"
	"tableflip.dev/studyboard/pkg/printers"
)

type Add struct {
	Name  string
	Count int

	ShowID bool
	Format string
	Store  *board.Store
	Out    io.Writer
}

func (n *Add) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not add, no store")
	}
	if n.Out == nil {
		n.Out = color.Output
	}

	s, err := n.Store.AddSubject(ctx, n.Name, n.Count)
	if err != nil {
		return err
	}
	if n.Format != "" {
		return printers.Structured(n.Out, n.Format, printers.NewSubjectView(len(n.Store.Board()), s))
	}
	return printers.PrintBoard(n.Out, "", n.ShowID, n.Store.Board())
}

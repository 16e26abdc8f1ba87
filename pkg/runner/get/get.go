package get

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/studyboard/pkg/board"
	"tableflip.dev/studyboard/pkg/printers"
)

type Get struct {
	ShowID    bool
	Format    string
	SubjectID string
	Store     *board.Store
	Out       io.Writer
}

func (n *Get) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not get, no store")
	}
	if n.Out == nil {
		n.Out = color.Output
	}

	if n.SubjectID != "" {
		s, ok := n.Store.Subject(n.SubjectID)
		if !ok {
			return fmt.Errorf("no subject with id %q", n.SubjectID)
		}
		return printers.PrintSubject(n.Out, n.Format, n.ShowID, n.Store.Position(s.ID), s)
	}
	return printers.PrintBoard(n.Out, n.Format, n.ShowID, n.Store.Board())
}

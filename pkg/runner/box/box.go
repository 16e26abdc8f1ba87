// Package box changes the boxes of a single subject.
package box

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/studyboard/pkg/board"
	"tableflip.dev/studyboard/pkg/printers"
)

// Action selects what Box does.
type Action int

const (
	Add Action = iota
	Remove
	Toggle
	Set
	Clear
)

type Box struct {
	Action Action
	ID     string
	Index  int
	Value  bool

	ShowID bool
	Format string
	Store  *board.Store
	Out    io.Writer
}

func (n *Box) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not change boxes, no store")
	}
	if n.Out == nil {
		n.Out = color.Output
	}

	s, ok := n.Store.Subject(n.ID)
	if !ok {
		return fmt.Errorf("no subject with id %q", n.ID)
	}

	var err error
	switch n.Action {
	case Add:
		err = n.Store.AddBox(ctx, n.ID)
	case Remove:
		err = n.Store.RemoveBox(ctx, n.ID)
	case Toggle, Set:
		if n.Index < 0 || n.Index >= len(s.Boxes) {
			return fmt.Errorf("box %d out of range, %q has %d boxes", n.Index, s.Name, len(s.Boxes))
		}
		if n.Action == Toggle {
			err = n.Store.ToggleBox(ctx, n.ID, n.Index)
		} else {
			err = n.Store.SetBox(ctx, n.ID, n.Index, n.Value)
		}
	case Clear:
		err = n.Store.ClearBoxes(ctx, n.ID)
	default:
		return fmt.Errorf("unknown box action %d", n.Action)
	}
	if err != nil {
		return err
	}

	s, _ = n.Store.Subject(n.ID)
	return printers.PrintSubject(n.Out, n.Format, n.ShowID, n.Store.Position(s.ID), s)
}

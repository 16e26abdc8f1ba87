// Package importer replaces the board with the contents of an export file.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/studyboard/pkg/board"
	"tableflip.dev/studyboard/pkg/printers"
	"tableflip.dev/studyboard/pkg/prompt"
)

// Stdin is the Path value that reads the snapshot from In.
const Stdin = "-"

type Import struct {
	Path    string
	In      io.Reader
	Confirm prompt.ConfirmFunc

	ShowID bool
	Format string
	Store  *board.Store
	Out    io.Writer
}

func (n *Import) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not import, no store")
	}
	if n.Out == nil {
		n.Out = color.Output
	}
	if n.Confirm == nil {
		n.Confirm = prompt.Confirm
	}

	text, err := n.read()
	if err != nil {
		return err
	}
	b, err := n.Store.ImportSnapshot(text)
	if err != nil {
		return err
	}

	yes, err := n.Confirm(fmt.Sprintf("Replace the current board with %d subjects from %s?", len(b), n.source()))
	if err != nil {
		return err
	}
	if !yes {
		_, _ = fmt.Fprintln(n.Out, "Nothing imported.")
		return nil
	}

	if err := n.Store.Replace(ctx, b); err != nil {
		return err
	}
	return printers.PrintBoard(n.Out, n.Format, n.ShowID, n.Store.Board())
}

func (n *Import) read() ([]byte, error) {
	if n.Path == Stdin {
		if n.In == nil {
			n.In = os.Stdin
		}
		return io.ReadAll(n.In)
	}
	return os.ReadFile(n.Path)
}

func (n *Import) source() string {
	if n.Path == Stdin {
		return "stdin"
	}
	return n.Path
}

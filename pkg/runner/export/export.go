package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"tableflip.dev/studyboard/pkg/board"
)

// Stdout is the Dir value that writes the snapshot to Out.
const Stdout = "-"

type Export struct {
	Dir   string
	Store *board.Store
	Out   io.Writer
}

func (n *Export) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not export, no store")
	}
	if n.Out == nil {
		n.Out = color.Output
	}

	data, err := n.Store.ExportSnapshot()
	if err != nil {
		return err
	}
	if n.Dir == Stdout {
		_, err := fmt.Fprintln(n.Out, string(data))
		return err
	}

	dir := n.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	path := filepath.Join(dir, n.Store.ExportFilename())
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	_, _ = fmt.Fprintf(n.Out, "Exported %d subjects to %s (%s)\n",
		len(n.Store.Board()), path, humanize.Bytes(uint64(len(data)+1)))
	return nil
}

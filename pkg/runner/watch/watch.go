// Package watch reprints the board whenever its storage changes.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"

	"tableflip.dev/studyboard/pkg/board"
	"tableflip.dev/studyboard/pkg/printers"
	"tableflip.dev/studyboard/pkg/store"
)

type Watch struct {
	Watcher store.Watcher

	ShowID bool
	Store  *board.Store
	Out    io.Writer
}

// Do blocks until ctx is done or the watcher stops.
func (n *Watch) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not watch, no store")
	}
	if n.Watcher == nil {
		return errors.New("can not watch, the configured backend does not report changes")
	}
	if n.Out == nil {
		n.Out = color.Output
	}

	events, err := n.Watcher.Watch(ctx)
	if err != nil {
		return err
	}
	n.print()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			log.WithField("key", ev.Key).Debug("watch: storage changed")
			if _, err := n.Store.Load(ctx); err != nil {
				return fmt.Errorf("watch: reload: %w", err)
			}
			n.print()
		}
	}
}

func (n *Watch) print() {
	_ = printers.PrintBoard(n.Out, "", n.ShowID, n.Store.Board())
}

package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/studyboard/pkg/board"
	"tableflip.dev/studyboard/pkg/store"
)

type Info struct {
	Config  store.Config
	Backend store.Backend
	Store   *board.Store
	Out     io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	if n.Out == nil {
		n.Out = color.Output
	}

	if override := os.Getenv(store.ConfigPathEnv); override != "" {
		_, _ = fmt.Fprintln(n.Out, store.ConfigPathEnv, "found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(n.Out, store.ConfigPathEnv, "env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}
	if n.Backend == nil {
		return fmt.Errorf("failed to create backend %q", n.Config.Backend())
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "

	configFile := store.ConfigFile(n.Config)
	if configFile == "" {
		configFile = "none"
	}
	tbl.AddRow(bold.Sprint("Config file"), configFile)
	tbl.AddRow(bold.Sprint("Backend"), n.Config.Backend())
	tbl.AddRow(bold.Sprint("Key"), n.Config.Key())
	if d, ok := n.Backend.(store.Describer); ok {
		tbl.AddRow(bold.Sprint("Location"), d.Describe())
	}

	text, ok, err := n.Backend.Read(ctx)
	if err != nil {
		return err
	}
	if ok {
		tbl.AddRow(bold.Sprint("Stored"), humanize.Bytes(uint64(len(text))))
	} else {
		tbl.AddRow(bold.Sprint("Stored"), "nothing yet, showing the demo board")
	}

	if n.Store != nil {
		b := n.Store.Board()
		tbl.AddRow(bold.Sprint("Subjects"), humanize.Comma(int64(len(b))))
		tbl.AddRow(bold.Sprint("Progress"), b.Progress().String())
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(n.Out, tbl)
	return nil
}

package main

import (
	"context"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"

	"tableflip.dev/studyboard/pkg/commands"
	"tableflip.dev/studyboard/pkg/commands/options"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := commands.New().ExecuteContext(ctx)
	stop()
	if options.IsReported(err) {
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}

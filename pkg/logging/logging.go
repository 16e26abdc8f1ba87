// Package logging configures the process-wide logrus logger.
package logging

import (
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"tableflip.dev/studyboard/pkg/store"
)

// Configure applies cfg to logger. An empty level keeps warn. When cfg.File is
// set, output goes to a rotating file instead of stderr.
func Configure(logger *log.Logger, cfg store.LogConfig) error {
	level := log.WarnLevel
	if raw := strings.TrimSpace(cfg.Level); raw != "" {
		var err error
		level, err = log.ParseLevel(raw)
		if err != nil {
			return err
		}
	}
	logger.SetLevel(level)
	logger.SetFormatter(&log.TextFormatter{
		DisableTimestamp: cfg.File == "",
		FullTimestamp:    true,
	})
	logger.SetOutput(output(cfg.File))
	return nil
}

func output(file string) io.Writer {
	if file == "" {
		return os.Stderr
	}
	return &lumberjack.Logger{
		Filename:   file,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}
}

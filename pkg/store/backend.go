// Package store persists the study board as one text slot behind a
// pluggable backend.
package store

import (
	"context"
	"fmt"
	"io"
)

// Backend reads and writes the single slot holding the serialised board.
type Backend interface {
	// Read returns the stored text. ok is false when nothing was stored yet.
	Read(ctx context.Context) (text string, ok bool, err error)
	// Write replaces the stored text.
	Write(ctx context.Context, text string) error
}

// Open builds the backend selected by cfg.
func Open(cfg Config) (Backend, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	switch cfg.Backend() {
	case BackendDisk:
		return NewDisk(cfg.BasePath(), cfg.Key())
	case BackendSQLite:
		return OpenSQLite(sqlitePath(cfg.BasePath()), cfg.Key())
	case BackendRedis:
		return NewRedis(cfg.Redis(), cfg.Key()), nil
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("store: unknown backend %q", cfg.Backend())
	}
}

// Close releases resources held by b, if it holds any.
func Close(b Backend) error {
	if c, ok := b.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Describer is implemented by backends that can say where they keep data.
type Describer interface {
	Describe() string
}

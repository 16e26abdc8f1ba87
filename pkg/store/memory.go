package store

import (
	"context"
	"sync"
)

// Memory is an in-process backend.
type Memory struct {
	mu     sync.Mutex
	text   string
	ok     bool
	writes int
}

// NewMemory returns an empty memory backend.
func NewMemory() *Memory {
	return &Memory{}
}

// NewMemoryWith returns a memory backend already holding text.
func NewMemoryWith(text string) *Memory {
	return &Memory{text: text, ok: true}
}

func (m *Memory) Read(_ context.Context) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, m.ok, nil
}

func (m *Memory) Write(_ context.Context, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	m.ok = true
	m.writes++
	return nil
}

// Writes reports how many times Write was called.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

func (m *Memory) Describe() string {
	return "memory"
}

package watch

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/studyboard/pkg/board"
	"tableflip.dev/studyboard/pkg/store"
)

type fakeWatcher struct {
	events chan store.Event
}

func (f *fakeWatcher) Watch(context.Context) (<-chan store.Event, error) {
	return f.events, nil
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatchReloadsOnEvent(t *testing.T) {
	color.NoColor = true
	ctx := context.Background()
	mem := store.NewMemoryWith(`[{"id":"a","name":"A","boxes":[false]}]`)
	s, err := board.Open(ctx, mem)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	fw := &fakeWatcher{events: make(chan store.Event)}
	out := &syncBuffer{}
	w := Watch{Watcher: fw, Store: s, Out: out}

	done := make(chan error, 1)
	go func() { done <- w.Do(ctx) }()

	// Another process rewrites the slot.
	if err := mem.Write(ctx, `[{"id":"a","name":"A","boxes":[true]}]`); err != nil {
		t.Fatal(err)
	}
	fw.events <- store.Event{Type: store.EventSlotChanged, Key: store.DefaultKey}
	close(fw.events)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("watch: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not return after the event stream closed")
	}

	if got := strings.Count(out.String(), "Total"); got != 2 {
		t.Fatalf("expected the board printed twice, got %d:\n%s", got, out.String())
	}
	if !strings.Contains(out.String(), "Total 100%") {
		t.Fatalf("expected the reloaded board, got:\n%s", out.String())
	}
}

func TestWatchRequiresWatcher(t *testing.T) {
	s, err := board.Open(context.Background(), store.NewMemory())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	w := Watch{Store: s, Out: &bytes.Buffer{}}
	if err := w.Do(context.Background()); err == nil {
		t.Fatal("expected error without a watcher")
	}
}

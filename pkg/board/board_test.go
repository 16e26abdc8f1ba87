package board

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"tableflip.dev/studyboard/pkg/store"
	"tableflip.dev/studyboard/pkg/subject"
)

func sequentialIDs() subject.IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

// failingBackend fails every write after the first `allow` writes.
type failingBackend struct {
	store.Memory
	allow int
}

func (f *failingBackend) Write(ctx context.Context, text string) error {
	if f.allow <= 0 {
		return errors.New("disk full")
	}
	f.allow--
	return f.Memory.Write(ctx, text)
}

func newStore(t *testing.T, stored string) (*Store, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	if stored != "" {
		mem = store.NewMemoryWith(stored)
	}
	logger, _ := test.NewNullLogger()
	s, err := Open(context.Background(), mem, WithIDs(sequentialIDs()), WithLogger(logger))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return s, mem
}

// persisted decodes what the backend currently holds.
func persisted(t *testing.T, mem *store.Memory) subject.Board {
	t.Helper()
	text, ok, err := mem.Read(context.Background())
	if err != nil || !ok {
		t.Fatalf("expected persisted board, ok=%v err=%v", ok, err)
	}
	b, err := subject.DecodeBoard([]byte(text), nil)
	if err != nil {
		t.Fatalf("decode persisted: %v", err)
	}
	return b
}

func assertWrittenThrough(t *testing.T, s *Store, mem *store.Memory) {
	t.Helper()
	if got := persisted(t, mem); !reflect.DeepEqual(got, s.Board()) {
		t.Fatalf("backend out of sync:\n got %v\nwant %v", got, s.Board())
	}
}

func TestLoadAbsentSeedsDemoWithoutWriting(t *testing.T) {
	s, mem := newStore(t, "")
	b := s.Board()
	if len(b) != 3 || b[0].Name != "Matemática" {
		t.Fatalf("expected demo board, got %v", b)
	}
	if mem.Writes() != 0 {
		t.Fatalf("demo board should not be persisted on load, got %d writes", mem.Writes())
	}
}

func TestLoadCorruptSeedsDemoAndWarns(t *testing.T) {
	for _, stored := range []string{`{broken`, `{"not":"an array"}`, `[{"name":1}]`} {
		t.Run(stored, func(t *testing.T) {
			mem := store.NewMemoryWith(stored)
			logger, hook := test.NewNullLogger()
			s, err := Open(context.Background(), mem, WithLogger(logger))
			if err != nil {
				t.Fatalf("load must not fail on corrupt data: %v", err)
			}
			if len(s.Board()) != 3 {
				t.Fatalf("expected demo board, got %v", s.Board())
			}
			if len(hook.Entries) != 1 || hook.LastEntry().Level != log.WarnLevel {
				t.Fatalf("expected one warning, got %v", hook.Entries)
			}
			var readErr *subject.PersistenceReadError
			if err, _ := hook.LastEntry().Data[log.ErrorKey].(error); !errors.As(err, &readErr) {
				t.Fatalf("expected PersistenceReadError in log entry, got %v", hook.LastEntry().Data)
			}
			if text, _, _ := mem.Read(context.Background()); text != stored {
				t.Fatal("corrupt content should stay until the next mutation")
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	mem := store.NewMemoryWith(`[{"id":"a","name":"A","boxes":[true,false]},{"name":"B","boxes":[]}]`)
	s, err := Open(context.Background(), mem, WithIDs(sequentialIDs()))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	before := s.Board()
	if before[1].ID == "" {
		t.Fatal("expected missing id to be assigned on load")
	}
	if err := s.Save(context.Background()); err != nil {
		t.Fatalf("save: %v", err)
	}

	again, err := Open(context.Background(), mem, WithIDs(sequentialIDs()))
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if !reflect.DeepEqual(again.Board(), before) {
		t.Fatalf("round trip mismatch:\n got %v\nwant %v", again.Board(), before)
	}
}

func TestAddSubject(t *testing.T) {
	s, mem := newStore(t, `[]`)
	ctx := context.Background()

	big, err := s.AddSubject(ctx, "", 200)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if big.Name != subject.DefaultName || len(big.Boxes) != 100 {
		t.Fatalf("expected clamped default subject, got %s with %d boxes", big.Name, len(big.Boxes))
	}
	small, err := s.AddSubject(ctx, "x", 0)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(small.Boxes) != 1 {
		t.Fatalf("expected 1 box, got %d", len(small.Boxes))
	}

	b := s.Board()
	if len(b) != 2 || b[0].ID != big.ID || b[1].ID != small.ID {
		t.Fatalf("expected subjects appended in order, got %v", b)
	}
	if b[0].ID == b[1].ID {
		t.Fatal("expected unique ids")
	}
	assertWrittenThrough(t, s, mem)
}

func TestAddSubjectAvoidsIDCollision(t *testing.T) {
	mem := store.NewMemoryWith(`[{"id":"id-1","name":"A","boxes":[]}]`)
	s, err := Open(context.Background(), mem, WithIDs(sequentialIDs()))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	added, err := s.AddSubject(context.Background(), "B", 1)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if added.ID == "id-1" {
		t.Fatal("new subject reused an existing id")
	}
}

func TestMutationsWriteThrough(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name  string
		do    func(s *Store) error
		check func(t *testing.T, b subject.Board)
	}{
		{
			name: "remove",
			do:   func(s *Store) error { return s.RemoveSubject(ctx, "b") },
			check: func(t *testing.T, b subject.Board) {
				if len(b) != 2 || b.Find("b") != nil {
					t.Fatalf("expected b removed, got %v", b)
				}
			},
		},
		{
			name: "rename blank",
			do:   func(s *Store) error { return s.RenameSubject(ctx, "a", "  ") },
			check: func(t *testing.T, b subject.Board) {
				if b.Find("a").Name != subject.UnnamedName {
					t.Fatalf("expected fallback name, got %q", b.Find("a").Name)
				}
			},
		},
		{
			name: "add box",
			do:   func(s *Store) error { return s.AddBox(ctx, "a") },
			check: func(t *testing.T, b subject.Board) {
				if !reflect.DeepEqual(b.Find("a").Boxes, []bool{true, false, false}) {
					t.Fatalf("unexpected boxes %v", b.Find("a").Boxes)
				}
			},
		},
		{
			name: "remove box",
			do:   func(s *Store) error { return s.RemoveBox(ctx, "a") },
			check: func(t *testing.T, b subject.Board) {
				if !reflect.DeepEqual(b.Find("a").Boxes, []bool{true}) {
					t.Fatalf("unexpected boxes %v", b.Find("a").Boxes)
				}
			},
		},
		{
			name: "toggle",
			do:   func(s *Store) error { return s.ToggleBox(ctx, "a", 1) },
			check: func(t *testing.T, b subject.Board) {
				if !reflect.DeepEqual(b.Find("a").Boxes, []bool{true, true}) {
					t.Fatalf("unexpected boxes %v", b.Find("a").Boxes)
				}
			},
		},
		{
			name: "set",
			do:   func(s *Store) error { return s.SetBox(ctx, "a", 0, false) },
			check: func(t *testing.T, b subject.Board) {
				if !reflect.DeepEqual(b.Find("a").Boxes, []bool{false, false}) {
					t.Fatalf("unexpected boxes %v", b.Find("a").Boxes)
				}
			},
		},
		{
			name: "clear one",
			do:   func(s *Store) error { return s.ClearBoxes(ctx, "c") },
			check: func(t *testing.T, b subject.Board) {
				if b.Find("c").Done() != 0 || b.Find("a").Done() != 1 {
					t.Fatalf("expected only c cleared, got %v", b)
				}
			},
		},
		{
			name: "clear all",
			do:   func(s *Store) error { return s.ClearAllBoxes(ctx) },
			check: func(t *testing.T, b subject.Board) {
				if b.Progress().Done != 0 || b.Progress().Total != 5 {
					t.Fatalf("expected every box cleared, got %+v", b.Progress())
				}
			},
		},
		{
			name: "reorder",
			do:   func(s *Store) error { return s.Reorder(ctx, "c", "a") },
			check: func(t *testing.T, b subject.Board) {
				if b[0].ID != "c" || b[1].ID != "a" || b[2].ID != "b" {
					t.Fatalf("unexpected order %s %s %s", b[0].ID, b[1].ID, b[2].ID)
				}
			},
		},
		{
			name: "reset",
			do:   func(s *Store) error { return s.ResetToDemo(ctx) },
			check: func(t *testing.T, b subject.Board) {
				if len(b) != 3 || b[0].Name != "Matemática" || b.Find("a") != nil {
					t.Fatalf("expected demo board, got %v", b)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mem := newStore(t, `[
				{"id":"a","name":"A","boxes":[true,false]},
				{"id":"b","name":"B","boxes":[]},
				{"id":"c","name":"C","boxes":[true,true,true]}
			]`)
			if err := tt.do(s); err != nil {
				t.Fatalf("mutation: %v", err)
			}
			tt.check(t, s.Board())
			if mem.Writes() != 1 {
				t.Fatalf("expected exactly one write, got %d", mem.Writes())
			}
			assertWrittenThrough(t, s, mem)
		})
	}
}

func TestAbsentIDsAreNoOps(t *testing.T) {
	ctx := context.Background()
	s, mem := newStore(t, `[{"id":"a","name":"A","boxes":[]}]`)
	before := s.Board()

	ops := []func() error{
		func() error { return s.RemoveSubject(ctx, "zzz") },
		func() error { return s.RenameSubject(ctx, "zzz", "n") },
		func() error { return s.AddBox(ctx, "zzz") },
		func() error { return s.RemoveBox(ctx, "zzz") },
		func() error { return s.RemoveBox(ctx, "a") },
		func() error { return s.ToggleBox(ctx, "a", 0) },
		func() error { return s.ToggleBox(ctx, "zzz", 0) },
		func() error { return s.SetBox(ctx, "a", 3, true) },
		func() error { return s.ClearBoxes(ctx, "zzz") },
		func() error { return s.Reorder(ctx, "a", "zzz") },
		func() error { return s.Reorder(ctx, "zzz", "a") },
	}
	for i, op := range ops {
		if err := op(); err != nil {
			t.Fatalf("op %d: %v", i, err)
		}
	}
	if !reflect.DeepEqual(s.Board(), before) {
		t.Fatalf("board changed: %v", s.Board())
	}
	if mem.Writes() != 0 {
		t.Fatalf("no-ops should not write, got %d writes", mem.Writes())
	}
	if len(s.Board()[0].Boxes) != 0 {
		t.Fatal("remove box on empty subject underflowed")
	}
}

func TestToggleTwiceRestores(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t, `[{"id":"a","name":"A","boxes":[true,false,true]}]`)
	before := s.Board()
	for i := 0; i < 3; i++ {
		if err := s.ToggleBox(ctx, "a", i); err != nil {
			t.Fatalf("toggle: %v", err)
		}
		if err := s.ToggleBox(ctx, "a", i); err != nil {
			t.Fatalf("toggle: %v", err)
		}
	}
	if !reflect.DeepEqual(s.Board(), before) {
		t.Fatalf("double toggle changed board: %v", s.Board())
	}
}

func TestAddBoxIsUnbounded(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t, `[]`)
	subj, err := s.AddSubject(ctx, "big", 100)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.AddBox(ctx, subj.ID); err != nil {
		t.Fatalf("add box: %v", err)
	}
	got, _ := s.Subject(subj.ID)
	if len(got.Boxes) != 101 {
		t.Fatalf("expected 101 boxes, got %d", len(got.Boxes))
	}
}

func TestFailedWriteKeepsBoard(t *testing.T) {
	ctx := context.Background()
	backend := &failingBackend{}
	if err := backend.Memory.Write(ctx, `[{"id":"a","name":"A","boxes":[false]}]`); err != nil {
		t.Fatalf("seed: %v", err)
	}
	s, err := Open(ctx, backend)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.ToggleBox(ctx, "a", 0); err == nil {
		t.Fatal("expected write error")
	}
	if got, _ := s.Subject("a"); got.Boxes[0] {
		t.Fatal("board changed although the write failed")
	}
}

func TestBoardCopiesAreIsolated(t *testing.T) {
	s, _ := newStore(t, `[{"id":"a","name":"A","boxes":[false]}]`)
	b := s.Board()
	b[0].Boxes[0] = true
	b[0].Name = "changed"
	if got, _ := s.Subject("a"); got.Boxes[0] || got.Name != "A" {
		t.Fatal("caller mutated store state through Board()")
	}
}

func TestProgress(t *testing.T) {
	s, _ := newStore(t, `[{"id":"a","name":"A","boxes":[true,false]},{"id":"b","name":"B","boxes":[true,true]}]`)
	if got := s.Progress(); got != (subject.Progress{Done: 3, Total: 4, Percent: 75}) {
		t.Fatalf("unexpected progress %+v", got)
	}
	empty, _ := newStore(t, `[]`)
	if got := empty.Progress(); got.Percent != 0 {
		t.Fatalf("expected 0%% for empty board, got %d", got.Percent)
	}
}

func TestLoadWithoutBackend(t *testing.T) {
	if _, err := New(nil).Load(context.Background()); err == nil {
		t.Fatal("expected error without backend")
	}
}

func TestResolve(t *testing.T) {
	s, _ := newStore(t, `[
		{"id":"abc123","name":"Álgebra","boxes":[]},
		{"id":"abd456","name":"Biologia","boxes":[]},
		{"id":"ab","name":"Cálculo","boxes":[]},
		{"id":"99x","name":"Redação","boxes":[]},
		{"id":"dup1","name":"Dup","boxes":[]},
		{"id":"dup2","name":"dup","boxes":[]},
		{"id":"dup3","name":"dup","boxes":[]}
	]`)
	tests := []struct {
		ref     string
		want    string
		wantErr string
	}{
		{ref: "abc", want: "abc123"},
		{ref: " abd ", want: "abd456"},
		{ref: "ab", want: "ab"},
		{ref: "2", want: "abd456"},
		{ref: " 4 ", want: "99x"},
		{ref: "99", want: "99x"},
		{ref: "Biologia", want: "abd456"},
		{ref: "cálculo", want: "ab"},
		{ref: "Dup", want: "dup1"},
		{ref: "dup", wantErr: "2 subjects are named"},
		{ref: "a", wantErr: "matches 3 subjects"},
		{ref: "zz", wantErr: "no subject matches"},
		{ref: "0", wantErr: "no subject matches"},
		{ref: "", wantErr: "required"},
	}
	for _, tt := range tests {
		got, err := s.Resolve(tt.ref)
		if tt.wantErr != "" {
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Resolve(%q): expected error %q, got %v", tt.ref, tt.wantErr, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("Resolve(%q) = %q, %v; want %q", tt.ref, got, err, tt.want)
		}
	}
}

func TestResolveDemoByPositionAcrossLoads(t *testing.T) {
	mem := store.NewMemory()
	first, err := Open(context.Background(), mem)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	printed := first.Board()[0].ID

	second, err := Open(context.Background(), mem)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if _, err := second.Resolve(printed); err == nil {
		t.Fatal("expected demo ids to change between loads")
	}
	for _, ref := range []string{"1", "Matemática"} {
		id, err := second.Resolve(ref)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", ref, err)
		}
		if got, _ := second.Subject(id); got.Name != "Matemática" {
			t.Fatalf("Resolve(%q) found %q", ref, got.Name)
		}
	}
	if got := second.Position(second.Board()[2].ID); got != 3 {
		t.Fatalf("expected position 3, got %d", got)
	}
	if got := second.Position("missing"); got != 0 {
		t.Fatalf("expected 0 for a missing id, got %d", got)
	}
}

func TestNilOptionsKeepDefaults(t *testing.T) {
	s, err := Open(context.Background(), store.NewMemoryWith(`[]`), WithIDs(nil), WithClock(nil), WithLogger(nil))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	added, err := s.AddSubject(context.Background(), "x", 1)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if added.ID == "" {
		t.Fatal("expected a generated id")
	}
	if !strings.HasPrefix(s.ExportFilename(), "quadro-estudos-") {
		t.Fatalf("unexpected file name %q", s.ExportFilename())
	}
}

func TestExportFilenameUsesClock(t *testing.T) {
	clock := func() time.Time { return time.Date(2025, time.March, 7, 23, 0, 0, 0, time.UTC) }
	s := New(store.NewMemory(), WithClock(clock))
	if got := s.ExportFilename(); got != "quadro-estudos-2025-03-07.json" {
		t.Fatalf("unexpected file name %q", got)
	}
}

// Package board holds the study board in memory and keeps its backend in
// sync. Every mutation is written through before it returns.
package board

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"tableflip.dev/studyboard/pkg/store"
	"tableflip.dev/studyboard/pkg/subject"
)

const (
	layoutISO    = "2006-01-02"
	exportPrefix = "quadro-estudos"
)

// Store owns the board and its persistence.
type Store struct {
	mu      sync.Mutex
	backend store.Backend
	log     log.FieldLogger
	newID   subject.IDFunc
	now     func() time.Time
	board   subject.Board
}

// Option customises a Store.
type Option func(*Store)

// WithLogger sets the logger used for persistence diagnostics. nil keeps
// the standard logger.
func WithLogger(l log.FieldLogger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithIDs sets the subject id generator. nil keeps random UUIDs.
func WithIDs(f subject.IDFunc) Option {
	return func(s *Store) {
		if f != nil {
			s.newID = f
		}
	}
}

// WithClock sets the clock used for export file names. nil keeps time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// New returns a Store with an empty board. Call Load before use.
func New(backend store.Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		log:     log.StandardLogger(),
		newID:   subject.NewID,
		now:     time.Now,
		board:   subject.Board{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open returns a loaded Store.
func Open(ctx context.Context, backend store.Backend, opts ...Option) (*Store, error) {
	s := New(backend, opts...)
	if _, err := s.Load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Load replaces the in-memory board with the stored one. Missing or
// unreadable content yields the demo board, which is not persisted until the
// next mutation. Only backend failures are returned.
func (s *Store) Load(ctx context.Context) (subject.Board, error) {
	if s.backend == nil {
		return nil, errors.New("board: no backend configured")
	}
	text, ok, err := s.backend.Read(ctx)
	if err != nil {
		return nil, err
	}

	var b subject.Board
	switch {
	case !ok || strings.TrimSpace(text) == "":
		s.log.Debug("board: nothing stored, using demo board")
		b = subject.Demo(s.newID)
	default:
		b, err = subject.DecodeBoard([]byte(text), s.newID)
		if err != nil {
			var readErr *subject.PersistenceReadError
			if !errors.As(err, &readErr) {
				return nil, err
			}
			s.log.WithError(readErr).Warn("board: failed to load, using demo board")
			b = subject.Demo(s.newID)
		}
	}

	s.mu.Lock()
	s.board = b
	s.mu.Unlock()
	return b.Clone(), nil
}

// Save writes the whole board to the backend.
func (s *Store) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(ctx, s.board)
}

func (s *Store) write(ctx context.Context, b subject.Board) error {
	if s.backend == nil {
		return errors.New("board: no backend configured")
	}
	data, err := subject.Marshal(b)
	if err != nil {
		return fmt.Errorf("board: encode: %w", err)
	}
	if err := s.backend.Write(ctx, string(data)); err != nil {
		return err
	}
	s.log.WithField("subjects", len(b)).Debug("board: saved")
	return nil
}

// mutate applies fn to a copy of the board. When fn reports a change the copy
// is persisted and then becomes the current board, so a failed write leaves
// the board as it was.
func (s *Store) mutate(ctx context.Context, fn func(subject.Board) (subject.Board, bool)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, changed := fn(s.board.Clone())
	if !changed {
		return nil
	}
	if err := s.write(ctx, next); err != nil {
		return err
	}
	s.board = next
	return nil
}

// mutateSubject applies fn to the subject with id; absent ids are a no-op.
func (s *Store) mutateSubject(ctx context.Context, id string, fn func(*subject.Subject) bool) error {
	return s.mutate(ctx, func(b subject.Board) (subject.Board, bool) {
		subj := b.Find(id)
		if subj == nil {
			return b, false
		}
		return b, fn(subj)
	})
}

// AddSubject appends a new subject with count unchecked boxes.
func (s *Store) AddSubject(ctx context.Context, name string, count int) (*subject.Subject, error) {
	var added *subject.Subject
	err := s.mutate(ctx, func(b subject.Board) (subject.Board, bool) {
		added = subject.New(s.newID, name, count)
		for b.Index(added.ID) >= 0 {
			added.ID = s.newID()
		}
		return append(b, added), true
	})
	if err != nil {
		return nil, err
	}
	return added.Clone(), nil
}

// RemoveSubject deletes the subject with id.
func (s *Store) RemoveSubject(ctx context.Context, id string) error {
	return s.mutate(ctx, func(b subject.Board) (subject.Board, bool) {
		return b.Remove(id)
	})
}

// RenameSubject renames the subject with id.
func (s *Store) RenameSubject(ctx context.Context, id, name string) error {
	return s.mutateSubject(ctx, id, func(subj *subject.Subject) bool {
		subj.Rename(name)
		return true
	})
}

// AddBox appends an unchecked box to the subject with id.
func (s *Store) AddBox(ctx context.Context, id string) error {
	return s.mutateSubject(ctx, id, func(subj *subject.Subject) bool {
		subj.Push()
		return true
	})
}

// RemoveBox drops the last box of the subject with id.
func (s *Store) RemoveBox(ctx context.Context, id string) error {
	return s.mutateSubject(ctx, id, (*subject.Subject).Pop)
}

// ToggleBox flips box index of the subject with id.
func (s *Store) ToggleBox(ctx context.Context, id string, index int) error {
	return s.mutateSubject(ctx, id, func(subj *subject.Subject) bool {
		return subj.Toggle(index)
	})
}

// SetBox stores value in box index of the subject with id.
func (s *Store) SetBox(ctx context.Context, id string, index int, value bool) error {
	return s.mutateSubject(ctx, id, func(subj *subject.Subject) bool {
		return subj.Set(index, value)
	})
}

// ClearBoxes unchecks every box of the subject with id.
func (s *Store) ClearBoxes(ctx context.Context, id string) error {
	return s.mutateSubject(ctx, id, func(subj *subject.Subject) bool {
		subj.Clear()
		return true
	})
}

// ClearAllBoxes unchecks every box on the board.
func (s *Store) ClearAllBoxes(ctx context.Context) error {
	return s.mutate(ctx, func(b subject.Board) (subject.Board, bool) {
		for _, subj := range b {
			subj.Clear()
		}
		return b, true
	})
}

// Reorder moves fromID immediately before toID.
func (s *Store) Reorder(ctx context.Context, fromID, toID string) error {
	return s.mutate(ctx, func(b subject.Board) (subject.Board, bool) {
		return b.Move(fromID, toID)
	})
}

// ResetToDemo replaces the board with fresh demo data.
func (s *Store) ResetToDemo(ctx context.Context) error {
	return s.mutate(ctx, func(subject.Board) (subject.Board, bool) {
		return subject.Demo(s.newID), true
	})
}

// Replace swaps in a whole board, typically one returned by ImportSnapshot
// after the user confirmed.
func (s *Store) Replace(ctx context.Context, b subject.Board) error {
	next := b.Clone()
	next.EnsureIDs(s.newID)
	return s.mutate(ctx, func(subject.Board) (subject.Board, bool) {
		return next, true
	})
}

// Board returns a copy of the current board.
func (s *Store) Board() subject.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Clone()
}

// Subject returns a copy of the subject with id.
func (s *Store) Subject(id string) (*subject.Subject, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	subj := s.board.Find(id)
	return subj.Clone(), subj != nil
}

// Progress reports completion across the board.
func (s *Store) Progress() subject.Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Progress()
}

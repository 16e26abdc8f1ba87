// Package subject defines the study board data model: subjects, their
// completion boxes, and the ordered board that holds them.
package subject

import (
	"strings"

	"github.com/google/uuid"
)

const (
	// DefaultName is used when a subject is created without a name.
	DefaultName = "Nova matéria"
	// UnnamedName is used when a subject is renamed to an empty name.
	UnnamedName = "Sem nome"

	// MinBoxes and MaxBoxes bound the box count of a new subject. Boxes
	// added later are not bounded.
	MinBoxes = 1
	MaxBoxes = 100
)

// IDFunc generates subject ids.
type IDFunc func() string

// NewID returns a fresh random subject id.
func NewID() string {
	return uuid.NewString()
}

func (f IDFunc) next() string {
	if f == nil {
		return NewID()
	}
	return f()
}

// Subject is a named unit of study with an ordered list of completion boxes.
type Subject struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Boxes []bool `json:"boxes" yaml:"boxes"`
}

// New returns a subject with count unchecked boxes. The name falls back to
// DefaultName and count is clamped to [MinBoxes, MaxBoxes].
func New(newID IDFunc, name string, count int) *Subject {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}
	return &Subject{
		ID:    newID.next(),
		Name:  name,
		Boxes: make([]bool, ClampBoxes(count)),
	}
}

// ClampBoxes limits a requested box count to [MinBoxes, MaxBoxes].
func ClampBoxes(count int) int {
	switch {
	case count < MinBoxes:
		return MinBoxes
	case count > MaxBoxes:
		return MaxBoxes
	default:
		return count
	}
}

// Rename sets the name, falling back to UnnamedName when blank.
func (s *Subject) Rename(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = UnnamedName
	}
	s.Name = name
}

// Push appends an unchecked box.
func (s *Subject) Push() {
	s.Boxes = append(s.Boxes, false)
}

// Pop removes the last box. It reports false when there was nothing to remove.
func (s *Subject) Pop() bool {
	if len(s.Boxes) == 0 {
		return false
	}
	s.Boxes = s.Boxes[:len(s.Boxes)-1]
	return true
}

// Toggle flips the box at index. It reports false if index is out of range.
func (s *Subject) Toggle(index int) bool {
	if index < 0 || index >= len(s.Boxes) {
		return false
	}
	s.Boxes[index] = !s.Boxes[index]
	return true
}

// Set stores value at index. It reports false if index is out of range.
func (s *Subject) Set(index int, value bool) bool {
	if index < 0 || index >= len(s.Boxes) {
		return false
	}
	s.Boxes[index] = value
	return true
}

// Clear unchecks every box.
func (s *Subject) Clear() {
	for i := range s.Boxes {
		s.Boxes[i] = false
	}
}

// Done counts the checked boxes.
func (s *Subject) Done() int {
	done := 0
	for _, b := range s.Boxes {
		if b {
			done++
		}
	}
	return done
}

// Progress reports how many boxes are checked.
func (s *Subject) Progress() Progress {
	return newProgress(s.Done(), len(s.Boxes))
}

// Clone returns a deep copy.
func (s *Subject) Clone() *Subject {
	if s == nil {
		return nil
	}
	cp := &Subject{ID: s.ID, Name: s.Name}
	if s.Boxes != nil {
		cp.Boxes = append(make([]bool, 0, len(s.Boxes)), s.Boxes...)
	}
	return cp
}

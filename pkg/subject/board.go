package subject

// Board is the ordered collection of subjects. Order is user controlled and
// persisted.
type Board []*Subject

// Demo returns the seed board used on first run and on reset. Every call
// generates fresh ids.
func Demo(newID IDFunc) Board {
	math := &Subject{ID: newID.next(), Name: "Matemática", Boxes: make([]bool, 15)}
	for i := 0; i < 5; i++ {
		math.Boxes[i] = true
	}
	physics := &Subject{ID: newID.next(), Name: "Física", Boxes: make([]bool, 10)}
	chemistry := &Subject{ID: newID.next(), Name: "Química", Boxes: make([]bool, 6)}
	for i := range chemistry.Boxes {
		chemistry.Boxes[i] = true
	}
	return Board{math, physics, chemistry}
}

// Index returns the position of the subject with id, or -1.
func (b Board) Index(id string) int {
	for i, s := range b {
		if s != nil && s.ID == id {
			return i
		}
	}
	return -1
}

// Find returns the subject with id, or nil.
func (b Board) Find(id string) *Subject {
	if i := b.Index(id); i >= 0 {
		return b[i]
	}
	return nil
}

// Remove drops the subject with id. It reports false if id is absent.
func (b Board) Remove(id string) (Board, bool) {
	i := b.Index(id)
	if i < 0 {
		return b, false
	}
	out := make(Board, 0, len(b)-1)
	out = append(out, b[:i]...)
	return append(out, b[i+1:]...), true
}

// Move takes the subject fromID out of the board and reinserts it
// immediately before the subject toID. It reports false, leaving the board
// unchanged, if either id is absent or both are the same.
func (b Board) Move(fromID, toID string) (Board, bool) {
	from := b.Index(fromID)
	if from < 0 || b.Index(toID) < 0 || fromID == toID {
		return b, false
	}
	moved := b[from]
	rest := make(Board, 0, len(b))
	rest = append(rest, b[:from]...)
	rest = append(rest, b[from+1:]...)
	to := rest.Index(toID)
	out := make(Board, 0, len(b))
	out = append(out, rest[:to]...)
	out = append(out, moved)
	return append(out, rest[to:]...), true
}

// Progress reports completion across every box on the board.
func (b Board) Progress() Progress {
	done, total := 0, 0
	for _, s := range b {
		if s == nil {
			continue
		}
		done += s.Done()
		total += len(s.Boxes)
	}
	return newProgress(done, total)
}

// Clone returns a deep copy.
func (b Board) Clone() Board {
	if b == nil {
		return nil
	}
	out := make(Board, 0, len(b))
	for _, s := range b {
		out = append(out, s.Clone())
	}
	return out
}

// EnsureIDs assigns a fresh id to every subject without one, and to every
// subject whose id repeats an earlier one.
func (b Board) EnsureIDs(newID IDFunc) {
	seen := make(map[string]struct{}, len(b))
	for _, s := range b {
		if s == nil {
			continue
		}
		if _, dup := seen[s.ID]; s.ID == "" || dup {
			s.ID = newID.next()
		}
		seen[s.ID] = struct{}{}
	}
}

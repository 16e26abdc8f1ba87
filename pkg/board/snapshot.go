package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"tableflip.dev/studyboard/pkg/subject"
)

// ExportSnapshot returns the board as indented JSON for an export file.
func (s *Store) ExportSnapshot() ([]byte, error) {
	data, err := subject.MarshalIndent(s.Board())
	if err != nil {
		return nil, fmt.Errorf("board: encode: %w", err)
	}
	return data, nil
}

// ExportFilename names an export file after the current UTC date.
func (s *Store) ExportFilename() string {
	return fmt.Sprintf("%s-%s.json", exportPrefix, s.now().UTC().Format(layoutISO))
}

// ImportSnapshot validates text and returns the board it describes. The store
// is left untouched; pass the result to Replace once the user confirms.
// Failures are *subject.ImportValidationError.
func (s *Store) ImportSnapshot(text []byte) (subject.Board, error) {
	return subject.ParseSnapshot(text, s.newID)
}

// Resolve finds the subject ref refers to. ref is tried as an exact id, a
// 1-based board position, an exact name (then a case-insensitive one) and
// finally a unique id prefix. Positions and names survive a reload of the
// unsaved demo board; its ids do not.
func (s *Store) Resolve(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", errors.New("board: subject id required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.board.Index(ref) >= 0 {
		return ref, nil
	}
	if pos, err := strconv.Atoi(ref); err == nil && pos >= 1 && pos <= len(s.board) {
		return s.board[pos-1].ID, nil
	}
	for _, match := range []func(string) bool{
		func(name string) bool { return name == ref },
		func(name string) bool { return strings.EqualFold(name, ref) },
	} {
		ids := s.matching(func(subj *subject.Subject) bool { return match(subj.Name) })
		switch len(ids) {
		case 0:
			continue
		case 1:
			return ids[0], nil
		default:
			return "", fmt.Errorf("board: %d subjects are named %q, use a position or id", len(ids), ref)
		}
	}

	matches := s.matching(func(subj *subject.Subject) bool { return strings.HasPrefix(subj.ID, ref) })
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("board: no subject matches %q", ref)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("board: %q matches %d subjects", ref, len(matches))
	}
}

func (s *Store) matching(keep func(*subject.Subject) bool) []string {
	var ids []string
	for _, subj := range s.board {
		if keep(subj) {
			ids = append(ids, subj.ID)
		}
	}
	return ids
}

// Position returns the 1-based board position of id, or 0 when absent.
func (s *Store) Position(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Index(id) + 1
}

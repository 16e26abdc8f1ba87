package subject

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Marshal serialises the board in the compact form used for storage.
func Marshal(b Board) ([]byte, error) {
	if b == nil {
		b = Board{}
	}
	return json.Marshal(b)
}

// MarshalIndent serialises the board for export files.
func MarshalIndent(b Board) ([]byte, error) {
	if b == nil {
		b = Board{}
	}
	return json.MarshalIndent(b, "", "  ")
}

// ParseSnapshot validates an import text and decodes it into a board.
// Subjects without an id, or repeating an earlier id, receive a fresh one.
// Any failure is an *ImportValidationError.
func ParseSnapshot(data []byte, newID IDFunc) (Board, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ImportValidationError{Index: -1, Reason: "not valid JSON", Err: err}
	}
	if kindOf(raw) != '[' {
		return nil, &ImportValidationError{Index: -1, Reason: "expected a list of subjects"}
	}
	var items []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, &ImportValidationError{Index: -1, Reason: "every subject must be an object", Err: unwrapType(err)}
	}

	board := make(Board, 0, len(items))
	for i, item := range items {
		s, err := decodeSubject(item)
		if err != nil {
			return nil, &ImportValidationError{Index: i, Reason: err.Error()}
		}
		board = append(board, s)
	}
	board.EnsureIDs(newID)
	return board, nil
}

// DecodeBoard decodes stored content. Failures are wrapped in a
// *PersistenceReadError.
func DecodeBoard(data []byte, newID IDFunc) (Board, error) {
	b, err := ParseSnapshot(data, newID)
	if err != nil {
		return nil, &PersistenceReadError{Err: err}
	}
	return b, nil
}

func decodeSubject(item map[string]json.RawMessage) (*Subject, error) {
	if item == nil {
		return nil, errors.New("expected an object")
	}
	s := &Subject{}

	name, ok := item["name"]
	if !ok || kindOf(name) != '"' {
		return nil, errors.New("name must be a string")
	}
	if err := json.Unmarshal(name, &s.Name); err != nil {
		return nil, fmt.Errorf("name: %w", err)
	}

	boxes, ok := item["boxes"]
	if !ok || kindOf(boxes) != '[' {
		return nil, errors.New("boxes must be a list")
	}
	s.Boxes = []bool{}
	if err := json.Unmarshal(boxes, &s.Boxes); err != nil {
		return nil, errors.New("boxes must be a list of true/false values")
	}

	if id, ok := item["id"]; ok && kindOf(id) != 'n' {
		if kindOf(id) != '"' {
			return nil, errors.New("id must be a string")
		}
		if err := json.Unmarshal(id, &s.ID); err != nil {
			return nil, fmt.Errorf("id: %w", err)
		}
	}
	return s, nil
}

// kindOf returns the first significant byte of a JSON value: '[', '{', '"',
// 'n' for null, and so on.
func kindOf(raw json.RawMessage) byte {
	raw = bytes.TrimLeft(raw, " \t\r\n")
	if len(raw) == 0 {
		return 0
	}
	return raw[0]
}

func unwrapType(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Errorf("found %s", typeErr.Value)
	}
	return err
}

package subject

import "fmt"

// ImportValidationError reports why an import text was rejected. The current
// board is never modified when it is returned.
type ImportValidationError struct {
	// Index is the offending element, or -1 when the whole document is at fault.
	Index  int
	Reason string
	Err    error
}

func (e *ImportValidationError) Error() string {
	msg := "invalid board file"
	if e.Index >= 0 {
		msg = fmt.Sprintf("%s: subject %d", msg, e.Index)
	}
	if e.Reason != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Reason)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ImportValidationError) Unwrap() error {
	return e.Err
}

// PersistenceReadError reports stored content that could not be decoded.
// Callers recover from it by seeding demo data.
type PersistenceReadError struct {
	Err error
}

func (e *PersistenceReadError) Error() string {
	return fmt.Sprintf("subject: stored board unreadable: %v", e.Err)
}

func (e *PersistenceReadError) Unwrap() error {
	return e.Err
}

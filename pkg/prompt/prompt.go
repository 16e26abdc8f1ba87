// Package prompt asks the user questions on the terminal.
package prompt

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"tableflip.dev/studyboard/pkg/subject"
)

// ConfirmFunc asks a yes/no question.
type ConfirmFunc func(title string) (bool, error)

// Confirm asks a yes/no question. Aborting the prompt counts as no.
func Confirm(title string) (bool, error) {
	ok := false
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	return ok, err
}

// Always answers yes without asking, for --yes.
func Always(string) (bool, error) {
	return true, nil
}

// For returns Always when yes is set and Confirm otherwise.
func For(yes bool) ConfirmFunc {
	if yes {
		return Always
	}
	return Confirm
}

// PickSubject lets the user choose a subject and returns its id.
func PickSubject(title string, b subject.Board) (string, error) {
	if len(b) == 0 {
		return "", errors.New("prompt: board has no subjects")
	}
	opts := make([]huh.Option[string], 0, len(b))
	for _, s := range b {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s  %s", s.Name, s.Progress()), s.ID))
	}
	var id string
	err := huh.NewSelect[string]().
		Title(title).
		Options(opts...).
		Value(&id).
		Run()
	return id, err
}

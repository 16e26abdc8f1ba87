package printers

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"tableflip.dev/studyboard/pkg/subject"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// SubjectView is a subject with its derived progress, for structured output.
// Position is 1-based and, unlike the id of an unsaved demo board, can be
// passed back to the next command.
type SubjectView struct {
	Position int              `json:"position" yaml:"position"`
	ID       string           `json:"id" yaml:"id"`
	Name     string           `json:"name" yaml:"name"`
	Boxes    []bool           `json:"boxes" yaml:"boxes"`
	Progress subject.Progress `json:"progress" yaml:"progress"`
}

// BoardView is the structured form of `get`.
type BoardView struct {
	Subjects []SubjectView    `json:"subjects" yaml:"subjects"`
	Progress subject.Progress `json:"progress" yaml:"progress"`
}

func NewSubjectView(position int, s *subject.Subject) SubjectView {
	boxes := s.Boxes
	if boxes == nil {
		boxes = []bool{}
	}
	return SubjectView{Position: position, ID: s.ID, Name: s.Name, Boxes: boxes, Progress: s.Progress()}
}

func NewBoardView(b subject.Board) BoardView {
	v := BoardView{Subjects: make([]SubjectView, 0, len(b)), Progress: b.Progress()}
	for i, s := range b {
		v.Subjects = append(v.Subjects, NewSubjectView(i+1, s))
	}
	return v
}

// Structured writes v as json or yaml.
func Structured(w io.Writer, format string, v interface{}) error {
	switch format {
	case FormatJSON:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q, expected json or yaml", format)
	}
}

// PrintBoard writes b as a table, or as json/yaml when format is set.
func PrintBoard(w io.Writer, format string, showID bool, b subject.Board) error {
	if format != "" {
		return Structured(w, format, NewBoardView(b))
	}
	pp := PrettyPrint{ShowID: showID, Out: w}
	pp.NewLine()
	pp.Board(b)
	return nil
}

// PrintSubject writes s, found at the 1-based position, with its boxes, or as
// json/yaml when format is set.
func PrintSubject(w io.Writer, format string, showID bool, position int, s *subject.Subject) error {
	if format != "" {
		return Structured(w, format, NewSubjectView(position, s))
	}
	pp := PrettyPrint{ShowID: showID, Out: w}
	pp.NewLine()
	pp.Subject(position, s)
	return nil
}

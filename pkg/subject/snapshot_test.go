package subject

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParseSnapshotAssignsIDs(t *testing.T) {
	b, err := ParseSnapshot([]byte(`[{"name":"A","boxes":[true,false]}]`), sequentialIDs())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(b) != 1 {
		t.Fatalf("expected 1 subject, got %d", len(b))
	}
	if b[0].Name != "A" || b[0].ID != "id-1" {
		t.Fatalf("unexpected subject %+v", b[0])
	}
	if !reflect.DeepEqual(b[0].Boxes, []bool{true, false}) {
		t.Fatalf("unexpected boxes %v", b[0].Boxes)
	}
}

func TestParseSnapshotKeepsIDsAndEmptyBoxes(t *testing.T) {
	b, err := ParseSnapshot([]byte(`[{"id":"x","name":"A","boxes":[]},{"id":null,"name":"","boxes":[false]}]`), sequentialIDs())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if b[0].ID != "x" || b[0].Boxes == nil || len(b[0].Boxes) != 0 {
		t.Fatalf("unexpected first subject %+v", b[0])
	}
	if b[1].ID != "id-1" || b[1].Name != "" {
		t.Fatalf("unexpected second subject %+v", b[1])
	}
}

func TestParseSnapshotRejects(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		index int
		want  string
	}{
		{name: "object", in: `{"not":"an array"}`, index: -1, want: "list of subjects"},
		{name: "syntax", in: `[{"name":`, index: -1, want: "not valid JSON"},
		{name: "empty", in: ``, index: -1, want: "not valid JSON"},
		{name: "scalar element", in: `[1]`, index: -1, want: "must be an object"},
		{name: "null element", in: `[null]`, index: 0, want: "expected an object"},
		{name: "missing name", in: `[{"boxes":[]}]`, index: 0, want: "name must be a string"},
		{name: "numeric name", in: `[{"name":1,"boxes":[]}]`, index: 0, want: "name must be a string"},
		{name: "missing boxes", in: `[{"name":"A"},{"name":"B"}]`, index: 0, want: "boxes must be a list"},
		{name: "null boxes", in: `[{"name":"A","boxes":[]},{"name":"B","boxes":null}]`, index: 1, want: "boxes must be a list"},
		{name: "boxes of strings", in: `[{"name":"A","boxes":["yes"]}]`, index: 0, want: "true/false"},
		{name: "numeric id", in: `[{"id":3,"name":"A","boxes":[]}]`, index: 0, want: "id must be a string"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := ParseSnapshot([]byte(tt.in), sequentialIDs())
			if err == nil {
				t.Fatalf("expected error, got board %v", b)
			}
			var ive *ImportValidationError
			if !errors.As(err, &ive) {
				t.Fatalf("expected *ImportValidationError, got %T", err)
			}
			if ive.Index != tt.index {
				t.Fatalf("expected index %d, got %d (%v)", tt.index, ive.Index, err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected %q in %q", tt.want, err.Error())
			}
		})
	}
}

func TestImportValidationErrorMessages(t *testing.T) {
	tests := map[string]string{
		`{"not":"an array"}`:             "invalid board file: expected a list of subjects",
		`[{"name":"A","boxes":["yes"]}]`: "invalid board file: subject 0: boxes must be a list of true/false values",
	}
	for in, want := range tests {
		_, err := ParseSnapshot([]byte(in), sequentialIDs())
		if err == nil || err.Error() != want {
			t.Fatalf("%s: expected %q, got %v", in, want, err)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	board := Board{
		{ID: "a", Name: "Matemática", Boxes: []bool{true, false}},
		{ID: "b", Name: "Física", Boxes: []bool{}},
	}
	data, err := Marshal(board)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := DecodeBoard(data, sequentialIDs())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(got, board) {
		t.Fatalf("round trip mismatch:\n got %#v\nwant %#v", got, board)
	}

	pretty, err := MarshalIndent(board)
	if err != nil {
		t.Fatalf("marshal indent: %v", err)
	}
	if !strings.Contains(string(pretty), "\n  {") {
		t.Fatalf("expected two-space indentation, got %s", pretty)
	}
}

func TestMarshalNilBoard(t *testing.T) {
	data, err := Marshal(nil)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "[]" {
		t.Fatalf("expected [], got %s", data)
	}
}

func TestDecodeBoardWrapsErrors(t *testing.T) {
	_, err := DecodeBoard([]byte(`nope`), nil)
	var pre *PersistenceReadError
	if !errors.As(err, &pre) {
		t.Fatalf("expected *PersistenceReadError, got %T", err)
	}
	var ive *ImportValidationError
	if !errors.As(err, &ive) {
		t.Fatal("expected the validation cause to be preserved")
	}
}

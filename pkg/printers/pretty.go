package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/studyboard/pkg/subject"
)

const (
	shortIDLen = 8
	maxStrip   = 30

	glyphChecked   = "■"
	glyphUnchecked = "□"
)

type PrettyPrint struct {
	ShowID bool
	Out    io.Writer
}

var (
	spacing = strings.Repeat(" ", shortIDLen+2)
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithProgress(title string, p subject.Progress) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = progressColor(p).Fprintf(pp.out(), " - %s\n", p)
}

// Board prints one row per subject followed by the board total.
func (pp *PrettyPrint) Board(b subject.Board) {
	w := pp.out()
	if len(b) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(w, " no subjects\n\n")
		return
	}

	bold := color.New(color.Bold)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	header := []interface{}{bold.Sprint("#")}
	if pp.ShowID {
		header = append(header, bold.Sprint("ID"))
	}
	tbl.AddRow(append(header, bold.Sprint("Subject"), bold.Sprint("Boxes"), bold.Sprint("Progress"))...)
	for i, s := range b {
		row := []interface{}{i + 1}
		if pp.ShowID {
			row = append(row, y.Sprint(ShortID(s.ID)))
		}
		tbl.AddRow(append(row, s.Name, Strip(s.Boxes), ProgressString(s.Progress()))...)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(w, tbl)
	_, _ = fmt.Fprintln(w, "")

	total := b.Progress()
	_, _ = bold.Fprint(w, "Total ")
	_, _ = progressColor(total).Fprintf(w, "%d%%\n", total.Percent)
}

// ShortID abbreviates an id for display. Any unique prefix is accepted back.
func ShortID(id string) string {
	if len(id) <= shortIDLen {
		return id
	}
	return id[:shortIDLen]
}

// Strip renders boxes as a single line of glyphs, truncated after maxStrip.
func Strip(boxes []bool) string {
	sb := strings.Builder{}
	for i, v := range boxes {
		if i == maxStrip {
			sb.WriteString(fmt.Sprintf(" +%d", len(boxes)-maxStrip))
			break
		}
		if v {
			sb.WriteString(glyphChecked)
		} else {
			sb.WriteString(glyphUnchecked)
		}
	}
	return sb.String()
}

func progressColor(p subject.Progress) *color.Color {
	switch {
	case p.Total > 0 && p.Done == p.Total:
		return color.New(color.FgGreen)
	case p.Done == 0:
		return color.New(color.Faint)
	default:
		return color.New(color.FgYellow)
	}
}

// ProgressString renders p in the color used by the board table.
func ProgressString(p subject.Progress) string {
	return progressColor(p).Sprint(p.String())
}

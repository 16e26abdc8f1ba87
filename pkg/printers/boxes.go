package printers

import (
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/studyboard/pkg/subject"
)

const rowWidth = 10 // boxes per printed row

// Subject prints a subject title and its boxes in numbered rows.
func (pp *PrettyPrint) Subject(position int, s *subject.Subject) {
	if pp.ShowID {
		y := color.New(color.FgHiYellow, color.Italic, color.Faint)
		_, _ = y.Fprintln(pp.out(), s.ID)
	}
	pp.TitleWithProgress(fmt.Sprintf("%d. %s", position, s.Name), s.Progress())
	pp.Boxes(s.Boxes)
	pp.NewLine()
}

// Boxes prints boxes rowWidth at a time, each row led by the index of its
// first box so toggle/set targets can be read off directly.
func (pp *PrettyPrint) Boxes(boxes []bool) {
	w := pp.out()
	if len(boxes) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(w, " no boxes\n")
		return
	}

	index := color.New(color.Faint, color.FgWhite)
	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgGreen)

	for i, v := range boxes {
		if i%rowWidth == 0 {
			_, _ = index.Fprintf(w, "%4d  ", i)
		}
		if v {
			_, _ = l2.Fprint(w, glyphChecked+" ")
		} else {
			_, _ = l1.Fprint(w, glyphUnchecked+" ")
		}
		if i%rowWidth == rowWidth-1 || i == len(boxes)-1 {
			_, _ = fmt.Fprint(w, "\n")
		}
	}
}

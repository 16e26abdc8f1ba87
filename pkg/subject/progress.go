package subject

import (
	"fmt"
	"math"
)

// Progress is the completion state of a subject or a whole board.
type Progress struct {
	Done    int `json:"done" yaml:"done"`
	Total   int `json:"total" yaml:"total"`
	Percent int `json:"percent" yaml:"percent"`
}

func newProgress(done, total int) Progress {
	return Progress{Done: done, Total: total, Percent: Percent(done, total)}
}

// Percent returns done/total as a rounded integer percentage, halves rounding
// up. It is 0 when total is 0.
func Percent(done, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Floor(float64(done)/float64(total)*100 + 0.5))
}

func (p Progress) String() string {
	return fmt.Sprintf("%d%% (%d/%d)", p.Percent, p.Done, p.Total)
}

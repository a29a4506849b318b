// Package trend builds the recent mood series and draws it as a text chart.
package trend

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/moodiary/pkg/day"
	"tableflip.dev/moodiary/pkg/record"
	"tableflip.dev/moodiary/pkg/timeutil"
)

// DefaultDays is the length of the recent series.
const DefaultDays = 30

// Point is one day of the series. OK is false for a gap.
type Point struct {
	Date  time.Time
	Key   string
	Label string
	Score int
	OK    bool
}

// Series is ordered oldest first and ends with today.
type Series []Point

// RecentSeries returns exactly n points ending today. Days without a scored
// record are gaps; nothing is interpolated. n is capped at timeutil.MaxDays.
func RecentSeries(c record.Collection, today time.Time, n int) Series {
	n = min(n, timeutil.MaxDays)
	days := day.Trailing(today, n)
	s := make(Series, 0, len(days))
	for _, d := range days {
		key := day.Format(d)
		p := Point{Date: d, Key: key, Label: day.ShortLabel(d)}
		if r, ok := c[key]; ok && r.HasScore() {
			p.Score, p.OK = r.Score, true
		}
		s = append(s, p)
	}
	return s
}

// Scored counts the points carrying a score.
func (s Series) Scored() int {
	n := 0
	for _, p := range s {
		if p.OK {
			n++
		}
	}
	return n
}

// Average is the mean of the scored points, zero when there are none.
func (s Series) Average() float64 {
	sum, n := 0, 0
	for _, p := range s {
		if p.OK {
			sum += p.Score
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

// Mark draws one plotted point.
const Mark = "●"

// Render draws the series as rows for the scores 10 down to 1, one column per
// day. Gaps are blank columns. The last line labels the first and last day.
func Render(s Series) string {
	var b strings.Builder
	for level := record.MaxScore; level >= record.MinScore; level-- {
		fmt.Fprintf(&b, "%2d │", level)
		for _, p := range s {
			if p.OK && p.Score == level {
				b.WriteString(Mark)
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("   └")
	b.WriteString(strings.Repeat("─", len(s)))
	if len(s) > 0 {
		first, last := s[0].Label, s[len(s)-1].Label
		b.WriteString("\n    ")
		b.WriteString(first)
		if pad := len(s) - len(first) - len(last); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
			b.WriteString(last)
		} else if len(s) > 1 {
			b.WriteString(" ")
			b.WriteString(last)
		}
	}
	return b.String()
}

package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/moodiary/pkg/calendar"
	"tableflip.dev/moodiary/pkg/day"
	"tableflip.dev/moodiary/pkg/trend"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Calendar prints a month, highlighting scored days by their score.
func (pp *PrettyPrint) Calendar(g calendar.Grid) {
	w := pp.out()
	l := pp.labels()

	title := l.MonthTitle(g.Year, g.Month)
	tf := color.New(color.FgWhite, color.Italic)
	mid := (width - len([]rune(title))) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Fprintf(w, "%s%s\n", strings.Repeat(" ", mid), title)
	_, _ = color.New(color.Faint).Fprintln(w, l.WeekHeader)

	blank := color.New(color.Faint, color.FgWhite)
	for _, week := range g.Weeks() {
		for i, c := range week {
			if i > 0 {
				_, _ = fmt.Fprint(w, " ")
			}
			if c.Day == 0 {
				_, _ = fmt.Fprint(w, "  ")
				continue
			}
			p := blank
			if c.HasRecord {
				p = ScoreColor(c.Score)
			}
			if c.IsToday {
				p = color.New(color.Underline, color.Bold)
				if c.HasRecord {
					p = ScoreColor(c.Score).Add(color.Underline)
				}
			}
			if c.IsSelected {
				p = color.New(color.ReverseVideo)
			}
			_, _ = p.Fprintf(w, "%2d", c.Day)
		}
		_, _ = fmt.Fprintln(w, "")
	}
	pp.NewLine()
}

// Trend prints the chart of a recent series and its summary.
func (pp *PrettyPrint) Trend(s trend.Series) {
	w := pp.out()
	for _, line := range strings.Split(trend.Render(s), "\n") {
		_, _ = fmt.Fprintln(w, colorMarks(line))
	}
	pp.NewLine()

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("days", len(s))
	tbl.AddRow("scored", s.Scored())
	if s.Scored() > 0 {
		tbl.AddRow("average", fmt.Sprintf("%.1f", s.Average()))
	}
	tbl.RightAlign(1)
	_, _ = fmt.Fprintln(w, tbl)
}

// colorMarks colors the marks of one chart row by the row's level.
func colorMarks(line string) string {
	var level int
	if _, err := fmt.Sscanf(line, "%d", &level); err != nil || level == 0 {
		return line
	}
	return strings.ReplaceAll(line, trend.Mark, ScoreColor(level).Sprint(trend.Mark))
}

func mustParse(key string) time.Time {
	t, err := day.Parse(key)
	if err != nil {
		return time.Time{}
	}
	return t
}

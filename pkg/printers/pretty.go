// Package printers writes diary views to a terminal.
package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/moodiary/pkg/export"
	"tableflip.dev/moodiary/pkg/locale"
	"tableflip.dev/moodiary/pkg/record"
	"tableflip.dev/moodiary/pkg/view"
)

// TextWidth wraps diary text.
const TextWidth = 60

type PrettyPrint struct {
	// Out defaults to color.Output.
	Out    io.Writer
	Locale *locale.Locale
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) labels() *locale.Locale {
	if pp.Locale == nil {
		return locale.ZH
	}
	return pp.Locale
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

// ScoreColor picks a color from red for 1 to green for 10.
func ScoreColor(score int) *color.Color {
	switch {
	case score <= 0:
		return color.New(color.Faint)
	case score <= 3:
		return color.New(color.FgRed, color.Bold)
	case score <= 5:
		return color.New(color.FgYellow, color.Bold)
	case score <= 7:
		return color.New(color.FgCyan, color.Bold)
	default:
		return color.New(color.FgGreen, color.Bold)
	}
}

// Day prints the editor panel of one day.
func (pp *PrettyPrint) Day(d view.Day) {
	l := pp.labels()
	w := pp.out()
	pp.Title(fmt.Sprintf("%s %s", d.Key, l.Weekday(mustParse(d.Key))))

	faint := color.New(color.Faint, color.Italic)
	if !d.Saved && d.Score == 0 && d.Text == "" {
		_, _ = faint.Fprint(w, " none\n\n")
		return
	}

	score := "-"
	if record.ValidScore(d.Score) {
		score = fmt.Sprintf("%d/%d", d.Score, record.MaxScore)
	}
	_, _ = fmt.Fprint(w, l.ScoreLabel)
	_, _ = ScoreColor(d.Score).Fprintln(w, score)
	_, _ = fmt.Fprintln(w, l.TextLabel)
	if strings.TrimSpace(d.Text) != "" {
		_, _ = fmt.Fprintln(w, wordwrap.String(d.Text, TextWidth))
	}
	if len(d.Images) > 0 {
		_, _ = faint.Fprintf(w, "[%d/%d images]\n", len(d.Images), record.MaxImages)
	}
	if d.Editable {
		_, _ = faint.Fprintln(w, l.RemainingText(record.Remaining(d.Text)))
	}
	pp.NewLine()
}

// Saved confirms a save.
func (pp *PrettyPrint) Saved(key string, r record.Record) {
	ok := color.New(color.FgGreen, color.Bold)
	_, _ = ok.Fprintf(pp.out(), "%s ", pp.labels().Saved)
	_, _ = fmt.Fprintf(pp.out(), "%s ", key)
	_, _ = ScoreColor(r.Score).Fprintf(pp.out(), "%d\n", r.Score)
}

// Imported summarizes an import.
func (pp *PrettyPrint) Imported(res export.ImportResult) {
	w := pp.out()
	ok := color.New(color.FgGreen, color.Bold)
	_, _ = ok.Fprintln(w, pp.labels().Imported)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("merged", res.Merged)
	tbl.AddRow("skipped", len(res.Skipped))
	tbl.RightAlign(1)
	_, _ = fmt.Fprintln(w, tbl)
	if len(res.Skipped) > 0 {
		faint := color.New(color.Faint)
		_, _ = faint.Fprintln(w, wordwrap.String(strings.Join(res.Skipped, " "), TextWidth))
	}
}

// Exported reports a written export file.
func (pp *PrettyPrint) Exported(path string, doc export.Document) {
	c := color.New(color.Faint)
	_, _ = fmt.Fprint(pp.out(), path)
	_, _ = c.Fprintf(pp.out(), " - %d %s\n", doc.Records, plural(doc.Records, "day", "days"))
}

// Notice prints a localized user-facing error.
func (pp *PrettyPrint) Notice(err error) {
	n := color.New(color.FgHiYellow)
	_, _ = n.Fprintln(pp.out(), pp.labels().Notice(err))
}

// Table prints key/value rows.
func (pp *PrettyPrint) Table(rows [][2]string) {
	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 80
	tbl.Wrap = true
	for _, r := range rows {
		tbl.AddRow(bold.Sprint(r[0]), r[1])
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

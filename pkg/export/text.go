package export

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/moodiary/pkg/day"
	"tableflip.dev/moodiary/pkg/locale"
	"tableflip.dev/moodiary/pkg/record"
	"tableflip.dev/moodiary/pkg/timeutil"
)

const separator = "--------------------------"

// Item is one exported day.
type Item struct {
	Date   time.Time
	Key    string
	Record record.Record
}

// Select returns the records of the trailing window ending today, oldest
// first. Days without a record are skipped; scoredOnly also skips records
// without a score.
func Select(c record.Collection, today time.Time, w timeutil.Window, scoredOnly bool) []Item {
	var items []Item
	for _, d := range day.Trailing(today, w.Days) {
		key := day.Format(d)
		r, ok := c[key]
		if !ok {
			continue
		}
		if scoredOnly && !r.HasScore() {
			continue
		}
		items = append(items, Item{Date: d, Key: key, Record: r})
	}
	return items
}

// Text renders the plain-text export of the window.
func Text(c record.Collection, today time.Time, w timeutil.Window, l *locale.Locale) (Document, error) {
	items := Select(c, today, w, false)
	if len(items) == 0 {
		return Document{}, ErrEmptyRange
	}
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, formatEntry(it, l))
	}
	return Document{
		Name:    FileName(l, w, today, "txt"),
		Content: []byte(strings.Join(parts, "\n")),
		Records: len(items),
	}, nil
}

func formatEntry(it Item, l *locale.Locale) string {
	score := "-"
	if it.Record.HasScore() {
		score = fmt.Sprint(it.Record.Score)
	}
	lines := []string{
		fmt.Sprintf("%s %s", it.Key, l.Weekday(it.Date)),
		l.ScoreLabel + score,
		l.TextLabel,
		it.Record.Text,
		"",
		separator,
		"",
	}
	return strings.Join(lines, "\n")
}

// FileName builds "<prefix>_<range label>_<today>.<ext>".
func FileName(l *locale.Locale, w timeutil.Window, today time.Time, ext string) string {
	return fmt.Sprintf("%s_%s_%s.%s", l.FilePrefix, l.RangeLabel(w.String()), day.Format(today), ext)
}

package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/moodiary/pkg/calendar"
	"tableflip.dev/moodiary/pkg/export"
	"tableflip.dev/moodiary/pkg/locale"
	"tableflip.dev/moodiary/pkg/record"
	"tableflip.dev/moodiary/pkg/trend"
	"tableflip.dev/moodiary/pkg/view"
)

func newPrinter(t *testing.T) (*PrettyPrint, *bytes.Buffer) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
	var buf bytes.Buffer
	return &PrettyPrint{Out: &buf, Locale: locale.EN}, &buf
}

func TestDay(t *testing.T) {
	pp, buf := newPrinter(t)
	pp.Day(view.Day{Key: "2024-03-10", Editable: true, Saved: true, Score: 7, Text: "good day", Images: []string{"a"}})
	out := buf.String()
	for _, want := range []string{"2024-03-10 Sunday", "Score: 7/10", "good day", "[1/3 images]", "492 characters left"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in:\n%s", want, out)
		}
	}
}

func TestDayEmpty(t *testing.T) {
	pp, buf := newPrinter(t)
	pp.Day(view.Day{Key: "2024-03-09"})
	if !strings.Contains(buf.String(), "none") {
		t.Fatalf("expected none marker, got %q", buf.String())
	}
}

func TestCalendar(t *testing.T) {
	pp, buf := newPrinter(t)
	g := calendar.Build(record.Collection{"2024-09-03": {Score: 9}}, calendar.Cursor{Year: 2024, Month: time.September}, "", "")
	pp.Calendar(g)
	lines := strings.Split(buf.String(), "\n")
	if strings.TrimSpace(lines[0]) != "September 2024" {
		t.Fatalf("unexpected title %q", lines[0])
	}
	if lines[2] != " 1  2  3  4  5  6  7" {
		t.Fatalf("unexpected first week %q", lines[2])
	}
}

func TestTrendAndNotice(t *testing.T) {
	pp, buf := newPrinter(t)
	today := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.Local)
	pp.Trend(trend.RecentSeries(record.Collection{"2024-03-10": {Score: 4}}, today, 5))
	pp.Notice(export.ErrEmptyRange)
	out := buf.String()
	if !strings.Contains(out, trend.Mark) || !strings.Contains(out, "average") || !strings.Contains(out, "4.0") {
		t.Fatalf("unexpected trend output:\n%s", out)
	}
	if !strings.Contains(out, "There are no records in the selected range.") {
		t.Fatalf("expected localized notice:\n%s", out)
	}
}

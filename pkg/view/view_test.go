package view

import (
	"testing"
	"time"

	"tableflip.dev/moodiary/pkg/calendar"
	"tableflip.dev/moodiary/pkg/editor"
	"tableflip.dev/moodiary/pkg/locale"
	"tableflip.dev/moodiary/pkg/record"
)

func TestBuild(t *testing.T) {
	now := time.Date(2024, time.March, 10, 21, 15, 0, 0, time.Local)
	c := record.Collection{
		"2024-03-09": {Score: 6, Text: "stored"},
		"2024-03-10": {Score: 8},
	}
	s := editor.State{
		ViewingDate:   "2024-03-09",
		SelectedScore: 6,
		Text:          "stored",
		Calendar:      calendar.Cursor{Year: 2024, Month: time.March},
	}
	m := Build(c, s, now, Options{TrendDays: 7, Locale: locale.EN})

	if m.Today != "2024-03-10" {
		t.Fatalf("unexpected today %q", m.Today)
	}
	if m.Day.Editable || !m.Day.Saved || m.Day.Weekday != "Saturday" {
		t.Fatalf("unexpected day panel %+v", m.Day)
	}
	if m.Day.Remaining != "494 characters left" {
		t.Fatalf("unexpected counter %q", m.Day.Remaining)
	}
	if len(m.Trend) != 7 || m.Trend[6].Score != 8 || m.Trend[5].Score != 6 {
		t.Fatalf("unexpected trend %+v", m.Trend)
	}
	nine, _ := m.Calendar.Cell(9)
	ten, _ := m.Calendar.Cell(10)
	if !nine.IsSelected || !nine.HasRecord || !ten.IsToday {
		t.Fatalf("unexpected calendar cells %+v %+v", nine, ten)
	}
}

func TestBuildDefaults(t *testing.T) {
	now := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.Local)
	m := Build(nil, editor.State{ViewingDate: "2024-03-10", Calendar: calendar.CursorFor(now)}, now, Options{})
	if len(m.Trend) != 30 || !m.Day.Editable || m.Day.Saved {
		t.Fatalf("unexpected defaults %+v", m.Day)
	}
	if m.Day.Weekday != "星期日" {
		t.Fatalf("expected zh weekday, got %q", m.Day.Weekday)
	}
}

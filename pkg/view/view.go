// Package view composes everything a surface displays from the stored
// collection and the editor state. Surfaces rebuild it after every change.
package view

import (
	"time"

	"tableflip.dev/moodiary/pkg/calendar"
	"tableflip.dev/moodiary/pkg/day"
	"tableflip.dev/moodiary/pkg/editor"
	"tableflip.dev/moodiary/pkg/locale"
	"tableflip.dev/moodiary/pkg/record"
	"tableflip.dev/moodiary/pkg/trend"
)

// Day is the editor panel.
type Day struct {
	Key       string
	Weekday   string
	Editable  bool
	Score     int
	Text      string
	Remaining string
	Images    []string
	// Saved is set when the viewed day has a stored record.
	Saved bool
}

// Model is the renderable description of the whole diary.
type Model struct {
	Today    string
	Day      Day
	Calendar calendar.Grid
	Trend    trend.Series
}

// Options tune the composition.
type Options struct {
	TrendDays int
	Locale    *locale.Locale
}

// Build is a pure function of its inputs.
func Build(c record.Collection, s editor.State, now time.Time, opts Options) Model {
	l := opts.Locale
	if l == nil {
		l = locale.ZH
	}
	days := opts.TrendDays
	if days <= 0 {
		days = trend.DefaultDays
	}
	today := day.Midnight(now)
	todayKey := day.Format(today)

	d := Day{
		Key:       s.ViewingDate,
		Editable:  s.ViewingDate == todayKey,
		Score:     s.SelectedScore,
		Text:      s.Text,
		Remaining: l.RemainingText(record.Remaining(s.Text)),
		Images:    append([]string(nil), s.PendingImages...),
	}
	if t, err := day.Parse(s.ViewingDate); err == nil {
		d.Weekday = l.Weekday(t)
	}
	_, d.Saved = c[s.ViewingDate]

	return Model{
		Today:    todayKey,
		Day:      d,
		Calendar: calendar.Build(c, s.Calendar, todayKey, s.ViewingDate),
		Trend:    trend.RecentSeries(c, today, days),
	}
}

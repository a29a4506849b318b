// Package mcp provides the Model Context Protocol server integration for the
// mood diary.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/moodiary/pkg/app"
	"tableflip.dev/moodiary/pkg/calendar"
	"tableflip.dev/moodiary/pkg/day"
	"tableflip.dev/moodiary/pkg/editor"
	"tableflip.dev/moodiary/pkg/record"
	"tableflip.dev/moodiary/pkg/timeutil"
	"tableflip.dev/moodiary/pkg/trend"
)

// Service coordinates the diary operations shared by the MCP tools and
// resources.
type Service struct {
	App *app.Service
}

var errNoService = errors.New("diary service is not configured")

// DayDTO is a transport-friendly projection of one day.
type DayDTO struct {
	Date       string `json:"date"`
	Weekday    string `json:"weekday"`
	Score      int    `json:"score,omitempty"`
	Text       string `json:"text"`
	ImageCount int    `json:"imageCount"`
	Recorded   bool   `json:"recorded"`
	Editable   bool   `json:"editable"`
}

// TrendPointDTO is one day of the recent series. Score is omitted for gaps.
type TrendPointDTO struct {
	Date  string `json:"date"`
	Score *int   `json:"score"`
}

// TrendDTO is the recent series with its summary.
type TrendDTO struct {
	Days    int             `json:"days"`
	Scored  int             `json:"scored"`
	Average float64         `json:"average"`
	Points  []TrendPointDTO `json:"points"`
}

// CalendarDTO is a month grid.
type CalendarDTO struct {
	Month   string        `json:"month"`
	Leading int           `json:"leading"`
	Days    []CalendarDay `json:"days"`
}

// CalendarDay is one cell of CalendarDTO.
type CalendarDay struct {
	Date      string `json:"date"`
	Score     int    `json:"score,omitempty"`
	HasRecord bool   `json:"hasRecord"`
	IsToday   bool   `json:"isToday"`
}

// ImportDTO reports a merged backup.
type ImportDTO struct {
	Merged  int      `json:"merged"`
	Skipped []string `json:"skipped"`
}

// NewService builds a service wrapper around the diary.
func NewService(a *app.Service) *Service {
	return &Service{App: a}
}

func (s *Service) ready() error {
	if s == nil || s.App == nil {
		return errNoService
	}
	return nil
}

// Day returns the record of date, or of today when date is empty.
func (s *Service) Day(ctx context.Context, date string) (DayDTO, error) {
	if err := s.ready(); err != nil {
		return DayDTO{}, err
	}
	key := strings.TrimSpace(date)
	if key == "" {
		key = s.App.TodayKey()
	}
	t, err := day.Parse(key)
	if err != nil {
		return DayDTO{}, fmt.Errorf("invalid date %q: %w", date, record.ErrInvalidKey)
	}
	key = day.Format(t)
	r, ok, err := s.App.Record(ctx, key)
	if err != nil {
		return DayDTO{}, err
	}
	return DayDTO{
		Date:       key,
		Weekday:    s.App.Labels().Weekday(t),
		Score:      r.Score,
		Text:       r.Text,
		ImageCount: len(r.Images),
		Recorded:   ok,
		Editable:   s.App.IsToday(key),
	}, nil
}

// SaveToday overwrites today's score and text. Images already attached to
// today are kept.
func (s *Service) SaveToday(ctx context.Context, score int, text string) (DayDTO, error) {
	if err := s.ready(); err != nil {
		return DayDTO{}, err
	}
	ed, err := editor.New(ctx, s.App)
	if err != nil {
		return DayDTO{}, err
	}
	if err := ed.SelectScore(score); err != nil {
		return DayDTO{}, err
	}
	ed.SetText(text)
	if _, err := ed.Save(ctx); err != nil {
		return DayDTO{}, err
	}
	return s.Day(ctx, "")
}

// Trend returns the last days of scores ending today.
func (s *Service) Trend(ctx context.Context, days int) (TrendDTO, error) {
	if err := s.ready(); err != nil {
		return TrendDTO{}, err
	}
	if days == 0 {
		days = trend.DefaultDays
	}
	if err := timeutil.CheckDays(days); err != nil {
		return TrendDTO{}, err
	}
	c, err := s.App.Collection(ctx)
	if err != nil {
		return TrendDTO{}, err
	}
	series := trend.RecentSeries(c, s.App.Today(), days)
	out := TrendDTO{Days: len(series), Scored: series.Scored(), Average: series.Average()}
	out.Points = make([]TrendPointDTO, 0, len(series))
	for _, p := range series {
		pt := TrendPointDTO{Date: p.Key}
		if p.OK {
			score := p.Score
			pt.Score = &score
		}
		out.Points = append(out.Points, pt)
	}
	return out, nil
}

// Calendar returns the month grid, the current month when month is empty.
func (s *Service) Calendar(ctx context.Context, month string) (CalendarDTO, error) {
	if err := s.ready(); err != nil {
		return CalendarDTO{}, err
	}
	cursor := calendar.CursorFor(s.App.Today())
	if strings.TrimSpace(month) != "" {
		y, m, err := day.ParseMonth(month)
		if err != nil {
			return CalendarDTO{}, err
		}
		cursor = calendar.Cursor{Year: y, Month: m}
	}
	c, err := s.App.Collection(ctx)
	if err != nil {
		return CalendarDTO{}, err
	}
	g := calendar.Build(c, cursor, s.App.TodayKey(), "")
	out := CalendarDTO{
		Month:   fmt.Sprintf("%04d-%02d", g.Year, int(g.Month)),
		Leading: g.Leading,
		Days:    make([]CalendarDay, 0, len(g.Cells)),
	}
	for _, cell := range g.Cells {
		out.Days = append(out.Days, CalendarDay{
			Date:      cell.Key,
			Score:     cell.Score,
			HasRecord: cell.HasRecord,
			IsToday:   cell.IsToday,
		})
	}
	return out, nil
}

// ExportJSON returns the image-free backup.
func (s *Service) ExportJSON(ctx context.Context) (string, error) {
	if err := s.ready(); err != nil {
		return "", err
	}
	data, err := s.App.ExportJSON(ctx)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ImportJSON merges a backup into the diary.
func (s *Service) ImportJSON(ctx context.Context, text string) (ImportDTO, error) {
	if err := s.ready(); err != nil {
		return ImportDTO{}, err
	}
	res, err := s.App.Import(ctx, text)
	if err != nil {
		return ImportDTO{}, err
	}
	skipped := res.Skipped
	if skipped == nil {
		skipped = []string{}
	}
	return ImportDTO{Merged: res.Merged, Skipped: skipped}, nil
}

// Message localizes an operation error for tool results.
func (s *Service) Message(err error) string {
	if s == nil || s.App == nil {
		return err.Error()
	}
	return s.App.Labels().Notice(err)
}


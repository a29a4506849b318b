// Package editor holds the state of the day editor and the rules for
// changing it. Only today's record can be edited; other days are read-only.
package editor

import (
	"context"
	"errors"
	"log/slog"

	"tableflip.dev/moodiary/pkg/app"
	"tableflip.dev/moodiary/pkg/calendar"
	"tableflip.dev/moodiary/pkg/day"
	"tableflip.dev/moodiary/pkg/locale"
	"tableflip.dev/moodiary/pkg/record"
)

var (
	// ErrScoreRequired is returned when saving without a score.
	ErrScoreRequired = errors.New("editor: select a score before saving")
	// ErrImageIndex is returned when removing an image that is not staged.
	ErrImageIndex = errors.New("editor: no staged image at that position")
)

func init() {
	locale.RegisterNotice(ErrScoreRequired, map[string]string{
		"zh": "请选择今日评分",
		"en": "Pick a score for today first.",
	})
	locale.RegisterNotice(ErrImageIndex, map[string]string{
		"zh": "没有这张图片",
		"en": "There is no image at that position.",
	})
	locale.RegisterNotice(record.ErrTooManyImages, map[string]string{
		"zh": "最多只能选择 3 张图片哦~",
		"en": "You can attach at most 3 images.",
	})
	locale.RegisterNotice(record.ErrInvalidScore, map[string]string{
		"zh": "评分需要在 1 到 10 之间",
		"en": "The score must be between 1 and 10.",
	})
}

// State is the non-persisted view state. A zero SelectedScore means none.
type State struct {
	ViewingDate   string
	SelectedScore int
	Text          string
	PendingImages []string
	Calendar      calendar.Cursor
}

// Batch encodes picked image files into data URLs.
type Batch interface {
	EncodeAll(ctx context.Context, paths []string) ([]string, error)
}

// Editor owns State and mutates it through the rules of the diary.
type Editor struct {
	svc   *app.Service
	state State
}

// New returns an editor pointed at today.
func New(ctx context.Context, svc *app.Service) (*Editor, error) {
	e := &Editor{svc: svc}
	if err := e.Reset(ctx); err != nil {
		return nil, err
	}
	return e, nil
}

// State returns a copy of the current state.
func (e *Editor) State() State {
	s := e.state
	s.PendingImages = append([]string(nil), e.state.PendingImages...)
	return s
}

// Editable reports whether the viewed date is today.
func (e *Editor) Editable() bool {
	return e.svc.IsToday(e.state.ViewingDate)
}

// SelectDate views key and reloads the fields from the store. Unknown dates
// show blank fields.
func (e *Editor) SelectDate(ctx context.Context, key string) error {
	if !day.Valid(key) {
		return record.ErrInvalidKey
	}
	r, _, err := e.svc.Record(ctx, key)
	if err != nil {
		return err
	}
	e.state.ViewingDate = key
	e.state.SelectedScore = r.Score
	e.state.Text = r.Text
	e.state.PendingImages = append([]string(nil), r.Images...)
	slog.DebugContext(ctx, "select date", "date", key, "editable", e.Editable())
	return nil
}

// SelectScore stages a score. It is ignored on read-only days.
func (e *Editor) SelectScore(n int) error {
	if !record.ValidScore(n) {
		return record.ErrInvalidScore
	}
	if !e.Editable() {
		return nil
	}
	e.state.SelectedScore = n
	return nil
}

// SetText stages the text, cut to the maximum length.
func (e *Editor) SetText(s string) {
	e.state.Text = record.TruncateText(s)
}

// Remaining is the number of characters left for the text.
func (e *Editor) Remaining() int {
	return record.Remaining(e.state.Text)
}

// AddImages replaces the staged images with one selection. A selection of
// more than three images is rejected and the staged images are kept.
func (e *Editor) AddImages(images []string) error {
	if !e.Editable() {
		return nil
	}
	if len(images) > record.MaxImages {
		return record.ErrTooManyImages
	}
	e.state.PendingImages = append([]string(nil), images...)
	return nil
}

// AddImageFiles encodes paths as one batch and stages the result.
func (e *Editor) AddImageFiles(ctx context.Context, enc Batch, paths []string) error {
	if !e.Editable() {
		return nil
	}
	if len(paths) > record.MaxImages {
		return record.ErrTooManyImages
	}
	urls, err := enc.EncodeAll(ctx, paths)
	if err != nil {
		return err
	}
	return e.AddImages(urls)
}

// RemoveImage drops the staged image at i.
func (e *Editor) RemoveImage(i int) error {
	if !e.Editable() {
		return nil
	}
	if i < 0 || i >= len(e.state.PendingImages) {
		return ErrImageIndex
	}
	imgs := e.state.PendingImages
	e.state.PendingImages = append(append([]string(nil), imgs[:i]...), imgs[i+1:]...)
	return nil
}

// Save writes the staged fields as today's record. It reports false without
// touching the store when the viewed day is not today.
func (e *Editor) Save(ctx context.Context) (bool, error) {
	if !e.Editable() {
		return false, nil
	}
	if !record.ValidScore(e.state.SelectedScore) {
		return false, ErrScoreRequired
	}
	r := record.Record{
		Score:  e.state.SelectedScore,
		Text:   e.state.Text,
		Images: append([]string{}, e.state.PendingImages...),
	}
	if err := e.svc.SaveToday(ctx, r); err != nil {
		return false, err
	}
	slog.DebugContext(ctx, "saved today", "date", e.state.ViewingDate, "score", r.Score, "images", len(r.Images))
	return true, nil
}

// Reset views today again and moves the calendar to the current month.
func (e *Editor) Reset(ctx context.Context) error {
	e.state.Calendar = calendar.CursorFor(e.svc.Today())
	return e.SelectDate(ctx, e.svc.TodayKey())
}

// Reload refreshes the fields of the viewed day from the store.
func (e *Editor) Reload(ctx context.Context) error {
	return e.SelectDate(ctx, e.state.ViewingDate)
}

// PrevMonth moves the calendar one month back.
func (e *Editor) PrevMonth() {
	e.state.Calendar = e.state.Calendar.Prev()
}

// NextMonth moves the calendar one month forward.
func (e *Editor) NextMonth() {
	e.state.Calendar = e.state.Calendar.Next()
}

// SetMonth moves the calendar to cursor.
func (e *Editor) SetMonth(cursor calendar.Cursor) {
	e.state.Calendar = cursor
}

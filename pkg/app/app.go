package app

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/moodiary/pkg/day"
	"tableflip.dev/moodiary/pkg/export"
	"tableflip.dev/moodiary/pkg/locale"
	"tableflip.dev/moodiary/pkg/record"
	"tableflip.dev/moodiary/pkg/store"
)

// Service provides high-level operations over the diary document.
// It wraps persistence and the clock so UIs and CLIs can share logic.
type Service struct {
	Persistence store.Persistence
	// Now is the clock; "today" is evaluated on every call.
	Now func() time.Time
	// Locale labels exports and notices.
	Locale *locale.Locale
}

var errNoPersistence = errors.New("app: no persistence configured")

// New returns a Service using the wall clock.
func New(p store.Persistence, l *locale.Locale) *Service {
	return &Service{Persistence: p, Now: time.Now, Locale: l}
}

// Today returns local midnight of the current day.
func (s *Service) Today() time.Time {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return day.Midnight(now())
}

// TodayKey returns the record key of the current day.
func (s *Service) TodayKey() string {
	return day.Format(s.Today())
}

// IsToday reports whether key is the key of the current day.
func (s *Service) IsToday(key string) bool {
	return key == s.TodayKey()
}

// Labels returns the configured locale.
func (s *Service) Labels() *locale.Locale {
	if s.Locale == nil {
		return locale.ZH
	}
	return s.Locale
}

// Collection loads the whole diary.
func (s *Service) Collection(ctx context.Context) (record.Collection, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Load(ctx), nil
}

// Record returns the record for key, if any.
func (s *Service) Record(ctx context.Context, key string) (record.Record, bool, error) {
	c, err := s.Collection(ctx)
	if err != nil {
		return record.Record{}, false, err
	}
	r, ok := c.Get(key)
	return r, ok, nil
}

// SaveToday overwrites today's record with r through one load-modify-save.
// Another process writing in between is not detected; last write wins.
func (s *Service) SaveToday(ctx context.Context, r record.Record) error {
	if !r.HasScore() {
		return record.ErrInvalidScore
	}
	c, err := s.Collection(ctx)
	if err != nil {
		return err
	}
	if err := c.Put(s.TodayKey(), r); err != nil {
		return err
	}
	return s.Persistence.Save(ctx, c)
}

// Import merges a JSON backup into the diary and persists the result. The
// store is untouched when the text is rejected or carries no usable entry.
func (s *Service) Import(ctx context.Context, text string) (export.ImportResult, error) {
	entries, result, err := export.ParseImport(text)
	if err != nil {
		return result, err
	}
	if len(entries) == 0 {
		return result, nil
	}
	c, err := s.Collection(ctx)
	if err != nil {
		return result, err
	}
	merged := export.Merge(c, entries)
	if err := s.Persistence.Save(ctx, merged); err != nil {
		return result, err
	}
	return result, nil
}

// ExportJSON returns the image-free JSON backup of the diary.
func (s *Service) ExportJSON(ctx context.Context) ([]byte, error) {
	c, err := s.Collection(ctx)
	if err != nil {
		return nil, err
	}
	return export.JSON(c)
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Watch(ctx)
}

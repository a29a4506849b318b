// Package show prints one day of the diary.
package show

import (
	"context"
	"errors"

	"tableflip.dev/moodiary/pkg/app"
	"tableflip.dev/moodiary/pkg/day"
	"tableflip.dev/moodiary/pkg/editor"
	"tableflip.dev/moodiary/pkg/printers"
	"tableflip.dev/moodiary/pkg/view"
)

// Show prints the record of a day, today by default.
type Show struct {
	Service *app.Service
	// On is a date key; empty means today.
	On      string
	Printer *printers.PrettyPrint
}

// Do loads the day through the editor and prints its panel.
func (s *Show) Do(ctx context.Context) error {
	if s.Service == nil {
		return errors.New("can not show, no service")
	}
	ed, err := editor.New(ctx, s.Service)
	if err != nil {
		return err
	}
	if s.On != "" {
		t, err := day.Parse(s.On)
		if err != nil {
			return err
		}
		if err := ed.SelectDate(ctx, day.Format(t)); err != nil {
			return err
		}
	}
	c, err := s.Service.Collection(ctx)
	if err != nil {
		return err
	}
	m := view.Build(c, ed.State(), s.Service.Today(), view.Options{Locale: s.Service.Labels()})
	s.printer().Day(m.Day)
	return nil
}

func (s *Show) printer() *printers.PrettyPrint {
	if s.Printer == nil {
		return &printers.PrettyPrint{Locale: s.Service.Labels()}
	}
	return s.Printer
}

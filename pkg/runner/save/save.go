// Package save writes today's record from the command line.
package save

import (
	"context"
	"errors"

	"tableflip.dev/moodiary/pkg/app"
	"tableflip.dev/moodiary/pkg/editor"
	"tableflip.dev/moodiary/pkg/images"
	"tableflip.dev/moodiary/pkg/printers"
	"tableflip.dev/moodiary/pkg/record"
)

// Save overwrites today's record.
type Save struct {
	Service *app.Service
	Score   int
	Text    string
	// Images are file paths encoded as one batch.
	Images []string
	// KeepImages stages the images already stored for today when no new
	// files are given.
	KeepImages bool
	Encoder    editor.Batch
	Printer    *printers.PrettyPrint
}

// Do stages the fields through the editor and saves.
func (s *Save) Do(ctx context.Context) error {
	if s.Service == nil {
		return errors.New("can not save, no service")
	}
	ed, err := editor.New(ctx, s.Service)
	if err != nil {
		return err
	}
	if err := ed.SelectScore(s.Score); err != nil {
		return err
	}
	ed.SetText(s.Text)
	switch {
	case len(s.Images) > 0:
		if err := ed.AddImageFiles(ctx, s.encoder(), s.Images); err != nil {
			return err
		}
	case !s.KeepImages:
		if err := ed.AddImages(nil); err != nil {
			return err
		}
	}
	if _, err := ed.Save(ctx); err != nil {
		return err
	}
	st := ed.State()
	s.printer().Saved(st.ViewingDate, record.Record{Score: st.SelectedScore, Text: st.Text, Images: st.PendingImages})
	return nil
}

func (s *Save) encoder() editor.Batch {
	if s.Encoder == nil {
		return images.Encoder{}
	}
	return s.Encoder
}

func (s *Save) printer() *printers.PrettyPrint {
	if s.Printer == nil {
		return &printers.PrettyPrint{Locale: s.Service.Labels()}
	}
	return s.Printer
}

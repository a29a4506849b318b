package export

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tableflip.dev/moodiary/pkg/app"
	"tableflip.dev/moodiary/pkg/export"
	"tableflip.dev/moodiary/pkg/locale"
	"tableflip.dev/moodiary/pkg/printers"
	"tableflip.dev/moodiary/pkg/record"
	"tableflip.dev/moodiary/pkg/store"
	"tableflip.dev/moodiary/pkg/timeutil"
)

type capturedSurface struct {
	docs []export.Document
}

func (s *capturedSurface) Present(_ context.Context, doc export.Document) (string, error) {
	s.docs = append(s.docs, doc)
	return "/tmp/" + doc.Name, nil
}

func newRunner(t *testing.T, f Format) (*Export, *bytes.Buffer) {
	t.Helper()
	svc := app.New(store.NewMemory(record.Collection{
		"2024-03-10": {Score: 7, Text: "calm", Images: []string{"data:image/png;base64,AA=="}},
		"2024-03-08": {Score: 3},
		"2024-01-01": {Score: 9},
	}), locale.EN)
	svc.Now = func() time.Time { return time.Date(2024, time.March, 10, 12, 0, 0, 0, time.Local) }

	var out bytes.Buffer
	return &Export{
		Service: svc,
		Format:  f,
		Window:  timeutil.Week,
		Dir:     t.TempDir(),
		Out:     &out,
		Printer: &printers.PrettyPrint{Out: &bytes.Buffer{}, Locale: locale.EN},
	}, &out
}

func TestExportJSONWritesWholeDiary(t *testing.T) {
	e, out := newRunner(t, FormatJSON)
	if err := e.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, `"2024-01-01"`) || strings.Contains(got, "base64") {
		t.Fatalf("unexpected backup %s", got)
	}
}

func TestExportTextWritesFile(t *testing.T) {
	e, out := newRunner(t, FormatText)
	if err := e.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("text export should not write to Out: %q", out.String())
	}
	matches, err := filepath.Glob(filepath.Join(e.Dir, "*.txt"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("expected one text file, got %v (%v)", matches, err)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), "calm") || strings.Contains(string(data), "2024-01-01") {
		t.Fatalf("unexpected text export %q", data)
	}
}

func TestExportPrintUsesSurface(t *testing.T) {
	e, _ := newRunner(t, FormatPrint)
	surface := &capturedSurface{}
	e.Surface = surface
	if err := e.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if len(surface.docs) != 1 || surface.docs[0].Records != 2 {
		t.Fatalf("unexpected printable docs %+v", surface.docs)
	}
}

func TestExportEmptyRange(t *testing.T) {
	e, _ := newRunner(t, FormatText)
	e.Window = timeutil.Window{Name: "1d", Days: 1}
	e.Service.Now = func() time.Time { return time.Date(2024, time.March, 9, 12, 0, 0, 0, time.Local) }
	if err := e.Do(context.Background()); !errors.Is(err, export.ErrEmptyRange) {
		t.Fatalf("expected ErrEmptyRange, got %v", err)
	}
	if matches, _ := filepath.Glob(filepath.Join(e.Dir, "*")); len(matches) != 0 {
		t.Fatalf("no file should be written: %v", matches)
	}
}

func TestExportUnknownFormat(t *testing.T) {
	e, _ := newRunner(t, Format("pdf"))
	if err := e.Do(context.Background()); err == nil {
		t.Fatalf("expected an error")
	}
}

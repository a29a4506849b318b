// Package export runs the diary exports from the command line.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/glamour"

	"tableflip.dev/moodiary/pkg/app"
	"tableflip.dev/moodiary/pkg/export"
	"tableflip.dev/moodiary/pkg/printers"
	"tableflip.dev/moodiary/pkg/timeutil"
)

// Format selects the export.
type Format string

const (
	FormatText  Format = "text"
	FormatPrint Format = "print"
	FormatJSON  Format = "json"
)

// Formats lists the supported formats.
func Formats() []string {
	return []string{string(FormatText), string(FormatPrint), string(FormatJSON)}
}

// Export renders one export of the diary.
type Export struct {
	Service *app.Service
	Format  Format
	Window  timeutil.Window
	// Dir receives text exports.
	Dir string
	// Surface presents printable exports.
	Surface export.Surface
	// Preview renders text exports to Out instead of writing a file.
	Preview bool
	// Out receives JSON backups and previews; defaults to stdout.
	Out     io.Writer
	Printer *printers.PrettyPrint
}

// Do renders and writes the export.
func (e *Export) Do(ctx context.Context) error {
	if e.Service == nil {
		return errors.New("can not export, no service")
	}
	c, err := e.Service.Collection(ctx)
	if err != nil {
		return err
	}
	l := e.Service.Labels()
	today := e.Service.Today()

	switch e.Format {
	case FormatJSON:
		data, err := export.JSON(c)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(e.out(), string(data))
		return err

	case FormatText:
		doc, err := export.Text(c, today, e.Window, l)
		if err != nil {
			return err
		}
		if e.Preview {
			return e.preview(doc)
		}
		path, err := export.WriteFile(e.Dir, doc)
		if err != nil {
			return err
		}
		slog.DebugContext(ctx, "wrote text export", "path", path, "records", doc.Records)
		e.printer().Exported(path, doc)
		return nil

	case FormatPrint:
		doc, err := export.Printable(c, today, e.Window, l)
		if err != nil {
			return err
		}
		surface := e.Surface
		if surface == nil {
			surface = export.OpenerSurface{Dir: e.Dir}
		}
		path, err := export.Print(ctx, surface, doc)
		if err != nil {
			return err
		}
		slog.DebugContext(ctx, "presented printable export", "path", path, "records", doc.Records)
		e.printer().Exported(path, doc)
		return nil
	}
	return fmt.Errorf("unknown export format %q", e.Format)
}

func (e *Export) preview(doc export.Document) error {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return err
	}
	out, err := renderer.Render(string(doc.Content))
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(e.out(), out)
	return err
}

func (e *Export) out() io.Writer {
	if e.Out == nil {
		return os.Stdout
	}
	return e.Out
}

func (e *Export) printer() *printers.PrettyPrint {
	if e.Printer == nil {
		return &printers.PrettyPrint{Locale: e.Service.Labels()}
	}
	return e.Printer
}

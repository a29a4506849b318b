package export

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"

	"tableflip.dev/moodiary/pkg/locale"
	"tableflip.dev/moodiary/pkg/record"
	"tableflip.dev/moodiary/pkg/timeutil"
)

//go:embed print.html.tmpl
var printTemplate string

var (
	page = template.Must(template.New("print").Parse(printTemplate))

	// Raw HTML in diary text is dropped; newlines are kept as line breaks.
	markdown = goldmark.New(goldmark.WithRendererOptions(html.WithHardWraps()))
)

// PrintDelay is how long the document waits before opening the print dialog.
const PrintDelay = 500 * time.Millisecond

type printCard struct {
	Date    string
	Weekday string
	Score   int
	Text    template.HTML
	Images  []template.URL
}

type printPage struct {
	Lang        string
	Title       string
	Range       string
	ScoreLabel  string
	PrintButton string
	DelayMillis int64
	Cards       []printCard
}

// Printable renders the scored records of the window as a standalone HTML
// document that opens the print dialog by itself once loaded.
func Printable(c record.Collection, today time.Time, w timeutil.Window, l *locale.Locale) (Document, error) {
	items := Select(c, today, w, true)
	if len(items) == 0 {
		return Document{}, ErrEmptyRange
	}

	data := printPage{
		Lang:        l.Code,
		Title:       l.PrintTitle,
		Range:       l.RangeLabel(w.String()),
		ScoreLabel:  strings.TrimSpace(l.ScoreLabel),
		PrintButton: l.PrintButton,
		DelayMillis: PrintDelay.Milliseconds(),
	}
	for _, it := range items {
		text, err := renderText(it.Record.Text)
		if err != nil {
			return Document{}, fmt.Errorf("export: render text for %s: %w", it.Key, err)
		}
		data.Cards = append(data.Cards, printCard{
			Date:    it.Key,
			Weekday: l.Weekday(it.Date),
			Score:   it.Record.Score,
			Text:    text,
			Images:  imageURLs(it.Record.Images),
		})
	}

	var buf bytes.Buffer
	if err := page.Execute(&buf, data); err != nil {
		return Document{}, fmt.Errorf("export: render document: %w", err)
	}
	return Document{
		Name:    FileName(l, w, today, "html"),
		Content: buf.Bytes(),
		Records: len(items),
	}, nil
}

func renderText(text string) (template.HTML, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(text), &buf); err != nil {
		return "", err
	}
	// goldmark escapes text and omits raw HTML, so the output is trusted.
	return template.HTML(buf.String()), nil
}

// imageURLs accepts data URLs of images and bare base64 payloads; anything
// else is left out of the document.
func imageURLs(images []string) []template.URL {
	var out []template.URL
	for _, img := range images {
		switch {
		case strings.HasPrefix(img, "data:image/"):
			out = append(out, template.URL(img))
		case img != "" && !strings.ContainsAny(img, ":<>\"' "):
			out = append(out, template.URL("data:image/png;base64,"+img))
		}
	}
	return out
}

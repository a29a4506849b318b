// Package locale holds the user-facing labels of the diary in the supported
// languages.
package locale

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Locale is a table of labels for one language.
type Locale struct {
	Code string

	weekdays [7]string
	// WeekHeader is the calendar header, two cells per weekday from Sunday.
	WeekHeader string
	monthTitle func(year int, month time.Month) string

	// ScoreLabel and TextLabel prefix the score and text lines of exports.
	ScoreLabel string
	TextLabel  string

	// FilePrefix starts every exported file name.
	FilePrefix string
	// PrintTitle is the heading of the printable document.
	PrintTitle string
	// PrintButton labels the manual print fallback.
	PrintButton string

	// Remaining renders the live character counter.
	Remaining string
	// Saved is the transient confirmation after a save.
	Saved string
	// Imported confirms a JSON import.
	Imported string
	// ReadOnly explains why a past day cannot be changed.
	ReadOnly string

	// UI labels the interactive screen.
	UI UILabels

	ranges  map[string]string
	notices map[error]string
}

// UILabels are the strings of the terminal UI. Fields ending in a format
// verb are fmt templates.
type UILabels struct {
	Hints     string
	Cancelled string
	// Staged takes the staged and maximum image counts.
	Staged string
	// Images takes the attached and maximum image counts.
	Images string
	// Exported takes the day count and the file path.
	Exported string
	// UnknownExport takes the requested format.
	UnknownExport string
	// ImportSummary takes the merged and skipped counts.
	ImportSummary string

	PromptText   string
	PromptImages string
	PromptExport string
	PromptImport string

	PlaceholderText   string
	PlaceholderImages string
	PlaceholderExport string
	PlaceholderImport string
}

var registry = map[string]*Locale{}

func register(l *Locale) *Locale {
	registry[l.Code] = l
	return l
}

// Lookup returns the locale for code, falling back to Chinese, the language
// the diary was first written in.
func Lookup(code string) *Locale {
	if l, ok := registry[strings.ToLower(strings.TrimSpace(code))]; ok {
		return l
	}
	return ZH
}

// Codes lists the registered locale codes.
func Codes() []string {
	return []string{ZH.Code, EN.Code}
}

// Weekday returns the localized weekday name of t.
func (l *Locale) Weekday(t time.Time) string {
	return l.weekdays[t.Weekday()]
}

// MonthTitle labels a calendar month.
func (l *Locale) MonthTitle(year int, month time.Month) string {
	if l.monthTitle == nil {
		return fmt.Sprintf("%d-%02d", year, int(month))
	}
	return l.monthTitle(year, month)
}

// RangeLabel returns the localized label of a symbolic range selector, or
// the selector itself when none is known.
func (l *Locale) RangeLabel(name string) string {
	if v, ok := l.ranges[name]; ok {
		return v
	}
	return name
}

// RemainingText renders the remaining character counter.
func (l *Locale) RemainingText(n int) string {
	return fmt.Sprintf(l.Remaining, n)
}

// Notice translates one of the registered user-facing errors. Unknown errors
// are returned as their message.
func (l *Locale) Notice(err error) string {
	if err == nil {
		return ""
	}
	for target, msg := range l.notices {
		if errors.Is(err, target) {
			return msg
		}
	}
	return err.Error()
}

// HasNotice reports whether err matches a registered user-facing error.
func (l *Locale) HasNotice(err error) bool {
	for target := range l.notices {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// RegisterNotice attaches a translated notice to a sentinel error. Packages
// owning user-facing errors call it from init.
func RegisterNotice(err error, translations map[string]string) {
	for code, msg := range translations {
		l, ok := registry[code]
		if !ok {
			continue
		}
		if l.notices == nil {
			l.notices = make(map[error]string)
		}
		l.notices[err] = msg
	}
}

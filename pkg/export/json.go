package export

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"tableflip.dev/moodiary/pkg/day"
	"tableflip.dev/moodiary/pkg/record"
)

// Entry is the image-free projection used by JSON backups.
type Entry struct {
	Score int    `json:"score,omitempty"`
	Text  string `json:"text"`
}

// JSON serializes the whole collection without images.
func JSON(c record.Collection) ([]byte, error) {
	out := make(map[string]Entry, len(c))
	for key, r := range c {
		out[key] = Entry{Score: r.Score, Text: r.Text}
	}
	return json.Marshal(out)
}

// ImportResult summarizes a parsed backup.
type ImportResult struct {
	Merged  int
	Skipped []string
}

// ParseImport validates backup text. Dates whose value is not an object with
// an integral score between 1 and 10 are skipped and listed in the result.
func ParseImport(text string) (map[string]Entry, ImportResult, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ImportResult{}, ErrEmptyImport
	}
	var parsed any
	if err := json.Unmarshal([]byte(trimmed), &parsed); err != nil {
		return nil, ImportResult{}, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	obj, ok := parsed.(map[string]any)
	if !ok {
		return nil, ImportResult{}, ErrInvalidStructure
	}

	entries := make(map[string]Entry, len(obj))
	var result ImportResult
	for key, v := range obj {
		e, ok := parseEntry(key, v)
		if !ok {
			result.Skipped = append(result.Skipped, key)
			continue
		}
		entries[key] = e
	}
	sort.Strings(result.Skipped)
	result.Merged = len(entries)
	return entries, result, nil
}

func parseEntry(key string, v any) (Entry, bool) {
	if !day.Valid(key) {
		return Entry{}, false
	}
	fields, ok := v.(map[string]any)
	if !ok {
		return Entry{}, false
	}
	score, ok := fields["score"].(float64)
	if !ok || score < record.MinScore || score > record.MaxScore || score != math.Trunc(score) {
		return Entry{}, false
	}
	e := Entry{Score: int(score)}
	switch text := fields["text"].(type) {
	case nil:
	case string:
		e.Text = record.TruncateText(text)
	default:
		return Entry{}, false
	}
	return e, true
}

// Merge overwrites score and text of every imported date and keeps the
// images already stored for it. Dates absent from entries are untouched.
// c itself is not modified.
func Merge(c record.Collection, entries map[string]Entry) record.Collection {
	out := c.Clone()
	for key, e := range entries {
		r := out[key]
		r.Score = e.Score
		r.Text = e.Text
		out[key] = r
	}
	return out
}

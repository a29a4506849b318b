// Package record defines the daily mood record and the collection persisted
// by the diary store.
package record

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"unicode/utf8"

	"tableflip.dev/moodiary/pkg/day"
)

const (
	// MinScore and MaxScore bound a saved score.
	MinScore = 1
	MaxScore = 10
	// MaxTextLength is the text limit counted in code points.
	MaxTextLength = 500
	// MaxImages is the number of images attached to one day.
	MaxImages = 3
)

var (
	ErrInvalidScore  = errors.New("record: score must be between 1 and 10")
	ErrTooManyImages = errors.New("record: at most 3 images per day")
	ErrInvalidKey    = errors.New("record: invalid date key")
)

// Record is one day's mood entry. A zero Score means no score was recorded.
type Record struct {
	Score  int      `json:"score,omitempty"`
	Text   string   `json:"text"`
	Images []string `json:"images"`
}

// HasScore reports whether the record carries a valid score.
func (r Record) HasScore() bool {
	return ValidScore(r.Score)
}

// Clone returns a copy that shares no slices with r.
func (r Record) Clone() Record {
	cp := Record{Score: r.Score, Text: r.Text, Images: make([]string, len(r.Images))}
	copy(cp.Images, r.Images)
	return cp
}

// Validate checks the invariants of a persisted record.
func (r Record) Validate() error {
	if r.Score != 0 && !ValidScore(r.Score) {
		return ErrInvalidScore
	}
	if len(r.Images) > MaxImages {
		return ErrTooManyImages
	}
	return nil
}

// MarshalJSON always emits an images array so the document shape matches
// what the diary has always written.
func (r Record) MarshalJSON() ([]byte, error) {
	type plain Record
	p := plain(r)
	if p.Images == nil {
		p.Images = []string{}
	}
	return json.Marshal(p)
}

// ValidScore reports whether n is an allowed score.
func ValidScore(n int) bool {
	return n >= MinScore && n <= MaxScore
}

// TruncateText cuts s to MaxTextLength code points.
func TruncateText(s string) string {
	if utf8.RuneCountInString(s) <= MaxTextLength {
		return s
	}
	runes := []rune(s)
	return string(runes[:MaxTextLength])
}

// Remaining returns how many more code points the text can hold.
func Remaining(s string) int {
	n := MaxTextLength - utf8.RuneCountInString(s)
	if n < 0 {
		return 0
	}
	return n
}

// Collection maps date keys to records.
type Collection map[string]Record

// Clone deep copies the collection.
func (c Collection) Clone() Collection {
	out := make(Collection, len(c))
	for k, v := range c {
		out[k] = v.Clone()
	}
	return out
}

// Get returns the record stored for key.
func (c Collection) Get(key string) (Record, bool) {
	r, ok := c[key]
	return r, ok
}

// Keys returns the date keys in ascending order.
func (c Collection) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Put validates r and stores a copy of it under key.
func (c Collection) Put(key string, r Record) error {
	if !day.Valid(key) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	if err := r.Validate(); err != nil {
		return err
	}
	c[key] = r.Clone()
	return nil
}

// Decode parses a persisted document. Records that do not decode or fail
// validation are skipped and returned by key so callers can report them.
func Decode(data []byte) (Collection, []string, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, err
	}
	if raw == nil {
		return nil, nil, errors.New("record: document is not an object")
	}
	out := make(Collection, len(raw))
	var skipped []string
	for key, msg := range raw {
		if string(msg) == "null" {
			skipped = append(skipped, key)
			continue
		}
		var r Record
		if err := json.Unmarshal(msg, &r); err != nil {
			skipped = append(skipped, key)
			continue
		}
		if err := r.Validate(); err != nil {
			skipped = append(skipped, key)
			continue
		}
		out[key] = r
	}
	sort.Strings(skipped)
	return out, skipped, nil
}

// Encode serializes the whole collection.
func Encode(c Collection) ([]byte, error) {
	if c == nil {
		c = Collection{}
	}
	return json.Marshal(c)
}

package timeutil

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"tableflip.dev/moodiary/pkg/locale"
)

// Window is a trailing range of whole days ending today.
type Window struct {
	// Name is the symbolic selector, empty for custom windows.
	Name string
	Days int
}

const (
	// DefaultWindow is the fallback export range used when none is provided.
	DefaultWindow = "week"
	// MaxDays bounds every range and series length, roughly ten years.
	MaxDays = 3660
)

// ErrRangeTooLarge is returned for ranges longer than MaxDays.
var ErrRangeTooLarge = fmt.Errorf("range must be at most %d days", MaxDays)

// ErrRangeTooSmall is returned for ranges shorter than one day.
var ErrRangeTooSmall = errors.New("range must be at least one day")

func init() {
	locale.RegisterNotice(ErrRangeTooLarge, map[string]string{
		"zh": fmt.Sprintf("时间范围最多 %d 天哦~", MaxDays),
		"en": fmt.Sprintf("A range can span at most %d days.", MaxDays),
	})
	locale.RegisterNotice(ErrRangeTooSmall, map[string]string{
		"zh": "时间范围至少需要一天哦~",
		"en": "A range must span at least one day.",
	})
}

// CheckDays validates a day count against the range bounds.
func CheckDays(n int) error {
	switch {
	case n <= 0:
		return ErrRangeTooSmall
	case n > MaxDays:
		return ErrRangeTooLarge
	}
	return nil
}

var (
	// Day, Week, Month and Year are the symbolic range selectors.
	Day   = Window{Name: "day", Days: 1}
	Week  = Window{Name: "week", Days: 7}
	Month = Window{Name: "month", Days: 30}
	Year  = Window{Name: "year", Days: 365}

	windowPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	named         = map[string]Window{
		"day":   Day,
		"today": Day,
		"week":  Week,
		"month": Month,
		"year":  Year,
	}
	unitMap = map[string]int{
		"d":     1,
		"day":   1,
		"days":  1,
		"w":     7,
		"wk":    7,
		"wks":   7,
		"week":  7,
		"weeks": 7,
		"m":     30,
		"mo":    30,
		"month": 30,
		"y":     365,
		"yr":    365,
		"year":  365,
		"years": 365,
	}
)

// Selectors lists the symbolic range names in display order.
func Selectors() []Window {
	return []Window{Day, Week, Month, Year}
}

// ParseWindow parses a range selector. Symbolic names (day, week, month,
// year) map to 1/7/30/365 days; compact forms such as "3d" or "1w2d" are
// summed. When the input is empty, the default window is used.
func ParseWindow(input string) (Window, error) {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	if trimmed == "" {
		trimmed = DefaultWindow
	}
	if w, ok := named[trimmed]; ok {
		return w, nil
	}

	remaining := trimmed
	total := 0
	for len(remaining) > 0 {
		matches := windowPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return Window{}, fmt.Errorf("invalid range segment %q", strings.TrimSpace(remaining))
		}
		base, ok := unitMap[matches[2]]
		if !ok {
			return Window{}, fmt.Errorf("unsupported range unit %q", matches[2])
		}
		value, err := strconv.Atoi(matches[1])
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return Window{}, ErrRangeTooLarge
			}
			return Window{}, fmt.Errorf("invalid range value %q: %w", matches[1], err)
		}
		if value > MaxDays/base {
			return Window{}, ErrRangeTooLarge
		}
		total += value * base
		if total > MaxDays {
			return Window{}, ErrRangeTooLarge
		}
		remaining = remaining[len(matches[0]):]
	}

	if err := CheckDays(total); err != nil {
		return Window{}, err
	}
	for _, w := range Selectors() {
		if w.Days == total {
			return w, nil
		}
	}
	return Window{Days: total}, nil
}

// String renders the window using its symbolic name or a compact day count.
func (w Window) String() string {
	if w.Name != "" {
		return w.Name
	}
	return FormatWindow(w.Days)
}

// FormatWindow renders a day count using year/week/day tokens.
func FormatWindow(days int) string {
	if days <= 0 {
		return "0d"
	}
	type unit struct {
		label string
		value int
	}
	units := []unit{
		{"y", 365},
		{"w", 7},
		{"d", 1},
	}
	var parts []string
	remaining := days
	for _, u := range units {
		if remaining < u.value {
			continue
		}
		count := remaining / u.value
		remaining -= count * u.value
		parts = append(parts, fmt.Sprintf("%d%s", count, u.label))
	}
	return strings.Join(parts, "")
}

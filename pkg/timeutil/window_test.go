package timeutil

import (
	"errors"
	"testing"
)

func TestParseWindowDefault(t *testing.T) {
	w, err := ParseWindow("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != Week {
		t.Fatalf("expected week, got %+v", w)
	}
}

func TestParseWindowSelectors(t *testing.T) {
	cases := map[string]int{
		"day":   1,
		"Week":  7,
		"month": 30,
		" year": 365,
	}
	for in, want := range cases {
		w, err := ParseWindow(in)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", in, err)
		}
		if w.Days != want {
			t.Fatalf("%q: expected %d days, got %d", in, want, w.Days)
		}
	}
}

func TestParseWindowComposite(t *testing.T) {
	w, err := ParseWindow("1w3d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Days != 10 {
		t.Fatalf("expected 10 days, got %d", w.Days)
	}
	if w.String() != "1w3d" {
		t.Fatalf("unexpected label: %s", w.String())
	}
}

func TestParseWindowCanonicalizes(t *testing.T) {
	w, err := ParseWindow("7d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w != Week {
		t.Fatalf("expected 7d to resolve to week, got %+v", w)
	}
}

func TestParseWindowInvalid(t *testing.T) {
	for _, in := range []string{"noop", "0d", "3 parsecs"} {
		if _, err := ParseWindow(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestParseWindowBounds(t *testing.T) {
	tests := []struct {
		in   string
		days int
		err  error
	}{
		{in: "10y", days: 3650},
		{in: "3660d", days: MaxDays},
		{in: "3661d", err: ErrRangeTooLarge},
		{in: "10y11d", err: ErrRangeTooLarge},
		{in: "100000000000y", err: ErrRangeTooLarge},
		{in: "99999999999999999y", err: ErrRangeTooLarge},
		{in: "999999999999999999999999d", err: ErrRangeTooLarge},
		{in: "0w", err: ErrRangeTooSmall},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			w, err := ParseWindow(tc.in)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Fatalf("expected %v, got %+v, %v", tc.err, w, err)
				}
				return
			}
			if err != nil || w.Days != tc.days {
				t.Fatalf("expected %d days, got %+v, %v", tc.days, w, err)
			}
		})
	}
}

func TestCheckDays(t *testing.T) {
	tests := map[int]error{
		-1:          ErrRangeTooSmall,
		0:           ErrRangeTooSmall,
		1:           nil,
		30:          nil,
		MaxDays:     nil,
		MaxDays + 1: ErrRangeTooLarge,
		1 << 40:     ErrRangeTooLarge,
	}
	for n, want := range tests {
		if got := CheckDays(n); !errors.Is(got, want) || (want == nil && got != nil) {
			t.Errorf("CheckDays(%d) = %v, want %v", n, got, want)
		}
	}
}

package day

import (
	"testing"
	"time"
)

func TestFormatZeroPads(t *testing.T) {
	d := time.Date(2024, time.March, 5, 23, 59, 0, 0, time.Local)
	if got := Format(d); got != "2024-03-05" {
		t.Fatalf("expected 2024-03-05, got %s", got)
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	start := time.Date(2023, time.December, 25, 13, 0, 0, 0, time.Local)
	for i := 0; i < 800; i++ {
		d := start.AddDate(0, 0, i)
		key := Format(d)
		parsed, err := Parse(key)
		if err != nil {
			t.Fatalf("parse %s: %v", key, err)
		}
		if got := Format(parsed); got != key {
			t.Fatalf("round trip mismatch: %s -> %s", key, got)
		}
	}
}

func TestParseLenient(t *testing.T) {
	got, err := Parse("2025-7-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Format(got) != "2025-07-01" {
		t.Fatalf("expected 2025-07-01, got %s", Format(got))
	}
	if _, err := Parse("07/01/2025"); err == nil {
		t.Fatalf("expected error for non ISO date")
	}
}

func TestValid(t *testing.T) {
	cases := map[string]bool{
		"2024-01-01": true,
		"2024-1-1":   false,
		"2024-02-30": false,
		"hello":      false,
		"":           false,
	}
	for in, want := range cases {
		if got := Valid(in); got != want {
			t.Errorf("Valid(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestTrailing(t *testing.T) {
	today := time.Date(2024, time.March, 2, 18, 30, 0, 0, time.Local)
	days := Trailing(today, 3)
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}
	want := []string{"2024-02-29", "2024-03-01", "2024-03-02"}
	for i, d := range days {
		if Format(d) != want[i] {
			t.Fatalf("day %d: expected %s, got %s", i, want[i], Format(d))
		}
	}
	if Trailing(today, 0) != nil {
		t.Fatalf("expected nil for empty window")
	}
}

func TestShortLabel(t *testing.T) {
	d := time.Date(2024, time.November, 9, 0, 0, 0, 0, time.Local)
	if got := ShortLabel(d); got != "11-09" {
		t.Fatalf("expected 11-09, got %s", got)
	}
}

func TestParseMonth(t *testing.T) {
	y, m, err := ParseMonth("2025-11")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if y != 2025 || m != time.November {
		t.Fatalf("unexpected month %d-%d", y, m)
	}
	if _, _, err := ParseMonth("nope"); err == nil {
		t.Fatalf("expected error")
	}
}

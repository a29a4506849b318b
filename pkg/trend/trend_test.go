package trend

import (
	"strings"
	"testing"
	"time"

	"tableflip.dev/moodiary/pkg/record"
	"tableflip.dev/moodiary/pkg/timeutil"
)

var today = time.Date(2024, time.March, 10, 0, 0, 0, 0, time.Local)

func TestRecentSeriesLength(t *testing.T) {
	c := record.Collection{
		"2024-03-10": {Score: 8},
		"2024-03-01": {Score: 3},
		"2024-03-05": {Text: "no score"},
		"2024-01-01": {Score: 5},
	}
	s := RecentSeries(c, today, DefaultDays)
	if len(s) != 30 {
		t.Fatalf("expected 30 points, got %d", len(s))
	}
	if s[29].Key != "2024-03-10" || !s[29].OK || s[29].Score != 8 {
		t.Fatalf("unexpected last point %+v", s[29])
	}
	if s[0].Key != "2024-02-10" || s[0].Label != "02-10" {
		t.Fatalf("unexpected first point %+v", s[0])
	}
	if s.Scored() != 2 {
		t.Fatalf("expected 2 scored points, got %d", s.Scored())
	}
	for _, p := range s {
		if p.Key == "2024-03-05" && p.OK {
			t.Fatalf("unscored day must be a gap")
		}
		if !p.OK && p.Score != 0 {
			t.Fatalf("gap carries a value: %+v", p)
		}
	}
	if avg := s.Average(); avg != 5.5 {
		t.Fatalf("unexpected average %v", avg)
	}
}

func TestRecentSeriesEmpty(t *testing.T) {
	s := RecentSeries(nil, today, 7)
	if len(s) != 7 || s.Scored() != 0 || s.Average() != 0 {
		t.Fatalf("unexpected empty series %+v", s)
	}
	if len(RecentSeries(nil, today, 0)) != 0 {
		t.Fatalf("zero days should be empty")
	}
}

func TestRender(t *testing.T) {
	c := record.Collection{
		"2024-03-08": {Score: 10},
		"2024-03-10": {Score: 1},
	}
	out := Render(RecentSeries(c, today, 3))
	lines := strings.Split(out, "\n")
	if len(lines) != 12 {
		t.Fatalf("expected 12 lines, got %d:\n%s", len(lines), out)
	}
	if lines[0] != "10 │"+Mark+"  " {
		t.Fatalf("unexpected top row %q", lines[0])
	}
	if lines[9] != " 1 │  "+Mark {
		t.Fatalf("unexpected bottom row %q", lines[9])
	}
	if lines[11] != "    03-08 03-10" {
		t.Fatalf("unexpected labels %q", lines[11])
	}
}

func TestRecentSeriesCapsLength(t *testing.T) {
	s := RecentSeries(nil, today, 1<<40)
	if len(s) != timeutil.MaxDays {
		t.Fatalf("expected %d points, got %d", timeutil.MaxDays, len(s))
	}
	if s[len(s)-1].Key != "2024-03-10" {
		t.Fatalf("series should end today, got %s", s[len(s)-1].Key)
	}
}

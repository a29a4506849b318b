// Package calendar models the month grid of the diary and its navigation.
package calendar

import (
	"time"

	"tableflip.dev/moodiary/pkg/day"
	"tableflip.dev/moodiary/pkg/record"
)

// Cursor is the displayed month.
type Cursor struct {
	Year  int
	Month time.Month
}

// CursorFor returns the cursor of the month containing t.
func CursorFor(t time.Time) Cursor {
	return Cursor{Year: t.Year(), Month: t.Month()}
}

// Prev moves one month back, rolling over into the previous year.
func (c Cursor) Prev() Cursor {
	if c.Month == time.January {
		return Cursor{Year: c.Year - 1, Month: time.December}
	}
	return Cursor{Year: c.Year, Month: c.Month - 1}
}

// Next moves one month forward, rolling over into the next year.
func (c Cursor) Next() Cursor {
	if c.Month == time.December {
		return Cursor{Year: c.Year + 1, Month: time.January}
	}
	return Cursor{Year: c.Year, Month: c.Month + 1}
}

// First returns local midnight of the first day of the month.
func (c Cursor) First() time.Time {
	return time.Date(c.Year, c.Month, 1, 0, 0, 0, 0, time.Local)
}

// DaysIn returns the number of days in the month.
func (c Cursor) DaysIn() int {
	return c.First().AddDate(0, 1, -1).Day()
}

// Cell is one day of the grid.
type Cell struct {
	Day int
	Key string
	// HasRecord is set for days with a scored record.
	HasRecord  bool
	Score      int
	IsToday    bool
	IsSelected bool
}

// Grid is a month laid out for display, weeks starting on Sunday.
type Grid struct {
	Cursor
	// Leading is the number of blank cells before day 1.
	Leading int
	Cells   []Cell
}

// Build lays out the month at cursor.
func Build(c record.Collection, cursor Cursor, todayKey, selectedKey string) Grid {
	first := cursor.First()
	g := Grid{Cursor: cursor, Leading: int(first.Weekday())}
	n := cursor.DaysIn()
	g.Cells = make([]Cell, 0, n)
	for i := 0; i < n; i++ {
		key := day.Format(first.AddDate(0, 0, i))
		r, ok := c[key]
		cell := Cell{
			Day:        i + 1,
			Key:        key,
			HasRecord:  ok && r.HasScore(),
			IsToday:    key == todayKey,
			IsSelected: key == selectedKey,
		}
		if cell.HasRecord {
			cell.Score = r.Score
		}
		g.Cells = append(g.Cells, cell)
	}
	return g
}

// Weeks splits the grid into rows of seven. Blank cells have Day 0.
func (g Grid) Weeks() [][]Cell {
	total := g.Leading + len(g.Cells)
	rows := (total + 6) / 7
	weeks := make([][]Cell, rows)
	for row := range weeks {
		week := make([]Cell, 7)
		for col := range week {
			idx := row*7 + col - g.Leading
			if idx >= 0 && idx < len(g.Cells) {
				week[col] = g.Cells[idx]
			}
		}
		weeks[row] = week
	}
	return weeks
}

// Cell returns the cell of day d, if it is in the month.
func (g Grid) Cell(d int) (Cell, bool) {
	if d < 1 || d > len(g.Cells) {
		return Cell{}, false
	}
	return g.Cells[d-1], true
}

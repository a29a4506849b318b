package calendar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/moodiary/pkg/locale"
)

// Options controls calendar styling.
type Options struct {
	TitleStyle    lipgloss.Style
	HeaderStyle   lipgloss.Style
	EmptyStyle    lipgloss.Style
	RecordStyle   lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	ShowTitle     bool
	ShowHeader    bool
}

// DefaultOptions returns the styling used for calendar rendering.
func DefaultOptions() Options {
	return Options{
		TitleStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		HeaderStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
		EmptyStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		RecordStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		TodayStyle:    lipgloss.NewStyle().Underline(true),
		SelectedStyle: lipgloss.NewStyle().Background(lipgloss.Color("218")).Foreground(lipgloss.Color("0")),
		ShowTitle:     true,
		ShowHeader:    true,
	}
}

// PlainOptions renders without any styling.
func PlainOptions() Options {
	return Options{ShowTitle: true, ShowHeader: true}
}

// Render produces a multi-line calendar for the grid.
func Render(g Grid, l *locale.Locale, opts Options) string {
	var lines []string
	if opts.ShowTitle {
		lines = append(lines, opts.TitleStyle.Render(l.MonthTitle(g.Year, g.Month)))
	}
	if opts.ShowHeader {
		lines = append(lines, opts.HeaderStyle.Render(l.WeekHeader))
	}
	for _, week := range g.Weeks() {
		cells := make([]string, 0, len(week))
		for _, c := range week {
			if c.Day == 0 {
				cells = append(cells, opts.EmptyStyle.Render("  "))
				continue
			}
			cells = append(cells, renderCell(c, opts))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

func renderCell(c Cell, opts Options) string {
	style := opts.EmptyStyle
	if c.HasRecord {
		style = opts.RecordStyle
	}
	if c.IsToday {
		style = style.Inherit(opts.TodayStyle)
	}
	if c.IsSelected {
		style = style.Inherit(opts.SelectedStyle)
	}
	return style.Render(fmt.Sprintf("%2d", c.Day))
}

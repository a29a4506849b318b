package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/moodiary/pkg/record"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Footer FooterTheme
	Panel  PanelTheme
	Day    DayTheme
	Score  ScoreTheme
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Status lipgloss.Style
	Toast  lipgloss.Style
	Notice lipgloss.Style
}

// PanelTheme styles framed panes and headings.
type PanelTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
}

// DayTheme styles the day details.
type DayTheme struct {
	ReadOnly lipgloss.Style
	Faint    lipgloss.Style
	Text     lipgloss.Style
}

// ScoreTheme colors scores on a gradient from Low to High.
type ScoreTheme struct {
	Low  colorful.Color
	High colorful.Color
}

// Hex blends from cool to warm across the score range.
func (s ScoreTheme) Hex(score int) string {
	t := float64(score-record.MinScore) / float64(record.MaxScore-record.MinScore)
	t = min(max(t, 0), 1)
	return s.Low.BlendLuv(s.High, t).Clamped().Hex()
}

// Style is the bold foreground style of score.
func (s ScoreTheme) Style(score int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(s.Hex(score))).Bold(true)
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Footer: FooterTheme{
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Toast: lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("218")).
				Padding(0, 1),
			Notice: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("218")).
				Padding(0, 1),
			Title: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		},
		Day: DayTheme{
			ReadOnly: lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
			Faint:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Text:     lipgloss.NewStyle().Width(40),
		},
		Score: ScoreTheme{
			Low:  mustHex("#5b6ee1"),
			High: mustHex("#ff6f9f"),
		},
	}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

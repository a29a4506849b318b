package tui

import (
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/moodiary/pkg/calendar"
	"tableflip.dev/moodiary/pkg/tui/theme"
)

var (
	th = theme.Default()

	titleStyle    = th.Panel.Title
	paneStyle     = th.Panel.Frame
	faintStyle    = th.Day.Faint
	readOnlyStyle = th.Day.ReadOnly
	textStyle     = th.Day.Text
	noticeStyle   = th.Footer.Notice
	toastStyle    = th.Footer.Toast
)

func scoreStyle(score int) lipgloss.Style {
	return th.Score.Style(score)
}

func calendarOptions() calendar.Options {
	opts := calendar.DefaultOptions()
	opts.ShowTitle = false
	return opts
}

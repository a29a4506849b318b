// Package track provides runners that summarize the diary over time.
package track

import (
	"context"
	"errors"

	"tableflip.dev/moodiary/pkg/app"
	"tableflip.dev/moodiary/pkg/calendar"
	"tableflip.dev/moodiary/pkg/printers"
	"tableflip.dev/moodiary/pkg/trend"
)

// Calendar prints one month with the scored days highlighted.
type Calendar struct {
	Service *app.Service
	// Month is the displayed month; zero means the current one.
	Month   calendar.Cursor
	Printer *printers.PrettyPrint
}

// Do prints the month grid.
func (n *Calendar) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show calendar, no service")
	}
	c, err := n.Service.Collection(ctx)
	if err != nil {
		return err
	}
	cursor := n.Month
	if cursor.Year == 0 {
		cursor = calendar.CursorFor(n.Service.Today())
	}
	g := calendar.Build(c, cursor, n.Service.TodayKey(), "")
	printer(n.Printer, n.Service).Calendar(g)
	return nil
}

// Trend prints the recent score series.
type Trend struct {
	Service *app.Service
	Days    int
	Printer *printers.PrettyPrint
}

// Do prints the chart and its summary.
func (n *Trend) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show trend, no service")
	}
	c, err := n.Service.Collection(ctx)
	if err != nil {
		return err
	}
	days := n.Days
	if days <= 0 {
		days = trend.DefaultDays
	}
	printer(n.Printer, n.Service).Trend(trend.RecentSeries(c, n.Service.Today(), days))
	return nil
}

func printer(pp *printers.PrettyPrint, svc *app.Service) *printers.PrettyPrint {
	if pp == nil {
		return &printers.PrettyPrint{Locale: svc.Labels()}
	}
	return pp
}

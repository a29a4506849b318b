package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/moodiary/pkg/calendar"
	"tableflip.dev/moodiary/pkg/commands/options"
	"tableflip.dev/moodiary/pkg/day"
	"tableflip.dev/moodiary/pkg/runner/track"
	"tableflip.dev/moodiary/pkg/timeutil"
)

func addCalendar(topLevel *cobra.Command) {
	var month string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "show the month calendar",
		Example: `
moodiary calendar
moodiary calendar --month 2024-02
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			c := track.Calendar{}
			if month != "" {
				y, m, err := day.ParseMonth(month)
				if err != nil {
					return handleError(cmd, err)
				}
				c.Month = calendar.Cursor{Year: y, Month: m}
			}
			_, svc, err := openDiary()
			if err != nil {
				return handleError(cmd, err)
			}
			c.Service = svc
			return handleError(cmd, c.Do(cmd.Context()))
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "Month to show as YYYY-MM, defaults to the current month.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addTrend(topLevel *cobra.Command) {
	var days int

	cmd := &cobra.Command{
		Use:   "trend",
		Short: "chart the recent scores",
		Example: `
moodiary trend
moodiary trend --days 14
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, svc, err := openDiary()
			if err != nil {
				return handleError(cmd, err)
			}
			if !cmd.Flags().Changed("days") {
				if days, err = configTrendDays(); err != nil {
					return handleError(cmd, err)
				}
			}
			if err := timeutil.CheckDays(days); err != nil {
				return handleError(cmd, fmt.Errorf("--days %d: %w", days, err))
			}
			t := track.Trend{Service: svc, Days: days}
			return handleError(cmd, t.Do(cmd.Context()))
		},
	}

	cmd.Flags().IntVarP(&days, "days", "d", 30, "Number of days ending today.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

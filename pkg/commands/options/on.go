package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/moodiary/pkg/day"
)

const layoutShort = "1/2"

// OnOptions selects a day.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2024-03-10" or --on="3/10".`)
}

// GetOn returns the selected day key, empty when no date was given. A short
// month/day form uses the year of now, or the previous year when that day
// is still ahead.
func (o *OnOptions) GetOn(now time.Time) (string, error) {
	if o.OnString == "" {
		return "", nil
	}
	if t, err := day.Parse(o.OnString); err == nil {
		return day.Format(t), nil
	}
	t, err := time.ParseInLocation(layoutShort, o.OnString, time.Local)
	if err != nil {
		return "", err
	}
	t = t.AddDate(now.Year(), 0, 0)
	// Diary days are in the past, so 12/30 asked on 1/2 means last year.
	if t.After(now) {
		t = t.AddDate(-1, 0, 0)
	}
	return day.Format(t), nil
}

package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/moodiary/pkg/timeutil"
)

// WindowOptions selects the range of an export.
type WindowOptions struct {
	Range string
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().StringVarP(&o.Range, "range", "r", timeutil.DefaultWindow,
		"Range ending today: day, week, month, year, or a span such as 3d or 2w.")
}

func (o *WindowOptions) Window() (timeutil.Window, error) {
	return timeutil.ParseWindow(o.Range)
}

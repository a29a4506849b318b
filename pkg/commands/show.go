package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/moodiary/pkg/commands/options"
	"tableflip.dev/moodiary/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	on := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "show the record of a day",
		Example: `
moodiary show
moodiary show --on 2024-03-10
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			key, err := on.GetOn(time.Now())
			if err != nil {
				return handleError(cmd, err)
			}
			_, svc, err := openDiary()
			if err != nil {
				return handleError(cmd, err)
			}
			s := show.Show{Service: svc, On: key}
			return handleError(cmd, s.Do(cmd.Context()))
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

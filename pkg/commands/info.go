package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/moodiary/pkg/commands/options"
	"tableflip.dev/moodiary/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the diary and where it is stored.",
		Example: `
moodiary info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, svc, err := openDiary()
			if err != nil {
				return output.HandleError(err)
			}
			s := info.Info{
				Config:  cfg,
				Service: svc,
			}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

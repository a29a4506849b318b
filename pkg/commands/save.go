package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/moodiary/pkg/commands/options"
	"tableflip.dev/moodiary/pkg/runner/save"
)

func addSave(topLevel *cobra.Command) {
	s := save.Save{}

	cmd := &cobra.Command{
		Use:   "save [text]",
		Short: "save today's mood",
		Long: `Save today's score and text. Only today can be written; saving again
replaces the whole record of today, images included.`,
		Example: `
moodiary save --score 7 "walked by the river"
moodiary save -s 4 --image ~/Pictures/rain.png
moodiary save -s 8 --keep-images
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) > 0 {
				s.Text = strings.Join(args, " ")
			}
			_, svc, err := openDiary()
			if err != nil {
				return handleError(cmd, err)
			}
			s.Service = svc
			return handleError(cmd, s.Do(cmd.Context()))
		},
	}

	cmd.Flags().IntVarP(&s.Score, "score", "s", 0, "Mood score from 1 to 10.")
	cmd.Flags().StringVarP(&s.Text, "text", "t", "", "Text of the day, at most 500 characters.")
	cmd.Flags().StringArrayVarP(&s.Images, "image", "i", nil, "Image file to attach, repeat up to 3 times.")
	cmd.Flags().BoolVar(&s.KeepImages, "keep-images", false, "Keep the images already saved for today.")
	_ = cmd.MarkFlagRequired("score")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/moodiary/pkg/commands/options"
	exportdoc "tableflip.dev/moodiary/pkg/export"
	"tableflip.dev/moodiary/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}
	var (
		dir     string
		preview bool
	)

	cmd := &cobra.Command{
		Use:   "export <" + strings.Join(export.Formats(), "|") + ">",
		Short: "export a range of days",
		Long: base.Wrap80("Export the days of a range ending today. text writes a plain text file, " +
			"print opens a printable page, json writes a backup of the whole diary to stdout without images."),
		Example: `
moodiary export text --range month
moodiary export text --preview
moodiary export print -r 2w
moodiary export json > backup.json
`,
		ValidArgs: export.Formats(),
		Args:      cobra.ExactValidArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			w, err := wo.Window()
			if err != nil {
				return handleError(cmd, err)
			}
			_, svc, err := openDiary()
			if err != nil {
				return handleError(cmd, err)
			}
			if !cmd.Flags().Changed("dir") {
				dir = viper.GetString("export.dir")
			}
			e := export.Export{
				Service: svc,
				Format:  export.Format(args[0]),
				Window:  w,
				Dir:     dir,
				Surface: exportdoc.OpenerSurface{Dir: dir, Command: viper.GetString("opener")},
				Preview: preview,
				Out:     cmd.OutOrStdout(),
			}
			if err := e.Do(cmd.Context()); err != nil {
				return handleError(cmd, fmt.Errorf("export %s: %w", args[0], err))
			}
			return nil
		},
	}

	options.AddWindowArgs(cmd, wo)
	cmd.Flags().StringVar(&dir, "dir", ".", "Directory receiving exported files.")
	cmd.Flags().BoolVar(&preview, "preview", false, "Render a text export in the terminal instead of writing a file.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

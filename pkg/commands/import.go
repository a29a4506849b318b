package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/moodiary/pkg/commands/options"
	"tableflip.dev/moodiary/pkg/runner/load"
)

func addImport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "import [file|-]",
		Short: "merge a JSON backup",
		Long: `Merge a JSON backup keyed by date. Score and text of every imported day are
replaced and the images already stored are kept. Entries without a valid score
are skipped.`,
		Example: `
moodiary import backup.json
moodiary export json | moodiary import -
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return handleError(cmd, err)
				}
				defer f.Close()
				in = f
			}
			_, svc, err := openDiary()
			if err != nil {
				return handleError(cmd, err)
			}
			i := load.Import{Service: svc, In: in}
			return handleError(cmd, i.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tableflip.dev/moodiary/pkg/app"
	"tableflip.dev/moodiary/pkg/export"
	"tableflip.dev/moodiary/pkg/runner/ui"
	"tableflip.dev/moodiary/pkg/tui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
moodiary ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd)
		},
	}

	topLevel.AddCommand(cmd)
}

func runUI(cmd *cobra.Command) error {
	cmd.SilenceUsage = true
	cfg, svc, err := openDiary()
	if err != nil {
		return err
	}
	days, err := configTrendDays()
	if err != nil {
		return err
	}
	dir := viper.GetString("export.dir")
	i := ui.UI{
		Service: svc,
		Logs: app.LogConfig{
			Level:  viper.GetString("log.level"),
			Format: viper.GetString("log.format"),
		},
		Options: tui.Options{
			TrendDays: days,
			ExportDir: dir,
			Surface:   export.OpenerSurface{Dir: dir, Command: viper.GetString("opener")},
		},
	}
	logs, err := os.OpenFile(filepath.Join(cfg.BasePath(), "moodiary.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err == nil {
		defer logs.Close()
		i.Logs.Output = logs
	}
	return i.Do(cmd.Context())
}

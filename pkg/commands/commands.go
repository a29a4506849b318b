package commands

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/moodiary/pkg/app"
	"tableflip.dev/moodiary/pkg/commands/options"
	"tableflip.dev/moodiary/pkg/store"
)

var (
	output = &options.OutputOptions{}
	config store.Config
)

func New() *cobra.Command {
	var (
		lang      string
		logLevel  string
		logFormat string
	)

	cmd := &cobra.Command{
		Use:   "moodiary",
		Short: base.Wrap80("A daily mood diary: score today from 1 to 10, write a few words, and look back over the calendar and trend."),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			config = cfg
			bindFlag(cmd, "locale", "locale")
			bindFlag(cmd, "log.level", "log-level")
			bindFlag(cmd, "log.format", "log-format")
			app.NewLogger(app.LogConfig{
				Level:  viper.GetString("log.level"),
				Format: viper.GetString("log.format"),
			})
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !interactive() {
				return cmd.Help()
			}
			return runUI(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&lang, "locale", "", "Interface language: zh or en.")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error.")
	cmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: text or json.")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addShow(topLevel)
	addSave(topLevel)
	addCalendar(topLevel)
	addTrend(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addInfo(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// bindFlag lets an explicitly set flag win over config and environment.
func bindFlag(cmd *cobra.Command, key, flag string) {
	if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
		viper.Set(key, f.Value.String())
	}
}

func interactive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

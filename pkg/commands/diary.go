package commands

import (
	"fmt"

	"github.com/spf13/viper"

	"tableflip.dev/moodiary/pkg/app"
	"tableflip.dev/moodiary/pkg/locale"
	"tableflip.dev/moodiary/pkg/store"
	"tableflip.dev/moodiary/pkg/timeutil"
)

// configTrendDays returns the trend.days setting, bounded like --range.
func configTrendDays() (int, error) {
	days := viper.GetInt("trend.days")
	if err := timeutil.CheckDays(days); err != nil {
		return 0, fmt.Errorf("config trend.days %d: %w", days, err)
	}
	return days, nil
}

// openDiary opens the diary document the configuration points at.
func openDiary() (store.Config, *app.Service, error) {
	cfg := config
	if cfg == nil {
		var err error
		if cfg, err = store.LoadConfig(); err != nil {
			return nil, nil, err
		}
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, app.New(p, locale.Lookup(viper.GetString("locale"))), nil
}

package store

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the diary on disk.
type Config interface {
	BasePath() string
}

// Defaults registers the configuration defaults shared by every command.
func Defaults() {
	viper.SetDefault("path", "~/.moodiary")
	viper.SetDefault("locale", "zh")
	viper.SetDefault("trend.days", 30)
	viper.SetDefault("export.dir", ".")
	viper.SetDefault("opener", "")
	viper.SetDefault("log.level", "warn")
	viper.SetDefault("log.format", "text")
}

// LoadConfig reads .moodiary.yaml from $MOODIARY_CONFIG_PATH or the working
// directory, layered over MOODIARY_* environment variables and defaults.
func LoadConfig() (Config, error) {
	Defaults()
	viper.SetConfigName(".moodiary") // .yaml is implicit
	viper.SetEnvPrefix("MOODIARY")
	viper.AutomaticEnv()

	if override := os.Getenv("MOODIARY_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("expand path %q: %w", viper.GetString("path"), err)
	}
	return &fileConfig{Path: path}, nil
}

// PathConfig is a Config pointing at an explicit directory.
type PathConfig string

func (p PathConfig) BasePath() string {
	return string(p)
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

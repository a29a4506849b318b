// Package info describes where the diary lives and what it holds.
package info

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"tableflip.dev/moodiary/pkg/app"
	"tableflip.dev/moodiary/pkg/printers"
	"tableflip.dev/moodiary/pkg/store"
)

type Info struct {
	Config  store.Config
	Service *app.Service
	Printer *printers.PrettyPrint
}

func (n *Info) Do(ctx context.Context) error {
	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}
	if n.Service == nil {
		return fmt.Errorf("failed to create persistence object")
	}

	override := os.Getenv("MOODIARY_CONFIG_PATH")
	if override == "" {
		override = "not set"
	}
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		configFile = "none"
	}

	rows := [][2]string{
		{"MOODIARY_CONFIG_PATH", override},
		{"config file", configFile},
		{"path", n.Config.BasePath()},
	}
	if p, ok := n.Service.Persistence.(interface{ DocumentPath() string }); ok {
		rows = append(rows, [2]string{"document", p.DocumentPath()})
	}

	c, err := n.Service.Collection(ctx)
	if err != nil {
		return err
	}
	keys := c.Keys()
	rows = append(rows,
		[2]string{"locale", n.Service.Labels().Code},
		[2]string{"records", fmt.Sprint(len(keys))},
	)
	if len(keys) > 0 {
		rows = append(rows, [2]string{"first", keys[0]}, [2]string{"last", keys[len(keys)-1]})
	}

	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{Locale: n.Service.Labels()}
	}
	pp.Table(rows)
	return nil
}

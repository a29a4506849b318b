// Package ui launches the interactive terminal diary.
package ui

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"tableflip.dev/moodiary/pkg/app"
	"tableflip.dev/moodiary/pkg/tui"
)

type UI struct {
	Service *app.Service
	Options tui.Options
	// Logs configures logging while the screen is taken. A nil Output
	// discards log records so they cannot tear the display.
	Logs app.LogConfig
}

// Do runs the program until the user quits. Changes written by other
// processes refresh the screen while it runs.
func (d *UI) Do(ctx context.Context) error {
	if d.Service == nil {
		return errors.New("can not start ui, no service")
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	restore := redirectLogs(d.Logs)
	defer restore()

	opts := d.Options
	if opts.Changes == nil {
		changes, err := d.Service.Watch(ctx)
		if err != nil {
			slog.WarnContext(ctx, "store watch unavailable", "error", err)
		} else {
			opts.Changes = changes
		}
	}
	return tui.Run(ctx, d.Service, opts)
}

// redirectLogs swaps the default logger and returns a func restoring it.
func redirectLogs(cfg app.LogConfig) func() {
	previous := slog.Default()
	if cfg.Output == nil {
		cfg.Output = io.Discard
	}
	app.NewLogger(cfg)
	return func() { slog.SetDefault(previous) }
}

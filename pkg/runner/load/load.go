// Package load imports a JSON backup into the diary.
package load

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"tableflip.dev/moodiary/pkg/app"
	"tableflip.dev/moodiary/pkg/printers"
)

// Import merges a backup read from In.
type Import struct {
	Service *app.Service
	In      io.Reader
	Printer *printers.PrettyPrint
}

// Do reads the whole backup and merges it in one save.
func (n *Import) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not import, no service")
	}
	if n.In == nil {
		return errors.New("can not import, no input")
	}
	data, err := io.ReadAll(n.In)
	if err != nil {
		return fmt.Errorf("read backup: %w", err)
	}
	res, err := n.Service.Import(ctx, string(data))
	if err != nil {
		return err
	}
	if len(res.Skipped) > 0 {
		slog.WarnContext(ctx, "skipped malformed backup entries", "count", len(res.Skipped), "dates", res.Skipped)
	}
	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{Locale: n.Service.Labels()}
	}
	pp.Imported(res)
	return nil
}

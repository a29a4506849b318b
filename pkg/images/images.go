// Package images reads picked image files and encodes them as data URLs
// suitable for storing inside a record.
package images

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"tableflip.dev/moodiary/pkg/record"
)

var (
	// ErrNotImage is returned for files whose content is not an image.
	ErrNotImage = errors.New("images: file is not an image")
	// ErrTooLarge is returned for files above Encoder.MaxBytes.
	ErrTooLarge = errors.New("images: file is too large")
)

// DefaultMaxBytes bounds one picked file.
const DefaultMaxBytes = 8 << 20

// Encoder turns image files into data URLs.
type Encoder struct {
	// MaxBytes bounds the size of one file; zero means DefaultMaxBytes.
	MaxBytes int64
	// ReadFile defaults to os.ReadFile.
	ReadFile func(name string) ([]byte, error)
}

// EncodeAll reads every path concurrently and returns the data URLs in the
// order of paths. A single failure fails the whole batch, so a selection is
// adopted either completely or not at all.
func (e Encoder) EncodeAll(ctx context.Context, paths []string) ([]string, error) {
	if len(paths) > record.MaxImages {
		return nil, record.ErrTooManyImages
	}
	out := make([]string, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			url, err := e.encode(path)
			if err != nil {
				return err
			}
			out[i] = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	slog.DebugContext(ctx, "encoded images", "count", len(out))
	return out, nil
}

func (e Encoder) encode(path string) (string, error) {
	read := e.ReadFile
	if read == nil {
		read = os.ReadFile
	}
	data, err := read(path)
	if err != nil {
		return "", fmt.Errorf("images: read %s: %w", path, err)
	}
	limit := e.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxBytes
	}
	if int64(len(data)) > limit {
		return "", fmt.Errorf("%w: %s", ErrTooLarge, path)
	}
	return DataURL(data, path)
}

// DataURL encodes data using its sniffed content type.
func DataURL(data []byte, name string) (string, error) {
	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("%w: %s (%s)", ErrNotImage, name, mime)
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/moodiary/pkg/record"
)

// Key is the fixed storage key holding the whole diary document.
const Key = "moodDiaryData"

const documentExt = ".json"

// Persistence defines the persistence contract for the diary document. The
// whole collection is read and written as one unit.
type Persistence interface {
	Load(ctx context.Context) record.Collection
	Save(ctx context.Context, c record.Collection) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		// Writes go through a temp file and a rename.
		TempDir: filepath.Join(basePath, ".tmp"),
		// No cache: another process may rewrite the document and reads
		// must see it.
		CacheSizeMax: 0,
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// Load never fails: a missing, unreadable or non-object document reads as an
// empty collection.
func (p *persistence) Load(ctx context.Context) record.Collection {
	if !p.d.Has(Key) {
		return record.Collection{}
	}
	val, err := p.d.Read(Key)
	if err != nil {
		slog.WarnContext(ctx, "store: read document", "key", Key, "err", err)
		return record.Collection{}
	}
	if len(strings.TrimSpace(string(val))) == 0 {
		return record.Collection{}
	}
	c, skipped, err := record.Decode(val)
	if err != nil {
		slog.WarnContext(ctx, "store: decode document, treating as empty", "key", Key, "err", err)
		return record.Collection{}
	}
	if len(skipped) > 0 {
		slog.WarnContext(ctx, "store: skipped malformed records", "dates", skipped)
	}
	return c
}

func (p *persistence) Save(ctx context.Context, c record.Collection) error {
	data, err := record.Encode(c)
	if err != nil {
		return fmt.Errorf("store: encode document: %w", err)
	}
	if err := p.d.Write(Key, data); err != nil {
		return fmt.Errorf("store: write document: %w", err)
	}
	slog.DebugContext(ctx, "store: saved document", "records", len(c), "bytes", len(data))
	return nil
}

// DocumentPath returns where the diary document lives on disk.
func (p *persistence) DocumentPath() string {
	return filepath.Join(p.basePath, Key+documentExt)
}

func keyToPathTransform(s string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: s + documentExt,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return strings.TrimSuffix(pathKey.FileName, documentExt)
}

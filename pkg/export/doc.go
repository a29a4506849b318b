// Package export turns ranges of diary records into plain text, printable
// HTML or JSON backups, and merges JSON backups back into a collection.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"tableflip.dev/moodiary/pkg/locale"
)

var (
	// ErrEmptyRange is returned when the selected range holds no record.
	ErrEmptyRange = errors.New("export: no records in the selected range")
	// ErrSurfaceUnavailable is returned when the printable document could
	// not be handed to the rendering surface.
	ErrSurfaceUnavailable = errors.New("export: cannot open the print surface")
	// ErrEmptyImport is returned when there is no text to import.
	ErrEmptyImport = errors.New("import: nothing to import")
	// ErrInvalidJSON is returned when the import text does not parse.
	ErrInvalidJSON = errors.New("import: invalid JSON")
	// ErrInvalidStructure is returned when the import is not a keyed mapping.
	ErrInvalidStructure = errors.New("import: invalid structure, expected an object keyed by date")
)

func init() {
	locale.RegisterNotice(ErrEmptyRange, map[string]string{
		"zh": "所选时间范围内没有任何记录哦~",
		"en": "There are no records in the selected range.",
	})
	locale.RegisterNotice(ErrSurfaceUnavailable, map[string]string{
		"zh": "无法打开打印窗口，请检查浏览器或系统设置。",
		"en": "Could not open the print view.",
	})
	locale.RegisterNotice(ErrEmptyImport, map[string]string{
		"zh": "请先粘贴 JSON 数据。",
		"en": "Paste JSON data first.",
	})
	locale.RegisterNotice(ErrInvalidJSON, map[string]string{
		"zh": "JSON 格式不正确，请确认复制粘贴完整。",
		"en": "The JSON is malformed; check that it was copied completely.",
	})
	locale.RegisterNotice(ErrInvalidStructure, map[string]string{
		"zh": "JSON 内容无效，期望是一个对象结构。",
		"en": "The JSON must be an object keyed by date.",
	})
}

// Document is a rendered export ready to be written or presented.
type Document struct {
	Name    string
	Content []byte
	// Records is the number of days included.
	Records int
}

// WriteFile writes doc into dir and returns the file path.
func WriteFile(dir string, doc Document) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("export: ensure directory: %w", err)
	}
	path := filepath.Join(dir, doc.Name)
	if err := os.WriteFile(path, doc.Content, 0o644); err != nil {
		return "", fmt.Errorf("export: write %s: %w", path, err)
	}
	return path, nil
}

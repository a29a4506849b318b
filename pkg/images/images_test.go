package images

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"tableflip.dev/moodiary/pkg/record"
)

var (
	pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	gifHeader = []byte("GIF89a\x01\x00\x01\x00")
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestEncodeAllPreservesOrder(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeFile(t, dir, "a.gif", gifHeader),
		writeFile(t, dir, "b.png", pngHeader),
		writeFile(t, dir, "c.gif", gifHeader),
	}
	got, err := Encoder{}.EncodeAll(context.Background(), paths)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 urls, got %d", len(got))
	}
	prefixes := []string{"data:image/gif;base64,", "data:image/png;base64,", "data:image/gif;base64,"}
	for i, p := range prefixes {
		if !strings.HasPrefix(got[i], p) {
			t.Errorf("url %d: expected prefix %q, got %q", i, p, got[i])
		}
	}
}

func TestEncodeAllOrderIgnoresCompletion(t *testing.T) {
	files := map[string][]byte{
		"slow.png": pngHeader,
		"fast.gif": gifHeader,
		"next.gif": gifHeader,
	}
	var (
		mu       sync.Mutex
		finished []string
		others   sync.WaitGroup
	)
	others.Add(2)
	enc := Encoder{ReadFile: func(name string) ([]byte, error) {
		if name == "slow.png" {
			done := make(chan struct{})
			go func() { others.Wait(); close(done) }()
			select {
			case <-done:
			case <-time.After(5 * time.Second):
				return nil, errors.New("other files were not read concurrently")
			}
		} else {
			defer others.Done()
		}
		mu.Lock()
		finished = append(finished, name)
		mu.Unlock()
		return files[name], nil
	}}

	got, err := enc.EncodeAll(context.Background(), []string{"slow.png", "fast.gif", "next.gif"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if finished[len(finished)-1] != "slow.png" {
		t.Fatalf("slow.png should finish last, order %v", finished)
	}
	prefixes := []string{"data:image/png;base64,", "data:image/gif;base64,", "data:image/gif;base64,"}
	for i, p := range prefixes {
		if !strings.HasPrefix(got[i], p) {
			t.Errorf("url %d: expected prefix %q, got %q", i, p, got[i])
		}
	}
}

func TestEncodeAllRejectsBatch(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "a.png", pngHeader)
	text := writeFile(t, dir, "notes.txt", []byte("just some words"))

	if _, err := (Encoder{}).EncodeAll(context.Background(), []string{good, text}); !errors.Is(err, ErrNotImage) {
		t.Fatalf("expected ErrNotImage, got %v", err)
	}
	if _, err := (Encoder{}).EncodeAll(context.Background(), []string{good, filepath.Join(dir, "missing.png")}); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not exist, got %v", err)
	}
	if _, err := (Encoder{MaxBytes: 4}).EncodeAll(context.Background(), []string{good}); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
	if _, err := (Encoder{}).EncodeAll(context.Background(), []string{good, good, good, good}); !errors.Is(err, record.ErrTooManyImages) {
		t.Fatalf("expected ErrTooManyImages, got %v", err)
	}
}

func TestEncodeAllEmpty(t *testing.T) {
	got, err := Encoder{}.EncodeAll(context.Background(), nil)
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty result, got %v, %v", got, err)
	}
}

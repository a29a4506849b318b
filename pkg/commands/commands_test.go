package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"tableflip.dev/moodiary/pkg/day"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("moodiary %v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestCommandTree(t *testing.T) {
	want := []string{"ui", "show", "save", "calendar", "trend", "export", "import", "info", "mcp", "version", "completion"}
	root := New()
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd == root {
			t.Errorf("missing command %q", name)
		}
	}
}

func TestSaveThenExportJSON(t *testing.T) {
	t.Setenv("MOODIARY_PATH", t.TempDir())
	t.Setenv("MOODIARY_CONFIG_PATH", t.TempDir())

	run(t, "save", "--locale", "en", "--score", "7", "quiet", "day")
	out := run(t, "export", "json")

	var backup map[string]struct {
		Score int    `json:"score"`
		Text  string `json:"text"`
	}
	if err := json.Unmarshal([]byte(out), &backup); err != nil {
		t.Fatalf("export is not JSON: %v\n%s", err, out)
	}
	today := day.Format(time.Now())
	got, ok := backup[today]
	if !ok || got.Score != 7 || got.Text != "quiet day" {
		t.Fatalf("unexpected backup %v", backup)
	}
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	t.Setenv("MOODIARY_PATH", t.TempDir())
	cmd := New()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"export", "pdf"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected an error for an unknown format")
	}
}

func runFailing(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := New()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	if err == nil {
		t.Fatalf("moodiary %v: expected an error", args)
	}
	return out.String(), errOut.String(), err
}

func TestEmptyExportShowsLocalizedNotice(t *testing.T) {
	t.Setenv("MOODIARY_PATH", t.TempDir())
	tests := map[string]string{
		"zh": "所选时间范围内没有任何记录哦~",
		"en": "There are no records in the selected range.",
	}
	for code, notice := range tests {
		t.Run(code, func(t *testing.T) {
			dir := t.TempDir()
			_, stderr, err := runFailing(t, "export", "text", "--locale", code, "--dir", dir)
			if !errors.Is(err, ErrReported) {
				t.Fatalf("expected a reported error, got %v", err)
			}
			if !strings.Contains(stderr, notice) {
				t.Fatalf("expected notice %q, got %q", notice, stderr)
			}
			if strings.Contains(stderr, "export: no records") {
				t.Fatalf("raw error leaked: %q", stderr)
			}
			if entries, _ := os.ReadDir(dir); len(entries) != 0 {
				t.Fatalf("no file should be written, found %d", len(entries))
			}
		})
	}
}

func TestTrendRejectsOversizedDays(t *testing.T) {
	t.Setenv("MOODIARY_PATH", t.TempDir())
	_, stderr, err := runFailing(t, "trend", "--locale", "en", "--days", "100000")
	if !errors.Is(err, ErrReported) || !strings.Contains(stderr, "at most 3660 days") {
		t.Fatalf("unexpected result %v: %q", err, stderr)
	}
}

func TestExportRejectsOversizedRange(t *testing.T) {
	t.Setenv("MOODIARY_PATH", t.TempDir())
	_, stderr, err := runFailing(t, "export", "text", "--locale", "en", "--range", "100000000000y")
	if !errors.Is(err, ErrReported) || !strings.Contains(stderr, "at most 3660 days") {
		t.Fatalf("unexpected result %v: %q", err, stderr)
	}
}

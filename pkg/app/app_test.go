package app

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/moodiary/pkg/export"
	"tableflip.dev/moodiary/pkg/locale"
	"tableflip.dev/moodiary/pkg/record"
	"tableflip.dev/moodiary/pkg/store"
)

func fixedClock(y int, m time.Month, d, hour int) func() time.Time {
	return func() time.Time { return time.Date(y, m, d, hour, 30, 0, 0, time.Local) }
}

func newService(seed record.Collection) (*Service, *store.Memory) {
	mem := store.NewMemory(seed)
	svc := New(mem, locale.ZH)
	svc.Now = fixedClock(2024, time.March, 10, 23)
	return svc, mem
}

func TestTodayIsLocalCalendarDate(t *testing.T) {
	svc, _ := newService(nil)
	if got := svc.TodayKey(); got != "2024-03-10" {
		t.Fatalf("unexpected today %q", got)
	}
	if !svc.IsToday("2024-03-10") || svc.IsToday("2024-03-09") {
		t.Fatalf("IsToday mismatch")
	}
	svc.Now = fixedClock(2024, time.March, 11, 0)
	if got := svc.TodayKey(); got != "2024-03-11" {
		t.Fatalf("today should follow the clock, got %q", got)
	}
}

func TestSaveTodayOverwrites(t *testing.T) {
	ctx := context.Background()
	svc, mem := newService(record.Collection{
		"2024-03-10": {Score: 2, Text: "first", Images: []string{"a"}},
		"2024-03-01": {Score: 5},
	})
	if err := svc.SaveToday(ctx, record.Record{Score: 8, Text: "second"}); err != nil {
		t.Fatalf("save today: %v", err)
	}
	r, ok, err := svc.Record(ctx, "2024-03-10")
	if err != nil || !ok {
		t.Fatalf("record: ok=%v err=%v", ok, err)
	}
	if r.Score != 8 || r.Text != "second" || len(r.Images) != 0 {
		t.Fatalf("expected full overwrite, got %+v", r)
	}
	if c := mem.Load(ctx); c["2024-03-01"].Score != 5 {
		t.Fatalf("other dates changed: %v", c)
	}
}

func TestSaveTodayRequiresScore(t *testing.T) {
	svc, mem := newService(nil)
	if err := svc.SaveToday(context.Background(), record.Record{Text: "x"}); !errors.Is(err, record.ErrInvalidScore) {
		t.Fatalf("expected ErrInvalidScore, got %v", err)
	}
	if mem.Saves() != 0 {
		t.Fatalf("store should be untouched")
	}
}

func TestImportMalformedLeavesStore(t *testing.T) {
	ctx := context.Background()
	svc, mem := newService(record.Collection{"2024-03-01": {Score: 3, Text: "keep"}})
	before := mem.Raw()
	for _, text := range []string{"", "{not json", "[1,2,3]", `{"bad-key": {"score": 4}}`} {
		if _, err := svc.Import(ctx, text); err != nil && !errors.Is(err, export.ErrEmptyImport) &&
			!errors.Is(err, export.ErrInvalidJSON) && !errors.Is(err, export.ErrInvalidStructure) {
			t.Fatalf("unexpected error for %q: %v", text, err)
		}
	}
	if !bytes.Equal(before, mem.Raw()) || mem.Saves() != 0 {
		t.Fatalf("store changed by rejected imports")
	}
}

func TestImportMerges(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(record.Collection{
		"2024-03-01": {Score: 3, Text: "old", Images: []string{"abc"}},
		"2024-03-02": {Score: 6, Text: "other"},
	})
	res, err := svc.Import(ctx, `{"2024-03-01": {"score": 9, "text": "new"}, "2024-03-03": {"score": 0}}`)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if res.Merged != 1 || len(res.Skipped) != 1 {
		t.Fatalf("unexpected result %+v", res)
	}
	c, _ := svc.Collection(ctx)
	if r := c["2024-03-01"]; r.Score != 9 || r.Text != "new" || len(r.Images) != 1 {
		t.Fatalf("unexpected merged record %+v", r)
	}
	if c["2024-03-02"].Text != "other" {
		t.Fatalf("unrelated date changed")
	}
	if _, ok := c["2024-03-03"]; ok {
		t.Fatalf("skipped date stored")
	}
}

func TestNoPersistence(t *testing.T) {
	svc := &Service{}
	if _, err := svc.Collection(context.Background()); err == nil {
		t.Fatalf("expected error without persistence")
	}
	if svc.Labels() != locale.ZH {
		t.Fatalf("expected default locale")
	}
}

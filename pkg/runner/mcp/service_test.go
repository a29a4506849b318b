package mcp

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"tableflip.dev/moodiary/pkg/app"
	"tableflip.dev/moodiary/pkg/locale"
	"tableflip.dev/moodiary/pkg/record"
	"tableflip.dev/moodiary/pkg/store"
	"tableflip.dev/moodiary/pkg/timeutil"
)

func newTestService(seed record.Collection) (*Service, *store.Memory) {
	mem := store.NewMemory(seed)
	a := app.New(mem, locale.EN)
	a.Now = func() time.Time { return time.Date(2024, time.March, 10, 9, 0, 0, 0, time.Local) }
	return NewService(a), mem
}

func TestServiceDayDefaultsToToday(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(record.Collection{
		"2024-03-10": {Score: 6, Text: "sunny", Images: []string{"data:image/png;base64,AA=="}},
	})

	dto, err := svc.Day(ctx, "")
	if err != nil {
		t.Fatalf("Day: %v", err)
	}
	if dto.Date != "2024-03-10" || dto.Score != 6 || dto.ImageCount != 1 {
		t.Fatalf("unexpected day %+v", dto)
	}
	if !dto.Recorded || !dto.Editable {
		t.Fatalf("today should be recorded and editable: %+v", dto)
	}
}

func TestServiceDayPastIsReadOnly(t *testing.T) {
	svc, _ := newTestService(nil)
	dto, err := svc.Day(context.Background(), "2024-03-01")
	if err != nil {
		t.Fatalf("Day: %v", err)
	}
	if dto.Editable || dto.Recorded || dto.Score != 0 {
		t.Fatalf("unexpected blank past day %+v", dto)
	}
	if _, err := svc.Day(context.Background(), "2024-02-30"); !errors.Is(err, record.ErrInvalidKey) {
		t.Fatalf("expected invalid key, got %v", err)
	}
}

func TestServiceSaveTodayKeepsImages(t *testing.T) {
	ctx := context.Background()
	svc, mem := newTestService(record.Collection{
		"2024-03-10": {Score: 2, Text: "old", Images: []string{"data:image/png;base64,AA=="}},
	})

	dto, err := svc.SaveToday(ctx, 9, "better")
	if err != nil {
		t.Fatalf("SaveToday: %v", err)
	}
	if dto.Score != 9 || dto.Text != "better" || dto.ImageCount != 1 {
		t.Fatalf("unexpected saved day %+v", dto)
	}
	if got := mem.Load(ctx)["2024-03-10"]; got.Score != 9 || len(got.Images) != 1 {
		t.Fatalf("store not updated: %+v", got)
	}
}

func TestServiceSaveTodayRejectsScore(t *testing.T) {
	svc, mem := newTestService(nil)
	_, err := svc.SaveToday(context.Background(), 11, "")
	if !errors.Is(err, record.ErrInvalidScore) {
		t.Fatalf("expected invalid score, got %v", err)
	}
	if mem.Saves() != 0 {
		t.Fatalf("nothing should be saved")
	}
}

func TestServiceTrendMarksGaps(t *testing.T) {
	svc, _ := newTestService(record.Collection{
		"2024-03-10": {Score: 8},
		"2024-03-08": {Score: 4},
	})
	dto, err := svc.Trend(context.Background(), 3)
	if err != nil {
		t.Fatalf("Trend: %v", err)
	}
	if dto.Days != 3 || dto.Scored != 2 || dto.Average != 6 {
		t.Fatalf("unexpected summary %+v", dto)
	}
	if dto.Points[0].Date != "2024-03-08" || dto.Points[1].Score != nil || *dto.Points[2].Score != 8 {
		t.Fatalf("unexpected points %+v", dto.Points)
	}
}

func TestServiceCalendar(t *testing.T) {
	svc, _ := newTestService(record.Collection{"2024-02-29": {Score: 5}})
	dto, err := svc.Calendar(context.Background(), "2024-02")
	if err != nil {
		t.Fatalf("Calendar: %v", err)
	}
	if dto.Month != "2024-02" || len(dto.Days) != 29 || dto.Leading != 4 {
		t.Fatalf("unexpected grid %+v", dto)
	}
	if last := dto.Days[28]; !last.HasRecord || last.Score != 5 {
		t.Fatalf("leap day should be recorded: %+v", last)
	}
	if _, err := svc.Calendar(context.Background(), "2024-13"); err == nil {
		t.Fatalf("expected error for bad month")
	}
}

func TestServiceImportExportRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(nil)

	res, err := svc.ImportJSON(ctx, `{"2024-03-01": {"score": 7, "text": "ok"}, "bad": {"score": 7}, "2024-03-02": {"score": 0}}`)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if res.Merged != 1 || len(res.Skipped) != 2 {
		t.Fatalf("unexpected import result %+v", res)
	}

	out, err := svc.ExportJSON(ctx)
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	if !strings.Contains(out, `"2024-03-01"`) || strings.Contains(out, "images") {
		t.Fatalf("unexpected export %s", out)
	}

	if _, err := svc.ImportJSON(ctx, "not json"); err == nil {
		t.Fatalf("expected malformed import to fail")
	}
}

func TestServiceWithoutDiary(t *testing.T) {
	var svc *Service
	if _, err := svc.Day(context.Background(), ""); !errors.Is(err, errNoService) {
		t.Fatalf("expected errNoService, got %v", err)
	}
}

func TestServiceTrendBounds(t *testing.T) {
	svc, _ := newTestService(nil)
	dto, err := svc.Trend(context.Background(), 0)
	if err != nil || dto.Days != 30 {
		t.Fatalf("zero days should default to 30: %+v, %v", dto, err)
	}
	for _, days := range []int{-1, timeutil.MaxDays + 1} {
		if _, err := svc.Trend(context.Background(), days); err == nil {
			t.Fatalf("expected an error for %d days", days)
		}
	}
}

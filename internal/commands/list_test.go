package commands

import (
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/whlan02/TimerForWork/internal/models"
)

type fakeSource struct {
	recs    []models.TimeRecord
	skipped int
}

func (f fakeSource) QueryRange(from, to time.Time) ([]models.TimeRecord, int, error) {
	return f.recs, f.skipped, nil
}

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	w.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return string(data)
}

func testDay(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2026, 8, 28, 0, 0, 0, 0, time.Local)
}

func TestPrintDay(t *testing.T) {
	day := testDay(t)
	src := fakeSource{recs: []models.TimeRecord{
		models.NewRecord(day.Add(9*time.Hour), day.Add(10*time.Hour+30*time.Minute), "morning review"),
	}}

	out := captureOutput(t, func() { printDay(day, src) })

	if !strings.Contains(out, "morning review") {
		t.Errorf("output missing note:\n%s", out)
	}
	if !strings.Contains(out, "90 min (01:30:00)") {
		t.Errorf("output missing duration:\n%s", out)
	}
	if !strings.Contains(out, "Total: 90 min") {
		t.Errorf("output missing total:\n%s", out)
	}
}

func TestPrintDayEmpty(t *testing.T) {
	out := captureOutput(t, func() { printDay(testDay(t), fakeSource{}) })

	if !strings.Contains(out, "No intervals logged") {
		t.Errorf("output missing empty message:\n%s", out)
	}
}

func TestPrintDayReportsSkipped(t *testing.T) {
	out := captureOutput(t, func() { printDay(testDay(t), fakeSource{skipped: 2}) })

	if !strings.Contains(out, "skipped 2 malformed row(s)") {
		t.Errorf("output missing skipped note:\n%s", out)
	}
}

func TestPrintWeek(t *testing.T) {
	day := testDay(t) // a Friday; its week starts Monday the 24th
	src := fakeSource{recs: []models.TimeRecord{
		models.NewRecord(day.Add(9*time.Hour), day.Add(10*time.Hour), "work"),
	}}

	out := captureOutput(t, func() { printWeek(day, false, src) })

	if !strings.Contains(out, "2026-08-24 ~ 2026-08-30") {
		t.Errorf("output missing week range:\n%s", out)
	}
	if !strings.Contains(out, "Total: 60 min (01:00:00)") {
		t.Errorf("output missing weekly total:\n%s", out)
	}
}

func TestPrintWeekWorkweekOnly(t *testing.T) {
	out := captureOutput(t, func() { printWeek(testDay(t), true, fakeSource{}) })

	if !strings.Contains(out, "2026-08-24 ~ 2026-08-28") {
		t.Errorf("workweek output should end on Friday:\n%s", out)
	}
	if strings.Contains(out, "Sat") || strings.Contains(out, "Sun") {
		t.Errorf("workweek output should not list the weekend:\n%s", out)
	}
}

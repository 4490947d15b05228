package aggregate

import (
	"testing"
	"time"

	"github.com/whlan02/TimerForWork/internal/models"
)

func ts(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02 15:04:05", value, time.Local)
	if err != nil {
		t.Fatalf("bad timestamp %q: %v", value, err)
	}
	return parsed
}

func day(t *testing.T, value string) time.Time {
	t.Helper()
	return ts(t, value+" 00:00:00")
}

func rec(t *testing.T, start, end string) models.TimeRecord {
	t.Helper()
	return models.NewRecord(ts(t, start), ts(t, end), "")
}

func TestMidnightSplit(t *testing.T) {
	records := []models.TimeRecord{
		rec(t, "2026-08-27 23:30:00", "2026-08-28 00:30:00"),
	}
	buckets, skipped := Aggregate(records, day(t, "2026-08-27"), day(t, "2026-08-28"))

	if skipped != 0 {
		t.Fatalf("skipped = %d, want 0", skipped)
	}
	if len(buckets) != 2 {
		t.Fatalf("len(buckets) = %d, want 2", len(buckets))
	}

	first, second := buckets[0], buckets[1]
	if first.TotalMinutes != 30 {
		t.Errorf("first day total = %d min, want 30", first.TotalMinutes)
	}
	if first.PeriodMinutes[Evening] != 30 {
		t.Errorf("first day evening = %d min, want 30", first.PeriodMinutes[Evening])
	}
	if second.TotalMinutes != 30 {
		t.Errorf("second day total = %d min, want 30", second.TotalMinutes)
	}
	if second.PeriodMinutes[Morning] != 30 {
		t.Errorf("second day morning = %d min, want 30", second.PeriodMinutes[Morning])
	}
}

func TestPeriodSplit(t *testing.T) {
	records := []models.TimeRecord{
		rec(t, "2026-08-28 11:00:00", "2026-08-28 13:00:00"),
	}
	buckets, skipped := Aggregate(records, day(t, "2026-08-28"), day(t, "2026-08-28"))

	if skipped != 0 {
		t.Fatalf("skipped = %d, want 0", skipped)
	}
	if len(buckets) != 1 {
		t.Fatalf("len(buckets) = %d, want 1", len(buckets))
	}

	b := buckets[0]
	if b.PeriodMinutes[Morning] != 60 {
		t.Errorf("morning = %d min, want 60", b.PeriodMinutes[Morning])
	}
	if b.PeriodMinutes[Afternoon] != 60 {
		t.Errorf("afternoon = %d min, want 60", b.PeriodMinutes[Afternoon])
	}
	if b.PeriodMinutes[Evening] != 0 {
		t.Errorf("evening = %d min, want 0", b.PeriodMinutes[Evening])
	}
	if b.TotalMinutes != 120 {
		t.Errorf("total = %d min, want 120", b.TotalMinutes)
	}
}

func TestEveningReachesMidnight(t *testing.T) {
	records := []models.TimeRecord{
		rec(t, "2026-08-28 22:00:00", "2026-08-29 00:00:00"),
	}
	buckets, _ := Aggregate(records, day(t, "2026-08-28"), day(t, "2026-08-28"))

	if got := buckets[0].PeriodMinutes[Evening]; got != 120 {
		t.Errorf("evening = %d min, want 120", got)
	}
}

func TestEmptyRangeZeroBuckets(t *testing.T) {
	from := day(t, "2026-08-24")
	to := day(t, "2026-08-30")
	buckets, skipped := Aggregate(nil, from, to)

	if skipped != 0 {
		t.Fatalf("skipped = %d, want 0", skipped)
	}
	if len(buckets) != 7 {
		t.Fatalf("len(buckets) = %d, want 7", len(buckets))
	}
	for i, b := range buckets {
		want := from.AddDate(0, 0, i)
		if !b.Date.Equal(want) {
			t.Errorf("buckets[%d].Date = %v, want %v", i, b.Date, want)
		}
		if b.TotalMinutes != 0 || b.TotalSeconds != 0 {
			t.Errorf("buckets[%d] not zero: %+v", i, b)
		}
	}
}

func TestInvalidRecordSkipped(t *testing.T) {
	records := []models.TimeRecord{
		{
			Start:       ts(t, "2026-08-28 10:00:00"),
			End:         ts(t, "2026-08-28 09:00:00"), // end before start
			DurationSec: 3600,
		},
		rec(t, "2026-08-28 14:00:00", "2026-08-28 15:00:00"),
	}
	buckets, skipped := Aggregate(records, day(t, "2026-08-28"), day(t, "2026-08-28"))

	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
	if got := buckets[0].TotalMinutes; got != 60 {
		t.Errorf("total = %d min, want 60 (only the valid record)", got)
	}
}

func TestRoundingAppliedOncePerTotal(t *testing.T) {
	// Two 30-second fragments in the same period sum to one minute.
	// Rounding per fragment would report two.
	records := []models.TimeRecord{
		rec(t, "2026-08-28 09:00:00", "2026-08-28 09:00:30"),
		rec(t, "2026-08-28 10:00:00", "2026-08-28 10:00:30"),
	}
	buckets, _ := Aggregate(records, day(t, "2026-08-28"), day(t, "2026-08-28"))

	if got := buckets[0].PeriodMinutes[Morning]; got != 1 {
		t.Errorf("morning = %d min, want 1", got)
	}
	if got := buckets[0].TotalMinutes; got != 1 {
		t.Errorf("total = %d min, want 1", got)
	}
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		name string
		end  string
		want int
	}{
		{"below half", "2026-08-28 09:01:29", 1},
		{"exactly half", "2026-08-28 09:01:30", 2},
		{"above half", "2026-08-28 09:01:31", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := []models.TimeRecord{rec(t, "2026-08-28 09:00:00", tt.end)}
			buckets, _ := Aggregate(records, day(t, "2026-08-28"), day(t, "2026-08-28"))
			if got := buckets[0].TotalMinutes; got != tt.want {
				t.Errorf("total = %d min, want %d", got, tt.want)
			}
		})
	}
}

func TestPausedRecordDistributedProportionally(t *testing.T) {
	// Two-hour wall-clock span with only one hour tracked: the tracked
	// hour is spread across the overlapped periods in proportion.
	records := []models.TimeRecord{
		models.NewRecordWithElapsed(
			ts(t, "2026-08-28 11:00:00"),
			ts(t, "2026-08-28 13:00:00"),
			time.Hour,
			"",
		),
	}
	buckets, _ := Aggregate(records, day(t, "2026-08-28"), day(t, "2026-08-28"))

	b := buckets[0]
	if b.TotalMinutes != 60 {
		t.Errorf("total = %d min, want 60", b.TotalMinutes)
	}
	if b.PeriodMinutes[Morning] != 30 {
		t.Errorf("morning = %d min, want 30", b.PeriodMinutes[Morning])
	}
	if b.PeriodMinutes[Afternoon] != 30 {
		t.Errorf("afternoon = %d min, want 30", b.PeriodMinutes[Afternoon])
	}
}

func TestReversedRangeNormalized(t *testing.T) {
	buckets, _ := Aggregate(nil, day(t, "2026-08-30"), day(t, "2026-08-24"))
	if len(buckets) != 7 {
		t.Fatalf("len(buckets) = %d, want 7", len(buckets))
	}
	if !buckets[0].Date.Equal(day(t, "2026-08-24")) {
		t.Errorf("first bucket = %v, want 2026-08-24", buckets[0].Date)
	}
}

func TestRecordOutsideRangeIgnored(t *testing.T) {
	records := []models.TimeRecord{
		rec(t, "2026-08-20 09:00:00", "2026-08-20 10:00:00"),
	}
	buckets, skipped := Aggregate(records, day(t, "2026-08-28"), day(t, "2026-08-28"))
	if skipped != 0 {
		t.Errorf("skipped = %d, want 0 (out of range is not malformed)", skipped)
	}
	if buckets[0].TotalMinutes != 0 {
		t.Errorf("total = %d, want 0", buckets[0].TotalMinutes)
	}
}

func TestForDay(t *testing.T) {
	spanning := rec(t, "2026-08-27 23:30:00", "2026-08-28 00:30:00")
	inside := rec(t, "2026-08-28 09:00:00", "2026-08-28 10:00:00")
	other := rec(t, "2026-08-25 09:00:00", "2026-08-25 10:00:00")
	records := []models.TimeRecord{spanning, inside, other}

	got := ForDay(records, day(t, "2026-08-28"))
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}

	got = ForDay(records, day(t, "2026-08-27"))
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1 (midnight spanner)", len(got))
	}
}

func TestWeekOf(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"friday", "2026-08-28", "2026-08-24"},
		{"monday", "2026-08-24", "2026-08-24"},
		{"sunday", "2026-08-30", "2026-08-24"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekOf(day(t, tt.in)); !got.Equal(day(t, tt.want)) {
				t.Errorf("WeekOf(%s) = %v, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestMonthOf(t *testing.T) {
	if got := MonthOf(day(t, "2026-08-28")); !got.Equal(day(t, "2026-08-01")) {
		t.Errorf("MonthOf = %v, want 2026-08-01", got)
	}
}

package models

import (
	"testing"
	"time"
)

var base = time.Date(2026, 8, 28, 9, 0, 0, 0, time.Local)

func TestNewRecordTruncatesSubSeconds(t *testing.T) {
	rec := NewRecord(base, base.Add(12*time.Second+900*time.Millisecond), "note")

	if rec.DurationSec != 12 {
		t.Errorf("DurationSec = %d, want 12", rec.DurationSec)
	}
	if rec.Note != "note" {
		t.Errorf("Note = %q, want %q", rec.Note, "note")
	}
}

func TestNewRecordNegativeSpanClamped(t *testing.T) {
	rec := NewRecord(base, base.Add(-time.Minute), "")
	if rec.DurationSec != 0 {
		t.Errorf("DurationSec = %d, want 0", rec.DurationSec)
	}
}

func TestNewRecordWithElapsed(t *testing.T) {
	// A paused session: one hour tracked inside a two-hour span.
	rec := NewRecordWithElapsed(base, base.Add(2*time.Hour), time.Hour, "")
	if rec.DurationSec != 3600 {
		t.Errorf("DurationSec = %d, want 3600", rec.DurationSec)
	}

	rec = NewRecordWithElapsed(base, base.Add(time.Hour), -time.Second, "")
	if rec.DurationSec != 0 {
		t.Errorf("DurationSec = %d, want 0 for negative elapsed", rec.DurationSec)
	}
}

func TestDurationMin(t *testing.T) {
	tests := []struct {
		name string
		sec  int
		want int
	}{
		{"zero", 0, 0},
		{"below half", 29, 0},
		{"exactly half", 30, 1},
		{"above half", 89, 1},
		{"round up", 90, 2},
		{"whole hours", 5400, 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := TimeRecord{DurationSec: tt.sec}
			if got := rec.DurationMin(); got != tt.want {
				t.Errorf("DurationMin(%d) = %d, want %d", tt.sec, got, tt.want)
			}
		})
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		name string
		rec  TimeRecord
		want bool
	}{
		{"ok", NewRecord(base, base.Add(time.Hour), ""), true},
		{"zero duration ok", NewRecord(base, base, ""), true},
		{"end before start", TimeRecord{Start: base, End: base.Add(-time.Second), DurationSec: 1}, false},
		{"zero start", TimeRecord{End: base, DurationSec: 1}, false},
		{"zero end", TimeRecord{Start: base, DurationSec: 1}, false},
		{"negative duration", TimeRecord{Start: base, End: base.Add(time.Hour), DurationSec: -1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDay(t *testing.T) {
	rec := NewRecord(base, base.Add(time.Hour), "")
	want := time.Date(2026, 8, 28, 0, 0, 0, 0, time.Local)
	if !rec.Day().Equal(want) {
		t.Errorf("Day() = %v, want %v", rec.Day(), want)
	}
}

package models

import (
	"time"
)

// TimeRecord is one completed work interval. Records are append-only:
// once saved they are never modified by the application.
type TimeRecord struct {
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	DurationSec int       `json:"duration_sec"`
	Note        string    `json:"note"`
}

// NewRecord builds a record whose duration is the wall-clock span between
// start and end, truncated to whole seconds.
func NewRecord(start, end time.Time, note string) TimeRecord {
	dur := end.Sub(start)
	if dur < 0 {
		dur = 0
	}
	return TimeRecord{
		Start:       start,
		End:         end,
		DurationSec: int(dur / time.Second),
		Note:        note,
	}
}

// NewRecordWithElapsed builds a record from a measured elapsed duration,
// which is shorter than the wall-clock span when the timer was paused.
// Sub-second elapsed time is truncated downward, never rounded up.
func NewRecordWithElapsed(start, end time.Time, elapsed time.Duration, note string) TimeRecord {
	if elapsed < 0 {
		elapsed = 0
	}
	return TimeRecord{
		Start:       start,
		End:         end,
		DurationSec: int(elapsed / time.Second),
		Note:        note,
	}
}

// Valid reports whether the record can be aggregated. Records read back
// from storage may fail this after external file edits.
func (r TimeRecord) Valid() bool {
	if r.Start.IsZero() || r.End.IsZero() {
		return false
	}
	if r.End.Before(r.Start) {
		return false
	}
	return r.DurationSec >= 0
}

// DurationMin returns the duration in whole minutes, round-half-up.
func (r TimeRecord) DurationMin() int {
	return (r.DurationSec + 30) / 60
}

// Day returns local midnight of the day the record started on.
func (r TimeRecord) Day() time.Time {
	y, m, d := r.Start.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, r.Start.Location())
}

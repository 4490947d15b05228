package aggregate

import (
	"time"

	"github.com/whlan02/TimerForWork/internal/models"
)

// Period is one of the fixed clock-hour bands used for heatmap coloring.
type Period int

const (
	Morning   Period = iota // 00:00-12:00
	Afternoon               // 12:00-18:00
	Evening                 // 18:00-24:00

	periodCount = 3
)

// periodBounds holds the start and end hour of each period.
var periodBounds = [periodCount][2]int{
	{0, 12},
	{12, 18},
	{18, 24},
}

func (p Period) String() string {
	switch p {
	case Morning:
		return "Morning"
	case Afternoon:
		return "Afternoon"
	case Evening:
		return "Evening"
	default:
		return "unknown"
	}
}

// DayBucket holds aggregated totals for one calendar day. Minute totals
// are rounded half-up once, after all fragments are summed; second totals
// are exact and drive the heatmap color scale.
type DayBucket struct {
	Date          time.Time // local midnight
	TotalMinutes  int
	PeriodMinutes [periodCount]int
	TotalSeconds  int
	PeriodSeconds [periodCount]int
}

// Aggregate buckets records by calendar day over [from, to], inclusive of
// both dates. Records spanning local midnight are split at day boundaries,
// and each day fragment is split again at period boundaries, clipping the
// interval to each window. A record whose tracked duration is shorter than
// its wall-clock span (pauses) is distributed proportionally across the
// windows it overlaps.
//
// Invalid records (end before start, negative duration) are skipped and
// counted, never fatal. The result always has one bucket per day in range,
// zero-valued when nothing was logged.
func Aggregate(records []models.TimeRecord, from, to time.Time) ([]DayBucket, int) {
	from = midnight(from)
	to = midnight(to)
	if to.Before(from) {
		from, to = to, from
	}

	type acc struct {
		total   time.Duration
		periods [periodCount]time.Duration
	}

	var days []time.Time
	index := make(map[string]int)
	for d := from; !d.After(to); d = nextDay(d) {
		index[dayKey(d)] = len(days)
		days = append(days, d)
	}
	accs := make([]acc, len(days))

	skipped := 0
	for _, rec := range records {
		if !rec.Valid() {
			skipped++
			continue
		}
		span := rec.End.Sub(rec.Start)
		tracked := time.Duration(rec.DurationSec) * time.Second
		if span <= 0 || tracked <= 0 {
			continue
		}
		// Scale clipped fragments so the bucketed time sums to the
		// tracked duration rather than the wall-clock span.
		ratio := float64(tracked) / float64(span)

		for d := midnight(rec.Start); d.Before(rec.End); d = nextDay(d) {
			i, ok := index[dayKey(d)]
			if !ok {
				continue
			}
			dayEnd := nextDay(d)
			frag := overlap(rec.Start, rec.End, d, dayEnd)
			if frag <= 0 {
				continue
			}
			accs[i].total += scale(frag, ratio)
			for p := 0; p < periodCount; p++ {
				pStart := hourOf(d, periodBounds[p][0])
				pEnd := dayEnd
				if periodBounds[p][1] < 24 {
					pEnd = hourOf(d, periodBounds[p][1])
				}
				pFrag := overlap(rec.Start, rec.End, pStart, pEnd)
				if pFrag > 0 {
					accs[i].periods[p] += scale(pFrag, ratio)
				}
			}
		}
	}

	buckets := make([]DayBucket, len(days))
	for i, d := range days {
		b := DayBucket{Date: d}
		b.TotalMinutes = roundMinutes(accs[i].total)
		b.TotalSeconds = int(accs[i].total / time.Second)
		for p := 0; p < periodCount; p++ {
			b.PeriodMinutes[p] = roundMinutes(accs[i].periods[p])
			b.PeriodSeconds[p] = int(accs[i].periods[p] / time.Second)
		}
		buckets[i] = b
	}
	return buckets, skipped
}

// ForDay returns the records overlapping the given calendar day.
func ForDay(records []models.TimeRecord, day time.Time) []models.TimeRecord {
	start := midnight(day)
	end := nextDay(start)
	var out []models.TimeRecord
	for _, rec := range records {
		if !rec.Valid() {
			continue
		}
		if rec.End.After(start) && rec.Start.Before(end) {
			out = append(out, rec)
		}
	}
	return out
}

// WeekOf returns the Monday of the week containing d, at local midnight.
func WeekOf(d time.Time) time.Time {
	d = midnight(d)
	offset := (int(d.Weekday()) + 6) % 7 // Monday = 0
	return d.AddDate(0, 0, -offset)
}

// MonthOf returns the first day of d's month, at local midnight.
func MonthOf(d time.Time) time.Time {
	y, m, _ := d.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, d.Location())
}

// roundMinutes converts a duration to whole minutes, round-half-up.
// Applied once per total so sub-fragment rounding cannot compound.
func roundMinutes(d time.Duration) int {
	return int((d + 30*time.Second) / time.Minute)
}

func scale(d time.Duration, ratio float64) time.Duration {
	if ratio >= 1 {
		return d
	}
	return time.Duration(float64(d) * ratio)
}

func overlap(aStart, aEnd, bStart, bEnd time.Time) time.Duration {
	start := aStart
	if bStart.After(start) {
		start = bStart
	}
	end := aEnd
	if bEnd.Before(end) {
		end = bEnd
	}
	if !end.After(start) {
		return 0
	}
	return end.Sub(start)
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// nextDay steps using calendar arithmetic so DST days keep correct bounds.
func nextDay(d time.Time) time.Time {
	y, m, dd := d.Date()
	return time.Date(y, m, dd+1, 0, 0, 0, 0, d.Location())
}

func hourOf(day time.Time, hour int) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, hour, 0, 0, 0, day.Location())
}

func dayKey(d time.Time) string {
	return d.Format("2006-01-02")
}

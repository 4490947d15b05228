package store

import (
	"fmt"
	"time"

	"github.com/whlan02/TimerForWork/internal/config"
	"github.com/whlan02/TimerForWork/internal/models"
)

// Store persists completed time records. Records are append-only; rows
// are removed only by editing the backing file externally.
//
// QueryRange returns every record overlapping the given dates, inclusive
// of both, ordered by start time. Rows that cannot be parsed are dropped
// and counted in skipped rather than failing the read.
type Store interface {
	Append(rec models.TimeRecord) error
	QueryRange(from, to time.Time) (recs []models.TimeRecord, skipped int, err error)
	Close() error
}

// Open creates the store backend selected by the configuration,
// creating the data file if it does not exist yet.
func Open(cfg config.Config) (Store, error) {
	switch cfg.Store {
	case config.StoreExcel:
		return OpenExcel(cfg.DataFile)
	case config.StoreSQLite:
		return OpenSQLite(cfg.DataFile)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store)
	}
}

// rangeBounds widens [from, to] to full local days for overlap queries.
func rangeBounds(from, to time.Time) (time.Time, time.Time) {
	y, m, d := from.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, from.Location())
	y, m, d = to.Date()
	end := time.Date(y, m, d+1, 0, 0, 0, 0, to.Location())
	if end.Before(start) {
		start, end = end.AddDate(0, 0, -1), start.AddDate(0, 0, 1)
	}
	return start, end
}

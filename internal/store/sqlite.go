package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/whlan02/TimerForWork/internal/models"
)

// recordRow is the database shape of a TimeRecord.
type recordRow struct {
	ID          uint      `gorm:"primarykey"`
	StartedAt   time.Time `gorm:"not null;index"`
	EndedAt     time.Time `gorm:"not null"`
	DurationSec int       `gorm:"not null"`
	Note        string
}

func (recordRow) TableName() string {
	return "records"
}

// SQLiteStore is the database-backed alternative to the spreadsheet file,
// for users who prefer a single queryable .db over an editable sheet.
type SQLiteStore struct {
	db *gorm.DB
}

// OpenSQLite opens the database at path and runs migrations.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.AutoMigrate(&recordRow{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Append inserts one record.
func (s *SQLiteStore) Append(rec models.TimeRecord) error {
	row := recordRow{
		StartedAt:   rec.Start,
		EndedAt:     rec.End,
		DurationSec: rec.DurationSec,
		Note:        rec.Note,
	}
	if err := s.db.Create(&row).Error; err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}
	return nil
}

// QueryRange returns records overlapping the range, ordered by start time.
// Rows edited into an invalid shape (negative duration) are dropped and
// counted, matching the spreadsheet backend.
func (s *SQLiteStore) QueryRange(from, to time.Time) ([]models.TimeRecord, int, error) {
	start, end := rangeBounds(from, to)

	var rows []recordRow
	err := s.db.Where("ended_at > ? AND started_at < ?", start, end).
		Order("started_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	var recs []models.TimeRecord
	skipped := 0
	for _, row := range rows {
		if row.DurationSec < 0 || row.EndedAt.Before(row.StartedAt) {
			skipped++
			continue
		}
		recs = append(recs, models.TimeRecord{
			Start:       row.StartedAt,
			End:         row.EndedAt,
			DurationSec: row.DurationSec,
			Note:        row.Note,
		})
	}
	return recs, skipped, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

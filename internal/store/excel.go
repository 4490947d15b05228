package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/whlan02/TimerForWork/internal/models"
)

const (
	sheetName  = "records"
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

var header = []interface{}{"date", "start_time", "end_time", "duration_sec", "duration_min", "note"}

// ExcelStore keeps records in a single-sheet .xlsx workbook with a header
// row, so the log stays readable and editable in any spreadsheet program.
// The workbook is opened per operation; this is a single-process tool and
// exclusive access is assumed.
type ExcelStore struct {
	path string
}

// OpenExcel opens the workbook at path, creating it with the records
// sheet and header row if absent.
func OpenExcel(path string) (*ExcelStore, error) {
	s := &ExcelStore{path: path}
	if err := s.ensureFile(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *ExcelStore) ensureFile() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}
	if err := f.SaveAs(s.path); err != nil {
		return fmt.Errorf("failed to create %s: %w", s.path, err)
	}
	return nil
}

// Append writes one record as a new row. A failed save (file locked or
// unwritable) returns an error without touching the caller's session.
func (s *ExcelStore) Append(rec models.TimeRecord) error {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to open records file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		// Sheet removed by an external edit; recreate it.
		if _, err := f.NewSheet(sheetName); err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
			return err
		}
		rows = [][]string{nil}
	}

	cell, err := excelize.CoordinatesToCellName(1, len(rows)+1)
	if err != nil {
		return err
	}
	row := []interface{}{
		rec.Start.Format(dateLayout),
		rec.Start.Format(timeLayout),
		rec.End.Format(timeLayout),
		rec.DurationSec,
		rec.DurationMin(),
		rec.Note,
	}
	if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
		return err
	}
	if err := f.Save(); err != nil {
		return fmt.Errorf("failed to save records file: %w", err)
	}
	return nil
}

// QueryRange reads every row and returns the records overlapping the
// range. Rows that fail to parse are counted and dropped.
func (s *ExcelStore) QueryRange(from, to time.Time) ([]models.TimeRecord, int, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open records file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read records sheet: %w", err)
	}

	start, end := rangeBounds(from, to)
	var recs []models.TimeRecord
	skipped := 0
	for i, row := range rows {
		if i == 0 || isEmptyRow(row) {
			continue
		}
		rec, err := parseRow(row)
		if err != nil {
			skipped++
			continue
		}
		if rec.End.After(start) && rec.Start.Before(end) {
			recs = append(recs, rec)
		}
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].Start.Before(recs[j].Start) })
	return recs, skipped, nil
}

// Close is a no-op; the workbook is not held open between operations.
func (s *ExcelStore) Close() error {
	return nil
}

// parseRow rebuilds a record from the stored columns. The sheet stores one
// date plus two times; an end time earlier than the start time means the
// interval crossed midnight into the next day.
func parseRow(row []string) (models.TimeRecord, error) {
	if len(row) < 3 {
		return models.TimeRecord{}, fmt.Errorf("row has %d columns, want at least 3", len(row))
	}
	day, err := time.ParseInLocation(dateLayout, row[0], time.Local)
	if err != nil {
		return models.TimeRecord{}, fmt.Errorf("bad date %q: %w", row[0], err)
	}
	st, err := time.ParseInLocation(timeLayout, row[1], time.Local)
	if err != nil {
		return models.TimeRecord{}, fmt.Errorf("bad start time %q: %w", row[1], err)
	}
	et, err := time.ParseInLocation(timeLayout, row[2], time.Local)
	if err != nil {
		return models.TimeRecord{}, fmt.Errorf("bad end time %q: %w", row[2], err)
	}

	y, m, d := day.Date()
	startAt := time.Date(y, m, d, st.Hour(), st.Minute(), st.Second(), 0, time.Local)
	endAt := time.Date(y, m, d, et.Hour(), et.Minute(), et.Second(), 0, time.Local)
	if endAt.Before(startAt) {
		endAt = endAt.AddDate(0, 0, 1)
	}

	durSec := int(endAt.Sub(startAt) / time.Second)
	if len(row) > 3 && row[3] != "" {
		durSec, err = strconv.Atoi(row[3])
		if err != nil {
			return models.TimeRecord{}, fmt.Errorf("bad duration %q: %w", row[3], err)
		}
	}
	if durSec < 0 {
		return models.TimeRecord{}, fmt.Errorf("negative duration %d", durSec)
	}

	note := ""
	if len(row) > 5 {
		note = row[5]
	}
	return models.TimeRecord{Start: startAt, End: endAt, DurationSec: durSec, Note: note}, nil
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}

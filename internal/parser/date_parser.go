package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParseDay parses the date argument of the ls and stats commands.
// Supported formats:
// - "" or "today"
// - "yesterday"
// - yyyy-mm-dd (e.g., "2026-08-28")
// - dd/mm/yyyy (e.g., "28/08/2026")
// - X days ago (e.g., "3 days ago", "1 day ago")
// Returns local midnight of the requested day.
func ParseDay(input string) (time.Time, error) {
	input = strings.ToLower(strings.TrimSpace(input))

	switch input {
	case "", "today":
		return today(), nil
	case "yesterday":
		return today().AddDate(0, 0, -1), nil
	}

	if day, err := parseISODate(input); err == nil {
		return day, nil
	}
	if day, err := parseSlashDate(input); err == nil {
		return day, nil
	}
	if day, err := parseDaysAgo(input); err == nil {
		return day, nil
	}

	return time.Time{}, fmt.Errorf("invalid date %q. Use: yyyy-mm-dd, dd/mm/yyyy, today, yesterday, or X days ago", input)
}

// parseISODate parses yyyy-mm-dd format
func parseISODate(input string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", input, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format")
	}
	return t, nil
}

// parseSlashDate parses dd/mm/yyyy format
func parseSlashDate(input string) (time.Time, error) {
	dateRegex := regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	matches := dateRegex.FindStringSubmatch(input)

	if len(matches) != 4 {
		return time.Time{}, fmt.Errorf("invalid date format")
	}

	day, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	year, _ := strconv.Atoi(matches[3])

	if day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("day must be between 1 and 31")
	}
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("month must be between 1 and 12")
	}

	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)

	// Check if date is valid (handles leap years, etc.)
	if d.Day() != day || d.Month() != time.Month(month) || d.Year() != year {
		return time.Time{}, fmt.Errorf("invalid date")
	}

	return d, nil
}

// parseDaysAgo parses relative formats like "3 days ago"
func parseDaysAgo(input string) (time.Time, error) {
	relativeRegex := regexp.MustCompile(`^(\d+)\s+(day|days)\s+ago$`)
	matches := relativeRegex.FindStringSubmatch(input)

	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("invalid relative date format")
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid number")
	}
	if amount < 0 || amount > 365 {
		return time.Time{}, fmt.Errorf("days must be between 0 and 365")
	}

	return today().AddDate(0, 0, -amount), nil
}

// FormatDay formats a day for display, with a relative hint for nearby days.
func FormatDay(day time.Time) string {
	dateStr := day.Format("Mon, 2006-01-02")

	daysDiff := int(today().Sub(day).Hours() / 24)
	if daysDiff == 0 {
		return fmt.Sprintf("%s (today)", dateStr)
	} else if daysDiff == 1 {
		return fmt.Sprintf("%s (yesterday)", dateStr)
	}
	return dateStr
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

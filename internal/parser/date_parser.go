package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParseDate parses the date formats accepted by --date flags.
// Supported formats:
// - "today", "yesterday", "tomorrow"
// - yyyy-mm-dd (e.g., "2026-08-28")
// - dd/mm/yyyy (e.g., "28/08/2026")
// - relative offsets (e.g., "-3 days", "+1 week")
func ParseDate(input string) (time.Time, error) {
	input = strings.TrimSpace(strings.ToLower(input))

	switch input {
	case "", "today":
		return time.Now(), nil
	case "yesterday":
		return time.Now().AddDate(0, 0, -1), nil
	case "tomorrow":
		return time.Now().AddDate(0, 0, 1), nil
	}

	if t, err := time.ParseInLocation("2006-01-02", input, time.Local); err == nil {
		return t, nil
	}

	if t, err := parseSlashDate(input); err == nil {
		return t, nil
	}

	if t, err := parseRelativeDate(input); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("invalid date format. Use: yyyy-mm-dd, dd/mm/yyyy, today, yesterday, tomorrow, or ±X days/weeks")
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

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)

	// Check if date is valid (handles leap years, etc.)
	if date.Day() != day || date.Month() != time.Month(month) || date.Year() != year {
		return time.Time{}, fmt.Errorf("invalid date")
	}

	return date, nil
}

// parseRelativeDate parses "±X days" / "±X weeks" offsets from today
func parseRelativeDate(input string) (time.Time, error) {
	relRegex := regexp.MustCompile(`^([+-]?)(\d+)\s*(day|days|week|weeks|d|w)$`)
	matches := relRegex.FindStringSubmatch(input)
	if len(matches) != 4 {
		return time.Time{}, fmt.Errorf("invalid relative date")
	}

	amount, err := strconv.Atoi(matches[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid amount")
	}
	if matches[1] == "-" {
		amount = -amount
	}

	switch matches[3] {
	case "week", "weeks", "w":
		return time.Now().AddDate(0, 0, amount*7), nil
	default:
		return time.Now().AddDate(0, 0, amount), nil
	}
}

package schedule

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Weekday is a locale-independent weekday index, Monday-first (0..6).
// It is computed with calendar arithmetic only, never by formatting a date
// into a day name and parsing it back.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

var weekdayShortNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func (d Weekday) IsValid() bool {
	return d >= Monday && d <= Sunday
}

func (d Weekday) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// Short returns the three-letter abbreviation used in list output.
func (d Weekday) Short() string {
	if !d.IsValid() {
		return "???"
	}
	return weekdayShortNames[d]
}

// FromTime maps a timestamp to its weekday. time.Weekday is Sunday-first,
// so shift it to the Monday-first convention.
func FromTime(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % 7)
}

// ParseWeekday accepts full names, three-letter abbreviations, and the
// digits 0-6. Matching is case insensitive.
func ParseWeekday(input string) (Weekday, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	if s == "" {
		return 0, &ResolutionError{Token: input}
	}
	if n, err := strconv.Atoi(s); err == nil {
		d := Weekday(n)
		if !d.IsValid() {
			return 0, &ResolutionError{Token: input}
		}
		return d, nil
	}
	for i := range weekdayNames {
		if s == strings.ToLower(weekdayNames[i]) || s == strings.ToLower(weekdayShortNames[i]) {
			return Weekday(i), nil
		}
	}
	return 0, &ResolutionError{Token: input}
}

// ResolutionError reports a weekday token that could not be resolved into a
// Weekday. Trackers whose schedule fails to resolve are never considered
// active; callers must not treat this as fatal.
type ResolutionError struct {
	Token string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve weekday from %q", e.Token)
}

// Schedule is the set of weekdays a tracker is active on, kept sorted and
// de-duplicated. It round-trips through the database as a comma-separated
// digit string (e.g. "0,2,4").
type Schedule []Weekday

// NewSchedule builds a normalized schedule from arbitrary weekday values.
func NewSchedule(days ...Weekday) (Schedule, error) {
	seen := [7]bool{}
	for _, d := range days {
		if !d.IsValid() {
			return nil, &ResolutionError{Token: strconv.Itoa(int(d))}
		}
		seen[d] = true
	}
	var s Schedule
	for i := Monday; i <= Sunday; i++ {
		if seen[i] {
			s = append(s, i)
		}
	}
	return s, nil
}

// ParseSchedule parses a comma-separated list of weekday tokens.
func ParseSchedule(input string) (Schedule, error) {
	var days []Weekday
	for _, tok := range strings.Split(input, ",") {
		if strings.TrimSpace(tok) == "" {
			continue
		}
		d, err := ParseWeekday(tok)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return NewSchedule(days...)
}

// Contains reports whether the schedule includes the given weekday.
func (s Schedule) Contains(d Weekday) bool {
	for _, have := range s {
		if have == d {
			return true
		}
	}
	return false
}

// ActiveOn reports whether a tracker with this schedule is active on the
// calendar day of t. The result depends only on the schedule and the
// weekday of t.
func (s Schedule) ActiveOn(t time.Time) bool {
	return s.Contains(FromTime(t))
}

// Describe renders the schedule for humans: "Every day" for a full week,
// "Weekdays" for Mon-Fri, otherwise the abbreviated day list.
func (s Schedule) Describe() string {
	switch {
	case len(s) == 7:
		return "Every day"
	case len(s) == 5 && !s.Contains(Saturday) && !s.Contains(Sunday):
		return "Weekdays"
	case len(s) == 0:
		return "Never"
	}
	parts := make([]string, 0, len(s))
	for _, d := range s {
		parts = append(parts, d.Short())
	}
	return strings.Join(parts, ", ")
}

// Value implements driver.Valuer for the GORM column.
func (s Schedule) Value() (driver.Value, error) {
	parts := make([]string, 0, len(s))
	for _, d := range s {
		if !d.IsValid() {
			return nil, &ResolutionError{Token: strconv.Itoa(int(d))}
		}
		parts = append(parts, strconv.Itoa(int(d)))
	}
	return strings.Join(parts, ","), nil
}

// Scan implements sql.Scanner. A malformed stored value yields a
// ResolutionError rather than a panic.
func (s *Schedule) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("unsupported schedule column type %T", value)
	}
	if raw == "" {
		*s = nil
		return nil
	}
	parsed, err := ParseSchedule(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

package schedule

import (
	"errors"
	"testing"
	"time"
)

func TestFromTimeKnownDates(t *testing.T) {
	tests := []struct {
		date string
		want Weekday
	}{
		{"2024-01-01", Monday},
		{"2024-01-02", Tuesday},
		{"2024-01-03", Wednesday},
		{"2024-01-06", Saturday},
		{"2024-01-07", Sunday},
		{"2024-02-29", Thursday}, // leap day
		{"2026-08-28", Friday},
	}
	for _, tt := range tests {
		date, err := time.Parse("2006-01-02", tt.date)
		if err != nil {
			t.Fatalf("parse %s: %v", tt.date, err)
		}
		if got := FromTime(date); got != tt.want {
			t.Errorf("FromTime(%s)=%v, want %v", tt.date, got, tt.want)
		}
	}
}

func TestFromTimeIgnoresTimeOfDay(t *testing.T) {
	base := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	late := time.Date(2024, 1, 3, 23, 59, 59, 0, time.UTC)
	if FromTime(base) != FromTime(late) {
		t.Fatalf("same calendar day mapped to different weekdays")
	}
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		input   string
		want    Weekday
		wantErr bool
	}{
		{"mon", Monday, false},
		{"Monday", Monday, false},
		{"SUN", Sunday, false},
		{"0", Monday, false},
		{"6", Sunday, false},
		{"7", 0, true},
		{"-1", 0, true},
		{"", 0, true},
		{"someday", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseWeekday(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseWeekday(%q) expected error", tt.input)
			}
			var resErr *ResolutionError
			if err != nil && !errors.As(err, &resErr) {
				t.Errorf("ParseWeekday(%q) error type %T, want *ResolutionError", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseWeekday(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseWeekday(%q)=%v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNewScheduleSortsAndDeduplicates(t *testing.T) {
	s, err := NewSchedule(Friday, Monday, Friday, Wednesday)
	if err != nil {
		t.Fatalf("NewSchedule: %v", err)
	}
	want := Schedule{Monday, Wednesday, Friday}
	if len(s) != len(want) {
		t.Fatalf("schedule=%v, want %v", s, want)
	}
	for i := range want {
		if s[i] != want[i] {
			t.Fatalf("schedule=%v, want %v", s, want)
		}
	}
}

func TestScheduleRoundTrip(t *testing.T) {
	s, err := ParseSchedule("mon,wed,fri")
	if err != nil {
		t.Fatalf("ParseSchedule: %v", err)
	}

	value, err := s.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if value != "0,2,4" {
		t.Fatalf("Value()=%q, want %q", value, "0,2,4")
	}

	var back Schedule
	if err := back.Scan(value); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if !back.Contains(Monday) || !back.Contains(Wednesday) || !back.Contains(Friday) || back.Contains(Tuesday) {
		t.Fatalf("round-tripped schedule=%v", back)
	}
}

func TestScheduleScanBadToken(t *testing.T) {
	var s Schedule
	err := s.Scan("0,nonsense,4")
	if err == nil {
		t.Fatal("expected error for malformed schedule column")
	}
	var resErr *ResolutionError
	if !errors.As(err, &resErr) {
		t.Fatalf("error type %T, want *ResolutionError", err)
	}
}

func TestActiveOnDependsOnlyOnWeekday(t *testing.T) {
	s, _ := NewSchedule(Wednesday)

	wednesday := time.Date(2024, 1, 3, 15, 30, 0, 0, time.UTC)
	tuesday := time.Date(2024, 1, 2, 15, 30, 0, 0, time.UTC)
	nextWednesday := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)

	if !s.ActiveOn(wednesday) {
		t.Error("expected active on Wednesday")
	}
	if s.ActiveOn(tuesday) {
		t.Error("did not expect active on Tuesday")
	}
	if !s.ActiveOn(nextWednesday) {
		t.Error("expected active on the following Wednesday")
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		days string
		want string
	}{
		{"mon,tue,wed,thu,fri,sat,sun", "Every day"},
		{"mon,tue,wed,thu,fri", "Weekdays"},
		{"mon,wed,fri", "Mon, Wed, Fri"},
		{"sun", "Sun"},
	}
	for _, tt := range tests {
		s, err := ParseSchedule(tt.days)
		if err != nil {
			t.Fatalf("ParseSchedule(%q): %v", tt.days, err)
		}
		if got := s.Describe(); got != tt.want {
			t.Errorf("Describe(%q)=%q, want %q", tt.days, got, tt.want)
		}
	}
}

func TestDayOfNormalizesToMidnightUTC(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	ts := time.Date(2024, 6, 15, 18, 45, 12, 0, loc)

	day := DayOf(ts)
	if day.Hour() != 0 || day.Minute() != 0 || day.Second() != 0 {
		t.Fatalf("DayOf not midnight: %v", day)
	}
	if day.Location() != time.UTC {
		t.Fatalf("DayOf not UTC: %v", day.Location())
	}
	if DayKey(ts) != "2024-06-15" {
		t.Fatalf("DayKey=%q", DayKey(ts))
	}
	if !SameDay(ts, time.Date(2024, 6, 15, 1, 0, 0, 0, loc)) {
		t.Fatal("SameDay should hold within a calendar day")
	}
}

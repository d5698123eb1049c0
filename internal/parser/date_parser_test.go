package parser

import (
	"testing"
	"time"
)

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func TestParseDateKeywords(t *testing.T) {
	now := time.Now()

	tests := []struct {
		input string
		want  time.Time
	}{
		{"today", now},
		{"", now},
		{"TODAY", now},
		{"yesterday", now.AddDate(0, 0, -1)},
		{"tomorrow", now.AddDate(0, 0, 1)},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.input)
		if err != nil {
			t.Errorf("ParseDate(%q): %v", tt.input, err)
			continue
		}
		if !sameDay(got, tt.want) {
			t.Errorf("ParseDate(%q)=%v, want day of %v", tt.input, got, tt.want)
		}
	}
}

func TestParseDateAbsolute(t *testing.T) {
	tests := []struct {
		input string
		year  int
		month time.Month
		day   int
	}{
		{"2026-08-28", 2026, time.August, 28},
		{"28/08/2026", 2026, time.August, 28},
		{"1/2/2026", 2026, time.February, 1},
		{"29/02/2024", 2024, time.February, 29},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.input)
		if err != nil {
			t.Errorf("ParseDate(%q): %v", tt.input, err)
			continue
		}
		if got.Year() != tt.year || got.Month() != tt.month || got.Day() != tt.day {
			t.Errorf("ParseDate(%q)=%v, want %04d-%02d-%02d", tt.input, got, tt.year, tt.month, tt.day)
		}
	}
}

func TestParseDateRelative(t *testing.T) {
	tests := []struct {
		input  string
		offset int
	}{
		{"-3 days", -3},
		{"+1 week", 7},
		{"2 days", 2},
		{"-1w", -7},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.input)
		if err != nil {
			t.Errorf("ParseDate(%q): %v", tt.input, err)
			continue
		}
		want := time.Now().AddDate(0, 0, tt.offset)
		if !sameDay(got, want) {
			t.Errorf("ParseDate(%q)=%v, want day of %v", tt.input, got, want)
		}
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, input := range []string{"soon", "31/02/2024", "2024-13-01", "three days"} {
		if _, err := ParseDate(input); err == nil {
			t.Errorf("ParseDate(%q) expected error", input)
		}
	}
}

package commands

import (
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{"short ascii", "Run", 10, "Run"},
		{"exact fit", "1234567890", 10, "1234567890"},
		{"long ascii", "a very long tracker name", 10, "a very ..."},
		{"multi-byte kept whole", "日本語のトラッカーの名前です", 10, "日本語のトラッ..."},
		{"emoji name", "🏃🏃🏃🏃🏃🏃🏃🏃🏃🏃🏃🏃", 10, "🏃🏃🏃🏃🏃🏃🏃..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.input, tt.max)
			if got != tt.want {
				t.Errorf("truncate(%q, %d)=%q, want %q", tt.input, tt.max, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncate(%q, %d) produced invalid UTF-8", tt.input, tt.max)
			}
		})
	}
}

func TestPluralDays(t *testing.T) {
	if got := pluralDays(1); got != "1 day" {
		t.Errorf("pluralDays(1)=%q", got)
	}
	if got := pluralDays(0); got != "0 days" {
		t.Errorf("pluralDays(0)=%q", got)
	}
	if got := pluralDays(12); got != "12 days" {
		t.Errorf("pluralDays(12)=%q", got)
	}
}

package parser

import (
	"testing"

	"habitrack/internal/schedule"
)

func TestParseTitleFullSyntax(t *testing.T) {
	result := ParseTitle("Morning Run @Health days:mon,wed,fri emoji:🏃 color:#33cf69")

	if result.Name != "Morning Run" {
		t.Errorf("Name=%q, want %q", result.Name, "Morning Run")
	}
	if result.Category != "Health" {
		t.Errorf("Category=%q, want %q", result.Category, "Health")
	}
	if result.Emoji != "🏃" {
		t.Errorf("Emoji=%q, want 🏃", result.Emoji)
	}
	if result.Color != "#33CF69" {
		t.Errorf("Color=%q, want uppercased #33CF69", result.Color)
	}
	if len(result.Days) != 3 || !result.Days.Contains(schedule.Wednesday) {
		t.Errorf("Days=%v, want mon,wed,fri", result.Days)
	}
	if len(result.Errors) != 0 {
		t.Errorf("Errors=%v, want none", result.Errors)
	}
}

func TestParseTitlePlainName(t *testing.T) {
	result := ParseTitle("Drink water")

	if result.Name != "Drink water" {
		t.Errorf("Name=%q", result.Name)
	}
	if result.Category != "" || result.Emoji != "" || result.Color != "" || len(result.Days) != 0 {
		t.Errorf("unexpected metadata: %+v", result)
	}
}

func TestParseTitleInvalidDaysCollected(t *testing.T) {
	result := ParseTitle("Run @Health days:mon,someday")

	if len(result.Errors) != 1 {
		t.Fatalf("Errors=%v, want one entry", result.Errors)
	}
	if result.Name != "Run" {
		t.Errorf("Name=%q, want Run despite the bad token", result.Name)
	}
	if len(result.Days) != 0 {
		t.Errorf("Days=%v, want empty on parse failure", result.Days)
	}
}

func TestParseTitleCollapsesWhitespace(t *testing.T) {
	result := ParseTitle("  Read   a  book   @Evening ")
	if result.Name != "Read a book" {
		t.Errorf("Name=%q", result.Name)
	}
}

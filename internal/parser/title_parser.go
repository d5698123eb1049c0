package parser

import (
	"regexp"
	"strings"

	"habitrack/internal/schedule"
)

// ParsedTracker represents a tracker parsed from natural language
type ParsedTracker struct {
	Name     string
	Category string
	Emoji    string
	Color    string
	Days     schedule.Schedule
	Errors   []string
}

var (
	categoryRegex = regexp.MustCompile(`@([^\s]+)`)
	daysRegex     = regexp.MustCompile(`days:([a-zA-Z0-9,]+)`)
	colorRegex    = regexp.MustCompile(`color:(#[0-9a-fA-F]{6})`)
	emojiRegex    = regexp.MustCompile(`emoji:([^\s]+)`)
)

// ParseTitle extracts tracker metadata from a name using natural syntax
// Syntax: "Run @Health days:mon,wed,fri emoji:🏃 color:#33CF69"
func ParseTitle(input string) ParsedTracker {
	result := ParsedTracker{
		Name:   input,
		Errors: []string{},
	}

	if matches := categoryRegex.FindStringSubmatch(input); len(matches) > 1 {
		result.Category = matches[1]
		input = categoryRegex.ReplaceAllString(input, "")
	}

	if matches := daysRegex.FindStringSubmatch(input); len(matches) > 1 {
		days, err := schedule.ParseSchedule(matches[1])
		if err != nil {
			result.Errors = append(result.Errors, "Invalid days '"+matches[1]+"'. Use: mon,tue,wed,thu,fri,sat,sun")
		} else {
			result.Days = days
		}
		input = daysRegex.ReplaceAllString(input, "")
	}

	if matches := colorRegex.FindStringSubmatch(input); len(matches) > 1 {
		result.Color = strings.ToUpper(matches[1])
		input = colorRegex.ReplaceAllString(input, "")
	}

	if matches := emojiRegex.FindStringSubmatch(input); len(matches) > 1 {
		result.Emoji = matches[1]
		input = emojiRegex.ReplaceAllString(input, "")
	}

	// Clean up the name (remove extra spaces)
	result.Name = strings.Join(strings.Fields(input), " ")

	return result
}

package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"habitrack/internal/engine"
	"habitrack/internal/parser"
	"habitrack/internal/schedule"
)

var addCmd = &cobra.Command{
	Use:   "add [tracker name]",
	Short: "Add a new habit or irregular event",
	Long: `Add a new tracker.

Habits recur on the weekdays you choose; irregular events happen once and
are pinned to the weekday they were created on.

Modes:
  Flags: habitrack add "Run" --category Health --days mon,wed,fri
  Smart parsing: habitrack add "Run @Health days:mon,wed,fri emoji:🏃"

Smart parsing syntax:
  @category       - Category title
  days:mon,wed    - Weekday schedule (mon..sun or 0..6)
  emoji:🏃        - Display emoji
  color:#33CF69   - Display color`,
	Args: cobra.MinimumNArgs(1),
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		parsed := parser.ParseTitle(strings.Join(args, " "))
		if len(parsed.Errors) > 0 {
			fmt.Printf("⚠️  %s\n", strings.Join(parsed.Errors, ", "))
			return
		}

		// Explicit flags take precedence over smart syntax
		if category, _ := cmd.Flags().GetString("category"); category != "" {
			parsed.Category = category
		}
		if emoji, _ := cmd.Flags().GetString("emoji"); emoji != "" {
			parsed.Emoji = emoji
		}
		if color, _ := cmd.Flags().GetString("color"); color != "" {
			parsed.Color = color
		}
		if daysFlag, _ := cmd.Flags().GetString("days"); daysFlag != "" {
			days, err := schedule.ParseSchedule(daysFlag)
			if err != nil {
				fmt.Printf("Error parsing days: %v\n", err)
				return
			}
			parsed.Days = days
		}
		irregular, _ := cmd.Flags().GetBool("irregular")

		tracker, err := a.engine.CreateTracker(context.Background(), engine.CreateTrackerInput{
			Name:          parsed.Name,
			CategoryTitle: parsed.Category,
			Emoji:         parsed.Emoji,
			Color:         parsed.Color,
			Days:          parsed.Days,
			Irregular:     irregular,
		})
		if err != nil {
			fmt.Printf("Error creating tracker: %v\n", err)
			return
		}

		fmt.Printf("✅ Created tracker %q in %s\n", tracker.Name, parsed.Category)
		fmt.Printf("  Schedule: %s\n", tracker.Schedule.Describe())
		if tracker.Emoji != "" {
			fmt.Printf("  Emoji: %s\n", tracker.Emoji)
		}
		if tracker.Color != "" {
			fmt.Printf("  Color: %s\n", tracker.Color)
		}
		if tracker.Irregular {
			fmt.Println("  Type: irregular event (one-off)")
		}
	}),
}

func init() {
	addCmd.Flags().StringP("category", "c", "", "Category title (created on demand)")
	addCmd.Flags().StringP("days", "d", "", "Comma-separated weekdays: mon,wed,fri or 0,2,4")
	addCmd.Flags().StringP("emoji", "e", "", "Display emoji")
	addCmd.Flags().StringP("color", "", "", "Display color as #RRGGBB")
	addCmd.Flags().BoolP("irregular", "i", false, "One-off event pinned to today's weekday")
}

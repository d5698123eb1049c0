package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"habitrack/internal/engine"
	"habitrack/internal/parser"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List trackers for a date",
	Long:    "List trackers grouped by category for a date, honoring the selected filter. Pinned trackers lead in a synthetic Pinned group.",
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		ctx := context.Background()

		req := engine.ListRequest{Filter: a.engine.SelectedFilter(ctx)}

		if dateFlag, _ := cmd.Flags().GetString("date"); dateFlag != "" {
			date, err := parser.ParseDate(dateFlag)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			req.Date = date
		}
		if filterFlag, _ := cmd.Flags().GetString("filter"); filterFlag != "" {
			filter, err := engine.ParseFilter(filterFlag)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			req.Filter = filter
		}

		result := a.engine.Tasks(ctx, req)
		renderList(ctx, a, result)
	}),
}

func renderList(ctx context.Context, a *app, result engine.ListResult) {
	fmt.Printf("%s · filter: %s\n", result.Date.Format("Mon, 02 Jan 2006"), result.Filter)
	if result.Empty {
		fmt.Println("Nothing to track here. Use 'habitrack add' or pick another date.")
		return
	}

	for _, category := range result.Categories {
		fmt.Println()
		fmt.Println(category.Title)
		fmt.Println(strings.Repeat("-", 40))
		for _, tracker := range category.Trackers {
			mark := " "
			if a.engine.IsComplete(ctx, tracker.ID, result.Date) {
				mark = "✓"
			}
			days := a.engine.CompletedDays(ctx, tracker.ID)
			fmt.Printf("[%s] %s %-30s %s · %s\n",
				mark,
				tracker.Emoji,
				truncate(tracker.Name, 30),
				pluralDays(days),
				tracker.Schedule.Describe())
		}
	}
}

// truncate shortens s to max runes. Counting runes keeps multi-byte names
// (emoji, accents) from being cut mid-sequence.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

func pluralDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

func init() {
	listCmd.Flags().StringP("date", "d", "", "Date: yyyy-mm-dd, dd/mm/yyyy, today, yesterday, ±X days")
	listCmd.Flags().StringP("filter", "f", "", "Filter: all, today, completed, incomplete")
}

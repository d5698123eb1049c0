package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate statistics",
	Long:  "Show the completion summary: best streak, perfect days, total completions, and average completions per active day.",
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		stats := a.engine.Statistics(context.Background())
		if stats.Empty() {
			fmt.Println("Nothing to analyze yet. Complete a tracker first.")
			return
		}

		fmt.Println("📊 Statistics")
		fmt.Printf("  Best streak:     %d\n", stats.BestStreak)
		fmt.Printf("  Perfect days:    %d\n", stats.PerfectDays)
		fmt.Printf("  Total completed: %d\n", stats.TotalCompleted)
		fmt.Printf("  Average per day: %d\n", stats.Average)
	}),
}

package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"habitrack/internal/engine"
	"habitrack/internal/schedule"
)

var editCmd = &cobra.Command{
	Use:   "edit [tracker]",
	Short: "Edit an existing tracker",
	Long: `Edit an existing tracker. Only the flags you pass are changed.

Trackers are referenced by name or id prefix. The schedule of an irregular
event is fixed to its creation weekday and cannot be edited.

Usage:
  habitrack edit Run --name "Morning Run"
  habitrack edit Run --category Fitness --days mon,wed,fri`,
	Args: cobra.MinimumNArgs(1),
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		ctx := context.Background()
		tracker, err := a.engine.TrackerRepo().Resolve(ctx, strings.Join(args, " "))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		var input engine.UpdateTrackerInput
		changed := false
		if cmd.Flags().Changed("name") {
			name, _ := cmd.Flags().GetString("name")
			input.Name = &name
			changed = true
		}
		if cmd.Flags().Changed("category") {
			category, _ := cmd.Flags().GetString("category")
			input.CategoryTitle = &category
			changed = true
		}
		if cmd.Flags().Changed("emoji") {
			emoji, _ := cmd.Flags().GetString("emoji")
			input.Emoji = &emoji
			changed = true
		}
		if cmd.Flags().Changed("color") {
			color, _ := cmd.Flags().GetString("color")
			input.Color = &color
			changed = true
		}
		if cmd.Flags().Changed("days") {
			daysFlag, _ := cmd.Flags().GetString("days")
			days, err := schedule.ParseSchedule(daysFlag)
			if err != nil {
				fmt.Printf("Error parsing days: %v\n", err)
				return
			}
			input.Days = days
			changed = true
		}

		if !changed {
			fmt.Println("Nothing to change. Pass --name, --category, --days, --emoji or --color.")
			return
		}

		updated, err := a.engine.UpdateTracker(ctx, tracker.ID, input)
		if err != nil {
			fmt.Printf("Error updating tracker: %v\n", err)
			return
		}

		fmt.Printf("✅ Updated tracker %q\n", updated.Name)
		fmt.Printf("  Schedule: %s\n", updated.Schedule.Describe())
	}),
}

func init() {
	editCmd.Flags().StringP("name", "n", "", "New tracker name")
	editCmd.Flags().StringP("category", "c", "", "Move to this category (created on demand)")
	editCmd.Flags().StringP("days", "d", "", "New weekday schedule: mon,wed,fri or 0,2,4")
	editCmd.Flags().StringP("emoji", "e", "", "New display emoji")
	editCmd.Flags().StringP("color", "", "", "New display color as #RRGGBB")
}

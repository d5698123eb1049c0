package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "rm [tracker]",
	Aliases: []string{"delete"},
	Short:   "Delete a tracker and its completion history",
	Args:    cobra.MinimumNArgs(1),
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		ctx := context.Background()
		tracker, err := a.engine.TrackerRepo().Resolve(ctx, strings.Join(args, " "))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Printf("Delete %q and all its completion records? Re-run with --yes to confirm.\n", tracker.Name)
			return
		}

		if err := a.engine.DeleteTracker(ctx, tracker.ID); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🗑  Deleted %q\n", tracker.Name)
	}),
}

func init() {
	deleteCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}

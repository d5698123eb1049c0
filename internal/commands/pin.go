package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var pinCmd = &cobra.Command{
	Use:   "pin [tracker]",
	Short: "Pin a tracker to the top of list views",
	Args:  cobra.MinimumNArgs(1),
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		ctx := context.Background()
		tracker, err := a.engine.TrackerRepo().Resolve(ctx, strings.Join(args, " "))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if err := a.engine.Pin(ctx, tracker.ID); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("📌 Pinned %q\n", tracker.Name)
	}),
}

var unpinCmd = &cobra.Command{
	Use:   "unpin [tracker]",
	Short: "Remove a tracker from the pinned set",
	Args:  cobra.MinimumNArgs(1),
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		ctx := context.Background()
		tracker, err := a.engine.TrackerRepo().Resolve(ctx, strings.Join(args, " "))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if err := a.engine.Unpin(ctx, tracker.ID); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Unpinned %q\n", tracker.Name)
	}),
}

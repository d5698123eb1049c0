package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"habitrack/internal/parser"
)

var doneCmd = &cobra.Command{
	Use:   "done [tracker]",
	Short: "Mark a tracker as completed for a date",
	Long:  "Mark a tracker done for a date (today by default). Trackers are referenced by name or id prefix.",
	Args:  cobra.MinimumNArgs(1),
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		ctx := context.Background()
		tracker, date, ok := resolveTrackerAndDate(ctx, a, cmd, args)
		if !ok {
			return
		}

		if err := a.engine.MarkComplete(ctx, tracker.ID, date); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Marked %q done for %s\n", tracker.Name, date.Format("Mon, 02 Jan 2006"))
		fmt.Printf("Total: %s\n", pluralDays(a.engine.CompletedDays(ctx, tracker.ID)))
	}),
}

var undoneCmd = &cobra.Command{
	Use:   "undone [tracker]",
	Short: "Un-mark a tracker for a date",
	Args:  cobra.MinimumNArgs(1),
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		ctx := context.Background()
		tracker, date, ok := resolveTrackerAndDate(ctx, a, cmd, args)
		if !ok {
			return
		}

		if err := a.engine.MarkIncomplete(ctx, tracker.ID, date); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("↩️  Un-marked %q for %s\n", tracker.Name, date.Format("Mon, 02 Jan 2006"))
	}),
}

// resolveTrackerAndDate resolves the tracker reference in args and the
// --date flag shared by done/undone/pin-style commands.
func resolveTrackerAndDate(ctx context.Context, a *app, cmd *cobra.Command, args []string) (tracker trackerRef, date time.Time, ok bool) {
	resolved, err := a.engine.TrackerRepo().Resolve(ctx, strings.Join(args, " "))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return trackerRef{}, time.Time{}, false
	}

	date = time.Now()
	if dateFlag, _ := cmd.Flags().GetString("date"); dateFlag != "" {
		parsed, err := parser.ParseDate(dateFlag)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return trackerRef{}, time.Time{}, false
		}
		date = parsed
	}

	return trackerRef{ID: resolved.ID, Name: resolved.Name}, date, true
}

type trackerRef struct {
	ID   string
	Name string
}

func init() {
	doneCmd.Flags().StringP("date", "d", "", "Date: yyyy-mm-dd, dd/mm/yyyy, today, yesterday, ±X days")
	undoneCmd.Flags().StringP("date", "d", "", "Date: yyyy-mm-dd, dd/mm/yyyy, today, yesterday, ±X days")
}

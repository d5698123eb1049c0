package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"habitrack/internal/engine"
)

var filterCmd = &cobra.Command{
	Use:   "filter [all|today|completed|incomplete]",
	Short: "Show or change the persisted list filter",
	Long: `Show or change the filter applied by 'habitrack ls'. The selection is
persisted across invocations. Selecting 'today' also resets the list date
to today.`,
	Args: cobra.MaximumNArgs(1),
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		ctx := context.Background()

		if len(args) == 0 {
			fmt.Printf("Current filter: %s\n", a.engine.SelectedFilter(ctx))
			return
		}

		filter, err := engine.ParseFilter(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if filter == engine.FilterSearch {
			fmt.Println("Error: use 'habitrack search <query>' for search")
			return
		}
		if err := a.engine.SetSelectedFilter(ctx, filter); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Filter set to %s\n", filter)
	}),
}

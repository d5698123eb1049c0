package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"habitrack/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse trackers interactively",
	Long: `Open the interactive list. Keys:
  ↑/↓           Navigate trackers
  ←/→           Previous/next day
  space         Toggle completion
  p             Pin/unpin
  f             Cycle filter
  /             Search
  esc/q         Quit`,
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		if err := tui.Run(a.engine); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}),
}

package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"habitrack/internal/reminder"
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Run the daily reminder daemon",
	Long: `Run a foreground daemon that prints the trackers still incomplete for
the current day on a cron schedule (09:00 daily by default, configurable
via remind_spec or --spec).`,
	Run: withApp(func(a *app, cmd *cobra.Command, args []string) {
		ctx := context.Background()

		spec := a.cfg.RemindSpec
		if flagSpec, _ := cmd.Flags().GetString("spec"); flagSpec != "" {
			spec = flagSpec
		}

		svc := reminder.NewService(nil, a.engine)
		if err := svc.Start(ctx, spec); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer svc.Stop()

		fmt.Printf("⏰ Reminder running (%s). Press Ctrl+C to stop.\n", spec)

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		fmt.Println("Stopping reminder.")
	}),
}

func init() {
	remindCmd.Flags().StringP("spec", "s", "", "Cron spec, e.g. '0 9 * * *'")
}

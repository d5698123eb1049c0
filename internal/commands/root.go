package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"habitrack/internal/config"
	"habitrack/internal/db"
	"habitrack/internal/engine"
	"habitrack/internal/events"
	"habitrack/internal/repository"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "habitrack",
	Short: "A CLI habit and event tracker",
	Long: `habitrack is a command-line tool for tracking habits and one-off events.
Schedule trackers by weekday, mark daily completion, group them by category,
pin, filter and search them, and review aggregate statistics.`,
}

// app bundles everything a command needs after wiring.
type app struct {
	cfg     *config.Config
	engine  *engine.Service
	cleanup func()
}

// setup loads the configuration, opens the database, and wires the engine
// with its repositories.
func setup() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	conn, err := db.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	log := hclog.New(&hclog.LoggerOptions{
		Name:   "habitrack",
		Level:  hclog.Warn,
		Output: os.Stderr,
	})

	bus := events.NewBus()
	svc := engine.NewService(
		log,
		repository.NewCategoryRepository(conn, bus),
		repository.NewTrackerRepository(conn, bus),
		repository.NewRecordRepository(conn, bus),
		repository.NewSettingsRepository(conn, bus),
	)

	// default_filter from the config applies until the user persists a
	// selection with 'habitrack filter'.
	if filter, err := engine.ParseFilter(cfg.DefaultFilter); err == nil {
		svc.SetDefaultFilter(filter)
	} else {
		log.Warn("ignoring configured default_filter", "error", err)
	}

	return &app{
		cfg:     cfg,
		engine:  svc,
		cleanup: func() { _ = db.Close(conn) },
	}, nil
}

// withApp wraps a command function so it runs against a wired app. On the
// first data-touching run it prints a one-time hint.
func withApp(fn func(a *app, cmd *cobra.Command, args []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		a, err := setup()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		defer a.cleanup()

		if a.engine.FirstRun(context.Background()) {
			fmt.Println("👋 Welcome to habitrack! Create your first tracker with 'habitrack add'.")
		}

		fn(a, cmd, args)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("habitrack %s (commit %s, built %s)\n", version, commit, date)
	},
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(categoryCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(undoneCmd)
	rootCmd.AddCommand(pinCmd)
	rootCmd.AddCommand(unpinCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(remindCmd)
	rootCmd.AddCommand(versionCmd)
}

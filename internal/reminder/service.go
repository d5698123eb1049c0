// Package reminder runs a foreground cron daemon that prints the trackers
// still incomplete for the current day.
package reminder

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/robfig/cron/v3"

	"habitrack/internal/engine"
)

// Service schedules the daily summary.
type Service struct {
	log    hclog.Logger
	engine *engine.Service
	cron   *cron.Cron
}

func NewService(log hclog.Logger, eng *engine.Service) *Service {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Service{
		log:    log,
		engine: eng,
		cron:   cron.New(),
	}
}

// Start registers the summary job under the given cron spec and starts the
// scheduler. It returns immediately; call Stop to shut down.
func (s *Service) Start(ctx context.Context, spec string) error {
	_, err := s.cron.AddFunc(spec, func() {
		s.printSummary(ctx)
	})
	if err != nil {
		return fmt.Errorf("invalid reminder spec %q: %w", spec, err)
	}
	s.cron.Start()
	s.log.Info("reminder scheduled", "spec", spec)
	return nil
}

// Stop shuts the scheduler down and waits for a running job to finish.
func (s *Service) Stop() {
	<-s.cron.Stop().Done()
}

// printSummary lists today's incomplete trackers on stdout.
func (s *Service) printSummary(ctx context.Context) {
	result := s.engine.Tasks(ctx, engine.ListRequest{Filter: engine.FilterIncomplete})
	if result.Empty {
		fmt.Println("🎉 Nothing left for today!")
		return
	}

	fmt.Println("⏰ Still to do today:")
	for _, category := range result.Categories {
		for _, tracker := range category.Trackers {
			fmt.Printf("  %s %s (%s)\n", tracker.Emoji, tracker.Name, category.Title)
		}
	}
}

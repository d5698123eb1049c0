package engine

import (
	"context"
	"time"

	"github.com/hashicorp/go-hclog"

	"habitrack/internal/repository"
)

// Service is the scheduling & filtering engine. All collaborators are
// injected; the engine holds no global state.
type Service struct {
	log        hclog.Logger
	categories *repository.CategoryRepository
	trackers   *repository.TrackerRepository
	records    *repository.RecordRepository
	settings   *repository.SettingsRepository

	// defaultFilter is what SelectedFilter falls back to before the user has
	// persisted a choice. Configurable via SetDefaultFilter.
	defaultFilter Filter

	now func() time.Time
}

func NewService(
	log hclog.Logger,
	categories *repository.CategoryRepository,
	trackers *repository.TrackerRepository,
	records *repository.RecordRepository,
	settings *repository.SettingsRepository,
) *Service {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Service{
		log:           log,
		categories:    categories,
		trackers:      trackers,
		records:       records,
		settings:      settings,
		defaultFilter: FilterAll,
		now:           time.Now,
	}
}

// SetDefaultFilter changes the filter used before the user persists a
// selection. Invalid values are ignored.
func (s *Service) SetDefaultFilter(filter Filter) {
	if filter.IsValid() && filter != FilterSearch {
		s.defaultFilter = filter
	}
}

func (s *Service) CategoryRepo() *repository.CategoryRepository { return s.categories }
func (s *Service) TrackerRepo() *repository.TrackerRepository   { return s.trackers }
func (s *Service) RecordRepo() *repository.RecordRepository     { return s.records }
func (s *Service) SettingsRepo() *repository.SettingsRepository { return s.settings }

// FirstRun flips the persisted onboarding flag and reports whether this was
// the first data-touching invocation.
func (s *Service) FirstRun(ctx context.Context) bool {
	seen, err := s.settings.OnboardingSeen(ctx)
	if err != nil {
		s.log.Warn("read onboarding flag", "error", err)
		return false
	}
	if seen {
		return false
	}
	if err := s.settings.SetOnboardingSeen(ctx); err != nil {
		s.log.Warn("write onboarding flag", "error", err)
	}
	return true
}

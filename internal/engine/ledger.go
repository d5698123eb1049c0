package engine

import (
	"context"
	"time"
)

// MarkComplete records the tracker as done on the day of date. Marking the
// same (tracker, day) twice leaves a single record.
func (s *Service) MarkComplete(ctx context.Context, trackerID string, date time.Time) error {
	return s.records.Add(ctx, trackerID, date)
}

// MarkIncomplete removes any completion for (tracker, day). Succeeds
// silently when none exists.
func (s *Service) MarkIncomplete(ctx context.Context, trackerID string, date time.Time) error {
	return s.records.Remove(ctx, trackerID, date)
}

// IsComplete reports whether the tracker is marked done on the day of date.
// A persistence failure logs and reads as not complete.
func (s *Service) IsComplete(ctx context.Context, trackerID string, date time.Time) bool {
	done, err := s.records.Exists(ctx, trackerID, date)
	if err != nil {
		s.log.Warn("check completion", "tracker", trackerID, "error", err)
		return false
	}
	return done
}

// CompletedDays returns the total number of completions ever recorded for
// the tracker.
func (s *Service) CompletedDays(ctx context.Context, trackerID string) int {
	count, err := s.records.CountByTracker(ctx, trackerID)
	if err != nil {
		s.log.Warn("count completions", "tracker", trackerID, "error", err)
		return 0
	}
	return count
}

// ToggleCompletion flips the completion state of (tracker, day) and reports
// the new state.
func (s *Service) ToggleCompletion(ctx context.Context, trackerID string, date time.Time) (bool, error) {
	if s.IsComplete(ctx, trackerID, date) {
		if err := s.MarkIncomplete(ctx, trackerID, date); err != nil {
			return true, err
		}
		return false, nil
	}
	if err := s.MarkComplete(ctx, trackerID, date); err != nil {
		return false, err
	}
	return true, nil
}

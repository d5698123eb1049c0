package engine

import (
	"context"
	"strings"

	"habitrack/internal/models"
	"habitrack/internal/schedule"
)

// UpdateTrackerInput carries the fields to change on an existing tracker.
// Nil pointers and a nil schedule mean "leave as is".
type UpdateTrackerInput struct {
	Name          *string
	CategoryTitle *string
	Emoji         *string
	Color         *string
	Days          schedule.Schedule
}

// UpdateTracker applies the given changes to an existing tracker, validating
// them the same way creation does. The schedule of an irregular event is
// fixed to its creation weekday and cannot be changed.
func (s *Service) UpdateTracker(ctx context.Context, trackerID string, input UpdateTrackerInput) (*models.Tracker, error) {
	tracker, err := s.trackers.FindByID(ctx, trackerID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name, err := validName(*input.Name)
		if err != nil {
			return nil, err
		}
		tracker.Name = name
	}
	if input.Color != nil {
		color, err := validColor(*input.Color)
		if err != nil {
			return nil, err
		}
		tracker.Color = color
	}
	if input.Emoji != nil {
		tracker.Emoji = *input.Emoji
	}
	if input.Days != nil {
		if tracker.Irregular {
			return nil, ErrIrregularSchedule
		}
		if len(input.Days) == 0 {
			return nil, ErrEmptySchedule
		}
		tracker.Schedule = input.Days
	}

	if input.CategoryTitle != nil {
		title := strings.TrimSpace(*input.CategoryTitle)
		if title == "" {
			return nil, ErrCategoryRequired
		}
		// AddTracker assigns the category and saves the other field changes
		// along with it.
		if err := s.categories.AddTracker(ctx, title, tracker); err != nil {
			return nil, err
		}
		return tracker, nil
	}

	if err := s.trackers.Update(ctx, tracker); err != nil {
		return nil, err
	}
	return tracker, nil
}

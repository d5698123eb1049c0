package engine

import (
	"context"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"habitrack/internal/models"
	"habitrack/internal/schedule"
)

// maxNameLength matches the input-field limit of the tracker name.
const maxNameLength = 38

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// CreateTrackerInput holds the data needed to create a tracker.
type CreateTrackerInput struct {
	Name          string
	CategoryTitle string
	Emoji         string
	Color         string

	// Days is the weekday recurrence for habits. Ignored for irregular
	// events, whose schedule is fixed to the creation-date weekday.
	Days      schedule.Schedule
	Irregular bool

	// CreatedOn overrides the creation date (zero value means now). Only
	// the weekday matters, and only for irregular events.
	CreatedOn time.Time
}

// CreateTracker validates the input, fixes the schedule for irregular
// events, and persists the tracker into its category (creating the category
// on demand).
func (s *Service) CreateTracker(ctx context.Context, input CreateTrackerInput) (*models.Tracker, error) {
	name, err := validName(input.Name)
	if err != nil {
		return nil, err
	}

	categoryTitle := strings.TrimSpace(input.CategoryTitle)
	if categoryTitle == "" {
		return nil, ErrCategoryRequired
	}

	color, err := validColor(input.Color)
	if err != nil {
		return nil, err
	}

	days := input.Days
	if input.Irregular {
		createdOn := input.CreatedOn
		if createdOn.IsZero() {
			createdOn = s.now()
		}
		// One-off events are pinned to the weekday of their creation date
		// and never change afterward.
		days = schedule.Schedule{schedule.FromTime(createdOn)}
	}
	if len(days) == 0 {
		return nil, ErrEmptySchedule
	}

	tracker := &models.Tracker{
		ID:        uuid.NewString(),
		Name:      name,
		Color:     color,
		Emoji:     input.Emoji,
		Schedule:  days,
		Irregular: input.Irregular,
	}

	// One transaction: a failed category assignment must not leave an
	// orphaned tracker behind.
	if err := s.categories.CreateTrackerIn(ctx, categoryTitle, tracker); err != nil {
		return nil, err
	}
	return tracker, nil
}

// validName trims and length-checks a tracker name.
func validName(input string) (string, error) {
	name := strings.TrimSpace(input)
	if name == "" {
		return "", ErrNameRequired
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return "", ErrNameTooLong
	}
	return name, nil
}

// validColor normalizes an optional #RRGGBB color to upper case.
func validColor(input string) (string, error) {
	color := strings.TrimSpace(input)
	if color == "" {
		return "", nil
	}
	if !hexColorRe.MatchString(color) {
		return "", ErrInvalidColor
	}
	return strings.ToUpper(color), nil
}

// CreateCategory creates a category with the given title. Creating a title
// that already exists is a successful no-op.
func (s *Service) CreateCategory(ctx context.Context, title string) (*models.Category, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrCategoryRequired
	}
	return s.categories.GetOrCreate(ctx, title)
}

// DeleteTracker removes a tracker along with its ledger records and pin.
func (s *Service) DeleteTracker(ctx context.Context, trackerID string) error {
	return s.trackers.Delete(ctx, trackerID)
}

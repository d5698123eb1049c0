package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"habitrack/internal/events"
	"habitrack/internal/models"
)

// ErrTrackerNotFound is returned when a lookup matches no tracker.
var ErrTrackerNotFound = errors.New("tracker not found")

// ErrAmbiguousTracker is returned when a reference matches several trackers.
var ErrAmbiguousTracker = errors.New("tracker reference is ambiguous")

// TrackerRepository handles CRUD for trackers.
type TrackerRepository struct {
	db  *gorm.DB
	bus *events.Bus
}

func NewTrackerRepository(db *gorm.DB, bus *events.Bus) *TrackerRepository {
	return &TrackerRepository{db: db, bus: bus}
}

// Update saves field changes of an existing tracker. Insertion happens
// through CategoryRepository.CreateTrackerIn, so a tracker always enters the
// store with its category assigned.
func (r *TrackerRepository) Update(ctx context.Context, tracker *models.Tracker) error {
	if err := r.db.WithContext(ctx).Save(tracker).Error; err != nil {
		return fmt.Errorf("update tracker: %w", err)
	}
	r.bus.Publish(events.Event{Topic: events.TopicTrackers, EntityID: tracker.ID})
	return nil
}

// ListAll returns the full tracker set.
func (r *TrackerRepository) ListAll(ctx context.Context) ([]models.Tracker, error) {
	var trackers []models.Tracker
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&trackers).Error; err != nil {
		return nil, fmt.Errorf("list trackers: %w", err)
	}
	return trackers, nil
}

func (r *TrackerRepository) FindByID(ctx context.Context, id string) (*models.Tracker, error) {
	var tracker models.Tracker
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&tracker).Error
	switch {
	case err == nil:
		return &tracker, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrTrackerNotFound
	default:
		return nil, fmt.Errorf("find tracker: %w", err)
	}
}

// Resolve finds a tracker by exact name, exact id, or unique id prefix, in
// that order. UUIDs are unwieldy on the command line, so a short prefix is
// enough.
func (r *TrackerRepository) Resolve(ctx context.Context, ref string) (*models.Tracker, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, ErrTrackerNotFound
	}

	var byName []models.Tracker
	if err := r.db.WithContext(ctx).Where("name = ?", ref).Find(&byName).Error; err != nil {
		return nil, fmt.Errorf("resolve tracker: %w", err)
	}
	switch len(byName) {
	case 1:
		return &byName[0], nil
	default:
		if len(byName) > 1 {
			return nil, ErrAmbiguousTracker
		}
	}

	var byID []models.Tracker
	if err := r.db.WithContext(ctx).Where("id LIKE ? ESCAPE '\\'", escapeLike(ref)+"%").Find(&byID).Error; err != nil {
		return nil, fmt.Errorf("resolve tracker: %w", err)
	}
	switch len(byID) {
	case 0:
		return nil, ErrTrackerNotFound
	case 1:
		return &byID[0], nil
	default:
		return nil, ErrAmbiguousTracker
	}
}

// escapeLike neutralizes LIKE wildcards in a user-supplied reference so the
// prefix match stays literal.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// Delete removes a tracker together with its completion records and pin.
func (r *TrackerRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tracker_id = ?", id).Delete(&models.CompletionRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("tracker_id = ?", id).Delete(&models.PinnedTracker{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Tracker{}).Error
	})
	if err != nil {
		return fmt.Errorf("delete tracker: %w", err)
	}
	r.bus.Publish(events.Event{Topic: events.TopicTrackers, EntityID: id})
	return nil
}

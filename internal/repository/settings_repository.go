package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"habitrack/internal/events"
	"habitrack/internal/models"
)

// Setting keys.
const (
	settingSelectedFilter = "selected_filter"
	settingOnboardingSeen = "onboarding_seen"
)

// SettingsRepository persists the pinned set and process-wide flags
// (selected filter, onboarding seen).
type SettingsRepository struct {
	db  *gorm.DB
	bus *events.Bus
}

func NewSettingsRepository(db *gorm.DB, bus *events.Bus) *SettingsRepository {
	return &SettingsRepository{db: db, bus: bus}
}

// IsPinned reports whether the tracker is in the pinned set.
func (r *SettingsRepository) IsPinned(ctx context.Context, trackerID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.PinnedTracker{}).
		Where("tracker_id = ?", trackerID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("check pin: %w", err)
	}
	return count > 0, nil
}

// AddPinned adds the tracker to the pinned set. Pinning twice is a no-op.
func (r *SettingsRepository) AddPinned(ctx context.Context, trackerID string) error {
	pin := models.PinnedTracker{TrackerID: trackerID}
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&pin).Error; err != nil {
		return fmt.Errorf("add pin: %w", err)
	}
	r.bus.Publish(events.Event{Topic: events.TopicPins, EntityID: trackerID})
	return nil
}

// RemovePinned removes the tracker from the pinned set; silently succeeds
// when it was not pinned.
func (r *SettingsRepository) RemovePinned(ctx context.Context, trackerID string) error {
	if err := r.db.WithContext(ctx).Where("tracker_id = ?", trackerID).
		Delete(&models.PinnedTracker{}).Error; err != nil {
		return fmt.Errorf("remove pin: %w", err)
	}
	r.bus.Publish(events.Event{Topic: events.TopicPins, EntityID: trackerID})
	return nil
}

// PinnedIDs returns the pinned set as a lookup map.
func (r *SettingsRepository) PinnedIDs(ctx context.Context) (map[string]bool, error) {
	var pins []models.PinnedTracker
	if err := r.db.WithContext(ctx).Find(&pins).Error; err != nil {
		return nil, fmt.Errorf("list pins: %w", err)
	}
	ids := make(map[string]bool, len(pins))
	for _, p := range pins {
		ids[p.TrackerID] = true
	}
	return ids, nil
}

// SelectedFilter returns the persisted filter selection, or "" when none
// has been saved yet.
func (r *SettingsRepository) SelectedFilter(ctx context.Context) (string, error) {
	return r.get(ctx, settingSelectedFilter)
}

func (r *SettingsRepository) SetSelectedFilter(ctx context.Context, value string) error {
	return r.set(ctx, settingSelectedFilter, value)
}

// OnboardingSeen reports whether the first-run hint was already shown.
func (r *SettingsRepository) OnboardingSeen(ctx context.Context) (bool, error) {
	v, err := r.get(ctx, settingOnboardingSeen)
	if err != nil {
		return false, err
	}
	return v == "true", nil
}

func (r *SettingsRepository) SetOnboardingSeen(ctx context.Context) error {
	return r.set(ctx, settingOnboardingSeen, "true")
}

func (r *SettingsRepository) get(ctx context.Context, key string) (string, error) {
	var setting models.Setting
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&setting).Error
	switch {
	case err == nil:
		return setting.Value, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return "", nil
	default:
		return "", fmt.Errorf("read setting %s: %w", key, err)
	}
}

func (r *SettingsRepository) set(ctx context.Context, key, value string) error {
	setting := models.Setting{Key: key, Value: value}
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&setting).Error; err != nil {
		return fmt.Errorf("write setting %s: %w", key, err)
	}
	return nil
}

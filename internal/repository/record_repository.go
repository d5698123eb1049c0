package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"habitrack/internal/events"
	"habitrack/internal/models"
	"habitrack/internal/schedule"
)

// RecordRepository is the backing store of the completion ledger: one row
// per (tracker, calendar day) the user marked done.
type RecordRepository struct {
	db  *gorm.DB
	bus *events.Bus
}

func NewRecordRepository(db *gorm.DB, bus *events.Bus) *RecordRepository {
	return &RecordRepository{db: db, bus: bus}
}

// Add inserts a completion record for the day of date. Calling it twice for
// the same (tracker, day) leaves a single record; the unique index backs
// this up at the schema level.
func (r *RecordRepository) Add(ctx context.Context, trackerID string, date time.Time) error {
	day := schedule.DayOf(date)

	exists, err := r.Exists(ctx, trackerID, day)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	record := models.CompletionRecord{
		ID:        uuid.NewString(),
		TrackerID: trackerID,
		DueDate:   day,
	}
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("add completion record: %w", err)
	}
	r.bus.Publish(events.Event{Topic: events.TopicRecords, EntityID: trackerID})
	return nil
}

// Remove deletes any record matching (tracker, day). Removing a record that
// does not exist succeeds silently.
func (r *RecordRepository) Remove(ctx context.Context, trackerID string, date time.Time) error {
	day := schedule.DayOf(date)
	if err := r.db.WithContext(ctx).
		Where("tracker_id = ? AND due_date = ?", trackerID, day).
		Delete(&models.CompletionRecord{}).Error; err != nil {
		return fmt.Errorf("remove completion record: %w", err)
	}
	r.bus.Publish(events.Event{Topic: events.TopicRecords, EntityID: trackerID})
	return nil
}

// Exists reports whether a record exists for (tracker, day).
func (r *RecordRepository) Exists(ctx context.Context, trackerID string, date time.Time) (bool, error) {
	day := schedule.DayOf(date)
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.CompletionRecord{}).
		Where("tracker_id = ? AND due_date = ?", trackerID, day).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("check completion record: %w", err)
	}
	return count > 0, nil
}

// CountByTracker returns the total number of records ever created for the
// tracker, irrespective of date range.
func (r *RecordRepository) CountByTracker(ctx context.Context, trackerID string) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.CompletionRecord{}).
		Where("tracker_id = ?", trackerID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count completion records: %w", err)
	}
	return int(count), nil
}

// ListAll returns the full ledger snapshot, used by the statistics engine.
func (r *RecordRepository) ListAll(ctx context.Context) ([]models.CompletionRecord, error) {
	var records []models.CompletionRecord
	if err := r.db.WithContext(ctx).Order("due_date ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list completion records: %w", err)
	}
	return records, nil
}

// Subscribe registers fn to run after every ledger mutation.
func (r *RecordRepository) Subscribe(fn func(events.Event)) func() {
	return r.bus.Subscribe(events.TopicRecords, fn)
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"habitrack/internal/events"
	"habitrack/internal/models"
)

// CategoryRepository manages tracker categories.
type CategoryRepository struct {
	db  *gorm.DB
	bus *events.Bus
}

func NewCategoryRepository(db *gorm.DB, bus *events.Bus) *CategoryRepository {
	return &CategoryRepository{db: db, bus: bus}
}

// GetOrCreate returns the category with the given title, creating it if it
// does not exist. Creation is idempotent by title.
func (r *CategoryRepository) GetOrCreate(ctx context.Context, title string) (*models.Category, error) {
	var category models.Category
	conn := r.db.WithContext(ctx)

	err := conn.Where("title = ?", title).First(&category).Error
	switch {
	case err == nil:
		return &category, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		category = models.Category{Title: title}
		if err := conn.Create(&category).Error; err != nil {
			return nil, fmt.Errorf("create category: %w", err)
		}
		r.bus.Publish(events.Event{Topic: events.TopicCategories, EntityID: title})
		return &category, nil
	default:
		return nil, fmt.Errorf("find category: %w", err)
	}
}

// ListAll returns every category with its full tracker membership, ordered
// by title ascending.
func (r *CategoryRepository) ListAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).Preload("Trackers").Order("title ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// Titles returns the category titles, ordered ascending.
func (r *CategoryRepository) Titles(ctx context.Context) ([]string, error) {
	var titles []string
	if err := r.db.WithContext(ctx).Model(&models.Category{}).Order("title ASC").Pluck("title", &titles).Error; err != nil {
		return nil, fmt.Errorf("list category titles: %w", err)
	}
	return titles, nil
}

// CreateTrackerIn inserts a new tracker into the category with the given
// title, creating the category on demand. Both writes run in one
// transaction, so a failed insert never leaves a tracker without a category.
func (r *CategoryRepository) CreateTrackerIn(ctx context.Context, categoryTitle string, tracker *models.Tracker) error {
	createdCategory := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var category models.Category
		err := tx.Where("title = ?", categoryTitle).First(&category).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			category = models.Category{Title: categoryTitle}
			if err := tx.Create(&category).Error; err != nil {
				return err
			}
			createdCategory = true
		case err != nil:
			return err
		}
		tracker.CategoryID = category.ID
		return tx.Create(tracker).Error
	})
	if err != nil {
		return fmt.Errorf("create tracker in category: %w", err)
	}
	if createdCategory {
		r.bus.Publish(events.Event{Topic: events.TopicCategories, EntityID: categoryTitle})
	}
	r.bus.Publish(events.Event{Topic: events.TopicTrackers, EntityID: tracker.ID})
	return nil
}

// AddTracker assigns a tracker to the category with the given title,
// creating the category on demand.
func (r *CategoryRepository) AddTracker(ctx context.Context, categoryTitle string, tracker *models.Tracker) error {
	category, err := r.GetOrCreate(ctx, categoryTitle)
	if err != nil {
		return err
	}
	tracker.CategoryID = category.ID
	if err := r.db.WithContext(ctx).Save(tracker).Error; err != nil {
		return fmt.Errorf("assign tracker to category: %w", err)
	}
	r.bus.Publish(events.Event{Topic: events.TopicTrackers, EntityID: tracker.ID})
	return nil
}

package models

import "time"

// Category is a user-named grouping of trackers. Titles are unique; creating
// a category whose title already exists is a no-op that returns the existing
// one.
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title string `gorm:"uniqueIndex;not null" json:"title"`

	Trackers []Tracker `gorm:"foreignKey:CategoryID" json:"trackers"`
}

// PinnedCategoryTitle is the synthetic category that hoists pinned trackers
// to the top of every list view. It is never persisted.
const PinnedCategoryTitle = "Pinned"

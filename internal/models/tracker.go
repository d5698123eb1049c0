package models

import (
	"time"

	"habitrack/internal/schedule"
)

// Tracker represents a habit (recurring) or an irregular event (one-off).
type Tracker struct {
	ID        string    `gorm:"primaryKey" json:"id"` // UUID, assigned at creation
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name  string `gorm:"not null" json:"name"` // 1-38 characters, enforced at input
	Color string `json:"color"`                // hex string, e.g. "#FD4C49"
	Emoji string `json:"emoji"`

	// Schedule holds the weekdays the tracker is active on. Irregular events
	// carry a single-element schedule fixed to their creation weekday.
	Schedule  schedule.Schedule `gorm:"type:text" json:"schedule"`
	Irregular bool              `gorm:"default:false" json:"irregular"`

	CategoryID uint `gorm:"index" json:"category_id"`
}

// ActiveOn reports whether the tracker should appear on the given date.
func (t Tracker) ActiveOn(date time.Time) bool {
	return t.Schedule.ActiveOn(date)
}

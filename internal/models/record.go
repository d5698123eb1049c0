package models

import "time"

// CompletionRecord marks one tracker as done on one calendar day. DueDate is
// always day-normalized before storage; the unique index makes the ledger's
// one-record-per-(tracker, day) invariant a hard constraint.
type CompletionRecord struct {
	ID        string    `gorm:"primaryKey" json:"id"` // UUID per record
	CreatedAt time.Time `json:"created_at"`

	TrackerID string    `gorm:"index;index:idx_records_tracker_day,unique;not null" json:"tracker_id"`
	DueDate   time.Time `gorm:"index:idx_records_tracker_day,unique;not null" json:"due_date"`
}

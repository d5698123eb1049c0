package models

// Setting is a persisted key/value pair for process-wide state: the selected
// filter and the onboarding-seen flag live here.
type Setting struct {
	Key   string `gorm:"primaryKey" json:"key"`
	Value string `json:"value"`
}

// PinnedTracker records membership of the user-pinned set. Pinning is
// independent of a tracker's category.
type PinnedTracker struct {
	TrackerID string `gorm:"primaryKey" json:"tracker_id"`
}

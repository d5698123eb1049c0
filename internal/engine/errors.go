package engine

import "errors"

// Tracker input validation errors. The 38-character cap mirrors the name
// field limit enforced at input.
var (
	ErrNameRequired      = errors.New("tracker name is required")
	ErrNameTooLong       = errors.New("tracker name must be 38 characters or fewer")
	ErrCategoryRequired  = errors.New("category title is required")
	ErrEmptySchedule     = errors.New("schedule must include at least one weekday")
	ErrInvalidColor      = errors.New("color must be a #RRGGBB hex string")
	ErrIrregularSchedule = errors.New("irregular events keep the weekday they were created on")
)

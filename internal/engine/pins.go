package engine

import "context"

// Pin adds the tracker to the pinned set; it will surface in the synthetic
// "Pinned" category of every list view.
func (s *Service) Pin(ctx context.Context, trackerID string) error {
	return s.settings.AddPinned(ctx, trackerID)
}

// Unpin removes the tracker from the pinned set.
func (s *Service) Unpin(ctx context.Context, trackerID string) error {
	return s.settings.RemovePinned(ctx, trackerID)
}

// IsPinned reports pinned-set membership; a persistence failure logs and
// reads as not pinned.
func (s *Service) IsPinned(ctx context.Context, trackerID string) bool {
	pinned, err := s.settings.IsPinned(ctx, trackerID)
	if err != nil {
		s.log.Warn("check pin", "tracker", trackerID, "error", err)
		return false
	}
	return pinned
}

// SelectedFilter returns the persisted filter selection. Before the user
// has saved one, or when the stored value is invalid, it falls back to the
// configured default filter.
func (s *Service) SelectedFilter(ctx context.Context) Filter {
	raw, err := s.settings.SelectedFilter(ctx)
	if err != nil {
		s.log.Warn("read selected filter", "error", err)
		return s.defaultFilter
	}
	if raw == "" {
		return s.defaultFilter
	}
	filter, err := ParseFilter(raw)
	if err != nil {
		return s.defaultFilter
	}
	return filter
}

// SetSelectedFilter persists the filter selection.
func (s *Service) SetSelectedFilter(ctx context.Context, filter Filter) error {
	return s.settings.SetSelectedFilter(ctx, string(filter))
}

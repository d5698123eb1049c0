package engine

import (
	"context"
	"sort"
	"time"

	"habitrack/internal/models"
)

// CategoryView is one (category title, trackers) pair of a list view. The
// "Pinned" view is synthetic and always leads when present.
type CategoryView struct {
	Title    string
	Trackers []models.Tracker
}

// CategoriesOn produces the ordered category list visible for a date:
// trackers active on that weekday, grouped by category, with pinned
// trackers hoisted into a leading synthetic "Pinned" category and the rest
// sorted by title. Persistence failures are non-fatal; they log and yield
// an empty list.
func (s *Service) CategoriesOn(ctx context.Context, date time.Time) []CategoryView {
	categories, err := s.categories.ListAll(ctx)
	if err != nil {
		s.log.Warn("fetch categories", "error", err)
		return nil
	}

	pinnedIDs, err := s.settings.PinnedIDs(ctx)
	if err != nil {
		s.log.Warn("fetch pinned set", "error", err)
		pinnedIDs = nil
	}

	var pinned []models.Tracker
	var views []CategoryView
	for _, category := range categories {
		var active []models.Tracker
		for _, tracker := range category.Trackers {
			if !tracker.ActiveOn(date) {
				continue
			}
			if pinnedIDs[tracker.ID] {
				pinned = append(pinned, tracker)
				continue
			}
			active = append(active, tracker)
		}
		if len(active) == 0 {
			continue
		}
		views = append(views, CategoryView{Title: category.Title, Trackers: active})
	}

	sort.Slice(views, func(i, j int) bool { return views[i].Title < views[j].Title })

	if len(pinned) > 0 {
		views = append([]CategoryView{{Title: models.PinnedCategoryTitle, Trackers: pinned}}, views...)
	}
	return views
}

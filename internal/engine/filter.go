package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"habitrack/internal/models"
)

// Filter selects which trackers of a date's category list are shown.
type Filter string

const (
	FilterAll        Filter = "all"
	FilterToday      Filter = "today"
	FilterCompleted  Filter = "completed"
	FilterIncomplete Filter = "incomplete"
	FilterSearch     Filter = "search"
)

func (f Filter) IsValid() bool {
	switch f {
	case FilterAll, FilterToday, FilterCompleted, FilterIncomplete, FilterSearch:
		return true
	default:
		return false
	}
}

// ParseFilter resolves user input into a Filter. Empty input means "all".
func ParseFilter(input string) (Filter, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	if s == "" {
		return FilterAll, nil
	}
	f := Filter(s)
	if !f.IsValid() {
		return "", fmt.Errorf("invalid filter: %q (want all, today, completed, incomplete or search)", input)
	}
	return f, nil
}

// ListRequest describes one list query: a date, a filter, and the search
// query when the filter is "search".
type ListRequest struct {
	Date   time.Time // zero value means today
	Filter Filter    // zero value means FilterAll
	Query  string
}

// ListResult is the rendered list state. Date reports the effective date
// after any filter side effects (FilterToday resets it to today).
type ListResult struct {
	Date       time.Time
	Filter     Filter
	Categories []CategoryView
	Empty      bool
}

// Tasks applies the filter state machine on top of CategoriesOn:
//
//	all         - pass-through for the requested date
//	today       - resets the date to today, then behaves as all
//	completed   - keeps trackers completed on the date, drops empty categories
//	incomplete  - the complement of completed
//	search      - case-insensitive substring match on tracker names; the
//	              Pinned category is re-filtered like any other and removed
//	              only if it becomes empty; an empty query resets to all
func (s *Service) Tasks(ctx context.Context, req ListRequest) ListResult {
	filter := req.Filter
	if filter == "" {
		filter = FilterAll
	}

	date := req.Date
	if date.IsZero() {
		date = s.now()
	}
	if filter == FilterToday {
		date = s.now()
	}

	query := strings.TrimSpace(req.Query)
	if filter == FilterSearch && query == "" {
		filter = FilterAll
	}

	categories := s.CategoriesOn(ctx, date)

	switch filter {
	case FilterCompleted:
		categories = s.filterByCompletion(ctx, categories, date, true)
	case FilterIncomplete:
		categories = s.filterByCompletion(ctx, categories, date, false)
	case FilterSearch:
		categories = filterByQuery(categories, query)
	}

	return ListResult{
		Date:       date,
		Filter:     filter,
		Categories: categories,
		Empty:      len(categories) == 0,
	}
}

func (s *Service) filterByCompletion(ctx context.Context, categories []CategoryView, date time.Time, wantComplete bool) []CategoryView {
	var out []CategoryView
	for _, category := range categories {
		var kept []models.Tracker
		for _, tracker := range category.Trackers {
			if s.IsComplete(ctx, tracker.ID, date) == wantComplete {
				kept = append(kept, tracker)
			}
		}
		if len(kept) == 0 {
			continue
		}
		out = append(out, CategoryView{Title: category.Title, Trackers: kept})
	}
	return out
}

func filterByQuery(categories []CategoryView, query string) []CategoryView {
	needle := strings.ToLower(query)
	var out []CategoryView
	for _, category := range categories {
		var kept []models.Tracker
		for _, tracker := range category.Trackers {
			if strings.Contains(strings.ToLower(tracker.Name), needle) {
				kept = append(kept, tracker)
			}
		}
		if len(kept) == 0 {
			continue
		}
		out = append(out, CategoryView{Title: category.Title, Trackers: kept})
	}
	return out
}

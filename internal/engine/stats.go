package engine

import (
	"context"
	"sort"
	"time"

	"habitrack/internal/models"
	"habitrack/internal/schedule"
)

// Stats are the four summary metrics computed from the full completion
// ledger and tracker set.
type Stats struct {
	TotalCompleted int
	BestStreak     int // longest run of consecutive calendar days with a completion
	PerfectDays    int // days on which every tracker was completed
	Average        int // completions per day with any completion, integer division
}

// Empty reports whether there is anything to show; callers render a
// placeholder instead of cards when the ledger has no records.
func (s Stats) Empty() bool {
	return s.TotalCompleted == 0
}

// Compute derives the statistics. Pure function of (records, trackers).
//
// BestStreak measures true consecutive-calendar-day runs over the distinct
// days that have at least one completion. PerfectDays counts days whose
// record count equals the tracker count; the ledger keeps at most one
// record per (tracker, day), so that equals days on which every tracker
// was completed.
func Compute(records []models.CompletionRecord, trackers []models.Tracker) Stats {
	if len(records) == 0 {
		return Stats{}
	}

	perDay := make(map[string]int)
	for _, record := range records {
		perDay[schedule.DayKey(record.DueDate)]++
	}

	days := make([]string, 0, len(perDay))
	for day := range perDay {
		days = append(days, day)
	}
	sort.Strings(days)

	best, run := 1, 1
	for i := 1; i < len(days); i++ {
		if nextDayKey(days[i-1]) == days[i] {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
	}

	perfect := 0
	if len(trackers) > 0 {
		for _, count := range perDay {
			if count == len(trackers) {
				perfect++
			}
		}
	}

	return Stats{
		TotalCompleted: len(records),
		BestStreak:     best,
		PerfectDays:    perfect,
		Average:        len(records) / len(perDay),
	}
}

// nextDayKey returns the day key of the calendar day after the given one.
// Day keys are always well-formed here since they come from DayKey.
func nextDayKey(key string) string {
	t, err := time.Parse("2006-01-02", key)
	if err != nil {
		return ""
	}
	return schedule.DayKey(t.AddDate(0, 0, 1))
}

// Statistics computes the summary from the persisted ledger and tracker
// set. Persistence failures log and yield the empty summary.
func (s *Service) Statistics(ctx context.Context) Stats {
	records, err := s.records.ListAll(ctx)
	if err != nil {
		s.log.Warn("fetch completion records", "error", err)
		return Stats{}
	}
	trackers, err := s.trackers.ListAll(ctx)
	if err != nil {
		s.log.Warn("fetch trackers", "error", err)
		return Stats{}
	}
	return Compute(records, trackers)
}

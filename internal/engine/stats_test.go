package engine

import (
	"testing"
	"time"

	"habitrack/internal/models"
	"habitrack/internal/schedule"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return schedule.DayOf(t)
}

func record(id, trackerID, dueDate string) models.CompletionRecord {
	return models.CompletionRecord{ID: id, TrackerID: trackerID, DueDate: day(dueDate)}
}

func tracker(id string) models.Tracker {
	return models.Tracker{ID: id, Name: "t-" + id}
}

func TestComputeEmptyLedger(t *testing.T) {
	stats := Compute(nil, []models.Tracker{tracker("A")})
	if !stats.Empty() {
		t.Fatal("expected empty stats")
	}
	if stats.TotalCompleted != 0 || stats.BestStreak != 0 || stats.PerfectDays != 0 || stats.Average != 0 {
		t.Fatalf("expected all-zero stats, got %+v", stats)
	}
}

func TestComputeReferenceExample(t *testing.T) {
	// Ledger [(A, Jan 1), (A, Jan 2), (B, Jan 2)] with trackers {A, B}
	records := []models.CompletionRecord{
		record("r1", "A", "2024-01-01"),
		record("r2", "A", "2024-01-02"),
		record("r3", "B", "2024-01-02"),
	}
	trackers := []models.Tracker{tracker("A"), tracker("B")}

	stats := Compute(records, trackers)
	if stats.TotalCompleted != 3 {
		t.Errorf("TotalCompleted=%d, want 3", stats.TotalCompleted)
	}
	if stats.PerfectDays != 1 {
		t.Errorf("PerfectDays=%d, want 1", stats.PerfectDays)
	}
	if stats.Average != 1 {
		t.Errorf("Average=%d, want 1 (integer division of 3/2)", stats.Average)
	}
	if stats.BestStreak != 2 {
		t.Errorf("BestStreak=%d, want 2 (Jan 1 and Jan 2 are consecutive)", stats.BestStreak)
	}
}

func TestComputeStreaks(t *testing.T) {
	tests := []struct {
		name string
		days []string
		want int
	}{
		{"single day", []string{"2024-03-01"}, 1},
		{"two runs, longer second", []string{"2024-03-01", "2024-03-05", "2024-03-06", "2024-03-07"}, 3},
		{"gap breaks the run", []string{"2024-03-01", "2024-03-02", "2024-03-04"}, 2},
		{"month boundary", []string{"2024-01-31", "2024-02-01"}, 2},
		{"multiple records on one day count once", []string{"2024-03-01", "2024-03-01", "2024-03-02"}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var records []models.CompletionRecord
			for i, d := range tt.days {
				records = append(records, record(string(rune('a'+i)), "A", d))
			}
			stats := Compute(records, []models.Tracker{tracker("A")})
			if stats.BestStreak != tt.want {
				t.Errorf("BestStreak=%d, want %d", stats.BestStreak, tt.want)
			}
		})
	}
}

func TestComputePerfectDays(t *testing.T) {
	records := []models.CompletionRecord{
		record("r1", "A", "2024-05-01"),
		record("r2", "B", "2024-05-01"),
		record("r3", "C", "2024-05-01"),
		record("r4", "A", "2024-05-02"),
	}
	trackers := []models.Tracker{tracker("A"), tracker("B"), tracker("C")}

	stats := Compute(records, trackers)
	if stats.PerfectDays != 1 {
		t.Errorf("PerfectDays=%d, want 1", stats.PerfectDays)
	}
}

func TestComputeAverageIntegerDivision(t *testing.T) {
	records := []models.CompletionRecord{
		record("r1", "A", "2024-05-01"),
		record("r2", "B", "2024-05-01"),
		record("r3", "C", "2024-05-01"),
		record("r4", "A", "2024-05-02"),
		record("r5", "A", "2024-05-03"),
	}
	stats := Compute(records, []models.Tracker{tracker("A"), tracker("B"), tracker("C")})
	// 5 records over 3 distinct days
	if stats.Average != 1 {
		t.Errorf("Average=%d, want 1", stats.Average)
	}
}

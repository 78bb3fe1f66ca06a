package leaderboardService

import (
	"testing"
	"time"

	"upsetTipBot/models"
)

func record(round, points int, status models.TipStatus) models.HistoryRecord {
	return models.HistoryRecord{
		Round:          round,
		SelectedTeamID: "knights",
		OpponentID:     "cowboys",
		Timestamp:      time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Status:         status,
		PointsEarned:   points,
	}
}

func TestEarnedPoints(t *testing.T) {
	tests := []struct {
		name     string
		record   models.HistoryRecord
		expected int
	}{
		{"Won tip pays its stored potential", record(1, 5, models.TipWon), 5},
		{"Pending tip pays nothing until settled", record(1, 5, models.TipPending), 0},
		{"Lost tip never pays despite stored potential", record(1, 11, models.TipLost), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EarnedPoints(tt.record); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestComputeTotalsAndOrdering(t *testing.T) {
	members := []models.Member{
		{MemberKey: "m1", Name: "Doon", TotalPoints: 999}, // decorative total must be ignored
		{MemberKey: "m2", Name: "Sparrow"},
		{MemberKey: "m3", Name: "Colin"},
	}
	history := map[string]map[int]models.HistoryRecord{
		"m1": {
			1: record(1, 5, models.TipWon),
			2: record(2, 3, models.TipWon),
		},
		"m2": {
			1: record(1, 11, models.TipLost),
			2: record(2, 4, models.TipWon),
		},
		"m3": {
			1: record(1, 6, models.TipPending),
		},
	}

	entries := Compute(members, history, 1, 2)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	if entries[0].Member.MemberKey != "m1" || entries[0].Total != 8 {
		t.Errorf("expected Doon on top with 8, got %s with %d", entries[0].Member.Name, entries[0].Total)
	}
	if entries[1].Member.MemberKey != "m2" || entries[1].Total != 4 {
		t.Errorf("expected Sparrow second with 4, got %s with %d", entries[1].Member.Name, entries[1].Total)
	}
	if entries[2].Member.MemberKey != "m3" || entries[2].Total != 0 {
		t.Errorf("expected Colin last with 0, got %s with %d", entries[2].Member.Name, entries[2].Total)
	}

	sum := 0
	for _, points := range entries[0].RoundPoints {
		sum += points
	}
	if sum != entries[0].Total {
		t.Errorf("total must equal the sum of per-round points: %d vs %d", entries[0].Total, sum)
	}
	if entries[0].RoundPoints[1] != 5 || entries[0].RoundPoints[2] != 3 {
		t.Errorf("unexpected per-round split: %v", entries[0].RoundPoints)
	}
}

func TestComputeTieBreakByName(t *testing.T) {
	members := []models.Member{
		{MemberKey: "m2", Name: "Bob"},
		{MemberKey: "m1", Name: "Alice"},
	}
	history := map[string]map[int]models.HistoryRecord{
		"m1": {1: record(1, 10, models.TipWon)},
		"m2": {1: record(1, 10, models.TipWon)},
	}

	entries := Compute(members, history, 1, 1)
	if entries[0].Member.Name != "Alice" || entries[1].Member.Name != "Bob" {
		t.Errorf("tied totals must order Alice before Bob, got %s then %s",
			entries[0].Member.Name, entries[1].Member.Name)
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	members := []models.Member{
		{MemberKey: "m1", Name: "Doon"},
		{MemberKey: "m2", Name: "Sparrow"},
		{MemberKey: "m3", Name: "Colin"},
		{MemberKey: "m4", Name: "Winthrop"},
	}
	history := map[string]map[int]models.HistoryRecord{
		"m1": {1: record(1, 5, models.TipWon)},
		"m2": {1: record(1, 5, models.TipWon)},
		"m3": {1: record(1, 5, models.TipWon)},
	}

	first := Compute(members, history, 1, 1)
	for trial := 0; trial < 10; trial++ {
		again := Compute(members, history, 1, 1)
		for i := range first {
			if again[i].Member.MemberKey != first[i].Member.MemberKey {
				t.Fatalf("ordering changed between calls at position %d", i)
			}
		}
	}
}

func TestComputeRoundRangeExcludesOutsideRounds(t *testing.T) {
	members := []models.Member{{MemberKey: "m1", Name: "Doon"}}
	history := map[string]map[int]models.HistoryRecord{
		"m1": {
			1: record(1, 5, models.TipWon),
			9: record(9, 7, models.TipWon),
		},
	}

	entries := Compute(members, history, 1, 3)
	if entries[0].Total != 5 {
		t.Errorf("rounds outside the range must not contribute, got %d", entries[0].Total)
	}
}

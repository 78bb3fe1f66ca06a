package leaderboardService

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"upsetTipBot/models"
)

// Entry is one member's aggregated standing over a round range.
type Entry struct {
	Member      models.Member
	RoundPoints map[int]int
	Total       int
}

// EarnedPoints is the settled value of a record: the stored potential
// for a won tip, zero for pending and lost tips alike.
func EarnedPoints(record models.HistoryRecord) int {
	if record.Status == models.TipWon {
		return record.PointsEarned
	}
	return 0
}

// Compute folds the history store into ranked totals over the
// inclusive round range. Stored member totals are never consulted; the
// authoritative total is always recomputed here. Ordering is total
// descending, ties broken by display name ascending under locale-aware
// collation (and by member key for identical names, keeping the order
// total and deterministic).
func Compute(members []models.Member, history map[string]map[int]models.HistoryRecord, fromRound, toRound int) []Entry {
	entries := make([]Entry, 0, len(members))

	for _, member := range members {
		entry := Entry{
			Member:      member,
			RoundPoints: make(map[int]int),
		}
		rounds := history[member.MemberKey]
		for round := fromRound; round <= toRound; round++ {
			earned := 0
			if record, ok := rounds[round]; ok {
				earned = EarnedPoints(record)
			}
			entry.RoundPoints[round] = earned
			entry.Total += earned
		}
		entries = append(entries, entry)
	}

	collator := collate.New(language.English)
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Total != entries[j].Total {
			return entries[i].Total > entries[j].Total
		}
		if cmp := collator.CompareString(entries[i].Member.Name, entries[j].Member.Name); cmp != 0 {
			return cmp < 0
		}
		return entries[i].Member.MemberKey < entries[j].Member.MemberKey
	})

	return entries
}

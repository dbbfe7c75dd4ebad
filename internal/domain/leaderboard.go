package domain

import (
	"math"
	"slices"
)

// LeaderboardEntry is one competitor's standing.
type LeaderboardEntry struct {
	Identity
	User  UserRef `json:"user"`
	Score float64 `json:"score"`
}

// RankByScore returns a copy of entries ordered by score, highest first.
// Entries with equal scores keep their relative input order.
func RankByScore(entries []LeaderboardEntry) []LeaderboardEntry {
	ranked := slices.Clone(entries)
	slices.SortStableFunc(ranked, func(a, b LeaderboardEntry) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})
	return ranked
}

// AverageScore is the arithmetic mean of all scores rounded half up to the
// nearest integer. It is zero for an empty slice.
func AverageScore(entries []LeaderboardEntry) int {
	if len(entries) == 0 {
		return 0
	}
	var sum float64
	for _, e := range entries {
		sum += e.Score
	}
	return int(math.Floor(sum/float64(len(entries)) + 0.5))
}

package leaderboard

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/nfrund/octofit/internal/domain"
	"github.com/nfrund/octofit/internal/module"
)

// EmptyMessage is shown for failed and empty loads.
const EmptyMessage = "LEADERBOARD MATRIX EMPTY"

// ScoreBand names the colour band of a score.
func ScoreBand(score float64) string {
	switch {
	case score >= 95:
		return "green"
	case score >= 80:
		return "blue"
	case score >= 60:
		return "yellow"
	default:
		return "red"
	}
}

// Tier is the status label of the zero-based rank index.
func Tier(index int) string {
	switch {
	case index == 0:
		return "APEX"
	case index < 3:
		return "PRIME"
	case index < 10:
		return "AUGMENTED"
	default:
		return "BASELINE"
	}
}

var (
	podiumBadges = [3]string{"PRIME", "ELITE", "ENHANCED"}
	podiumStyles = [3]string{"rank-first", "rank-second", "rank-third"}
	medals       = [3]string{"🥇", "🥈", "🥉"}
)

// Name is how a competitor is shown.
func Name(e domain.LeaderboardEntry) string {
	if name := e.User.DisplayName(); name != "" {
		return name
	}
	return "ANONYMOUS"
}

// Initial is the avatar letter of a competitor.
func Initial(e domain.LeaderboardEntry) string {
	name := e.User.DisplayName()
	if name == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r))
}

// FormatScore prints a score without trailing zeros.
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}

// Stats is the summary under the table. ranked must be in rank order.
func Stats(ranked []domain.LeaderboardEntry) []module.Stat {
	threshold := "??"
	if len(ranked) > 0 {
		threshold = FormatScore(ranked[0].Score - 5)
	}
	return []module.Stat{
		{Title: "Total Competitors", Value: strconv.Itoa(len(ranked))},
		{Title: "Avg Neural Score", Value: strconv.Itoa(domain.AverageScore(ranked))},
		{Title: "Prime Status Threshold", Value: threshold},
	}
}

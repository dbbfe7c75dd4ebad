package leaderboard

import (
	"fmt"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/octofit/internal/dataview"
	"github.com/nfrund/octofit/internal/domain"
	"github.com/nfrund/octofit/web/src/templates/partials"
)

const hologramRings = 5

// Render draws the panel for one snapshot.
func Render(s dataview.Snapshot[domain.LeaderboardEntry], fx hologramFrame) g.Node {
	var body g.Node
	switch s.Class() {
	case dataview.ClassLoading:
		body = loading(fx)
	case dataview.ClassNoData:
		body = partials.NoData(EmptyMessage, "No neural performance data available. Awaiting competitor synchronization.")
	default:
		body = h.Div(h.Class("cyber-leaderboard-container"),
			podium(s.Records, fx.Pulse),
			h.Div(h.Class("leaderboard-table-container"),
				partials.Panel("NEURAL PERFORMANCE INDEX", table(s.Records)),
			),
			partials.Stats(Stats(s.Records)),
		)
	}
	return partials.View(s.ID, s.Class() == dataview.ClassLoading,
		partials.Heading("Neural Link Leaderboard"),
		body,
	)
}

func loading(fx hologramFrame) g.Node {
	rings := make([]g.Node, hologramRings)
	for i := range rings {
		size := (i + 1) * 20
		rings[i] = h.Div(h.Class("hologram-ring"),
			h.Style(fmt.Sprintf("animation-delay: %.1fs; width: %dpx; height: %dpx", float64(i)*0.5, size, size)),
		)
	}
	return h.Div(h.Class("hologram-loading"),
		h.Div(h.Class("hologram-container"),
			h.Style(fmt.Sprintf("transform: rotateY(%ddeg)", fx.Rotation)),
			h.Div(h.Class("hologram-trophy"), g.Text("🏆")),
			h.Div(h.Class("hologram-rings"), g.Group(rings)),
		),
		h.Div(h.Class("loading-text"), g.Text("CALCULATING NEURAL PERFORMANCE METRICS")),
	)
}

func scoreColor(score float64) string {
	return "color: var(--neon-" + ScoreBand(score) + ")"
}

func scoreFill(score float64) string {
	pct := min(max(score, 0), 100)
	return fmt.Sprintf("width: %s%%; background-color: var(--neon-%s)", FormatScore(pct), ScoreBand(score))
}

func podium(ranked []domain.LeaderboardEntry, pulse bool) g.Node {
	top := ranked[:min(3, len(ranked))]
	nodes := make([]g.Node, len(top))
	for i, e := range top {
		nodes[i] = h.Div(
			components.Classes{
				"podium-rank":   true,
				podiumStyles[i]: true,
				"pulse":         i == 0 && pulse,
			},
			h.Div(h.Class("rank-number"), g.Textf("%d", i+1)),
			h.Div(h.Class("rank-avatar"),
				h.Div(h.Class("avatar-frame"),
					h.Div(h.Class("avatar-content"), g.Text(Initial(e))),
				),
			),
			h.Div(h.Class("rank-name"), g.Text(Name(e))),
			h.Div(h.Class("rank-score"), h.Style(scoreColor(e.Score)),
				g.Text(FormatScore(e.Score)),
				h.Div(h.Class("score-bar"),
					h.Div(h.Class("score-fill"), h.Style(scoreFill(e.Score))),
				),
			),
			h.Div(h.Class("rank-badge"), g.Text(podiumBadges[i])),
		)
	}
	return h.Div(h.Class("top-performers"), g.Group(nodes))
}

func table(ranked []domain.LeaderboardEntry) g.Node {
	rows := make([]g.Node, len(ranked))
	for i, e := range ranked {
		rows[i] = h.Tr(g.If(i < 3, h.Class(podiumStyles[min(i, 2)])),
			h.Td(h.Div(h.Class("rank-cell"),
				h.Span(h.Class("rank-number"), g.Textf("%d", i+1)),
				g.If(i < 3, h.Span(h.Class("rank-medal"), g.Text(medals[min(i, 2)]))),
			)),
			h.Td(h.Span(h.Class("username"), g.Text(Name(e)))),
			h.Td(h.Div(h.Class("score-display"),
				h.Span(h.Class("score-value"), h.Style(scoreColor(e.Score)), g.Text(FormatScore(e.Score))),
				h.Div(h.Class("score-bar-small"),
					h.Div(h.Class("score-fill-small"), h.Style(scoreFill(e.Score))),
				),
			)),
			h.Td(h.Div(h.Class("user-status"),
				h.Span(h.Class("status-light online")),
				h.Span(h.Class("status-text"), g.Text(Tier(i))),
			)),
		)
	}
	return h.Div(h.Class("table-responsive"),
		h.Table(h.Class("table table-striped"),
			h.THead(h.Tr(
				h.Th(g.Text("Rank")),
				h.Th(g.Text("User")),
				h.Th(g.Text("Neural Score")),
				h.Th(g.Text("Status")),
			)),
			h.TBody(rows...),
		),
	)
}

package teams

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/octofit/internal/dataview"
	"github.com/nfrund/octofit/web/src/templates/partials"
)

// EmptyMessage is shown for failed and empty loads.
const EmptyMessage = "NO NEURAL COLLECTIVES FOUND"

// Render draws the panel for one snapshot.
func Render(s dataview.Snapshot[Card], fx synapseFrame) g.Node {
	var body g.Node
	switch s.Class() {
	case dataview.ClassLoading:
		body = partials.Loading("SYNCHRONIZING NEURAL COLLECTIVES", network(fx))
	case dataview.ClassNoData:
		body = partials.NoData(EmptyMessage, "Neural network awaiting collective formation. Initialize team sync protocol to continue.")
	default:
		focus, ok := s.Focus()
		grid := make([]g.Node, len(s.Records))
		for i, c := range s.Records {
			grid[i] = card(s.ID, c.KeyOr(i), c, i == s.Selected)
		}
		body = h.Div(h.Class("cyber-teams-container"),
			h.Div(h.Class("cyber-grid teams-grid"), g.Group(grid)),
			g.If(ok, detail(focus, fx)),
			partials.Stats(Stats(s.Records)),
		)
	}
	return partials.View(s.ID, s.Class() == dataview.ClassLoading,
		partials.Heading("Neural Collectives"),
		body,
	)
}

func network(fx synapseFrame) g.Node {
	return h.Div(h.Class("neural-network-loading"),
		h.Div(h.Class("neural-container"),
			g.Map(fx.Lines, func(l Line) g.Node {
				return synapse("synapse-line", l,
					h.Style(fmt.Sprintf("opacity: %.2f; animation: pulse %.1fs infinite", l.Opacity, l.Duration)))
			}),
			g.Map(fx.Nodes, func(p Point) g.Node {
				return h.Div(h.Class("synapse-node"), h.Style(position(p)))
			}),
		),
	)
}

func synapse(class string, l Line, extra ...g.Node) g.Node {
	return g.El("svg", h.Class(class), g.Group(extra),
		g.El("line",
			g.Attr("x1", pct(l.X1)),
			g.Attr("y1", pct(l.Y1)),
			g.Attr("x2", pct(l.X2)),
			g.Attr("y2", pct(l.Y2)),
		),
	)
}

func pct(v float64) string { return strconv.FormatFloat(v, 'f', 1, 64) + "%" }

func position(p Point) string {
	return fmt.Sprintf("left: %s; top: %s", pct(p.X), pct(p.Y))
}

func card(viewID, key string, c Card, active bool) g.Node {
	dots := make([]g.Node, maxLinkStrength)
	for i := range dots {
		dots[i] = h.Span(components.Classes{"link-dot": true, "active": i < c.Strength})
	}
	mini := make([]g.Node, len(c.MiniMap))
	for i, p := range c.MiniMap {
		mini[i] = h.Div(h.Class("mini-node"),
			h.Style(fmt.Sprintf("%s; animation-delay: %.1fs", position(p), float64(i)*0.2)))
	}
	return h.Div(
		components.Classes{"cyber-grid-item": true, "team-card": true, "team-active": active},
		partials.Selectable(viewID, key),
		h.Div(h.Class("team-card-header"),
			h.H3(g.Text(c.Name)),
			h.Div(h.Class("team-code"), g.Text(c.Code)),
		),
		h.Div(h.Class("team-metrics"),
			metric("MEMBERS", strconv.Itoa(c.MemberCount())),
			metric("SYNERGY", strconv.Itoa(c.Synergy)+"%"),
			metric("NEURAL DENSITY", strconv.Itoa(c.Density)),
		),
		h.Div(h.Class("team-link-strength"),
			h.Div(h.Class("link-label"), g.Text("LINK STRENGTH")),
			h.Div(h.Class("link-indicators"), g.Group(dots)),
		),
		h.Div(h.Class("mini-neural-map"), g.Group(mini)),
	)
}

func metric(label, value string) g.Node {
	return h.Div(h.Class("metric-item"),
		h.Div(h.Class("metric-label"), g.Text(label)),
		h.Div(h.Class("metric-value"), g.Text(value)),
	)
}

func detail(c Card, fx synapseFrame) g.Node {
	lines := fx.Lines[:min(detailLines, len(fx.Lines))]
	return h.Div(h.Class("team-detail-panel"),
		h.Div(h.Class("detail-header"),
			h.H2(g.Text(c.Name)),
			h.Div(h.Class("detail-id"), g.Text("ID: "+c.Code)),
		),
		h.Div(h.Class("neural-connection-display"),
			h.Div(h.Class("neural-map"),
				g.Map(c.Points, func(p Point) g.Node {
					return h.Div(h.Class("neural-point"),
						h.Style(fmt.Sprintf("%s; width: %.1fpx; height: %.1fpx", position(p), p.Size, p.Size)))
				}),
				g.Map(lines, func(l Line) g.Node { return synapse("synapse-line detail-synapse", l) }),
			),
			h.Div(h.Class("neural-stats"),
				neuralStat("Cognitive Sync", strconv.Itoa(c.Synergy)+"%", c.Synergy),
				neuralStat("Neural Density", strconv.Itoa(c.Density), c.Density*100/maxDensity),
				neuralStat("Link Stability", strconv.Itoa(c.Strength*20)+"%", c.Strength*20),
			),
		),
		h.Div(h.Class("team-members-panel"),
			h.Div(h.Class("panel-header"), g.Text("SYNCHRONIZED MEMBERS")),
			h.Div(h.Class("members-container"),
				g.Map(c.Members, func(m Member) g.Node {
					return h.Div(h.Class("member-item"),
						h.Div(h.Class("member-avatar"), g.Text(m.Avatar)),
						h.Div(h.Class("member-details"),
							h.Div(h.Class("member-name"), g.Text(m.Name)),
							h.Div(h.Class("member-role"), g.Text(m.Role)),
						),
						h.Div(h.Class("member-status"),
							h.Span(h.Class("status-indicator online")),
							g.Text("SYNCED"),
						),
					)
				}),
			),
		),
	)
}

func neuralStat(label, value string, fill int) g.Node {
	return h.Div(h.Class("stat-item"),
		h.Div(h.Class("stat-label"), g.Text(label)),
		h.Div(h.Class("stat-value"), g.Text(value)),
		partials.Meter("stat-bar", fill),
	)
}

package users

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
const EmptyMessage = "NO USERS DETECTED"

// Render draws the panel for one snapshot.
func Render(s dataview.Snapshot[Card], progress int) g.Node {
	var body g.Node
	switch s.Class() {
	case dataview.ClassLoading:
		body = loading(progress)
	case dataview.ClassNoData:
		body = partials.NoData(EmptyMessage, "Neural network cannot locate connected users. Initiate new user registration protocol.")
	default:
		focus, ok := s.Focus()
		body = h.Div(h.Class("cyber-users-grid"),
			h.Div(h.Class("users-list-panel"),
				h.Div(h.Class("panel-header"),
					h.Span(h.Class("panel-title"), g.Text("REGISTERED USERS")),
					h.Div(h.Class("panel-stats"),
						h.Span(g.Textf("%d IDENTIFIED", len(s.Records))),
						h.Span(g.Textf("%d CONNECTED", CountConnected(s.Records))),
					),
				),
				h.Div(h.Class("users-table-container"), table(s)),
			),
			g.If(ok, detail(focus)),
		)
	}
	return partials.View(s.ID, s.Class() == dataview.ClassLoading,
		partials.Heading("Neural Users"),
		body,
	)
}

func loading(progress int) g.Node {
	return h.Div(h.Class("cyber-loading"),
		h.Div(h.Class("scan-container"),
			partials.Meter("scan-progress", progress),
			h.Div(h.Class("loading-text scan-text"), g.Textf("NEURAL NETWORK SCAN: %d%% COMPLETE", progress)),
			h.Div(h.Class("scan-details"),
				g.Text("IDENTIFYING CONNECTED USERS..."),
				h.Div(h.Class("scan-log"),
					g.Map(revealed(progress), func(e logEntry) g.Node {
						return h.Div(components.Classes{"log-entry": true, "success": e.success}, g.Text("> "+e.text))
					}),
				),
			),
		),
	)
}

func table(s dataview.Snapshot[Card]) g.Node {
	rows := make([]g.Node, len(s.Records))
	for i, c := range s.Records {
		rows[i] = h.Tr(
			components.Classes{"user-row": true, "selected": i == s.Selected, "offline": !c.Connected()},
			partials.Selectable(s.ID, c.KeyOr(i)),
			h.Td(h.Div(h.Class("user-id"), g.Text(c.ShortID()))),
			h.Td(h.Div(h.Class("user-name"),
				h.Span(h.Class("access-badge"), h.Data("level", c.Access)),
				g.Text(c.Username),
			)),
			h.Td(levelDots(c.Level)),
			h.Td(h.Div(h.Class("sync-state "+syncClass(c)), g.Text(c.Sync))),
		)
	}
	return h.Div(h.Class("table-responsive"),
		h.Table(h.Class("table table-striped"),
			h.THead(h.Tr(
				h.Th(g.Text("ID")),
				h.Th(g.Text("Username")),
				h.Th(g.Text("Neural Level")),
				h.Th(g.Text("Status")),
			)),
			h.TBody(rows...),
		),
	)
}

func syncClass(c Card) string {
	if c.Connected() {
		return "connected"
	}
	return "offline"
}

func levelDots(level int) g.Node {
	dots := make([]g.Node, maxNeuralLevel)
	for i := range dots {
		dots[i] = h.Span(components.Classes{"level-dot": true, "active": i < level})
	}
	return h.Div(h.Class("neural-level"), g.Group(dots))
}

func detail(c Card) g.Node {
	return h.Div(h.Class("user-detail-panel"),
		h.Div(h.Class("detail-header"),
			h.Div(h.Class("user-avatar"), g.Text(c.Avatar())),
			h.Div(h.Class("user-titles"),
				h.H2(h.Class("username"), g.Text(c.Username)),
				h.Div(h.Class("user-email"), g.Text(c.Email)),
				h.Div(h.Class("user-access"),
					h.Span(h.Class("access-level"), g.Text(c.Access)),
					h.Span(h.Class("neural-badge"), g.Textf("LEVEL %d", c.Level)),
				),
			),
			h.Div(h.Class("sync-status"),
				h.Div(h.Class("status-label"), g.Text("NEURAL SYNC")),
				h.Div(h.Class("sync-indicator "+syncClass(c)),
					h.Span(h.Class("status-dot")),
					g.Text(c.Sync),
				),
				h.Div(h.Class("last-sync"), g.Text("LAST: "+c.LastSync.Format("15:04:05"))),
			),
		),
		h.Div(h.Class("neural-profile"),
			h.H3(g.Text("NEURAL PROFILE")),
			h.Div(h.Class("brain-scan"),
				h.Div(h.Class("scan-overlay"),
					g.Map(c.Brain, func(n Node) g.Node {
						return h.Div(h.Class("brain-node"), h.Style(fmt.Sprintf(
							"left: %.1f%%; top: %.1f%%; animation-delay: %.1fs; opacity: %.2f", n.X, n.Y, n.Delay, n.Opacity)))
					}),
				),
				h.Div(h.Class("scan-metrics"),
					profileMetric("NEURAL DENSITY", strconv.Itoa(c.Density())+"%"),
					profileMetric("SYNC QUALITY", c.SyncQuality()),
				),
			),
		),
		h.Div(h.Class("augmentations-panel"),
			h.H3(g.Textf("AUGMENTATIONS (%d)", len(c.Augmentations))),
			h.Div(h.Class("augmentations-list"),
				g.Map(c.Augmentations, augmentation),
				g.If(len(c.Augmentations) == 0, h.Div(h.Class("no-augmentations"), g.Text("NO AUGMENTATIONS DETECTED"))),
			),
		),
	)
}

func profileMetric(name, value string) g.Node {
	return h.Div(h.Class("metric"),
		h.Div(h.Class("metric-name"), g.Text(name)),
		h.Div(h.Class("metric-value"), g.Text(value)),
	)
}

func augmentation(a Augmentation) g.Node {
	return h.Div(h.Class("augmentation-item"),
		h.Div(h.Class("aug-icon"), g.Text(AugmentationIcon(a.Name))),
		h.Div(h.Class("aug-details"),
			h.Div(h.Class("aug-name"), g.Text(a.Name)),
			h.Div(h.Class("aug-level"),
				h.Span(h.Class("level-label"), g.Textf("LVL %d", a.Level)),
				partials.Meter("level-bar", a.Level*20),
			),
		),
		h.Div(h.Class("aug-efficiency"), g.Textf("%d%%", a.Efficiency)),
	)
}

package pages

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/nfrund/octofit/web/src/templates/layouts"
)

type statusTile struct {
	title, badge, text string
}

var homeTiles = []statusTile{
	{"Neural Link Status", "ACTIVE", "Biometric monitoring online."},
	{"Fitness Protocol", "OPTIMIZING", "Adjusting for maximum performance."},
	{"Network Status", "SECURE", "End-to-end encrypted data transfer."},
}

var bootLines = []string{
	"> Initializing OctoFit systems...",
	"> Biometric sensors connected",
	"> Neural link established",
	"> Welcome, user. Your fitness journey awaits.",
}

// HomeContent is the landing page shown at "/".
func HomeContent() cmp.Node {
	return g.Div(
		g.Class("home-container"),
		g.H1(g.Class("text-primary"), cmp.Attr("data-text", "OctoFit Tracker"), cmp.Text("Welcome to OctoFit Tracker")),
		g.Div(g.Class("cyber-grid"),
			cmp.Map(homeTiles, func(t statusTile) cmp.Node {
				return g.Div(g.Class("cyber-grid-item"),
					g.H3(cmp.Text(t.title)),
					g.Div(g.Class("cyber-badge"), cmp.Text(t.badge)),
					g.P(cmp.Text(t.text)),
				)
			}),
		),
		g.P(g.Class("lead"), cmp.Text("Track your fitness metrics, join virtual teams, and compete on the global leaderboard through our neural-enhanced biometric tracking system.")),
		g.Div(g.Class("terminal-section"),
			layouts.TerminalHeader("octofit@system:~$"),
			g.Div(g.Class("terminal-content"),
				cmp.Map(bootLines, func(line string) cmp.Node { return g.P(cmp.Text(line)) }),
			),
		),
	)
}

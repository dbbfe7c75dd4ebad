package layouts

import (
	"fmt"
	"time"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/octofit/internal/module"
	"github.com/nfrund/octofit/internal/view"
)

// Version is shown in the status bar.
const Version = "2.5.7"

// Chrome is everything the shell draws around a page.
type Chrome struct {
	Title  string
	Active string
	Nav    []module.Route
	Now    time.Time
	Uptime time.Duration
	PingMS int
	Glitch bool
}

// CalculateTitle builds the document title.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - OctoFit Tracker"
	}
	return "OctoFit Tracker"
}

var navIcons = map[string]string{
	"/activities":  "⚡",
	"/leaderboard": "🏆",
	"/teams":       "👥",
	"/users":       "👤",
	"/workouts":    "💪",
}

// releaseScript unmounts the page's views when the page is discarded.
// Pages kept in the back/forward cache keep their views.
const releaseScript = `addEventListener("pagehide", function (e) {
  if (e.persisted) return;
  document.querySelectorAll("[data-release]").forEach(function (el) {
    navigator.sendBeacon(el.dataset.release);
  });
});`

// Base renders a full page.
func Base(ch Chrome, content ...g.Node) g.Node {
	return components.HTML5(components.HTML5Props{
		Title:    CalculateTitle(ch.Title),
		Language: "en",
		Head: []g.Node{
			h.Link(h.Rel("stylesheet"), h.Href("/static/cyberpunk.css")),
			h.Script(h.Src("https://unpkg.com/htmx.org@2.0.4")),
			h.Script(g.Raw(releaseScript)),
		},
		Body: []g.Node{
			h.Div(
				components.Classes{"App": true, "glitching": ch.Glitch},
				header(ch),
				nav(ch),
				h.Div(
					h.Class("content-container"),
					TerminalHeader("octofit-sys:~$ fitness.monitor --active"),
					h.Div(h.Class("battery-level"), h.Div(h.Class("battery-level-fill"))),
					g.Group(content),
				),
				statusBar(ch),
			),
		},
	})
}

func header(ch Chrome) g.Node {
	return h.Header(
		h.Class("App-header"),
		h.Div(h.Class("App-header-left"),
			h.Div(h.Class("App-logo"), h.Role("img"), h.Aria("label", "OctoFit Logo"), g.Text("🐙")),
		),
		h.Div(h.Class("App-header-title"),
			h.H1(g.Attr("data-text", "OctoFit Tracker"), g.Text("OctoFit Tracker")),
			h.Div(h.Class("subtitle"), g.Text("NEXGEN FITNESS QUANTIFICATION SYSTEM")),
		),
		h.Div(h.Class("App-header-right"),
			view.AdaptTemplToGomponent(view.Text("div", "cyber-time", ch.Now.Format("15:04:05"))),
			h.Div(h.Class("system-status"),
				h.Span(h.Class("status-indicator online")),
				g.Text("SYSTEM ONLINE"),
			),
		),
	)
}

func nav(ch Chrome) g.Node {
	return h.Nav(
		h.Class("navbar"),
		h.A(h.Class("navbar-brand"), h.Href("/"), g.Text("OCTO:NET")),
		h.Ul(h.Class("navbar-nav"),
			g.Map(ch.Nav, func(r module.Route) g.Node {
				return h.Li(h.Class("nav-item"),
					h.A(
						components.Classes{"nav-link": true, "active": r.Path == ch.Active},
						h.Href(r.Path),
						h.Span(h.Class("nav-icon"), g.Text(navIcons[r.Path])),
						g.Text(" "+r.Label),
					),
				)
			}),
		),
	)
}

// TerminalHeader is the window bar with the three control dots.
func TerminalHeader(title string) g.Node {
	return h.Div(h.Class("terminal-header"),
		h.Div(h.Class("terminal-controls"),
			h.Span(h.Class("close")),
			h.Span(h.Class("minimize")),
			h.Span(h.Class("maximize")),
		),
		h.Div(h.Class("terminal-title"), g.Text(title)),
	)
}

func statusBar(ch Chrome) g.Node {
	return h.Div(h.Class("status-bar"),
		h.Span(g.Text("SYS.VER "+Version)),
		h.Span(g.Text("UPTIME: "+FormatUptime(ch.Uptime))),
		h.Span(h.Class("status-ping"), g.Textf("PING: %dms", ch.PingMS)),
	)
}

// FormatUptime renders d as 3d:04h:05m:06s.
func FormatUptime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	s := int64(d / time.Second)
	return fmt.Sprintf("%dd:%02dh:%02dm:%02ds", s/86400, s/3600%24, s/60%60, s%60)
}

// Package partials holds the building blocks shared by every data panel.
package partials

import (
	"fmt"
	"net/url"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/octofit/internal/module"
)

const (
	// PollInterval is how often a loading panel asks for a fresh rendering.
	PollInterval = "every 500ms"
	// KeepaliveInterval is how often a settled panel tells the server it is
	// still on screen. The mount TTL must stay well above it.
	KeepaliveInterval = "every 30s"
)

// DomID is the element id of a mounted view.
func DomID(viewID string) string { return "view-" + viewID }

// ViewPath is the fragment endpoint of a mounted view.
func ViewPath(viewID string) string { return "/views/" + viewID }

// SelectPath is the endpoint that focuses key in a mounted view.
func SelectPath(viewID, key string) string {
	return ViewPath(viewID) + "/select/" + url.PathEscape(key)
}

// TouchPath refreshes a mounted view without rendering it.
func TouchPath(viewID string) string { return ViewPath(viewID) + "/touch" }

// ReleasePath unmounts a view when its page goes away.
func ReleasePath(viewID string) string { return ViewPath(viewID) + "/release" }

// View is the swappable root of a panel. While polling, htmx replaces it
// with a fresh rendering until the view settles; after that a keepalive
// holds the mount open while the page is shown. The release path is read
// by the layout's pagehide hook.
func View(viewID string, polling bool, children ...g.Node) g.Node {
	return h.Div(
		h.ID(DomID(viewID)),
		h.Class("cyber-component"),
		h.Data("release", ReleasePath(viewID)),
		g.If(polling, g.Group{
			hx.Get(ViewPath(viewID)),
			hx.Trigger(PollInterval),
			hx.Swap("outerHTML"),
		}),
		g.If(!polling, keepalive(viewID)),
		g.Group(children),
	)
}

func keepalive(viewID string) g.Node {
	return h.Div(h.Class("view-keepalive"),
		hx.Get(TouchPath(viewID)),
		hx.Trigger(KeepaliveInterval),
		hx.Swap("none"),
	)
}

// Severed replaces the root of a view that no longer exists. It neither
// polls nor keeps anything alive.
func Severed(viewID string, children ...g.Node) g.Node {
	return h.Div(h.ID(DomID(viewID)), h.Class("cyber-component"), g.Group(children))
}

// Heading is the glitching page title.
func Heading(title string) g.Node {
	return h.H1(h.Class("text-primary"), g.Attr("data-text", title), g.Text(title))
}

// Loading is the progress indicator frame shared by all panels.
func Loading(text string, effect ...g.Node) g.Node {
	return h.Div(h.Class("cyber-loading"),
		g.Group(effect),
		h.Div(h.Class("loading-text"),
			g.Text(text),
			h.Span(h.Class("loading-dot"), g.Text(".")),
			h.Span(h.Class("loading-dot"), g.Text(".")),
			h.Span(h.Class("loading-dot"), g.Text(".")),
		),
	)
}

// NoData is the static message for failed or empty loads.
func NoData(message, hint string) g.Node {
	return h.Div(h.Class("no-data"),
		h.Div(h.Class("glitch-text"), g.Text(message)),
		g.If(hint != "", h.P(g.Text(hint))),
	)
}

// Panel is a titled frame with the three header dots.
func Panel(title string, body ...g.Node) g.Node {
	return h.Div(h.Class("cyber-panel"),
		h.Div(h.Class("panel-header"),
			h.Span(h.Class("panel-title"), g.Text(title)),
			h.Div(h.Class("panel-controls"),
				h.Span(h.Class("panel-dot")),
				h.Span(h.Class("panel-dot")),
				h.Span(h.Class("panel-dot")),
			),
		),
		g.Group(body),
	)
}

// Stats renders summary tiles.
func Stats(stats []module.Stat) g.Node {
	return h.Div(h.Class("cyber-stats"),
		g.Map(stats, func(s module.Stat) g.Node {
			return h.Div(h.Class("stat-box"),
				h.Div(h.Class("stat-title"), g.Text(s.Title)),
				h.Div(h.Class("stat-value"),
					g.Text(s.Value),
					g.If(s.Unit != "", h.Span(h.Class("stat-unit"), g.Text(unitSep(s.Unit)+s.Unit))),
				),
			)
		}),
	)
}

func unitSep(unit string) string {
	if unit == "%" {
		return ""
	}
	return " "
}

// Selectable makes an element focus key in viewID when clicked.
func Selectable(viewID, key string) g.Node {
	return g.Group{
		hx.Post(SelectPath(viewID, key)),
		hx.Target("#" + DomID(viewID)),
		hx.Swap("outerHTML"),
		h.Data("key", key),
	}
}

// Badge is the small bordered label.
func Badge(text string) g.Node {
	return h.Div(h.Class("cyber-badge"), g.Text(text))
}

// Meter is a horizontal bar filled to pct percent.
func Meter(class string, pct int) g.Node {
	pct = min(max(pct, 0), 100)
	return h.Div(h.Class(class),
		h.Div(h.Class(class+"-fill"), h.Style(fmt.Sprintf("width: %d%%", pct))),
	)
}

package workouts

import (
	"fmt"
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/octofit/internal/dataview"
	"github.com/nfrund/octofit/web/src/templates/partials"
)

// EmptyMessage is shown for failed and empty loads.
const EmptyMessage = "NO PROTOCOLS FOUND"

// Render draws the panel for one snapshot.
func Render(s dataview.Snapshot[Card], fx matrixFrame) g.Node {
	var body g.Node
	switch s.Class() {
	case dataview.ClassLoading:
		body = loading(fx)
	case dataview.ClassNoData:
		body = partials.NoData(EmptyMessage, "Neural training database empty. Initialize new training protocols to continue.")
	default:
		focus, ok := s.Focus()
		grid := make([]g.Node, len(s.Records))
		for i, c := range s.Records {
			grid[i] = card(s.ID, c.KeyOr(i), c, i == s.Selected)
		}
		body = h.Div(h.Class("cyber-workouts-container"),
			h.Div(h.Class("workouts-grid"), g.Group(grid)),
			g.If(ok, detail(focus)),
			partials.Stats(Stats(s.Records)),
		)
	}
	return partials.View(s.ID, s.Class() == dataview.ClassLoading,
		partials.Heading("Neural Training Protocols"),
		body,
	)
}

func loading(fx matrixFrame) g.Node {
	rows := make([]g.Node, len(fx.Cells))
	for i, row := range fx.Cells {
		cells := make([]g.Node, len(row))
		for j := range len(row) {
			cells[j] = h.Span(
				components.Classes{"matrix-cell": true, "active": row[j] == '1', "pulse": (i+j)%phases == fx.Phase},
				g.Text(row[j:j+1]),
			)
		}
		rows[i] = h.Div(h.Class("matrix-row"), g.Group(cells))
	}
	return h.Div(h.Class("cyber-loading"),
		h.Div(h.Class("matrix-container"),
			h.Div(h.Class("data-matrix"), g.Group(rows)),
			h.Div(h.Class("loading-overlay"),
				h.Div(h.Class("loading-circle"),
					h.Div(h.Class("circle-segment"), h.Style(fmt.Sprintf("transform: rotate(%ddeg)", fx.Phase*120))),
				),
				h.Div(h.Class("loading-text"), g.Text("COMPILING NEURAL TRAINING PROTOCOLS")),
			),
		),
	)
}

func card(viewID, key string, c Card, selected bool) g.Node {
	return h.Div(
		components.Classes{"workout-card": true, "selected": selected},
		partials.Selectable(viewID, key),
		h.Div(h.Class("workout-header"),
			h.Div(h.Class("workout-name"), g.Text(c.Name)),
			h.Div(h.Class("workout-badge"), g.Textf("N-LVL %d", c.Level)),
		),
		h.Div(h.Class("workout-metrics"),
			h.Div(h.Class("metric"),
				h.Div(h.Class("metric-label"), g.Text("NEURAL LOAD")),
				h.Div(h.Class("metric-bar"),
					h.Div(h.Class("metric-fill"),
						h.Style(fmt.Sprintf("width: %d%%; background-color: var(--neon-%s)", c.Load, LoadBand(c.Load)))),
				),
				h.Div(h.Class("metric-value"), g.Textf("%d%%", c.Load)),
			),
			h.Div(h.Class("workout-signature"),
				h.Div(h.Class("signature-label"), g.Text("BIOMETRIC SYNC")),
				h.Div(h.Class("signature-code"), g.Text("#"+c.Signature)),
			),
		),
	)
}

func detail(c Card) g.Node {
	pattern := Pattern(c.Signature)
	return h.Div(h.Class("workout-detail"),
		h.Div(h.Class("detail-header"),
			h.H2(g.Text(c.Name)),
			h.Div(h.Class("protocol-id"), g.Text(c.ProtocolID())),
		),
		h.Div(h.Class("bio-signature-display"),
			h.Div(h.Class("display-header"), g.Text("NEURAL STRAIN MAPPING")),
			h.Div(h.Class("signature-visual"), strainGraph(pattern)),
		),
		h.Div(h.Class("workout-description"),
			h.Div(h.Class("description-header"), g.Text("PROTOCOL DETAILS")),
			h.Div(h.Class("description-content"), g.Text(c.Details())),
		),
		h.Div(h.Class("workout-parameters"),
			parameter("NEURAL LOAD", g.Textf("%d%%", c.Load)),
			parameter("AUGMENTATION REQUIRED", g.Textf("LEVEL %d", c.Level)),
			parameter("NEUREX EFFICIENCY", g.Textf("%d%%", c.Efficiency)),
			parameter("SYNTHETIC STRAIN", strainNodes(c.Strain)),
		),
		h.Div(h.Class("protocol-segments"),
			h.Div(h.Class("segment-header"), g.Text("PROTOCOL SEGMENTS")),
			h.Div(h.Class("segments-list"), g.Map(indexed(c.Segments), segment)),
		),
	)
}

func strainGraph(pattern []Point) g.Node {
	coords := make([]string, len(pattern))
	for i, p := range pattern {
		coords[i] = num(p.X) + "," + num(p.Y)
	}
	circles := make([]g.Node, len(pattern))
	for i, p := range pattern {
		circles[i] = g.El("circle",
			g.Attr("cx", num(p.X)),
			g.Attr("cy", num(p.Y)),
			g.Attr("r", num(1+p.Intensity*2)),
			h.Class("signature-point"),
			h.Style(fmt.Sprintf("animation: pulse %ss infinite; animation-delay: %.1fs", num(1+p.Intensity), float64(i)*0.1)),
		)
	}
	return g.El("svg",
		h.Class("signature-graph"),
		g.Attr("viewBox", "0 0 100 100"),
		g.Attr("preserveAspectRatio", "none"),
		g.El("polyline", g.Attr("points", strings.Join(coords, " ")), h.Class("signature-line")),
		g.Group(circles),
	)
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

func parameter(name string, value g.Node) g.Node {
	return h.Div(h.Class("parameter"),
		h.Div(h.Class("parameter-name"), g.Text(name)),
		h.Div(h.Class("parameter-value"), value),
	)
}

func strainNodes(strain int) g.Node {
	nodes := make([]g.Node, maxStrain)
	for i := range nodes {
		nodes[i] = h.Span(components.Classes{"strain-node": true, "active": i < strain})
	}
	return h.Div(h.Class("strain-level"), g.Group(nodes))
}

type numbered struct {
	n int
	Segment
}

func indexed(segments []Segment) []numbered {
	out := make([]numbered, len(segments))
	for i, s := range segments {
		out[i] = numbered{n: i + 1, Segment: s}
	}
	return out
}

func segment(s numbered) g.Node {
	sync := "NO"
	if s.Sync {
		sync = "YES"
	}
	return h.Div(h.Class("protocol-segment"),
		h.Div(h.Class("segment-header"),
			h.Div(h.Class("segment-name"), g.Textf("SEGMENT %d: %s", s.n, s.Name)),
			h.Div(h.Class("segment-duration"), g.Textf("%d MINUTES", s.Minutes)),
		),
		h.Div(h.Class("segment-metrics"),
			h.Div(h.Class("segment-intensity"), g.Textf("INT: %d%%", s.Intensity)),
			h.Div(h.Class("segment-strain"), g.Textf("STRAIN: %d/%d", s.Strain, maxStrain)),
			h.Div(h.Class("segment-sync"), g.Text("SYNC REQUIRED: "+sync)),
		),
	)
}

package activities

import (
	"fmt"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/octofit/internal/dataview"
	"github.com/nfrund/octofit/internal/domain"
	"github.com/nfrund/octofit/internal/module"
	"github.com/nfrund/octofit/web/src/templates/partials"
)

// EmptyMessage is shown for failed and empty loads.
const EmptyMessage = "NO ACTIVITY DATA DETECTED"

var icons = map[string]string{
	"running":  "🏃‍♂️",
	"cycling":  "🚴‍♂️",
	"swimming": "🏊‍♂️",
	"crossfit": "⚡",
	"strength": "💪",
}

// Icon returns the glyph for an activity type.
func Icon(activityType string) string {
	if icon, ok := icons[cases.Fold().String(activityType)]; ok {
		return icon
	}
	return "🔄"
}

// UserBadge labels who logged an activity. Only a bare user reference is
// shown, truncated to five characters.
func UserBadge(ref domain.UserRef) string {
	if ref.IsEmbedded() || ref.IsZero() {
		return "ANONYMOUS"
	}
	id := []rune(string(ref.ID))
	return "USER#" + string(id[:min(5, len(id))])
}

// TotalMinutes sums the HH:MM part of every duration.
func TotalMinutes(records []domain.Activity) int {
	total := 0
	for _, a := range records {
		total += domain.DurationMinutes(a.Duration)
	}
	return total
}

// Stats is the summary under the table.
func Stats(records []domain.Activity, efficiency int) []module.Stat {
	return []module.Stat{
		{Title: "Total Sessions", Value: strconv.Itoa(len(records))},
		{Title: "Total Duration", Value: strconv.Itoa(TotalMinutes(records)), Unit: "min"},
		{Title: "Neural Efficiency", Value: strconv.Itoa(efficiency), Unit: "%"},
	}
}

// Render draws the panel for one snapshot.
func Render(s dataview.Snapshot[domain.Activity], fx streamFrame, efficiency int) g.Node {
	var body g.Node
	switch s.Class() {
	case dataview.ClassLoading:
		body = partials.Loading("ACCESSING NEURAL FITNESS DATABASE", loadingEffect(fx))
	case dataview.ClassNoData:
		body = partials.NoData(EmptyMessage, "Neural link awaiting new input. Please initiate physical activity sequence.")
	default:
		body = h.Div(h.Class("cyber-data-section"),
			partials.Panel("ACTIVITY LOG", table(s.Records)),
			partials.Stats(Stats(s.Records, efficiency)),
		)
	}
	return partials.View(s.ID, s.Class() == dataview.ClassLoading,
		partials.Heading("Activities"),
		body,
	)
}

func loadingEffect(fx streamFrame) g.Node {
	return g.Group{
		h.Div(h.Class("data-stream"),
			g.Map(indexed(fx.Lines), func(l line) g.Node {
				return h.Div(h.Class("data-line"),
					h.Style(fmt.Sprintf("opacity: %.2f", 1-float64(l.i)/streamLines)),
					g.Text(l.bits),
				)
			}),
		),
		h.Div(h.Class("scan-line"), h.Style(fmt.Sprintf("top: %d%%", fx.Scan))),
	}
}

type line struct {
	i    int
	bits string
}

func indexed(lines []string) []line {
	out := make([]line, len(lines))
	for i, b := range lines {
		out[i] = line{i: i, bits: b}
	}
	return out
}

func table(records []domain.Activity) g.Node {
	return h.Div(h.Class("table-responsive"),
		h.Table(h.Class("table table-striped"),
			h.THead(h.Tr(
				h.Th(g.Text("Activity Type")),
				h.Th(g.Text("Duration")),
				h.Th(g.Text("User")),
				h.Th(g.Text("Neural Link")),
			)),
			h.TBody(g.Map(records, func(a domain.Activity) g.Node {
				return h.Tr(
					h.Td(
						h.Span(h.Class("activity-icon"), g.Text(Icon(a.Type))),
						h.Span(h.Class("activity-type"), g.Text(cases.Title(language.English).String(a.Type))),
					),
					h.Td(h.Div(h.Class("cyber-time-display"), g.Text(a.Duration))),
					h.Td(partials.Badge(UserBadge(a.User))),
					h.Td(h.Div(h.Class("neural-link-status"),
						h.Span(h.Class("status-light online")),
						h.Span(h.Class("status-text"), g.Text("ACTIVE")),
					)),
				)
			})),
		),
	)
}

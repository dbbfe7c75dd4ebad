package teams

import (
	"strconv"

	"github.com/nfrund/octofit/internal/decor"
	"github.com/nfrund/octofit/internal/domain"
	"github.com/nfrund/octofit/internal/module"
)

const (
	maxLinkStrength = 5
	maxDensity      = 150
	miniMapNodes    = 10
)

// Card is a team with its synthetic display attributes.
type Card struct {
	domain.Team
	Code     string
	Synergy  int
	Density  int
	Strength int
	Members  []Member
	// MiniMap and Points are node positions in percent.
	MiniMap []Point
	Points  []Point
}

// Member is one row of the synchronized members list.
type Member struct {
	Avatar string
	Name   string
	Role   string
}

// Point is a node position in percent of its container.
type Point struct {
	X, Y float64
	// Size is in pixels; zero for fixed-size nodes.
	Size float64
}

func wrap(teams []domain.Team) []Card {
	cards := make([]Card, len(teams))
	for i, t := range teams {
		cards[i] = Card{Team: t}
	}
	return cards
}

func decorate(src *decor.Source, cards []Card) []Card {
	for i := range cards {
		c := &cards[i]
		c.Synergy = src.Between(0, 99)
		c.Density = src.Between(50, maxDensity-1)
		c.Strength = src.Between(1, maxLinkStrength)
		c.Code = src.Code("TM-", 5)
		c.Members = members(src, c.Team)
		c.MiniMap = scatter(src, miniMapNodes, false)
		c.Points = scatter(src, c.Density/10, true)
	}
	return cards
}

// members lists at least one row. Listed members keep their name, anything
// without one gets a generated handle.
func members(src *decor.Source, t domain.Team) []Member {
	n := max(1, t.MemberCount())
	out := make([]Member, n)
	for i := range out {
		name := ""
		if i < len(t.Members) {
			name = t.Members[i].DisplayName()
		}
		if name == "" {
			name = src.Handle("User_", 5)
		}
		role := "Neural Member"
		if i == 0 {
			role = "Neural Lead"
		}
		out[i] = Member{Avatar: string(rune('A' + i%26)), Name: name, Role: role}
	}
	return out
}

func scatter(src *decor.Source, n int, sized bool) []Point {
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Point{X: src.Float() * 100, Y: src.Float() * 100}
		if sized {
			pts[i].Size = src.Float()*5 + 2
		}
	}
	return pts
}

// Stats is the summary under the grid.
func Stats(cards []Card) []module.Stat {
	total := 0
	for _, c := range cards {
		total += c.MemberCount()
	}
	avg := 0.0
	if len(cards) > 0 {
		avg = float64(total) / float64(len(cards))
	}
	return []module.Stat{
		{Title: "Collectives", Value: strconv.Itoa(len(cards))},
		{Title: "Synchronized Members", Value: strconv.Itoa(total)},
		{Title: "Avg Members", Value: strconv.FormatFloat(avg, 'f', 1, 64)},
	}
}

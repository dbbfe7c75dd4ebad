package workouts

import (
	"math"
	"strconv"

	"github.com/nfrund/octofit/internal/decor"
	"github.com/nfrund/octofit/internal/domain"
	"github.com/nfrund/octofit/internal/module"
)

// DefaultDescription stands in for workouts without a description.
const DefaultDescription = "A neural-optimized training protocol designed to enhance both physical performance and neural connectivity. This regimen adjusts to your augmentation level and biometric signature for maximum efficiency."

const (
	maxStrain     = 10
	signatureLen  = 8
	protocolIDLen = 6
	minSegments   = 3
	maxSegments   = 5
)

var segmentNames = []string{"NEURAL CALIBRATION", "SYNTH INTENSITY", "REPS MATRIX", "RECOVERY SYNC", "PEAK OUTPUT"}

// Card is a workout with its synthetic display attributes.
type Card struct {
	domain.Workout
	Load       int
	Level      int
	Efficiency int
	Signature  string
	Strain     int
	Segments   []Segment
}

// Segment is one block of a protocol.
type Segment struct {
	Name      string
	Minutes   int
	Intensity int
	Strain    int
	Sync      bool
}

// Point is a vertex of the strain graph in a 100x100 box.
type Point struct {
	X, Y      float64
	Intensity float64
}

// Details is the description, or the default blurb.
func (c Card) Details() string {
	if c.Description != "" {
		return c.Description
	}
	return DefaultDescription
}

// ProtocolID is the short code shown in the detail header.
func (c Card) ProtocolID() string {
	return "PROTOCOL #" + c.Signature[:min(protocolIDLen, len(c.Signature))]
}

// LoadBand names the colour of a neural load.
func LoadBand(load int) string {
	switch {
	case load > 80:
		return "red"
	case load > 50:
		return "yellow"
	default:
		return "green"
	}
}

// Pattern turns a hex signature into graph points, one per byte.
func Pattern(signature string) []Point {
	var pts []Point
	for i := 0; i+1 < len(signature); i += 2 {
		v, err := strconv.ParseUint(signature[i:i+2], 16, 8)
		if err != nil {
			continue
		}
		pts = append(pts, Point{
			X:         float64(i) / float64(len(signature)) * 100,
			Y:         float64(v) / 255 * 100,
			Intensity: float64(v%16) / 16,
		})
	}
	return pts
}

func wrap(workouts []domain.Workout) []Card {
	cards := make([]Card, len(workouts))
	for i, w := range workouts {
		cards[i] = Card{Workout: w}
	}
	return cards
}

func decorate(src *decor.Source, cards []Card) []Card {
	for i := range cards {
		c := &cards[i]
		c.Load = src.Between(0, 99)
		c.Level = src.Between(1, 5)
		c.Efficiency = src.Between(70, 99)
		c.Signature = src.Hex(signatureLen)
		c.Strain = src.Between(1, maxStrain)
		c.Segments = make([]Segment, src.Between(minSegments, maxSegments))
		for j := range c.Segments {
			c.Segments[j] = Segment{
				Name:      segmentNames[j%len(segmentNames)],
				Minutes:   src.Between(5, 19),
				Intensity: src.Between(50, 99),
				Strain:    src.Between(1, maxStrain),
				Sync:      src.Chance(0.5),
			}
		}
	}
	return cards
}

// AverageLoad is the mean neural load rounded half up.
func AverageLoad(cards []Card) int {
	if len(cards) == 0 {
		return 0
	}
	sum := 0
	for _, c := range cards {
		sum += c.Load
	}
	return int(math.Floor(float64(sum)/float64(len(cards)) + 0.5))
}

// Stats is the summary under the grid.
func Stats(cards []Card) []module.Stat {
	return []module.Stat{
		{Title: "Protocols", Value: strconv.Itoa(len(cards))},
		{Title: "Avg Neural Load", Value: strconv.Itoa(AverageLoad(cards)), Unit: "%"},
	}
}

package teams

import (
	"slices"
	"sync"

	"github.com/nfrund/octofit/internal/decor"
)

const (
	synapseLines = 20
	synapseNodes = 20
	detailLines  = 10
)

// Line is one synapse connection, coordinates in percent.
type Line struct {
	X1, Y1, X2, Y2 float64
	Opacity        float64
	// Duration of the pulse animation in seconds.
	Duration float64
}

// synapses is the neural network effect, regenerated on every step.
type synapses struct {
	src *decor.Source

	mu    sync.Mutex
	lines []Line
	nodes []Point
}

type synapseFrame struct {
	Lines []Line
	Nodes []Point
}

func newSynapses(src *decor.Source) *synapses {
	s := &synapses{src: src}
	s.Step(0)
	return s
}

func (s *synapses) Step(uint64) {
	lines := make([]Line, synapseLines)
	for i := range lines {
		lines[i] = Line{
			X1:       s.src.Float() * 100,
			Y1:       s.src.Float() * 100,
			X2:       s.src.Float() * 100,
			Y2:       s.src.Float() * 100,
			Opacity:  s.src.Float()*0.5 + 0.2,
			Duration: s.src.Float()*4 + 1,
		}
	}
	nodes := scatter(s.src, synapseNodes, false)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = lines
	s.nodes = nodes
}

func (s *synapses) Frame() synapseFrame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return synapseFrame{Lines: slices.Clone(s.lines), Nodes: slices.Clone(s.nodes)}
}

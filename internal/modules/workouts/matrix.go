package workouts

import (
	"sync"

	"github.com/nfrund/octofit/internal/decor"
)

const (
	matrixRows = 15
	matrixCols = 40
	phases     = 3
)

// matrix is the loading effect: a fixed grid of bits with a pulse that
// moves diagonally through three phases.
type matrix struct {
	cells []string

	mu    sync.Mutex
	phase int
}

type matrixFrame struct {
	Cells []string
	Phase int
}

func newMatrix(src *decor.Source) *matrix {
	cells := make([]string, matrixRows)
	for i := range cells {
		cells[i] = src.Bits(matrixCols)
	}
	return &matrix{cells: cells}
}

func (m *matrix) Step(uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.phase = (m.phase + 1) % phases
}

// Frame shares the cells, which never change after construction.
func (m *matrix) Frame() matrixFrame {
	m.mu.Lock()
	defer m.mu.Unlock()
	return matrixFrame{Cells: m.cells, Phase: m.phase}
}

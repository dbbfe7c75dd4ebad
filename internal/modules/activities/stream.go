package activities

import (
	"slices"
	"sync"

	"github.com/nfrund/octofit/internal/decor"
)

const (
	streamLines = 20
	streamWidth = 30
)

// stream is the data-stream loading effect: a scan line sweeping down and
// up to twenty lines of random bits filling in.
type stream struct {
	src *decor.Source

	mu    sync.Mutex
	scan  int
	lines []string
}

// streamFrame is what one render of the effect needs.
type streamFrame struct {
	Scan  int
	Lines []string
}

func newStream(src *decor.Source) *stream {
	return &stream{src: src}
}

func (s *stream) Step(uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scan = (s.scan + 1) % 100
	if len(s.lines) < streamLines {
		s.lines = append(s.lines, s.src.Bits(streamWidth))
	}
}

// Frame copies the current effect state.
func (s *stream) Frame() streamFrame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return streamFrame{Scan: s.scan, Lines: slices.Clone(s.lines)}
}

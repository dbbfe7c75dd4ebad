package users

import (
	"sync"

	"github.com/nfrund/octofit/internal/decor"
)

// scan is the loading progress, advancing by 1 to 5 percent per step
// until it reaches 100.
type scan struct {
	src *decor.Source

	mu       sync.Mutex
	progress int
}

func newScan(src *decor.Source) *scan {
	return &scan{src: src}
}

func (s *scan) Step(uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.progress >= 100 {
		return
	}
	s.progress = min(s.progress+s.src.Between(1, 5), 100)
}

func (s *scan) Progress() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progress
}

type logEntry struct {
	after   int
	text    string
	success bool
}

var scanLog = []logEntry{
	{after: 20, text: "Initializing user database connection"},
	{after: 40, text: "Scanning biometric signatures"},
	{after: 60, text: "Authenticating neural links"},
	{after: 80, text: "Verifying user augmentation profiles"},
	{after: 99, text: "User data access granted", success: true},
}

// revealed returns the log lines shown at the given progress.
func revealed(progress int) []logEntry {
	var out []logEntry
	for _, e := range scanLog {
		if progress > e.after {
			out = append(out, e)
		}
	}
	return out
}

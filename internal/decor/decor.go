// Package decor produces the synthetic display attributes of the themed UI:
// synergy levels, biometric signatures, glitch flags and the like. None of
// these values come from or go to the backend.
package decor

import (
	"math/rand/v2"
	"strings"
	"sync"
)

const (
	base36 = "0123456789abcdefghijklmnopqrstuvwxyz"
	hex    = "0123456789ABCDEF"
)

// Source is a concurrency-safe random source for decorative values.
type Source struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New returns a Source seeded from the runtime's random generator.
func New() *Source {
	return &Source{rnd: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// Seeded returns a deterministic Source, used by tests.
func Seeded(seed uint64) *Source {
	return &Source{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Between returns an int in [lo, hi].
func (s *Source) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo + s.rnd.IntN(hi-lo+1)
}

// Chance reports true with probability p.
func (s *Source) Chance(p float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64() < p
}

// Float returns a float in [0, 1).
func (s *Source) Float() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}

// Pick returns one of options, or "" when there are none.
func (s *Source) Pick(options ...string) string {
	if len(options) == 0 {
		return ""
	}
	return options[s.Between(0, len(options)-1)]
}

// Code returns prefix followed by n upper-case base36 characters,
// e.g. "TM-4QZ7K".
func (s *Source) Code(prefix string, n int) string {
	return prefix + strings.ToUpper(s.fromAlphabet(base36, n))
}

// Handle returns prefix followed by n lower-case base36 characters,
// e.g. "User_k3j9a".
func (s *Source) Handle(prefix string, n int) string {
	return prefix + s.fromAlphabet(base36, n)
}

// Hex returns n upper-case hexadecimal digits.
func (s *Source) Hex(n int) string {
	return s.fromAlphabet(hex, n)
}

// Bits returns a string of n random '0'/'1' characters.
func (s *Source) Bits(n int) string {
	return s.fromAlphabet("01", n)
}

func (s *Source) fromAlphabet(alphabet string, n int) string {
	if n <= 0 {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(alphabet[s.rnd.IntN(len(alphabet))])
	}
	return b.String()
}

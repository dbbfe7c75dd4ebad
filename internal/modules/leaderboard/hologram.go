package leaderboard

import "sync"

// hologram holds the loading rotation and the pulse of the first place.
type hologram struct {
	mu       sync.Mutex
	rotation int
	pulsing  bool
}

type hologramFrame struct {
	Rotation int
	Pulse    bool
}

func (h *hologram) rotate(uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.rotation = (h.rotation + 1) % 360
}

func (h *hologram) pulse(uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pulsing = !h.pulsing
}

func (h *hologram) Frame() hologramFrame {
	h.mu.Lock()
	defer h.mu.Unlock()
	return hologramFrame{Rotation: h.rotation, Pulse: h.pulsing}
}

// Package shell owns the navigation chrome and the table of data-views
// mounted by browser sessions. Each session has at most one mounted view;
// navigating anywhere unmounts it.
package shell

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/nfrund/octofit/internal/dataview"
	"github.com/nfrund/octofit/internal/decor"
	"github.com/nfrund/octofit/internal/module"
	"github.com/nfrund/octofit/internal/observability"
	"github.com/nfrund/octofit/internal/registry"
	"github.com/nfrund/octofit/internal/rendering"
)

// Key locates the shell in the registry.
const Key registry.Key[*Shell] = "core.shell"

// DefaultTTL is how long a mounted view survives without being polled.
const DefaultTTL = 2 * time.Minute

// Options configures a Shell.
type Options struct {
	Renderer rendering.Renderer
	// Notifier receives the load outcomes of every mounted view.
	Notifier dataview.Notifier
	TTL      time.Duration
	Now      func() time.Time
	Decor    *decor.Source
}

// Shell is the mount table plus the page handlers.
type Shell struct {
	renderer rendering.Renderer
	notifier dataview.Notifier
	ttl      time.Duration
	now      func() time.Time
	decor    *decor.Source
	started  time.Time

	// ctx bounds every mounted view; Shutdown cancels it.
	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	mounts   map[string]*mount
	sessions map[string]string
	nav      []module.Route

	reaper sync.WaitGroup
}

type mount struct {
	panel   module.Panel
	session string
	seen    time.Time
}

// New creates an empty shell.
func New(opts Options) *Shell {
	if opts.Renderer == nil {
		opts.Renderer = rendering.NewUniversalRenderer()
	}
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Decor == nil {
		opts.Decor = decor.New()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Shell{
		renderer: opts.Renderer,
		notifier: opts.Notifier,
		ttl:      opts.TTL,
		now:      opts.Now,
		decor:    opts.Decor,
		started:  opts.Now(),
		ctx:      ctx,
		cancel:   cancel,
		mounts:   make(map[string]*mount),
		sessions: make(map[string]string),
	}
}

// Nav returns the navigation entries in attach order.
func (s *Shell) Nav() []module.Route {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]module.Route(nil), s.nav...)
}

// Mount creates a view of d for session, replacing the session's previous
// view, and starts it.
func (s *Shell) Mount(session string, d module.Dashboard) module.Panel {
	var opts []dataview.Option
	if s.notifier != nil {
		opts = append(opts, dataview.WithNotifier(s.notifier))
	}
	panel := d.NewPanel(opts...)
	// Started before it is published so a racing release always finds a
	// running view to stop.
	panel.Mount(s.ctx)

	s.mu.Lock()
	previous := s.detachSessionLocked(session)
	s.mounts[panel.ID()] = &mount{panel: panel, session: session, seen: s.now()}
	s.sessions[session] = panel.ID()
	s.mu.Unlock()

	if previous != nil {
		s.teardown(previous)
	}
	observability.ViewMounted(panel.Resource())
	slog.Debug("Mounted view", "resource", panel.Resource(), "mount_id", panel.ID(), "session_id", session)
	return panel
}

// Lookup returns a live view and marks it as seen.
func (s *Shell) Lookup(id string) (module.Panel, bool) {
	m, ok := s.lookup(id)
	if !ok {
		return nil, false
	}
	return m.panel, true
}

func (s *Shell) lookup(id string) (*mount, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.mounts[id]
	if ok {
		m.seen = s.now()
	}
	return m, ok
}

// Unmount tears a view down. It reports whether the view was mounted.
func (s *Shell) Unmount(id string) bool {
	s.mu.Lock()
	m, ok := s.mounts[id]
	if ok {
		s.detachLocked(id, m)
	}
	s.mu.Unlock()

	if ok {
		s.teardown(m)
	}
	return ok
}

// UnmountSession tears down whatever view session has mounted.
func (s *Shell) UnmountSession(session string) {
	s.mu.Lock()
	m := s.detachSessionLocked(session)
	s.mu.Unlock()
	if m != nil {
		s.teardown(m)
	}
}

// Reap unmounts views not seen since now minus the TTL and returns how
// many it removed.
func (s *Shell) Reap(now time.Time) int {
	cutoff := now.Add(-s.ttl)

	s.mu.Lock()
	var stale []*mount
	for id, m := range s.mounts {
		if m.seen.Before(cutoff) {
			s.detachLocked(id, m)
			stale = append(stale, m)
		}
	}
	s.mu.Unlock()

	for _, m := range stale {
		s.teardown(m)
	}
	if len(stale) > 0 {
		slog.Debug("Reaped idle views", "count", len(stale))
	}
	return len(stale)
}

// Mounted is the number of live views.
func (s *Shell) Mounted() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.mounts)
}

// Start runs the reaper until ctx ends or Shutdown is called.
func (s *Shell) Start(ctx context.Context) {
	interval := max(s.ttl/2, time.Second)
	s.reaper.Add(1)
	go func() {
		defer s.reaper.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				s.Reap(s.now())
			}
		}
	}()
}

// Shutdown stops the reaper and unmounts every view.
func (s *Shell) Shutdown(ctx context.Context) error {
	s.cancel()

	s.mu.Lock()
	all := make([]*mount, 0, len(s.mounts))
	for id, m := range s.mounts {
		s.detachLocked(id, m)
		all = append(all, m)
	}
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		for _, m := range all {
			s.teardown(m)
		}
		s.reaper.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Shell) detachSessionLocked(session string) *mount {
	id, ok := s.sessions[session]
	if !ok {
		return nil
	}
	m := s.mounts[id]
	s.detachLocked(id, m)
	return m
}

func (s *Shell) detachLocked(id string, m *mount) {
	delete(s.mounts, id)
	if m != nil && s.sessions[m.session] == id {
		delete(s.sessions, m.session)
	}
}

func (s *Shell) teardown(m *mount) {
	if m == nil {
		return
	}
	m.panel.Unmount()
	observability.ViewUnmounted(m.panel.Resource())
}

// Package dataview implements the fetch-lifecycle shared by every
// dashboard panel: mount, one delayed fetch, settle, render, unmount.
package dataview

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nfrund/octofit/internal/domain"
)

var (
	// ErrNotReady is returned by Select before a successful load.
	ErrNotReady = errors.New("view has no records yet")
	// ErrNoSelection is returned by Select on views without a detail panel.
	ErrNoSelection = errors.New("view does not support selection")
)

// Resource describes what a view loads and how it shapes the result.
type Resource[T any] struct {
	Name string
	// Delay is the artificial presentation delay before the fetch.
	Delay time.Duration
	Fetch func(ctx context.Context) ([]T, error)
	// Derive reshapes fetched records, for example sorting or decorating.
	// It runs once per successful load.
	Derive func([]T) []T
	// Key names a record for selection. Nil disables selection.
	Key func(rec T, pos int) string
}

// Option configures a View.
type Option func(*options)

type options struct {
	id       string
	notifier Notifier
	anims    []animation
}

// WithID overrides the generated mount id.
func WithID(id string) Option {
	return func(o *options) { o.id = id }
}

// WithNotifier sets where load outcomes are reported.
func WithNotifier(n Notifier) Option {
	return func(o *options) { o.notifier = n }
}

// WithAnimator runs a on a ticker of the given period while mounted.
func WithAnimator(every time.Duration, a Animator) Option {
	return func(o *options) { o.anims = append(o.anims, animation{every: every, a: a}) }
}

// View is one mounted instance of a data panel.
type View[T any] struct {
	res      Resource[T]
	id       string
	notifier Notifier
	anims    []animation

	mu       sync.Mutex
	state    State
	records  []T
	selected int
	mounted  bool
	used     bool
	gen      uint64
	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}
	fetches  int

	animWG sync.WaitGroup
}

// New returns an idle view over res.
func New[T any](res Resource[T], opts ...Option) *View[T] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == "" {
		o.id = uuid.NewString()
	}
	if o.notifier == nil {
		o.notifier = LogNotifier{Logger: slog.Default()}
	}
	return &View[T]{
		res:      res,
		id:       o.id,
		notifier: o.notifier,
		anims:    o.anims,
		selected: -1,
	}
}

func (v *View[T]) ID() string       { return v.id }
func (v *View[T]) Resource() string { return v.res.Name }

// Mount moves the view to Loading and starts its load and animators. The
// view lives until Unmount or until parent is cancelled. A view can be
// mounted once.
func (v *View[T]) Mount(parent context.Context) {
	v.mu.Lock()
	if v.used {
		v.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(parent)
	v.used = true
	v.mounted = true
	v.ctx = ctx
	v.cancel = cancel
	gen, done := v.beginLocked()
	v.animWG.Add(len(v.anims))
	v.mu.Unlock()

	for _, an := range v.anims {
		go an.run(ctx, &v.animWG)
	}
	go v.run(ctx, gen, done)
}

// Load reloads a mounted view and blocks until it settles. Calling it on a
// view that is not mounted does nothing and returns the current state.
func (v *View[T]) Load(ctx context.Context) State {
	v.mu.Lock()
	if !v.mounted {
		st := v.state
		v.mu.Unlock()
		return st
	}
	mountCtx := v.ctx
	gen, done := v.beginLocked()
	v.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(mountCtx, cancel)
	defer stop()
	return v.run(ctx, gen, done)
}

// beginLocked starts a new load generation. Any older load in flight loses
// ownership.
func (v *View[T]) beginLocked() (uint64, chan struct{}) {
	v.gen++
	v.state = Loading
	v.done = make(chan struct{})
	return v.gen, v.done
}

func (v *View[T]) run(ctx context.Context, gen uint64, done chan struct{}) State {
	defer close(done)

	if v.res.Delay > 0 {
		timer := time.NewTimer(v.res.Delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return v.settle(ctx, gen, nil, ctx.Err(), 0)
		case <-timer.C:
		}
	}

	v.mu.Lock()
	v.fetches++
	v.mu.Unlock()

	start := time.Now()
	records, err := v.res.Fetch(ctx)
	elapsed := time.Since(start)
	if err == nil && v.res.Derive != nil {
		records = v.res.Derive(records)
	}
	return v.settle(ctx, gen, records, err, elapsed)
}

func (v *View[T]) settle(ctx context.Context, gen uint64, records []T, err error, elapsed time.Duration) State {
	ev := Event{MountID: v.id, Resource: v.res.Name, Elapsed: elapsed, Records: len(records)}
	if err != nil {
		ev.State = Failed
		ev.Kind = failureKind(err)
		ev.Error = err.Error()
		ev.Records = 0
	} else {
		ev.State = Success
	}

	v.mu.Lock()
	if !v.mounted || gen != v.gen {
		current := v.state
		v.mu.Unlock()
		ev.Discarded = true
		v.notifier.Notify(context.WithoutCancel(ctx), ev)
		return current
	}
	v.state = ev.State
	v.selected = -1
	if err != nil {
		v.records = nil
	} else {
		v.records = records
		if len(records) > 0 && v.res.Key != nil {
			v.selected = 0
		}
	}
	v.mu.Unlock()

	v.notifier.Notify(context.WithoutCancel(ctx), ev)
	return ev.State
}

// Unmount cancels the in-flight fetch and stops the animators. Results
// that arrive later are dropped. Safe to call more than once. A view
// unmounted before it was mounted can no longer be mounted.
func (v *View[T]) Unmount() {
	v.mu.Lock()
	v.used = true
	if !v.mounted {
		v.mu.Unlock()
		return
	}
	v.mounted = false
	v.gen++
	cancel := v.cancel
	v.mu.Unlock()

	cancel()
	v.animWG.Wait()
}

// Select focuses the record whose key matches.
func (v *View[T]) Select(key string) error {
	if v.res.Key == nil {
		return ErrNoSelection
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state != Success || len(v.records) == 0 {
		return ErrNotReady
	}
	for i, rec := range v.records {
		if v.res.Key(rec, i) == key {
			v.selected = i
			return nil
		}
	}
	return domain.ErrNotFound
}

// Done is closed when the current load settles. Before Mount it is
// already closed.
func (v *View[T]) Done() <-chan struct{} {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.done == nil {
		ch := make(chan struct{})
		close(ch)
		return ch
	}
	return v.done
}

// State returns the current lifecycle state.
func (v *View[T]) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Mounted reports whether the view is between Mount and Unmount.
func (v *View[T]) Mounted() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.mounted
}

// Fetches is the number of fetches this view has issued.
func (v *View[T]) Fetches() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.fetches
}

// Snapshot copies the view state for rendering.
func (v *View[T]) Snapshot() Snapshot[T] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Snapshot[T]{
		ID:       v.id,
		Resource: v.res.Name,
		State:    v.state,
		Records:  slices.Clone(v.records),
		Selected: v.selected,
	}
}

// Snapshot is an immutable view of a View at one point in time.
type Snapshot[T any] struct {
	ID       string
	Resource string
	State    State
	Records  []T
	// Selected indexes Records, or is -1.
	Selected int
}

// Class is the render class of the snapshot.
func (s Snapshot[T]) Class() Class { return ClassOf(s.State, len(s.Records)) }

// Focus returns the selected record.
func (s Snapshot[T]) Focus() (T, bool) {
	if s.Selected < 0 || s.Selected >= len(s.Records) {
		var zero T
		return zero, false
	}
	return s.Records[s.Selected], true
}

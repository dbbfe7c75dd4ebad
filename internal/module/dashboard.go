package module

import (
	"context"
	"time"

	g "maragu.dev/gomponents"

	"github.com/nfrund/octofit/internal/apiclient"
	"github.com/nfrund/octofit/internal/dataview"
	"github.com/nfrund/octofit/internal/decor"
)

// Route is a navigation entry of the shell.
type Route struct {
	Path  string
	Label string
	Title string
}

// Stat is one summary tile under a table.
type Stat struct {
	Title string
	Value string
	// Unit is drawn after the value, e.g. "min" or "%".
	Unit string
}

// Panel is a mounted data-view that can draw itself.
type Panel interface {
	ID() string
	Resource() string
	Mount(ctx context.Context)
	Unmount()
	// Load reloads a mounted panel and blocks until it settles.
	Load(ctx context.Context) dataview.State
	Select(key string) error
	Done() <-chan struct{}
	State() dataview.State
	// Render draws the current snapshot.
	Render() g.Node
	// Stats is the summary of the current snapshot, nil unless it has rows.
	Stats() []Stat
}

// Dashboard is a module that owns one routed data-view.
type Dashboard interface {
	Module
	Route() Route
	NewPanel(opts ...dataview.Option) Panel
}

// Dependencies are shared by every dashboard module.
type Dependencies struct {
	Client *apiclient.Client
	// DelayScale multiplies the presentation delays. 0 disables them.
	DelayScale float64
	// Decor creates the per-mount source of decorative randomness.
	// Defaults to decor.New.
	Decor func() *decor.Source
	// Now is the clock used for synthetic timestamps. Defaults to time.Now.
	Now func() time.Time
}

// Delay scales a presentation delay.
func (d Dependencies) Delay(base time.Duration) time.Duration {
	if d.DelayScale <= 0 {
		return 0
	}
	return time.Duration(float64(base) * d.DelayScale)
}

// NewDecor returns a fresh decorative source.
func (d Dependencies) NewDecor() *decor.Source {
	if d.Decor != nil {
		return d.Decor()
	}
	return decor.New()
}

// Clock returns the configured clock.
func (d Dependencies) Clock() func() time.Time {
	if d.Now != nil {
		return d.Now
	}
	return time.Now
}

// Bind turns a view plus its renderer and summary into a Panel.
func Bind[T any](v *dataview.View[T], render func(dataview.Snapshot[T]) g.Node, stats func(dataview.Snapshot[T]) []Stat) Panel {
	return &boundPanel[T]{View: v, render: render, stats: stats}
}

type boundPanel[T any] struct {
	*dataview.View[T]
	render func(dataview.Snapshot[T]) g.Node
	stats  func(dataview.Snapshot[T]) []Stat
}

func (p *boundPanel[T]) Render() g.Node { return p.render(p.Snapshot()) }

func (p *boundPanel[T]) Stats() []Stat {
	snap := p.Snapshot()
	if p.stats == nil || snap.Class() != dataview.ClassTable {
		return nil
	}
	return p.stats(snap)
}

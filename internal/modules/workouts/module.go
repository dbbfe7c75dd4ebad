// Package workouts is the training protocols dashboard.
package workouts

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"

	"github.com/nfrund/octofit/internal/apiclient"
	"github.com/nfrund/octofit/internal/dataview"
	"github.com/nfrund/octofit/internal/module"
	"github.com/nfrund/octofit/internal/registry"
	"github.com/nfrund/octofit/internal/shell"
)

const (
	presentationDelay = 2500 * time.Millisecond
	phaseInterval     = 500 * time.Millisecond
)

// Module implements module.Dashboard for /workouts.
type Module struct {
	module.BaseModule
	deps module.Dependencies
}

// New creates the workouts module.
func New(deps module.Dependencies) *Module {
	return &Module{deps: deps}
}

func (m *Module) Name() string { return apiclient.ResourceWorkouts }

func (m *Module) Route() module.Route {
	return module.Route{Path: "/workouts", Label: "Workouts", Title: "Workouts"}
}

// Boot attaches the page route to the shell.
func (m *Module) Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error {
	registry.MustGet(reg, shell.Key).Attach(router, m)
	return nil
}

// NewPanel creates an unmounted protocol grid with a detail panel.
func (m *Module) NewPanel(opts ...dataview.Option) module.Panel {
	src := m.deps.NewDecor()
	fx := newMatrix(src)

	res := dataview.Resource[Card]{
		Name:  apiclient.ResourceWorkouts,
		Delay: m.deps.Delay(presentationDelay),
		Fetch: func(ctx context.Context) ([]Card, error) {
			workouts, err := m.deps.Client.Workouts(ctx)
			if err != nil {
				return nil, err
			}
			return wrap(workouts), nil
		},
		Derive: func(cards []Card) []Card { return decorate(src, cards) },
		Key:    func(c Card, pos int) string { return c.KeyOr(pos) },
	}
	opts = append(opts, dataview.WithAnimator(phaseInterval, fx))
	v := dataview.New(res, opts...)

	return module.Bind(v,
		func(s dataview.Snapshot[Card]) g.Node { return Render(s, fx.Frame()) },
		func(s dataview.Snapshot[Card]) []module.Stat { return Stats(s.Records) },
	)
}

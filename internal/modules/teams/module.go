// Package teams is the neural collectives dashboard.
package teams

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
	presentationDelay = 1800 * time.Millisecond
	synapseInterval   = 5 * time.Second
)

// Module implements module.Dashboard for /teams.
type Module struct {
	module.BaseModule
	deps module.Dependencies
}

// New creates the teams module.
func New(deps module.Dependencies) *Module {
	return &Module{deps: deps}
}

func (m *Module) Name() string { return apiclient.ResourceTeams }

func (m *Module) Route() module.Route {
	return module.Route{Path: "/teams", Label: "Teams", Title: "Teams"}
}

// Boot attaches the page route to the shell.
func (m *Module) Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error {
	registry.MustGet(reg, shell.Key).Attach(router, m)
	return nil
}

// NewPanel creates an unmounted team grid with a detail panel.
func (m *Module) NewPanel(opts ...dataview.Option) module.Panel {
	src := m.deps.NewDecor()
	fx := newSynapses(src)

	res := dataview.Resource[Card]{
		Name:  apiclient.ResourceTeams,
		Delay: m.deps.Delay(presentationDelay),
		Fetch: func(ctx context.Context) ([]Card, error) {
			teams, err := m.deps.Client.Teams(ctx)
			if err != nil {
				return nil, err
			}
			return wrap(teams), nil
		},
		Derive: func(cards []Card) []Card { return decorate(src, cards) },
		Key:    func(c Card, pos int) string { return c.KeyOr(pos) },
	}
	opts = append(opts, dataview.WithAnimator(synapseInterval, fx))
	v := dataview.New(res, opts...)

	return module.Bind(v,
		func(s dataview.Snapshot[Card]) g.Node { return Render(s, fx.Frame()) },
		func(s dataview.Snapshot[Card]) []module.Stat { return Stats(s.Records) },
	)
}

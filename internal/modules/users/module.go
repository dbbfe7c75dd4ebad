// Package users is the registered users dashboard.
package users

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
	presentationDelay = 2000 * time.Millisecond
	scanInterval      = 100 * time.Millisecond
)

// Module implements module.Dashboard for /users.
type Module struct {
	module.BaseModule
	deps module.Dependencies
}

// New creates the users module.
func New(deps module.Dependencies) *Module {
	return &Module{deps: deps}
}

func (m *Module) Name() string { return apiclient.ResourceUsers }

func (m *Module) Route() module.Route {
	return module.Route{Path: "/users", Label: "Users", Title: "Users"}
}

// Boot attaches the page route to the shell.
func (m *Module) Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error {
	registry.MustGet(reg, shell.Key).Attach(router, m)
	return nil
}

// NewPanel creates an unmounted user table with a detail panel.
func (m *Module) NewPanel(opts ...dataview.Option) module.Panel {
	src := m.deps.NewDecor()
	now := m.deps.Clock()
	fx := newScan(src)

	res := dataview.Resource[Card]{
		Name:  apiclient.ResourceUsers,
		Delay: m.deps.Delay(presentationDelay),
		Fetch: func(ctx context.Context) ([]Card, error) {
			users, err := m.deps.Client.Users(ctx)
			if err != nil {
				return nil, err
			}
			return wrap(users), nil
		},
		Derive: func(cards []Card) []Card { return decorate(src, now(), cards) },
		Key:    func(c Card, pos int) string { return c.KeyOr(pos) },
	}
	opts = append(opts, dataview.WithAnimator(scanInterval, fx))
	v := dataview.New(res, opts...)

	return module.Bind(v,
		func(s dataview.Snapshot[Card]) g.Node { return Render(s, fx.Progress()) },
		func(s dataview.Snapshot[Card]) []module.Stat { return Stats(s.Records) },
	)
}

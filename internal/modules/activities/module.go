// Package activities is the activity log dashboard.
package activities

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"

	"github.com/nfrund/octofit/internal/apiclient"
	"github.com/nfrund/octofit/internal/dataview"
	"github.com/nfrund/octofit/internal/domain"
	"github.com/nfrund/octofit/internal/module"
	"github.com/nfrund/octofit/internal/registry"
	"github.com/nfrund/octofit/internal/shell"
)

const (
	presentationDelay = 1500 * time.Millisecond
	streamInterval    = 200 * time.Millisecond
)

// Module implements module.Dashboard for /activities.
type Module struct {
	module.BaseModule
	deps module.Dependencies
}

// New creates the activities module.
func New(deps module.Dependencies) *Module {
	return &Module{deps: deps}
}

func (m *Module) Name() string { return apiclient.ResourceActivities }

func (m *Module) Route() module.Route {
	return module.Route{Path: "/activities", Label: "Activities", Title: "Activities"}
}

// Boot attaches the page route to the shell.
func (m *Module) Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error {
	registry.MustGet(reg, shell.Key).Attach(router, m)
	return nil
}

// NewPanel creates an unmounted activity log.
func (m *Module) NewPanel(opts ...dataview.Option) module.Panel {
	src := m.deps.NewDecor()
	fx := newStream(src)
	efficiency := src.Between(80, 99)

	res := dataview.Resource[domain.Activity]{
		Name:  apiclient.ResourceActivities,
		Delay: m.deps.Delay(presentationDelay),
		Fetch: m.deps.Client.Activities,
	}
	opts = append(opts, dataview.WithAnimator(streamInterval, fx))
	v := dataview.New(res, opts...)

	return module.Bind(v,
		func(s dataview.Snapshot[domain.Activity]) g.Node { return Render(s, fx.Frame(), efficiency) },
		func(s dataview.Snapshot[domain.Activity]) []module.Stat { return Stats(s.Records, efficiency) },
	)
}

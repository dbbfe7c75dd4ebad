// Package leaderboard ranks competitors by neural score.
package leaderboard

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
	presentationDelay = 1200 * time.Millisecond
	rotationInterval  = 50 * time.Millisecond
	pulseInterval     = 1500 * time.Millisecond
)

// Module implements module.Dashboard for /leaderboard.
type Module struct {
	module.BaseModule
	deps module.Dependencies
}

// New creates the leaderboard module.
func New(deps module.Dependencies) *Module {
	return &Module{deps: deps}
}

func (m *Module) Name() string { return apiclient.ResourceLeaderboard }

func (m *Module) Route() module.Route {
	return module.Route{Path: "/leaderboard", Label: "Leaderboard", Title: "Leaderboard"}
}

// Boot attaches the page route to the shell.
func (m *Module) Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error {
	registry.MustGet(reg, shell.Key).Attach(router, m)
	return nil
}

// NewPanel creates an unmounted leaderboard. Entries are ranked by score,
// highest first, keeping server order among equal scores.
func (m *Module) NewPanel(opts ...dataview.Option) module.Panel {
	fx := &hologram{}
	res := dataview.Resource[domain.LeaderboardEntry]{
		Name:   apiclient.ResourceLeaderboard,
		Delay:  m.deps.Delay(presentationDelay),
		Fetch:  m.deps.Client.Leaderboard,
		Derive: domain.RankByScore,
	}
	opts = append(opts,
		dataview.WithAnimator(rotationInterval, dataview.AnimatorFunc(fx.rotate)),
		dataview.WithAnimator(pulseInterval, dataview.AnimatorFunc(fx.pulse)),
	)
	v := dataview.New(res, opts...)

	return module.Bind(v,
		func(s dataview.Snapshot[domain.LeaderboardEntry]) g.Node { return Render(s, fx.Frame()) },
		func(s dataview.Snapshot[domain.LeaderboardEntry]) []module.Stat { return Stats(s.Records) },
	)
}

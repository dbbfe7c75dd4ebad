package app

import (
	"log/slog"
	"time"

	"github.com/nfrund/octofit/internal/apiclient"
	"github.com/nfrund/octofit/internal/diagnostics"
	"github.com/nfrund/octofit/internal/module"
	"github.com/nfrund/octofit/internal/modules/activities"
	"github.com/nfrund/octofit/internal/modules/leaderboard"
	"github.com/nfrund/octofit/internal/modules/teams"
	"github.com/nfrund/octofit/internal/modules/users"
	"github.com/nfrund/octofit/internal/modules/workouts"
)

// Dependencies holds the core services that are required by the application's modules.
// This struct is passed from the main application entrypoint to wire up the modules.
type Dependencies struct {
	Client     *apiclient.Client
	DelayScale float64
	Logger     *slog.Logger
	// Now overrides the dashboards' clock, mainly for tests.
	Now func() time.Time
}

func dashboardDeps(deps Dependencies) module.Dependencies {
	return module.Dependencies{
		Client:     deps.Client,
		DelayScale: deps.DelayScale,
		Now:        deps.Now,
	}
}

// Dashboards returns the routed data-views in navigation order.
func Dashboards(deps Dependencies) []module.Dashboard {
	d := dashboardDeps(deps)
	return []module.Dashboard{
		activities.New(d),
		leaderboard.New(d),
		teams.New(d),
		users.New(d),
		workouts.New(d),
	}
}

// NewModules creates and returns the list of all active modules for the application.
// This is the single source of truth for which features are enabled.
func NewModules(deps Dependencies) []module.Module {
	mods := []module.Module{
		diagnostics.NewModule(deps.Logger),
	}
	for _, d := range Dashboards(deps) {
		mods = append(mods, d)
	}
	return mods
}

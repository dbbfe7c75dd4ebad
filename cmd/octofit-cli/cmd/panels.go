package cmd

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/nfrund/octofit/internal/apiclient"
	"github.com/nfrund/octofit/internal/app"
	"github.com/nfrund/octofit/internal/module"
)

// settled is one dashboard after its load finished.
type settled struct {
	Dashboard module.Dashboard
	Panel     module.Panel
}

// settleAll mounts every dashboard side by side and waits for all loads.
// Panels are returned in navigation order and are already unmounted.
func settleAll(ctx context.Context, client *apiclient.Client, paced bool) ([]settled, error) {
	scale := 0.0
	if paced {
		scale = 1
	}
	dashboards := app.Dashboards(app.Dependencies{Client: client, DelayScale: scale})
	out := make([]settled, len(dashboards))

	g, ctx := errgroup.WithContext(ctx)
	for i, d := range dashboards {
		g.Go(func() error {
			p := d.NewPanel()
			p.Mount(ctx)
			defer p.Unmount()
			select {
			case <-p.Done():
			case <-ctx.Done():
				return ctx.Err()
			}
			out[i] = settled{Dashboard: d, Panel: p}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

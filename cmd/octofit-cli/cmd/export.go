package cmd

import (
	"bytes"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nfrund/octofit/internal/module"
	"github.com/nfrund/octofit/internal/rendering"
	"github.com/nfrund/octofit/internal/storage"
	"github.com/nfrund/octofit/web/src/templates/layouts"
)

var (
	exportDir string
	// newStore is swapped by tests for an in-memory filesystem.
	newStore = func(dir string) storage.Store { return storage.NewDirStore(dir) }
	now      = time.Now
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render every dashboard to static HTML files",
	Long: `Loads all five dashboards and writes each one as a complete HTML page
to <dir>/<resource>/<resource>-<timestamp>.html. Pages are static: they do
not poll and selection links point at views that no longer exist.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, ctx, cancel, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		defer cancel()

		results, err := settleAll(ctx, client, false)
		if err != nil {
			return err
		}

		nav := make([]module.Route, len(results))
		for i, r := range results {
			nav[i] = r.Dashboard.Route()
		}

		store := newStore(exportDir)
		renderer := rendering.NewUniversalRenderer()
		at := now()
		for _, r := range results {
			route := r.Dashboard.Route()
			page := layouts.Base(layouts.Chrome{Title: route.Title, Active: route.Path, Nav: nav, Now: at}, r.Panel.Render())
			html, err := renderer.RenderComponent(ctx, page)
			if err != nil {
				return fmt.Errorf("failed to render %s: %w", route.Title, err)
			}
			path := storage.SnapshotPath(r.Panel.Resource(), at)
			n, err := store.Save(ctx, path, bytes.NewReader(html))
			if err != nil {
				return fmt.Errorf("failed to save %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d bytes\n", path, n)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "out", "o", "snapshots", "directory to write the pages to")
	rootCmd.AddCommand(exportCmd)
}

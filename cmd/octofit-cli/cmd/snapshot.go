package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nfrund/octofit/internal/module"
)

var snapshotPaced bool

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Load every dashboard and print its summary",
	Long: `Mounts all five dashboards concurrently, waits for each load to settle
and prints its state and summary statistics. Failed and empty loads show
no statistics, just as the dashboard shows its no-data panel.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, ctx, cancel, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		defer cancel()

		results, err := settleAll(ctx, client, snapshotPaced)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "RESOURCE\tSTATE\tSUMMARY")
		for _, r := range results {
			fmt.Fprintf(w, "%s\t%s\t%s\n", r.Panel.Resource(), r.Panel.State(), summary(r.Panel.Stats()))
		}
		return w.Flush()
	},
}

func summary(stats []module.Stat) string {
	if len(stats) == 0 {
		return "-"
	}
	parts := make([]string, len(stats))
	for i, s := range stats {
		parts[i] = s.Title + "=" + s.Value + s.Unit
	}
	return strings.Join(parts, ", ")
}

func init() {
	snapshotCmd.Flags().BoolVar(&snapshotPaced, "paced", false, "keep the dashboard's presentation delays")
	rootCmd.AddCommand(snapshotCmd)
}

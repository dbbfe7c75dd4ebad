package cmd

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/nfrund/octofit/internal/apiclient"
)

// fetchCmd prints the records of one resource exactly as the API sent them.
var fetchCmd = &cobra.Command{
	Use:       "fetch <resource>",
	Short:     "Print the raw records of one resource",
	Long:      "Issues the same single GET the dashboard issues and prints the records as indented JSON.",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: slices.Sorted(maps.Keys(apiclient.Paths)),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, ctx, cancel, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		defer cancel()

		records, err := apiclient.Fetch[json.RawMessage](ctx, client, args[0])
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode records: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}

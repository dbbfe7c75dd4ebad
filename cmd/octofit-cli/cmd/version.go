package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nfrund/octofit/web/src/templates/layouts"
)

var version = layouts.Version // This should be set at build time using -ldflags

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of octofit-cli",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "OctoFit Tracker CLI v%s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

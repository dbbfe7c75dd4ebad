package cmd

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nfrund/octofit/internal/apiclient"
	"github.com/nfrund/octofit/internal/config"
	"github.com/nfrund/octofit/internal/logging"
)

var (
	apiURL   string
	timeout  time.Duration
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "octofit-cli",
	Short: "OctoFit Tracker operator CLI",
	Long: `octofit-cli talks to the OctoFit REST API the same way the dashboard does.

Available commands:
  fetch       Print the raw records of one resource
  snapshot    Load every dashboard and print its summary
  export      Render every dashboard to static HTML files

Use "octofit-cli [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		slog.SetDefault(logging.NewWithWriter(cmd.ErrOrStderr(), "text", logLevel))
		if apiURL == "" {
			// A missing .env file is the normal case for the CLI.
			_ = godotenv.Load()
			apiURL = defaultAPIURL(os.Getenv)
		}
		return nil
	},
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", "", "base URL of the OctoFit REST API (default $OCTOFIT_API_URL or "+config.DefaultAPIBaseURL+")")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "overall deadline for the command")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn or error")
}

// defaultAPIURL is the API the server would use with the same environment.
func defaultAPIURL(getenv func(string) string) string {
	cfg, err := config.FromEnv(getenv)
	if err != nil {
		return config.DefaultAPIBaseURL
	}
	return cfg.GetAPIBaseURL()
}

// newClient returns an API client for --api and a context bounded by --timeout.
func newClient(parent context.Context) (*apiclient.Client, context.Context, context.CancelFunc, error) {
	client, err := apiclient.New(apiURL)
	if err != nil {
		return nil, nil, nil, err
	}
	ctx, cancel := context.WithTimeout(parent, timeout)
	return client, ctx, cancel, nil
}

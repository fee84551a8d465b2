package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/eventcal-io/eventcal/internal/log"
)

var (
	flagAPIURL     string
	flagDataDir    string
	flagEventsFile string
	flagLogLevel   string
	flagLogFormat  string
)

var rootCmd = &cobra.Command{
	Use:   "eventcal",
	Short: "Browse the city event calendar from your terminal",
	Long: `eventcal is a client for the city event-calendar service.
It lets you browse and search upcoming events, keep a local list of
liked events, and manage your account with the backend.

Event data is bundled with the client; only account operations talk
to the backend.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initApp()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "backend base URL (overrides config and EVENTCAL_API_URL)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "directory for persisted client state (default ~/.eventcal)")
	rootCmd.PersistentFlags().StringVar(&flagEventsFile, "events-file", "", "JSON file to load the event catalog from instead of the bundled data")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "diagnostics level: debug, info, warn, error (default warn)")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "diagnostics format: text or json (default text)")
}

func newLogger(level, format string) *log.Logger {
	cfg := log.DefaultConfig()
	if level != "" {
		cfg.Level = log.ParseLevel(level)
	}
	if format != "" {
		cfg.Format = log.ParseFormat(format)
	}
	return log.New(cfg)
}

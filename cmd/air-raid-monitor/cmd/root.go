package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/air-raid-monitor/internal/config"
	"github.com/oshokin/air-raid-monitor/internal/logger"
	"github.com/oshokin/air-raid-monitor/internal/service/monitor"
	"github.com/oshokin/air-raid-monitor/internal/version"
)

var (
	// configPath stores the path to the configuration YAML file.
	configPath string
	// logLevel stores the requested logging verbosity.
	logLevel string

	// rootCmd represents the base command for monitoring the alert feed.
	rootCmd = &cobra.Command{
		Use:   "air-raid-monitor [region]",
		Short: "Watch the air-raid alert feed and notify on transitions.",
		Long: `Desktop service that polls the public air-raid alert feed for one region.

When the region's status becomes "full", an alert is raised: the siren sound
plays and a warning dialog appears. When the status returns to "null" or
"no_data", the alert clears with the all-clear sound and an informational
dialog. Every other status, and every fetch failure, leaves the alert state
untouched and the monitor keeps polling at the configured interval.

The region can be provided as an argument to override the configured one.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			if level, ok := logger.ParseLogLevel(logLevel); ok {
				logger.SetLevel(level)
			}

			// Use region argument if provided, otherwise rely on config.
			var region string
			if len(args) > 0 {
				region = args[0]
			}

			return monitor.Run(ctx, &monitor.Options{
				ConfigPath: configPath,
				Region:     region,
			})
		},
	}
)

// Execute runs the monitor CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "info", "logging level (debug, info, warn, error)")
}

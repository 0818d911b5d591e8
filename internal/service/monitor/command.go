package monitor

import (
	"context"
	"fmt"

	"github.com/oshokin/air-raid-monitor/internal/config"
	"github.com/oshokin/air-raid-monitor/internal/fetcher"
	"github.com/oshokin/air-raid-monitor/internal/instance"
	"github.com/oshokin/air-raid-monitor/internal/logger"
	"github.com/oshokin/air-raid-monitor/internal/metrics"
	"github.com/oshokin/air-raid-monitor/internal/notifier"
)

// Options controls the monitor's startup behavior and configuration.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// Region provides an optional region override for the configured one.
	Region string
	// SkipInstanceGuard disables the duplicate-process check for testing.
	SkipInstanceGuard bool
}

// Run loads configuration, wires the fetcher and notifier, and drives the
// poll loop until the context is canceled. Configuration problems are the
// only errors that abort startup; everything after the loop starts is
// recovered per cycle.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "air-raid-monitor")

	// Load settings from configuration file.
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	// Determine region: command line argument overrides config.
	if opts.Region != "" {
		cfg.Region = opts.Region
	}

	if !opts.SkipInstanceGuard {
		if err = instance.EnsureSingle(); err != nil {
			return err
		}
	}

	// Build notification profiles: default texts, config overrides on top.
	raiseProfile := notifier.DefaultRaiseProfile(cfg.Region)
	raiseProfile.SoundPath = cfg.AlertOnSound

	if cfg.RaiseTitle != "" {
		raiseProfile.Title = cfg.RaiseTitle
	}

	if cfg.RaiseMessage != "" {
		raiseProfile.Message = cfg.RaiseMessage
	}

	clearProfile := notifier.DefaultClearProfile(cfg.Region)
	clearProfile.SoundPath = cfg.AlertOffSound

	if cfg.ClearTitle != "" {
		clearProfile.Title = cfg.ClearTitle
	}

	if cfg.ClearMessage != "" {
		clearProfile.Message = cfg.ClearMessage
	}

	var notifierOptions []notifier.Option

	// Optional push mirror; a bad service URL is a configuration failure.
	if cfg.PushURL != "" {
		sender, senderErr := notifier.NewPushSender(cfg.PushURL)
		if senderErr != nil {
			return fmt.Errorf("invalid push_url: %w", senderErr)
		}

		notifierOptions = append(notifierOptions, notifier.WithPushSender(sender))
	}

	// Optional metrics listener, torn down with the context.
	if cfg.MetricsAddress != "" {
		metrics.Serve(ctx, cfg.MetricsAddress)
	}

	service := NewService(
		fetcher.New(cfg.DataURL, cfg.Region, cfg.FetchTimeout),
		notifier.New(raiseProfile, clearProfile, notifierOptions...),
		cfg.Region,
	)

	return service.Run(ctx, cfg.Interval())
}

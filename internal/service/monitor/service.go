package monitor

import (
	"context"
	"time"

	"github.com/oshokin/air-raid-monitor/internal/domain/alert"
	"github.com/oshokin/air-raid-monitor/internal/logger"
	"github.com/oshokin/air-raid-monitor/internal/metrics"
)

// StatusFetcher retrieves the raw feed status for the monitored region.
type StatusFetcher interface {
	Fetch(ctx context.Context) (string, error)
}

// EventNotifier delivers a raise or clear event without blocking the caller.
type EventNotifier interface {
	Notify(ctx context.Context, event alert.Event)
}

// Service owns the poll loop and the single alert state value. Nothing else
// reads or writes the state; all mutation happens sequentially inside Cycle.
type Service struct {
	fetcher  StatusFetcher
	notifier EventNotifier
	region   string
	state    alert.State
}

// NewService wires a fetcher and notifier into a poll service. The alert
// state starts inactive; it is not persisted across restarts.
func NewService(fetcher StatusFetcher, notifier EventNotifier, region string) *Service {
	return &Service{
		fetcher:  fetcher,
		notifier: notifier,
		region:   region,
		state:    alert.StateInactive,
	}
}

// State returns the current alert state.
func (s *Service) State() alert.State {
	return s.state
}

// Cycle performs one fetch-decide-notify pass. A fetch failure skips the
// cycle without touching the state or the notifier; a successful fetch
// produces at most one event.
func (s *Service) Cycle(ctx context.Context) {
	metrics.PollCycles.Inc()

	status, err := s.fetcher.Fetch(ctx)
	if err != nil {
		metrics.FetchFailures.Inc()
		logger.WarnKV(ctx, "Fetch failed, skipping cycle", "region", s.region, "error", err)

		return
	}

	next, event := alert.Decide(s.state, status)
	if event == alert.EventNone {
		logger.DebugKV(ctx, "No state change", "region", s.region, "status", status)

		s.state = next

		return
	}

	logger.InfoKV(ctx, "Alert state changed",
		"region", s.region,
		"status", status,
		"from", s.state.String(),
		"to", next.String(),
		"event", event.String())

	s.state = next

	switch event {
	case alert.EventRaise:
		metrics.AlertsRaised.Inc()
	case alert.EventClear:
		metrics.AlertsCleared.Inc()
	default:
	}

	// Fire-and-forget; the notifier never blocks the loop.
	s.notifier.Notify(ctx, event)
}

// Run executes an immediate first cycle and then one cycle per tick until
// the context is canceled. The interval is identical after success and
// failure cycles: the feed recovers on its own schedule, and backing off
// would only delay alert detection.
func (s *Service) Run(ctx context.Context, interval time.Duration) error {
	logger.InfoKV(ctx, "Monitoring region", "region", s.region, "interval", interval.String())

	s.Cycle(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Context canceled, exiting")
			return nil
		case <-ticker.C:
			s.Cycle(ctx)
		}
	}
}

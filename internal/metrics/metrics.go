package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/VictoriaMetrics/metrics"

	"github.com/oshokin/air-raid-monitor/internal/logger"
)

// Counters for the poll loop. Registered once at package load; the loop
// increments them unconditionally and the listener below is optional.
var (
	// PollCycles counts every completed poll cycle, failed or not.
	PollCycles = metrics.NewCounter("air_raid_monitor_poll_cycles_total")
	// FetchFailures counts cycles skipped because the feed could not be read.
	FetchFailures = metrics.NewCounter("air_raid_monitor_fetch_failures_total")
	// AlertsRaised counts inactive-to-active transitions.
	AlertsRaised = metrics.NewCounter("air_raid_monitor_alerts_raised_total")
	// AlertsCleared counts active-to-inactive transitions.
	AlertsCleared = metrics.NewCounter("air_raid_monitor_alerts_cleared_total")
)

// shutdownTimeout bounds the listener drain on context cancellation.
const shutdownTimeout = 2 * time.Second

// Serve exposes /metrics in Prometheus text format on the provided address
// and shuts the listener down when the context is canceled. Serve returns
// immediately; listener errors are logged, never fatal, because metrics are
// an optional surface of the monitor.
func Serve(ctx context.Context, address string) {
	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", func(w http.ResponseWriter, _ *http.Request) {
		metrics.WritePrometheus(w, true)
	})

	//nolint:exhaustruct // Remaining server fields keep their defaults.
	server := &http.Server{
		Addr:              address,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		_ = server.Shutdown(shutdownCtx)
	}()

	go func() {
		logger.InfoKV(ctx, "Serving metrics", "address", address)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorKV(ctx, "Metrics listener failed", "address", address, "error", err)
		}
	}()
}

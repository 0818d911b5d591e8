// Package metrics exposes poll-loop counters and an optional /metrics
// endpoint in Prometheus text format. The endpoint only starts when a listen
// address is configured; the counters are always live.
package metrics

// Package config loads, validates, and persists monitor settings.
//
// Settings live in a YAML file: the monitored region, the feed URL, the poll
// interval, the raise/clear sound files and dialog texts, plus optional push
// and metrics endpoints. Validation applies defaults and fails fast on the
// fields the monitor cannot run without, naming the offending field.
package config

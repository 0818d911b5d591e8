package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the monitor settings loaded from YAML.
type Config struct {
	// Region is the feed key identifying the monitored area.
	Region string `yaml:"region"`
	// AlertOnSound is the path to the sound played when an alert is raised.
	AlertOnSound string `yaml:"alert_on"`
	// AlertOffSound is the path to the sound played when an alert is cleared.
	AlertOffSound string `yaml:"alert_off"`
	// DataURL is the status feed endpoint.
	DataURL string `yaml:"data_url"`
	// UpdateInterval is the poll interval in seconds.
	UpdateInterval int `yaml:"update_interval"`
	// FetchTimeout bounds a single feed request. Defaults to 5s and is
	// clamped to the poll interval so a hung fetch cannot skip cycles.
	FetchTimeout time.Duration `yaml:"fetch_timeout"`
	// RaiseTitle and RaiseMessage override the raise dialog text.
	RaiseTitle   string `yaml:"raise_title"`
	RaiseMessage string `yaml:"raise_message"`
	// ClearTitle and ClearMessage override the clear dialog text.
	ClearTitle   string `yaml:"clear_title"`
	ClearMessage string `yaml:"clear_message"`
	// PushURL is an optional shoutrrr service URL that mirrors every
	// raise/clear notification (e.g. "telegram://token@telegram?chats=id").
	PushURL string `yaml:"push_url"`
	// MetricsAddress is an optional listen address for the /metrics endpoint.
	MetricsAddress string `yaml:"metrics_addr"`
}

const (
	// DefaultConfigFilename is the default filename for monitor settings.
	DefaultConfigFilename = "air-raid-monitor.yaml"

	// DefaultFetchTimeout is the default duration for a single feed request.
	DefaultFetchTimeout = 5 * time.Second

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errRegionRequired is returned when the monitored region is missing.
	errRegionRequired = errors.New("region must be provided")
	// errDataURLRequired is returned when the feed URL is missing.
	errDataURLRequired = errors.New("data_url must be provided")
	// errIntervalInvalid is returned when the poll interval is not positive.
	errIntervalInvalid = errors.New("update_interval must be a positive number of seconds")
)

// Interval returns the poll interval as a duration.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.UpdateInterval) * time.Second
}

// Load reads configuration from the provided path and validates essential fields.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks required fields, applies defaults, and verifies formats.
// A bad feed URL, empty region, or non-positive interval is fatal rather
// than silently defaulted.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.Region == "" {
		return errRegionRequired
	}

	if cfg.DataURL == "" {
		return errDataURLRequired
	}

	if _, err := url.ParseRequestURI(cfg.DataURL); err != nil {
		return fmt.Errorf("invalid data_url: %w", err)
	}

	if cfg.UpdateInterval <= 0 {
		return errIntervalInvalid
	}

	// Set default fetch timeout if not specified.
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = DefaultFetchTimeout
	}

	// A fetch may never outlive a poll cycle.
	if cfg.FetchTimeout > cfg.Interval() {
		cfg.FetchTimeout = cfg.Interval()
	}

	if cfg.MetricsAddress != "" {
		if _, err := net.ResolveTCPAddr("tcp", cfg.MetricsAddress); err != nil {
			return fmt.Errorf("invalid metrics_addr: %w", err)
		}
	}

	return nil
}

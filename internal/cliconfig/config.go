package cliconfig

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/scoreship/internal/domain"
)

// BackendSim selects the in-memory simulated remote service.
const BackendSim = "sim"

// DefaultCredentialsFile is read when no credentials path is configured.
const DefaultCredentialsFile = "pk.txt"

// Config holds CLI configuration for scoreship.
type Config struct {
	CredentialsFile string
	Targets         []string

	DailyLimit          int
	TransferMaxAttempts int
	MinLevel            int
	MinScore            int64

	HeartbeatInterval  time.Duration
	TickInterval       time.Duration
	CycleInterval      time.Duration
	RetryPause         time.Duration
	RetryPauseMax      time.Duration
	WaitWindow         time.Duration
	WaitStatusInterval time.Duration
	StatusInterval     time.Duration
	ShutdownTimeout    time.Duration

	CommentText     string
	TaskCategory    int
	DefaultDuration int

	NotifyURL     string
	NotifyChatID  string
	NotifyTimeout time.Duration

	LogLevel string
	LogFile  string

	Backend        string
	SimFailureRate float64
	SimDuration    int
	SimSeed        int64
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		CredentialsFile:     DefaultCredentialsFile,
		DailyLimit:          50,
		TransferMaxAttempts: 5,
		MinLevel:            5,
		MinScore:            2000,
		HeartbeatInterval:   30 * time.Second,
		TickInterval:        time.Second,
		CycleInterval:       5 * time.Second,
		RetryPause:          5 * time.Second,
		RetryPauseMax:       30 * time.Second,
		WaitWindow:          24 * time.Hour,
		WaitStatusInterval:  5 * time.Second,
		StatusInterval:      10 * time.Second,
		ShutdownTimeout:     30 * time.Second,
		CommentText:         "good one",
		TaskCategory:        1,
		DefaultDuration:     180,
		NotifyTimeout:       15 * time.Second,
		LogLevel:            "info",
		Backend:             BackendSim,
		SimDuration:         180,
	}
}

// Validate checks the configuration for errors and normalizes values.
// Every error wraps domain.ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.CredentialsFile == "" {
		return invalid("credentials file is required")
	}
	if c.DailyLimit <= 0 {
		return invalid("daily limit must be positive")
	}
	if c.TransferMaxAttempts <= 0 {
		return invalid("transfer attempts must be positive")
	}

	positive := []struct {
		name string
		d    time.Duration
	}{
		{"heartbeat interval", c.HeartbeatInterval},
		{"tick interval", c.TickInterval},
		{"wait window", c.WaitWindow},
		{"wait status interval", c.WaitStatusInterval},
		{"status interval", c.StatusInterval},
		{"shutdown timeout", c.ShutdownTimeout},
	}
	for _, p := range positive {
		if p.d <= 0 {
			return invalid("%s must be positive", p.name)
		}
	}
	if c.CycleInterval < 0 || c.RetryPause < 0 {
		return invalid("pauses must not be negative")
	}
	if c.RetryPauseMax < c.RetryPause {
		c.RetryPauseMax = c.RetryPause
	}

	targets := c.Targets[:0]
	for _, t := range c.Targets {
		if t = strings.TrimSpace(t); t != "" {
			targets = append(targets, t)
		}
	}
	c.Targets = targets

	c.NotifyURL = strings.TrimSuffix(c.NotifyURL, "/")
	if c.NotifyURL != "" && c.NotifyTimeout <= 0 {
		return invalid("notify timeout must be positive")
	}

	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return invalid("log level %q: %v", c.LogLevel, err)
	}

	if c.Backend != BackendSim {
		return invalid("unknown backend %q", c.Backend)
	}
	if c.SimFailureRate < 0 || c.SimFailureRate > 1 {
		return invalid("sim failure rate must be within [0, 1]")
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setStrings replaces a list if the source is non-empty and flag not changed.
func (s *configSetter) setStrings(flag string, value []string, dst *[]string) {
	if len(value) == 0 || s.changed[flag] {
		return
	}
	*dst = append([]string(nil), value...)
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt64 sets an int64 value if positive and flag not changed.
func (s *configSetter) setInt64(flag string, value int64, dst *int64) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setFloat sets a float64 value if positive and flag not changed.
func (s *configSetter) setFloat(flag string, value float64, dst *float64) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setDurationValue sets an already parsed duration if positive and flag not changed.
func (s *configSetter) setDurationValue(flag string, value time.Duration, dst *time.Duration) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

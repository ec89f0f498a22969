package cliconfig

import (
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	CredentialsFile     string   `toml:"credentials_file"`
	Targets             []string `toml:"targets"`
	DailyLimit          int      `toml:"daily_limit"`
	TransferMaxAttempts int      `toml:"transfer_max_attempts"`
	MinLevel            int      `toml:"min_level"`
	MinScore            int64    `toml:"min_score"`
	HeartbeatInterval   string   `toml:"heartbeat_interval"`
	TickInterval        string   `toml:"tick_interval"`
	CycleInterval       string   `toml:"cycle_interval"`
	RetryPause          string   `toml:"retry_pause"`
	RetryPauseMax       string   `toml:"retry_pause_max"`
	WaitWindow          string   `toml:"wait_window"`
	WaitStatusInterval  string   `toml:"wait_status_interval"`
	StatusInterval      string   `toml:"status_interval"`
	ShutdownTimeout     string   `toml:"shutdown_timeout"`
	CommentText         string   `toml:"comment_text"`
	TaskCategory        int      `toml:"task_category"`
	DefaultDuration     int      `toml:"default_duration"`
	NotifyURL           string   `toml:"notify_url"`
	NotifyChatID        string   `toml:"notify_chat_id"`
	NotifyTimeout       string   `toml:"notify_timeout"`
	LogLevel            string   `toml:"log_level"`
	LogFile             string   `toml:"log_file"`
	Backend             string   `toml:"backend"`
	SimFailureRate      float64  `toml:"sim_failure_rate"`
	SimDuration         int      `toml:"sim_duration"`
	SimSeed             int64    `toml:"sim_seed"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.scoreship/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".scoreship", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("credentials", fc.CredentialsFile, &cfg.CredentialsFile)
	s.setStrings("target", fc.Targets, &cfg.Targets)
	s.setString("comment", fc.CommentText, &cfg.CommentText)
	s.setString("notify-url", fc.NotifyURL, &cfg.NotifyURL)
	s.setString("notify-chat-id", fc.NotifyChatID, &cfg.NotifyChatID)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("log-file", fc.LogFile, &cfg.LogFile)
	s.setString("backend", fc.Backend, &cfg.Backend)

	durations := []struct {
		flag  string
		value string
		dst   *time.Duration
	}{
		{"heartbeat-interval", fc.HeartbeatInterval, &cfg.HeartbeatInterval},
		{"tick-interval", fc.TickInterval, &cfg.TickInterval},
		{"cycle-interval", fc.CycleInterval, &cfg.CycleInterval},
		{"retry-pause", fc.RetryPause, &cfg.RetryPause},
		{"retry-pause-max", fc.RetryPauseMax, &cfg.RetryPauseMax},
		{"wait-window", fc.WaitWindow, &cfg.WaitWindow},
		{"wait-status-interval", fc.WaitStatusInterval, &cfg.WaitStatusInterval},
		{"status-interval", fc.StatusInterval, &cfg.StatusInterval},
		{"shutdown-timeout", fc.ShutdownTimeout, &cfg.ShutdownTimeout},
		{"notify-timeout", fc.NotifyTimeout, &cfg.NotifyTimeout},
	}
	for _, d := range durations {
		if err := s.setDuration(d.flag, d.value, d.dst); err != nil {
			return err
		}
	}

	s.setInt("daily-limit", fc.DailyLimit, &cfg.DailyLimit)
	s.setInt("transfer-attempts", fc.TransferMaxAttempts, &cfg.TransferMaxAttempts)
	s.setInt("min-level", fc.MinLevel, &cfg.MinLevel)
	s.setInt64("min-score", fc.MinScore, &cfg.MinScore)
	s.setInt("task-category", fc.TaskCategory, &cfg.TaskCategory)
	s.setInt("default-duration", fc.DefaultDuration, &cfg.DefaultDuration)

	s.setFloat("sim-failure-rate", fc.SimFailureRate, &cfg.SimFailureRate)
	s.setInt("sim-duration", fc.SimDuration, &cfg.SimDuration)
	s.setInt64("sim-seed", fc.SimSeed, &cfg.SimSeed)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

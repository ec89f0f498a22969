package cliconfig

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every environment variable read by scoreship.
const EnvPrefix = "SCORESHIP_"

// EnvConfig holds the raw SCORESHIP_* environment values.
type EnvConfig struct {
	CredentialsFile     string        `env:"CREDENTIALS_FILE"`
	Targets             []string      `env:"TARGETS" envSeparator:","`
	DailyLimit          int           `env:"DAILY_LIMIT"`
	TransferMaxAttempts int           `env:"TRANSFER_MAX_ATTEMPTS"`
	MinLevel            int           `env:"MIN_LEVEL"`
	MinScore            int64         `env:"MIN_SCORE"`
	HeartbeatInterval   time.Duration `env:"HEARTBEAT_INTERVAL"`
	TickInterval        time.Duration `env:"TICK_INTERVAL"`
	CycleInterval       time.Duration `env:"CYCLE_INTERVAL"`
	RetryPause          time.Duration `env:"RETRY_PAUSE"`
	RetryPauseMax       time.Duration `env:"RETRY_PAUSE_MAX"`
	WaitWindow          time.Duration `env:"WAIT_WINDOW"`
	WaitStatusInterval  time.Duration `env:"WAIT_STATUS_INTERVAL"`
	StatusInterval      time.Duration `env:"STATUS_INTERVAL"`
	ShutdownTimeout     time.Duration `env:"SHUTDOWN_TIMEOUT"`
	CommentText         string        `env:"COMMENT_TEXT"`
	TaskCategory        int           `env:"TASK_CATEGORY"`
	DefaultDuration     int           `env:"DEFAULT_DURATION"`
	NotifyURL           string        `env:"NOTIFY_URL"`
	NotifyChatID        string        `env:"NOTIFY_CHAT_ID"`
	NotifyTimeout       time.Duration `env:"NOTIFY_TIMEOUT"`
	LogLevel            string        `env:"LOG_LEVEL"`
	LogFile             string        `env:"LOG_FILE"`
	Backend             string        `env:"BACKEND"`
	SimFailureRate      float64       `env:"SIM_FAILURE_RATE"`
	SimDuration         int           `env:"SIM_DURATION"`
	SimSeed             int64         `env:"SIM_SEED"`
}

// LoadEnvConfig parses SCORESHIP_* variables from the process environment.
func LoadEnvConfig() (EnvConfig, error) {
	return parseEnvConfig(env.Options{Prefix: EnvPrefix})
}

func parseEnvConfig(opts env.Options) (EnvConfig, error) {
	var ec EnvConfig
	if err := env.ParseWithOptions(&ec, opts); err != nil {
		return ec, fmt.Errorf("parse env: %w", err)
	}
	return ec, nil
}

// ApplyEnvConfig applies configuration from environment variables (SCORESHIP_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	ec, err := LoadEnvConfig()
	if err != nil {
		return err
	}
	applyEnv(cfg, ec, changed)
	return nil
}

func applyEnv(cfg *Config, ec EnvConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("credentials", ec.CredentialsFile, &cfg.CredentialsFile)
	s.setStrings("target", ec.Targets, &cfg.Targets)
	s.setString("comment", ec.CommentText, &cfg.CommentText)
	s.setString("notify-url", ec.NotifyURL, &cfg.NotifyURL)
	s.setString("notify-chat-id", ec.NotifyChatID, &cfg.NotifyChatID)
	s.setString("log-level", ec.LogLevel, &cfg.LogLevel)
	s.setString("log-file", ec.LogFile, &cfg.LogFile)
	s.setString("backend", ec.Backend, &cfg.Backend)

	s.setDurationValue("heartbeat-interval", ec.HeartbeatInterval, &cfg.HeartbeatInterval)
	s.setDurationValue("tick-interval", ec.TickInterval, &cfg.TickInterval)
	s.setDurationValue("cycle-interval", ec.CycleInterval, &cfg.CycleInterval)
	s.setDurationValue("retry-pause", ec.RetryPause, &cfg.RetryPause)
	s.setDurationValue("retry-pause-max", ec.RetryPauseMax, &cfg.RetryPauseMax)
	s.setDurationValue("wait-window", ec.WaitWindow, &cfg.WaitWindow)
	s.setDurationValue("wait-status-interval", ec.WaitStatusInterval, &cfg.WaitStatusInterval)
	s.setDurationValue("status-interval", ec.StatusInterval, &cfg.StatusInterval)
	s.setDurationValue("shutdown-timeout", ec.ShutdownTimeout, &cfg.ShutdownTimeout)
	s.setDurationValue("notify-timeout", ec.NotifyTimeout, &cfg.NotifyTimeout)

	s.setInt("daily-limit", ec.DailyLimit, &cfg.DailyLimit)
	s.setInt("transfer-attempts", ec.TransferMaxAttempts, &cfg.TransferMaxAttempts)
	s.setInt("min-level", ec.MinLevel, &cfg.MinLevel)
	s.setInt64("min-score", ec.MinScore, &cfg.MinScore)
	s.setInt("task-category", ec.TaskCategory, &cfg.TaskCategory)
	s.setInt("default-duration", ec.DefaultDuration, &cfg.DefaultDuration)

	s.setFloat("sim-failure-rate", ec.SimFailureRate, &cfg.SimFailureRate)
	s.setInt("sim-duration", ec.SimDuration, &cfg.SimDuration)
	s.setInt64("sim-seed", ec.SimSeed, &cfg.SimSeed)
}

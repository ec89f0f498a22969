package cliconfig

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvConfig(t *testing.T) {
	ec, err := parseEnvConfig(env.Options{
		Prefix: EnvPrefix,
		Environment: map[string]string{
			"SCORESHIP_TARGETS":            "alice,bob",
			"SCORESHIP_DAILY_LIMIT":        "12",
			"SCORESHIP_MIN_SCORE":          "4000",
			"SCORESHIP_HEARTBEAT_INTERVAL": "10s",
			"SCORESHIP_SIM_FAILURE_RATE":   "0.5",
			"OTHER_DAILY_LIMIT":            "99",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"alice", "bob"}, ec.Targets)
	assert.Equal(t, 12, ec.DailyLimit)
	assert.Equal(t, int64(4000), ec.MinScore)
	assert.Equal(t, 10*time.Second, ec.HeartbeatInterval)
	assert.Equal(t, 0.5, ec.SimFailureRate)
}

func TestParseEnvConfig_InvalidValues(t *testing.T) {
	tests := map[string]string{
		"invalid duration": "SCORESHIP_TICK_INTERVAL",
		"invalid int":      "SCORESHIP_DAILY_LIMIT",
		"invalid float":    "SCORESHIP_SIM_FAILURE_RATE",
	}
	for name, key := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := parseEnvConfig(env.Options{
				Prefix:      EnvPrefix,
				Environment: map[string]string{key: "not-a-value"},
			})
			assert.Error(t, err)
		})
	}
}

func TestApplyEnvConfig(t *testing.T) {
	t.Setenv("SCORESHIP_CREDENTIALS_FILE", "/env/pk.txt")
	t.Setenv("SCORESHIP_DAILY_LIMIT", "7")
	t.Setenv("SCORESHIP_STATUS_INTERVAL", "3s")
	t.Setenv("SCORESHIP_LOG_LEVEL", "warn")

	cfg := DefaultConfig()
	require.NoError(t, ApplyEnvConfig(&cfg, map[string]bool{"daily-limit": true}))

	assert.Equal(t, "/env/pk.txt", cfg.CredentialsFile)
	assert.Equal(t, 50, cfg.DailyLimit, "flag should win over env")
	assert.Equal(t, 3*time.Second, cfg.StatusInterval)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestApplyEnvConfig_InvalidValue(t *testing.T) {
	t.Setenv("SCORESHIP_WAIT_WINDOW", "tomorrow")
	cfg := DefaultConfig()
	assert.Error(t, ApplyEnvConfig(&cfg, map[string]bool{}))
}

// Integration test: precedence order (CLI > Env > File)
func TestConfigPrecedence(t *testing.T) {
	fileConf := FileConfig{
		CredentialsFile: "/file/pk.txt",
		CommentText:     "from file",
		Targets:         []string{"file-target"},
		Backend:         "sim",
	}

	t.Setenv("SCORESHIP_CREDENTIALS_FILE", "/env/pk.txt")
	t.Setenv("SCORESHIP_COMMENT_TEXT", "from env")
	t.Setenv("SCORESHIP_TARGETS", "env-a,env-b")

	changed := map[string]bool{"credentials": true}
	cfg := Config{CredentialsFile: "/cli/pk.txt"}

	require.NoError(t, ApplyFileConfig(&cfg, fileConf, changed))
	require.NoError(t, ApplyEnvConfig(&cfg, changed))

	assert.Equal(t, "/cli/pk.txt", cfg.CredentialsFile, "CLI should win")
	assert.Equal(t, "from env", cfg.CommentText, "env should override file")
	assert.Equal(t, []string{"env-a", "env-b"}, cfg.Targets)
	assert.Equal(t, "sim", cfg.Backend, "file should set")
}

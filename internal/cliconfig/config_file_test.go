package cliconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyFileConfig(t *testing.T) {
	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    Config
		expected   Config
		wantErr    bool
	}{
		{
			name: "applies all valid config values",
			fileConfig: FileConfig{
				CredentialsFile:   "/keys/pk.txt",
				Targets:           []string{"alice", "bob"},
				DailyLimit:        20,
				MinScore:          3000,
				HeartbeatInterval: "45s",
				WaitWindow:        "12h",
				SimFailureRate:    0.25,
				LogLevel:          "debug",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				CredentialsFile:   "/keys/pk.txt",
				Targets:           []string{"alice", "bob"},
				DailyLimit:        20,
				MinScore:          3000,
				HeartbeatInterval: 45 * time.Second,
				WaitWindow:        12 * time.Hour,
				SimFailureRate:    0.25,
				LogLevel:          "debug",
			},
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				CredentialsFile: "/config/pk.txt",
				Targets:         []string{"from-file"},
				DailyLimit:      10,
			},
			changed: map[string]bool{"credentials": true, "target": true},
			initial: Config{
				CredentialsFile: "/flag/pk.txt",
				Targets:         []string{"from-flag"},
			},
			expected: Config{
				CredentialsFile: "/flag/pk.txt", // unchanged because flag was set
				Targets:         []string{"from-flag"},
				DailyLimit:      10,
			},
		},
		{
			name: "zero values do not override",
			fileConfig: FileConfig{
				DailyLimit: 0,
				LogLevel:   "",
			},
			changed:  map[string]bool{},
			initial:  Config{DailyLimit: 50, LogLevel: "info"},
			expected: Config{DailyLimit: 50, LogLevel: "info"},
		},
		{
			name:       "returns error for invalid duration",
			fileConfig: FileConfig{TickInterval: "soon"},
			changed:    map[string]bool{},
			initial:    Config{},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			err := ApplyFileConfig(&cfg, tt.fileConfig, tt.changed)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	tomlContent := `
credentials_file = "keys.txt"
targets = ["0xabc", "0xdef"]
daily_limit = 30
status_interval = "2s"
sim_failure_rate = 0.1
notify_url = "https://hooks.example.com/send"
`
	require.NoError(t, os.WriteFile(configPath, []byte(tomlContent), 0644))

	fc, err := LoadFileConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, "keys.txt", fc.CredentialsFile)
	assert.Equal(t, []string{"0xabc", "0xdef"}, fc.Targets)
	assert.Equal(t, 30, fc.DailyLimit)
	assert.Equal(t, "2s", fc.StatusInterval)
	assert.Equal(t, 0.1, fc.SimFailureRate)
	assert.Equal(t, "https://hooks.example.com/send", fc.NotifyURL)
}

func TestLoadFileConfig_InvalidFile(t *testing.T) {
	_, err := LoadFileConfig("/nonexistent/path/config.toml")
	assert.Error(t, err)
}

func TestLoadFileConfig_InvalidTOML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("targets = [\nthis is not valid toml\n"), 0644))

	_, err := LoadFileConfig(configPath)
	assert.Error(t, err)
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()
	if path != "" && !strings.Contains(path, ".scoreship") {
		t.Errorf("DefaultConfigPath() = %v, should contain .scoreship", path)
	}
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	existingFile := filepath.Join(tmpDir, "exists.txt")
	require.NoError(t, os.WriteFile(existingFile, []byte("test"), 0644))

	assert.True(t, FileExists(existingFile))
	assert.False(t, FileExists(filepath.Join(tmpDir, "nonexistent.txt")))
}

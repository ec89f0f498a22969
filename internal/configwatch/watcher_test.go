package configwatch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/scoreship/internal/cliconfig"
)

type intervalRecorder struct {
	mu sync.Mutex
	d  []time.Duration
}

func (r *intervalRecorder) SetMinInterval(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.d = append(r.d, d)
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`status_interval = "10s"`), 0644))

	got := make(chan cliconfig.FileConfig, 4)
	w := New(path, func(fc cliconfig.FileConfig) { got <- fc }, Config{DebounceDelay: 20 * time.Millisecond})
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte(`status_interval = "2s"`), 0644))

	select {
	case fc := <-got:
		assert.Equal(t, "2s", fc.StatusInterval)
	case <-time.After(3 * time.Second):
		t.Fatal("no reload observed")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	got := make(chan cliconfig.FileConfig, 1)
	w := New(path, func(fc cliconfig.FileConfig) { got <- fc }, Config{DebounceDelay: 10 * time.Millisecond})
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x = 1"), 0644))

	select {
	case <-got:
		t.Fatal("unexpected reload")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_StartFailsForMissingDirectory(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "missing", "config.toml"), func(cliconfig.FileConfig) {}, Config{})
	assert.Error(t, w.Start(context.Background()))
}

func TestLiveReload(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	board := &intervalRecorder{}
	apply := LiveReload(board, nil)

	apply(cliconfig.FileConfig{StatusInterval: "3s", LogLevel: "error"})
	apply(cliconfig.FileConfig{StatusInterval: "never"})
	apply(cliconfig.FileConfig{StatusInterval: "-1s", LogLevel: "shouting"})

	assert.Equal(t, []time.Duration{3 * time.Second}, board.d)
	assert.Equal(t, zerolog.ErrorLevel, zerolog.GlobalLevel())
}

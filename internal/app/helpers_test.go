package app

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bft-labs/scoreship/internal/domain"
	"github.com/bft-labs/scoreship/pkg/log"
)

// testClock is a manual clock whose Sleep advances time instantly.
type testClock struct {
	mu     sync.Mutex
	now    time.Time
	sleeps []time.Duration

	// stop is consulted after every sleep; returning true cancels the run.
	stop   func(n int, d time.Duration) bool
	cancel context.CancelFunc
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
	n := len(c.sleeps)
	stop := c.stop
	c.mu.Unlock()

	if stop != nil && stop(n, d) {
		c.cancel()
		return context.Canceled
	}
	return nil
}

func (c *testClock) Sleeps() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]time.Duration(nil), c.sleeps...)
}

// recordingStatus collects status lines.
type recordingStatus struct {
	mu    sync.Mutex
	lines []statusLine
}

type statusLine struct {
	account string
	message string
	mode    domain.StatusMode
}

func (r *recordingStatus) Update(accountID, message string, mode domain.StatusMode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, statusLine{accountID, message, mode})
}

func (r *recordingStatus) Contains(substr string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.lines {
		if strings.Contains(l.message, substr) {
			return true
		}
	}
	return false
}

// For returns the messages posted under accountID in order.
func (r *recordingStatus) For(accountID string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, l := range r.lines {
		if l.account == accountID {
			out = append(out, l.message)
		}
	}
	return out
}

func (r *recordingStatus) Important() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, l := range r.lines {
		if l.mode == domain.ModeImportant {
			out = append(out, l.message)
		}
	}
	return out
}

// recordingLogger keeps every message logged through it.
type recordingLogger struct {
	mu       sync.Mutex
	messages []string
}

func (l *recordingLogger) record(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, level+" "+msg)
}

func (l *recordingLogger) Debug(msg string, _ ...log.Field) { l.record("debug", msg) }
func (l *recordingLogger) Info(msg string, _ ...log.Field)  { l.record("info", msg) }
func (l *recordingLogger) Warn(msg string, _ ...log.Field)  { l.record("warn", msg) }
func (l *recordingLogger) Error(msg string, _ ...log.Field) { l.record("error", msg) }

func (l *recordingLogger) Matching(substr string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []string
	for _, m := range l.messages {
		if strings.Contains(m, substr) {
			out = append(out, m)
		}
	}
	return out
}

// mockEmitter tracks state change events for testing.
type mockEmitter struct {
	mu     sync.Mutex
	events []stateChangeEvent
}

type stateChangeEvent struct {
	previous State
	current  State
	reason   string
	tally    Tally
}

func (m *mockEmitter) OnStateChange(previous, current State, reason string, tally Tally) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, stateChangeEvent{previous, current, reason, tally})
}

func (m *mockEmitter) Events() []stateChangeEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]stateChangeEvent{}, m.events...)
}

func withTimeout(t *testing.T, fn func()) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out")
	}
}

package status

import (
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

// DefaultMinInterval is the minimum time between two ephemeral redraws.
const DefaultMinInterval = 10 * time.Second

// Option configures a Board.
type Option func(*options)

type options struct {
	minInterval time.Duration
	now         func() time.Time
	terminal    *bool
	title       string
}

func defaultOptions() options {
	return options{
		minInterval: DefaultMinInterval,
		now:         time.Now,
		title:       "scoreship",
	}
}

// WithMinInterval sets the ephemeral redraw interval.
func WithMinInterval(d time.Duration) Option {
	return func(o *options) {
		o.minInterval = d
	}
}

// WithClock replaces time.Now. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithTerminal forces or disables clear-screen redraws. By default the board
// clears the screen only when its writer is a terminal.
func WithTerminal(enabled bool) Option {
	return func(o *options) {
		o.terminal = &enabled
	}
}

// WithTitle sets the header line.
func WithTitle(title string) Option {
	return func(o *options) {
		o.title = title
	}
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

package status

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bft-labs/scoreship/internal/domain"
)

const (
	clearScreen = "\033[H\033[2J"
	ruleWidth   = 60
)

// Entry is the latest status line of one account.
type Entry struct {
	Account string
	Message string
}

// Board is the shared status aggregator. It is safe for concurrent use.
type Board struct {
	mu      sync.Mutex
	entries map[string]string
	out     io.Writer
	styles  styles
	wipe    bool
	title   string
	now     func() time.Time
	renders int

	minInterval atomic.Int64
	lastRender  atomic.Int64
	rendering   atomic.Bool
}

// NewBoard creates a board that draws to out.
func NewBoard(out io.Writer, opts ...Option) *Board {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	wipe := isTerminal(out)
	if o.terminal != nil {
		wipe = *o.terminal
	}

	b := &Board{
		entries: make(map[string]string),
		out:     out,
		styles:  newStyles(out),
		wipe:    wipe,
		title:   o.title,
		now:     o.now,
	}
	b.minInterval.Store(int64(o.minInterval))
	return b
}

// Update records message as the latest line for accountID. Important lines
// are drawn immediately; ephemeral lines are drawn only if the minimum
// interval has passed since the previous draw.
func (b *Board) Update(accountID, message string, mode domain.StatusMode) {
	b.mu.Lock()
	b.entries[accountID] = message
	b.mu.Unlock()

	if mode == domain.ModeImportant {
		b.Render()
		return
	}

	if !b.due() {
		return
	}
	// Only one caller gets to redraw for a given interval; the rest skip.
	if !b.rendering.CompareAndSwap(false, true) {
		return
	}
	defer b.rendering.Store(false)

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.due() {
		b.renderLocked()
	}
}

// Render draws the board unconditionally.
func (b *Board) Render() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.renderLocked()
}

// SetMinInterval changes the ephemeral redraw interval.
func (b *Board) SetMinInterval(d time.Duration) {
	b.minInterval.Store(int64(d))
}

// MinInterval returns the ephemeral redraw interval.
func (b *Board) MinInterval() time.Duration {
	return time.Duration(b.minInterval.Load())
}

// Snapshot returns the current entries in display order.
func (b *Board) Snapshot() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sortedLocked()
}

// Renders returns how many times the board has been drawn.
func (b *Board) Renders() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.renders
}

// Reset drops every entry.
func (b *Board) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = make(map[string]string)
}

func (b *Board) due() bool {
	last := b.lastRender.Load()
	if last == 0 {
		return true
	}
	return b.now().UnixNano()-last >= b.minInterval.Load()
}

func (b *Board) sortedLocked() []Entry {
	out := make([]Entry, 0, len(b.entries))
	for account, msg := range b.entries {
		out = append(out, Entry{Account: account, Message: msg})
	}
	sortEntries(out)
	return out
}

func (b *Board) renderLocked() {
	entries := b.sortedLocked()
	now := b.now()

	width := 0
	for _, e := range entries {
		width = max(width, len(e.Account))
	}

	var sb strings.Builder
	if b.wipe {
		sb.WriteString(clearScreen)
	} else {
		sb.WriteString(b.styles.rule.Render(strings.Repeat("-", ruleWidth)))
		sb.WriteByte('\n')
	}
	sb.WriteString(b.styles.title.Render(b.title))
	sb.WriteString("  ")
	sb.WriteString(b.styles.clock.Render(now.Format(time.DateTime)))
	sb.WriteByte('\n')

	if len(entries) == 0 {
		sb.WriteString(b.styles.empty.Render("no accounts yet"))
		sb.WriteByte('\n')
	}
	for _, e := range entries {
		sb.WriteString(b.styles.account.Render(fmt.Sprintf("%-*s", width, e.Account)))
		sb.WriteString("  ")
		sb.WriteString(b.styles.message.Render(e.Message))
		sb.WriteByte('\n')
	}

	// Write errors have nowhere to go; the next redraw retries.
	_, _ = io.WriteString(b.out, sb.String())
	b.renders++
	b.lastRender.Store(now.UnixNano())
}

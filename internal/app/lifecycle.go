package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bft-labs/scoreship/internal/domain"
	"github.com/bft-labs/scoreship/pkg/log"
)

// ShutdownTimeout is the maximum time to wait for sessions after a stop.
const ShutdownTimeout = 30 * time.Second

// State represents the lifecycle state of the supervisor.
type State int

const (
	StateStopped State = iota
	StateStarting
	StateRunning
	StateStopping
	StateCrashed
)

var stateNames = [...]string{
	StateStopped:  "Stopped",
	StateStarting: "Starting",
	StateRunning:  "Running",
	StateStopping: "Stopping",
	StateCrashed:  "Crashed",
}

// String returns a human-readable representation of the state.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[s]
}

// transitions lists the states reachable from each state. Starting may go
// straight to Stopping so a signal during start still drains the units.
var transitions = map[State][]State{
	StateStopped:  {StateStarting},
	StateStarting: {StateRunning, StateStopping, StateCrashed},
	StateRunning:  {StateStopping, StateCrashed},
	StateStopping: {StateStopped, StateCrashed},
	StateCrashed:  {StateStarting},
}

// Tally counts the units of the current run by how they are doing.
type Tally struct {
	Live    int
	Exited  int
	Failed  int
	Crashed int
}

// Ended is the number of units that are no longer running.
func (t Tally) Ended() int {
	return t.Exited + t.Failed + t.Crashed
}

func (t Tally) String() string {
	return fmt.Sprintf("%d live, %d exited, %d failed, %d crashed", t.Live, t.Exited, t.Failed, t.Crashed)
}

// EventEmitter observes lifecycle state changes together with the unit
// tally at the moment of the change.
type EventEmitter interface {
	OnStateChange(previous, current State, reason string, tally Tally)
}

// Lifecycle is the supervisor's state machine. It also owns the unit tally
// of the current run and signals when the last unit has ended.
type Lifecycle struct {
	mu         sync.Mutex
	state      State
	cancel     context.CancelFunc
	generation int
	tally      Tally
	drained    chan struct{}

	logger log.Logger
	events EventEmitter
}

// NewLifecycle creates a lifecycle in StateStopped with no run begun.
func NewLifecycle(logger log.Logger, events EventEmitter) *Lifecycle {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	drained := make(chan struct{})
	close(drained)
	return &Lifecycle{
		state:   StateStopped,
		drained: drained,
		logger:  logger,
		events:  events,
	}
}

// State returns the current lifecycle state.
func (l *Lifecycle) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// TransitionTo moves to next if the transition table allows it. A rejected
// transition leaves the state unchanged and returns domain.ErrNotRunning
// from Stopped or Crashed and domain.ErrAlreadyRunning otherwise.
func (l *Lifecycle) TransitionTo(next State, reason string) error {
	l.mu.Lock()
	prev := l.state
	if !allowed(prev, next) {
		l.mu.Unlock()
		if prev == StateStopped || prev == StateCrashed {
			return domain.ErrNotRunning
		}
		return domain.ErrAlreadyRunning
	}
	l.state = next
	tally := l.tally
	l.mu.Unlock()

	l.logger.Info("supervisor state",
		log.String("from", prev.String()),
		log.String("to", next.String()),
		log.String("reason", reason),
		log.Int("live", tally.Live),
		log.Int("ended", tally.Ended()),
	)
	if l.events != nil {
		l.events.OnStateChange(prev, next, reason, tally)
	}
	return nil
}

func allowed(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// CanStart reports whether a new run may begin.
func (l *Lifecycle) CanStart() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state == StateStopped || l.state == StateCrashed
}

// SetCancel stores the cancel function of the current run.
func (l *Lifecycle) SetCancel(cancel context.CancelFunc) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cancel = cancel
}

// Cancel cancels the current run, if any.
func (l *Lifecycle) Cancel() {
	l.mu.Lock()
	cancel := l.cancel
	l.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Begin resets the tally for a run of n units and returns the run's
// generation. Units report their end with that generation; reports from an
// earlier run are ignored.
func (l *Lifecycle) Begin(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.generation++
	l.tally = Tally{Live: n}
	l.drained = make(chan struct{})
	if n <= 0 {
		close(l.drained)
	}
	return l.generation
}

// UnitEnded records how one unit of run generation finished.
func (l *Lifecycle) UnitEnded(generation int, how UnitState) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if generation != l.generation || l.tally.Live == 0 {
		return
	}
	switch how {
	case UnitFailed:
		l.tally.Failed++
	case UnitCrashed:
		l.tally.Crashed++
	default:
		l.tally.Exited++
	}
	l.tally.Live--
	if l.tally.Live == 0 {
		close(l.drained)
	}
}

// Tally returns the unit counts of the current run.
func (l *Lifecycle) Tally() Tally {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tally
}

// Drained returns a channel closed once every unit of the current run has
// ended.
func (l *Lifecycle) Drained() <-chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.drained
}

// WaitDrained waits up to timeout for the current run to drain.
func (l *Lifecycle) WaitDrained(timeout time.Duration) error {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-l.Drained():
		return nil
	case <-timer.C:
		l.logger.Warn("shutdown timeout, units still running",
			log.Duration("timeout", timeout),
			log.Int("live", l.Tally().Live),
		)
		return domain.ErrShutdownTimeout
	}
}

package app

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bft-labs/scoreship/internal/domain"
	"github.com/bft-labs/scoreship/internal/ports"
	"github.com/bft-labs/scoreship/pkg/log"
)

// Unit is one supervised account worker.
type Unit interface {
	Run(ctx context.Context) error
}

// UnitFactory builds the worker for an account.
type UnitFactory func(account *domain.Account) Unit

// UnitState is the supervisor's view of a unit.
type UnitState int

const (
	UnitPending UnitState = iota
	UnitRunning
	UnitExited
	UnitFailed
	UnitCrashed
)

// String returns a human-readable representation of the unit state.
func (s UnitState) String() string {
	switch s {
	case UnitPending:
		return "pending"
	case UnitRunning:
		return "running"
	case UnitExited:
		return "exited"
	case UnitFailed:
		return "failed"
	case UnitCrashed:
		return "crashed"
	default:
		return "unknown"
	}
}

// UnitStatus is a point-in-time report for one unit.
type UnitStatus struct {
	Account   string
	Ordinal   int
	State     UnitState
	Phase     domain.Phase
	HasPhase  bool
	Err       error
	StartedAt time.Time
	EndedAt   time.Time
}

type unitRecord struct {
	status UnitStatus
	unit   Unit
}

// SupervisorStatusKey is the status line that carries supervisor state. It
// has no digits, so it sorts after every account.
const SupervisorStatusKey = "Supervisor"

// SupervisorConfig configures a Supervisor.
type SupervisorConfig struct {
	ShutdownTimeout time.Duration
	Status          ports.StatusReporter
	Logger          log.Logger
	Now             func() time.Time
}

// statusEvents posts every supervisor state change as an important line.
type statusEvents struct {
	status ports.StatusReporter
}

func (e statusEvents) OnStateChange(_, current State, reason string, tally Tally) {
	msg := fmt.Sprintf("%s: %s | %s", strings.ToLower(current.String()), reason, tally)
	e.status.Update(SupervisorStatusKey, msg, domain.ModeImportant)
}

// Supervisor starts one unit per account, observes how each one ends and
// never restarts them.
type Supervisor struct {
	factory         UnitFactory
	lifecycle       *Lifecycle
	status          ports.StatusReporter
	logger          log.Logger
	now             func() time.Time
	shutdownTimeout time.Duration

	mu    sync.Mutex
	units []*unitRecord
}

// NewSupervisor creates a supervisor that builds units with factory.
func NewSupervisor(factory UnitFactory, cfg SupervisorConfig) *Supervisor {
	if cfg.Logger == nil {
		cfg.Logger = log.NewNoopLogger()
	}
	if cfg.Status == nil {
		cfg.Status = discardStatus{}
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = ShutdownTimeout
	}
	return &Supervisor{
		factory:         factory,
		lifecycle:       NewLifecycle(cfg.Logger, statusEvents{status: cfg.Status}),
		status:          cfg.Status,
		logger:          cfg.Logger,
		now:             cfg.Now,
		shutdownTimeout: cfg.ShutdownTimeout,
	}
}

// State returns the supervisor lifecycle state.
func (s *Supervisor) State() State {
	return s.lifecycle.State()
}

// Tally returns how many units of the current run are live and how the
// others ended.
func (s *Supervisor) Tally() Tally {
	return s.lifecycle.Tally()
}

// Run starts every account and blocks until all units have ended or ctx is
// done. After cancellation it waits up to the shutdown timeout and returns
// domain.ErrShutdownTimeout if units are still running.
func (s *Supervisor) Run(ctx context.Context, accounts []*domain.Account) error {
	if !s.lifecycle.CanStart() {
		return domain.ErrAlreadyRunning
	}
	if len(accounts) == 0 {
		return domain.ErrNoAccounts
	}
	if err := s.lifecycle.TransitionTo(StateStarting, "run requested"); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	s.lifecycle.SetCancel(cancel)

	s.mu.Lock()
	s.units = make([]*unitRecord, 0, len(accounts))
	for _, account := range accounts {
		s.units = append(s.units, &unitRecord{
			status: UnitStatus{Account: account.Name, Ordinal: account.Ordinal},
			unit:   s.factory(account),
		})
	}
	records := append([]*unitRecord(nil), s.units...)
	s.mu.Unlock()

	gen := s.lifecycle.Begin(len(records))
	for _, rec := range records {
		go s.runUnit(ctx, gen, rec)
	}

	if err := s.lifecycle.TransitionTo(StateRunning, fmt.Sprintf("%d units started", len(records))); err != nil {
		s.logger.Warn("unexpected lifecycle state", log.Err(err))
	}

	select {
	case <-s.lifecycle.Drained():
		_ = s.lifecycle.TransitionTo(StateStopping, "all units ended")
		_ = s.lifecycle.TransitionTo(StateStopped, "all units ended")
		return nil
	case <-ctx.Done():
	}

	_ = s.lifecycle.TransitionTo(StateStopping, "shutdown requested")
	if err := s.lifecycle.WaitDrained(s.shutdownTimeout); err != nil {
		_ = s.lifecycle.TransitionTo(StateCrashed, "shutdown timeout")
		return err
	}
	_ = s.lifecycle.TransitionTo(StateStopped, "shutdown complete")
	return nil
}

// Stop cancels every running unit. Run returns once they have drained.
func (s *Supervisor) Stop() {
	s.lifecycle.Cancel()
}

// Units returns the status of every unit ordered by account ordinal.
func (s *Supervisor) Units() []UnitStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]UnitStatus, 0, len(s.units))
	for _, rec := range s.units {
		st := rec.status
		if p, ok := rec.unit.(interface{ Phase() domain.Phase }); ok {
			st.Phase = p.Phase()
			st.HasPhase = true
		}
		out = append(out, st)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Ordinal < out[j].Ordinal })
	return out
}

func (s *Supervisor) runUnit(ctx context.Context, gen int, rec *unitRecord) {
	final := UnitExited
	defer func() { s.lifecycle.UnitEnded(gen, final) }()

	name := rec.status.Account
	logger := log.With(s.logger, log.String("account", name))

	s.setUnit(rec, UnitRunning, nil)
	logger.Info("unit started")

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("panic: %v", r)
			final = UnitCrashed
			s.setUnit(rec, UnitCrashed, err)
			logger.Error("unit crashed",
				log.Any("panic", r),
				log.String("stack", string(debug.Stack())),
			)
			s.status.Update(name, fmt.Sprintf("worker crashed: %v", r), domain.ModeImportant)
		}
	}()

	err := rec.unit.Run(ctx)
	switch {
	case err == nil, errors.Is(err, context.Canceled):
		s.setUnit(rec, UnitExited, nil)
		logger.Info("unit exited")
	default:
		final = UnitFailed
		s.setUnit(rec, UnitFailed, err)
		logger.Error("unit failed", log.Err(err))
		s.status.Update(name, fmt.Sprintf("worker stopped: %v", err), domain.ModeImportant)
	}
}

func (s *Supervisor) setUnit(rec *unitRecord, state UnitState, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec.status.State = state
	rec.status.Err = err
	switch state {
	case UnitRunning:
		rec.status.StartedAt = s.now()
	case UnitExited, UnitFailed, UnitCrashed:
		rec.status.EndedAt = s.now()
	}
}

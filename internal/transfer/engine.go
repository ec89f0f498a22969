package transfer

import (
	"context"
	"fmt"
	"time"

	"github.com/bft-labs/scoreship/internal/domain"
	"github.com/bft-labs/scoreship/internal/ports"
	"github.com/bft-labs/scoreship/pkg/log"
)

// DefaultMaxAttempts bounds the retry loop for a single target.
const DefaultMaxAttempts = 5

// notifyTimeout bounds a single fire-and-forget notification.
const notifyTimeout = 15 * time.Second

// SendFunc performs one remote transfer of amount to target. A nil error
// means the remote side committed the transfer. The engine does not
// deduplicate attempts, so the call must be safe to retry.
type SendFunc func(ctx context.Context, target domain.TransferTarget, amount int64) error

// FollowFunc is invoked once per target before its first attempt.
type FollowFunc func(ctx context.Context, target domain.TransferTarget) error

// AttemptHook observes every attempt as it completes.
type AttemptHook func(target domain.TransferTarget, attempt domain.TransferAttempt)

// Config configures an Engine.
type Config struct {
	MaxAttempts int
	Notifier    ports.Notifier
	Logger      log.Logger
	Now         func() time.Time
}

// Engine runs transfer retry loops. It holds no per-account state and may be
// shared by all sessions.
type Engine struct {
	maxAttempts int
	notifier    ports.Notifier
	logger      log.Logger
	now         func() time.Time
}

// NewEngine creates an engine, filling unset fields with defaults.
func NewEngine(cfg Config) *Engine {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewNoopLogger()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Engine{
		maxAttempts: cfg.MaxAttempts,
		notifier:    cfg.Notifier,
		logger:      cfg.Logger,
		now:         cfg.Now,
	}
}

// MaxAttempts returns the per-target attempt bound.
func (e *Engine) MaxAttempts() int {
	return e.maxAttempts
}

// Attempt offers amount to target, shrinking it with Decay after every
// failure. It stops on the first success, after MaxAttempts tries, when the
// amount reaches zero or when ctx is done.
func (e *Engine) Attempt(ctx context.Context, target domain.TransferTarget, amount int64, send SendFunc, hook AttemptHook) domain.TransferOutcome {
	out := domain.TransferOutcome{Target: target, Offered: amount}

	for attempt := 1; attempt <= e.maxAttempts && amount > 0; attempt++ {
		if ctx.Err() != nil {
			break
		}

		a := domain.TransferAttempt{Ordinal: attempt, Amount: amount, Fee: Fee(amount)}
		a.Err = send(ctx, target, amount)
		out.Attempts = append(out.Attempts, a)
		if hook != nil {
			hook(target, a)
		}

		if a.Err == nil {
			out.Success = true
			out.Sent = a.Amount
			out.Fee = a.Fee
			return out
		}

		e.logger.Debug("transfer attempt rejected",
			log.String("target", string(target)),
			log.Int("attempt", attempt),
			log.Int64("amount", amount),
			log.Err(a.Err),
		)
		amount = Decay(amount)
	}

	return out
}

// DistributeRequest describes a multi-target transfer sequence.
type DistributeRequest struct {
	Account   string
	Balance   int64
	Targets   []domain.TransferTarget
	Send      SendFunc
	Follow    FollowFunc
	OnAttempt AttemptHook
}

// Summary aggregates the outcome of a Distribute call.
type Summary struct {
	PerTarget int64
	Outcomes  []domain.TransferOutcome
	TotalSent int64
	TotalFee  int64
	Remaining int64
}

// Succeeded reports whether at least one target received score.
func (s Summary) Succeeded() bool {
	for _, o := range s.Outcomes {
		if o.Success {
			return true
		}
	}
	return false
}

// Failed returns the targets for which every attempt failed.
func (s Summary) Failed() []domain.TransferTarget {
	var out []domain.TransferTarget
	for _, o := range s.Outcomes {
		if !o.Success {
			out = append(out, o.Target)
		}
	}
	return out
}

// Distribute sends an equal share of MaxSendable(Balance) to every target.
//
// The balance is tracked locally: after each committed transfer it is reduced
// by amount + fee, and later targets are never offered more than
// MaxSendable of what is left.
func (e *Engine) Distribute(ctx context.Context, req DistributeRequest) (Summary, error) {
	if len(req.Targets) == 0 {
		return Summary{Remaining: req.Balance}, domain.ErrNoTargets
	}
	if req.Send == nil {
		return Summary{Remaining: req.Balance}, fmt.Errorf("distribute: nil send func")
	}

	sum := Summary{
		PerTarget: SplitAmong(MaxSendable(req.Balance), len(req.Targets)),
		Remaining: req.Balance,
	}

	for _, target := range req.Targets {
		if ctx.Err() != nil {
			break
		}

		if req.Follow != nil {
			if err := req.Follow(ctx, target); err != nil {
				e.logger.Warn("follow target failed",
					log.String("account", req.Account),
					log.String("target", string(target)),
					log.Err(err),
				)
			}
		}

		offer := min(sum.PerTarget, MaxSendable(sum.Remaining))
		outcome := e.Attempt(ctx, target, offer, req.Send, req.OnAttempt)
		sum.Outcomes = append(sum.Outcomes, outcome)

		if !outcome.Success {
			e.logger.Warn("transfer exhausted",
				log.String("account", req.Account),
				log.String("target", string(target)),
				log.Int("attempts", len(outcome.Attempts)),
				log.Err(domain.ErrTransferFailed),
			)
			continue
		}

		sum.TotalSent += outcome.Sent
		sum.TotalFee += outcome.Fee
		sum.Remaining -= outcome.Deducted()
		e.logger.Info("transfer committed",
			log.String("account", req.Account),
			log.String("target", string(target)),
			log.Int64("amount", outcome.Sent),
			log.Int64("fee", outcome.Fee),
		)
		e.notify(ctx, domain.TransferReceipt{
			Account: req.Account,
			Target:  target,
			Amount:  outcome.Sent,
			Fee:     outcome.Fee,
			At:      e.now(),
		})
	}

	return sum, nil
}

// notify delivers a receipt in the background. Failures are logged and
// dropped.
func (e *Engine) notify(ctx context.Context, receipt domain.TransferReceipt) {
	if e.notifier == nil {
		return
	}
	nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
	go func() {
		defer cancel()
		if err := e.notifier.Notify(nctx, receipt); err != nil {
			e.logger.Warn("transfer notification failed",
				log.String("account", receipt.Account),
				log.String("target", string(receipt.Target)),
				log.Err(err),
			)
		}
	}()
}

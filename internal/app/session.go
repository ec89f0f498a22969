package app

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/bft-labs/scoreship/internal/domain"
	"github.com/bft-labs/scoreship/internal/ports"
	"github.com/bft-labs/scoreship/internal/transfer"
	"github.com/bft-labs/scoreship/pkg/log"
)

// Default session pacing.
const (
	DefaultDailyLimit         = 50
	DefaultHeartbeatInterval  = 30 * time.Second
	DefaultTickInterval       = time.Second
	DefaultCycleInterval      = 5 * time.Second
	DefaultWaitWindow         = 24 * time.Hour
	DefaultWaitStatusInterval = 5 * time.Second
	DefaultCommentText        = "good one"
	DefaultTaskCategory       = 1
	DefaultContentDuration    = 180
)

const (
	unknownTitle  = "Unknown Song"
	unknownAuthor = "Unknown Artist"
)

// SessionConfig controls the behavior of every account session.
type SessionConfig struct {
	DailyLimit         int
	HeartbeatInterval  time.Duration
	TickInterval       time.Duration
	CycleInterval      time.Duration
	RetryPause         time.Duration
	RetryPauseMax      time.Duration
	WaitWindow         time.Duration
	WaitStatusInterval time.Duration
	CommentText        string
	TaskCategory       int
	// DefaultDuration is the playback length in seconds used when neither
	// the recommendation nor the detail lookup carries one.
	DefaultDuration int
	Targets         []domain.TransferTarget
	Gate            transfer.Gate
}

// DefaultSessionConfig returns the stock pacing and thresholds.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		DailyLimit:         DefaultDailyLimit,
		HeartbeatInterval:  DefaultHeartbeatInterval,
		TickInterval:       DefaultTickInterval,
		CycleInterval:      DefaultCycleInterval,
		RetryPause:         DefaultRetryPause,
		RetryPauseMax:      DefaultRetryPauseMax,
		WaitWindow:         DefaultWaitWindow,
		WaitStatusInterval: DefaultWaitStatusInterval,
		CommentText:        DefaultCommentText,
		TaskCategory:       DefaultTaskCategory,
		DefaultDuration:    DefaultContentDuration,
		Gate:               transfer.DefaultGate(),
	}
}

// SessionDeps are the collaborators of a session.
type SessionDeps struct {
	Remote ports.RemoteService
	Auth   ports.Authenticator
	Engine *transfer.Engine
	Status ports.StatusReporter
	Logger log.Logger

	// Now and Sleep default to the wall clock.
	Now   func() time.Time
	Sleep SleepFunc
}

// Session drives one account through its daily cycle. The account is owned
// by the session and must not be touched by anything else while Run is
// active.
type Session struct {
	cfg     SessionConfig
	account *domain.Account
	remote  ports.RemoteService
	auth    ports.Authenticator
	engine  *transfer.Engine
	status  ports.StatusReporter
	logger  log.Logger
	now     func() time.Time
	sleep   SleepFunc
	retry   *backoff

	phase         atomic.Int32
	lastHeartbeat time.Time
	tasks         []domain.Task
}

// NewSession creates a session for account.
func NewSession(cfg SessionConfig, account *domain.Account, deps SessionDeps) *Session {
	if deps.Logger == nil {
		deps.Logger = log.NewNoopLogger()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Sleep == nil {
		deps.Sleep = sleepContext
	}
	if deps.Engine == nil {
		deps.Engine = transfer.NewEngine(transfer.Config{Logger: deps.Logger})
	}
	if deps.Status == nil {
		deps.Status = discardStatus{}
	}
	if cfg.DefaultDuration <= 0 {
		cfg.DefaultDuration = DefaultContentDuration
	}

	return &Session{
		cfg:     cfg,
		account: account,
		remote:  deps.Remote,
		auth:    deps.Auth,
		engine:  deps.Engine,
		status:  deps.Status,
		logger:  log.With(deps.Logger, log.String("account", account.Name)),
		now:     deps.Now,
		sleep:   deps.Sleep,
		retry:   newBackoff(cfg.RetryPause, cfg.RetryPauseMax),
	}
}

// Account returns the account driven by the session.
func (s *Session) Account() *domain.Account {
	return s.account
}

// Phase returns the current state of the session. Safe for concurrent use.
func (s *Session) Phase() domain.Phase {
	return domain.Phase(s.phase.Load())
}

// Tasks returns the most recently fetched daily tasks.
func (s *Session) Tasks() []domain.Task {
	return s.tasks
}

// Run initializes the account and then cycles until ctx is done.
// It returns a wrapped domain.ErrInitialization if the first profile or task
// fetch fails, and ctx.Err() on cancellation.
func (s *Session) Run(ctx context.Context) error {
	s.setPhase(domain.PhaseInitializing)
	s.remote.SetToken(s.account.Token)

	if err := s.initialize(ctx); err != nil {
		s.setPhase(domain.PhaseFailed)
		s.logger.Error("initialization failed", log.Err(err))
		s.report(domain.ModeImportant, "initialization failed: %v", err)
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		more, err := s.pass(ctx)
		if err != nil {
			return err
		}

		if !more {
			if err := s.rollover(ctx); err != nil {
				return err
			}
			continue
		}

		if err := s.sleep(ctx, s.cfg.CycleInterval); err != nil {
			return err
		}
	}
}

func (s *Session) initialize(ctx context.Context) error {
	s.logTokenExpiry(s.account.Token)

	profile, err := s.remote.Profile(ctx)
	if err != nil {
		return fmt.Errorf("%w: fetch profile: %w", domain.ErrInitialization, err)
	}
	s.account.ApplyProfile(profile)
	s.report(domain.ModeImportant, "%s", s.progressLine())

	tasks, err := s.remote.DailyTasks(ctx, s.cfg.TaskCategory)
	if err != nil {
		return fmt.Errorf("%w: fetch daily tasks: %w", domain.ErrInitialization, err)
	}
	s.setTasks(tasks)
	return nil
}

// pass runs one consumption pass. It returns false once the daily limit has
// been reached.
func (s *Session) pass(ctx context.Context) (bool, error) {
	s.setPhase(domain.PhaseActiveCycle)
	if s.account.DailyCount >= s.cfg.DailyLimit {
		return false, nil
	}

	s.setPhase(domain.PhaseFetch)
	items, err := s.remote.RecommendedContent(ctx)
	if err != nil {
		s.logger.Warn("fetch recommendations failed", log.Err(err))
	}
	if len(items) == 0 {
		pause := s.retry.Next()
		s.report(domain.ModeImportant, "no content available, retrying in %s", pause.Round(time.Second))
		return true, s.sleep(ctx, pause)
	}
	s.retry.Reset()

	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return true, err
		}
		if s.account.DailyCount >= s.cfg.DailyLimit {
			break
		}
		// Mark before any side effect so a failure below never replays it.
		if !s.account.MarkProcessed(item.ID) {
			continue
		}
		s.account.DailyCount++

		started, err := s.consume(ctx, item)
		if err != nil {
			return true, err
		}
		if started {
			break
		}
	}
	return true, nil
}

// consume plays one content item. started reports whether playback began.
func (s *Session) consume(ctx context.Context, item domain.Content) (started bool, err error) {
	detail, derr := s.remote.ContentDetail(ctx, item.ID)
	if derr != nil {
		s.logger.Warn("fetch content detail failed", log.String("content", item.ID), log.Err(derr))
	}
	duration := firstPositive(detail.Duration, item.Duration, s.cfg.DefaultDuration)
	title := firstNonEmpty(item.Title, detail.Title, unknownTitle)
	author := firstNonEmpty(item.Author, detail.Author, unknownAuthor)

	s.setPhase(domain.PhaseMarkHistory)
	if err := s.remote.RecordHistory(ctx, item.ID); err != nil {
		s.logger.Warn("record history failed", log.String("content", item.ID), log.Err(err))
	}

	s.logger.Info("now playing",
		log.String("content", item.ID),
		log.String("title", title),
		log.String("author", author),
		log.Int("duration", duration),
		log.Int("daily_count", s.account.DailyCount),
	)
	s.report(domain.ModeImportant, "playing %q by %s | %d/%d today | %s",
		title, author, s.account.DailyCount, s.cfg.DailyLimit, formatClock(int64(duration)))

	s.setPhase(domain.PhaseRecordEngagement)
	likeErr := s.remote.MarkFavorite(ctx, item.ID)
	if likeErr != nil {
		s.logger.Warn("favorite failed", log.String("content", item.ID), log.Err(likeErr))
	}
	commentErr := s.remote.PostComment(ctx, item.ID, s.cfg.CommentText)
	if commentErr != nil {
		s.logger.Warn("comment failed", log.String("content", item.ID), log.Err(commentErr))
	}
	s.report(domain.ModeEphemeral, "like %s | comment %s", outcome(likeErr), outcome(commentErr))

	s.setPhase(domain.PhaseStart)
	if err := s.remote.StartPlayback(ctx, item.ID); err != nil {
		s.logger.Warn("start playback failed", log.String("content", item.ID), log.Err(err))
		s.report(domain.ModeImportant, "failed to play %q", title)
		return false, nil
	}

	s.setPhase(domain.PhaseHeartbeat)
	for left := duration; left > 0; left-- {
		s.heartbeat(ctx)
		s.account.ListeningSeconds++
		s.report(domain.ModeEphemeral, "remaining %s | Lv.%d | score %d | listened %d min",
			formatClock(int64(left)), s.account.Level, s.account.Score, s.account.ListeningSeconds/60)
		if err := s.sleep(ctx, s.cfg.TickInterval); err != nil {
			return true, err
		}
	}

	s.setPhase(domain.PhaseEnd)
	if err := s.remote.EndPlayback(ctx, item.ID); err != nil {
		s.logger.Warn("end playback failed", log.String("content", item.ID), log.Err(err))
		s.report(domain.ModeImportant, "finished %q but the end event failed", title)
		return true, nil
	}
	s.report(domain.ModeImportant, "finished %q", title)

	s.setPhase(domain.PhasePostCycleCheck)
	s.postCycle(ctx)
	return true, nil
}

// heartbeat sends at most one heartbeat per HeartbeatInterval. Calls inside
// the interval are skipped, failures are ignored and retried on a later tick.
func (s *Session) heartbeat(ctx context.Context) {
	now := s.now()
	if !s.lastHeartbeat.IsZero() && now.Sub(s.lastHeartbeat) < s.cfg.HeartbeatInterval {
		return
	}
	if err := s.remote.Heartbeat(ctx); err != nil {
		return
	}
	s.lastHeartbeat = now
	s.report(domain.ModeEphemeral, "heartbeat")
}

func (s *Session) postCycle(ctx context.Context) {
	s.refreshProfile(ctx)

	profile := domain.Profile{Level: s.account.Level, Score: s.account.Score}
	eligible := s.cfg.Gate.Eligible(profile)
	s.logger.Info("transfer check",
		log.Int("level", s.account.Level),
		log.Int64("score", s.account.Score),
		log.Bool("eligible", eligible),
	)

	if eligible {
		s.distribute(ctx)
	}
	s.refreshTasks(ctx)
}

func (s *Session) distribute(ctx context.Context) {
	s.report(domain.ModeImportant, "transfer conditions met: Lv.%d (>=%d), score %d (>=%d)",
		s.account.Level, s.cfg.Gate.MinLevel, s.account.Score, s.cfg.Gate.MinScore)

	progress := func(target domain.TransferTarget, a domain.TransferAttempt) {
		s.report(domain.ModeEphemeral, "sending %d to %s (attempt %d/%d, fee %d)",
			a.Amount, target, a.Ordinal, s.engine.MaxAttempts(), a.Fee)
	}
	sum, err := s.engine.Distribute(ctx, transfer.DistributeRequest{
		Account:   s.account.Name,
		Balance:   s.account.Score,
		Targets:   s.cfg.Targets,
		Send:      s.remote.TransferScore,
		Follow:    s.remote.FollowAccount,
		OnAttempt: progress,
	})
	if errors.Is(err, domain.ErrNoTargets) {
		s.logger.Debug("no transfer targets configured")
		return
	}
	if err != nil {
		s.logger.Warn("transfer aborted", log.Err(err))
		return
	}

	s.account.Score = sum.Remaining
	succeeded := 0
	for _, o := range sum.Outcomes {
		if o.Success {
			succeeded++
		}
	}
	s.report(domain.ModeImportant, "sent %d to %d/%d targets | fee %d | remaining %d",
		sum.TotalSent, succeeded, len(sum.Outcomes), sum.TotalFee, sum.Remaining)

	if sum.Succeeded() {
		s.refreshProfile(ctx)
	}
}

// rollover waits out the day window, refreshes the credential and starts a
// new day.
func (s *Session) rollover(ctx context.Context) error {
	s.setPhase(domain.PhaseDailyExhausted)
	s.logger.Info("daily limit reached", log.Int("limit", s.cfg.DailyLimit))
	s.report(domain.ModeImportant, "daily limit reached (%d/%d), waiting for reset",
		s.account.DailyCount, s.cfg.DailyLimit)

	s.setPhase(domain.PhaseWaitWindow)
	step := s.cfg.WaitStatusInterval
	if step <= 0 {
		step = s.cfg.WaitWindow
	}
	for left := s.cfg.WaitWindow; left > 0; left -= step {
		s.report(domain.ModeEphemeral, "next session in %s", formatClock(int64(left/time.Second)))
		if err := s.sleep(ctx, min(step, left)); err != nil {
			return err
		}
	}

	s.setPhase(domain.PhaseCredentialRefresh)
	s.refreshCredential(ctx)

	s.setPhase(domain.PhaseReset)
	s.account.ResetDay()
	s.lastHeartbeat = time.Time{}
	s.report(domain.ModeImportant, "starting new daily session")
	s.refreshProfile(ctx)
	s.refreshTasks(ctx)
	return nil
}

func (s *Session) refreshCredential(ctx context.Context) {
	if s.auth == nil || s.account.Credential == "" {
		s.logger.Warn("no credential available for token refresh")
		return
	}
	token, err := s.auth.Authenticate(ctx, s.account.Credential)
	if err != nil {
		s.logger.Warn("token refresh failed, continuing with existing token", log.Err(err))
		s.report(domain.ModeImportant, "token refresh failed, continuing with existing token")
		return
	}
	s.account.Token = token
	s.remote.SetToken(token)
	s.logger.Info("token refreshed")
	s.logTokenExpiry(token)
}

func (s *Session) refreshProfile(ctx context.Context) {
	profile, err := s.remote.Profile(ctx)
	if err != nil {
		s.logger.Warn("fetch profile failed", log.Err(err))
		return
	}
	s.account.ApplyProfile(profile)
	s.report(domain.ModeEphemeral, "%s", s.progressLine())
}

func (s *Session) refreshTasks(ctx context.Context) {
	tasks, err := s.remote.DailyTasks(ctx, s.cfg.TaskCategory)
	if err != nil {
		s.logger.Warn("fetch daily tasks failed", log.Err(err))
		return
	}
	s.setTasks(tasks)
}

func (s *Session) setTasks(tasks []domain.Task) {
	s.tasks = tasks
	for _, t := range tasks {
		if t.Name == "" {
			continue
		}
		s.logger.Info("daily task",
			log.String("task", t.Name),
			log.String("progress", taskProgress(t, s.account.ListeningSeconds)),
			log.Int64("reward", t.RewardScore),
		)
	}
	if line := taskSummary(tasks, s.account.ListeningSeconds); line != "" {
		s.report(domain.ModeImportant, "tasks: %s", line)
	}
}

func (s *Session) progressLine() string {
	return fmt.Sprintf("Lv.%d | score %d | exp %d/%d",
		s.account.Level, s.account.Score, s.account.Experience, s.account.NextLevelExperience)
}

func (s *Session) setPhase(p domain.Phase) {
	s.phase.Store(int32(p))
}

func (s *Session) report(mode domain.StatusMode, format string, args ...any) {
	s.status.Update(s.account.Name, fmt.Sprintf(format, args...), mode)
}

type discardStatus struct{}

func (discardStatus) Update(string, string, domain.StatusMode) {}

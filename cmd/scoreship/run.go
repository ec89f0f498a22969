package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bft-labs/scoreship/internal/adapters/notify"
	"github.com/bft-labs/scoreship/internal/adapters/sim"
	"github.com/bft-labs/scoreship/internal/app"
	"github.com/bft-labs/scoreship/internal/cliconfig"
	"github.com/bft-labs/scoreship/internal/configwatch"
	"github.com/bft-labs/scoreship/internal/domain"
	"github.com/bft-labs/scoreship/internal/ports"
	"github.com/bft-labs/scoreship/internal/status"
	"github.com/bft-labs/scoreship/internal/transfer"
	"github.com/bft-labs/scoreship/pkg/log"
)

func run(parent context.Context, cfg cliconfig.Config, watchFile string) error {
	if parent == nil {
		parent = context.Background()
	}

	zl, closer, err := cliconfig.NewLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer closer.Close()
	logger := log.NewZerologAdapterWithLogger(zl)

	credentials, err := cliconfig.LoadCredentials(cfg.CredentialsFile)
	if err != nil {
		return err
	}

	logCfg := cfg
	logCfg.NotifyChatID = maskSecret(cfg.NotifyChatID)
	logger.Info("configuration",
		log.Any("config", logCfg),
		log.Int("credentials", len(credentials)),
	)
	if len(cfg.Targets) == 0 {
		logger.Warn("no transfer targets configured, score will accumulate")
	}

	ctx, cancel := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	board := status.NewBoard(os.Stdout, status.WithMinInterval(cfg.StatusInterval))

	notifier, err := newNotifier(cfg, logger)
	if err != nil {
		return err
	}
	engine := transfer.NewEngine(transfer.Config{
		MaxAttempts: cfg.TransferMaxAttempts,
		Notifier:    notifier,
		Logger:      logger,
	})

	backend := sim.New(sim.Config{
		FailureRate: cfg.SimFailureRate,
		Duration:    cfg.SimDuration,
		Seed:        cfg.SimSeed,
	})

	if watchFile != "" {
		w := configwatch.New(watchFile, configwatch.LiveReload(board, logger), configwatch.Config{Logger: logger})
		if err := w.Start(ctx); err != nil {
			logger.Warn("config watcher disabled", log.Err(err))
		} else {
			defer w.Stop()
		}
	}

	accounts, err := app.Bootstrap(ctx, backend, credentials, board, logger)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}

	sessionCfg := sessionConfig(cfg)
	sup := app.NewSupervisor(func(account *domain.Account) app.Unit {
		return app.NewSession(sessionCfg, account, app.SessionDeps{
			Remote: backend.Remote(),
			Auth:   backend,
			Engine: engine,
			Status: board,
			Logger: logger,
		})
	}, app.SupervisorConfig{
		ShutdownTimeout: cfg.ShutdownTimeout,
		Status:          board,
		Logger:          logger,
	})

	err = sup.Run(ctx, accounts)
	board.Render()
	tally := sup.Tally()
	logger.Info("sessions ended",
		log.Int("exited", tally.Exited),
		log.Int("failed", tally.Failed),
		log.Int("crashed", tally.Crashed),
		log.Int("still_running", tally.Live),
	)
	for _, u := range sup.Units() {
		logger.Info("unit ended",
			log.String("account", u.Account),
			log.String("state", u.State.String()),
			log.Err(u.Err),
		)
	}
	if errors.Is(err, domain.ErrShutdownTimeout) {
		return fmt.Errorf("stop sessions: %w", err)
	}
	return err
}

func newNotifier(cfg cliconfig.Config, logger log.Logger) (ports.Notifier, error) {
	if cfg.NotifyURL == "" {
		return notify.NewNoop(), nil
	}
	wh, err := notify.NewWebhook(notify.WebhookConfig{
		URL:     cfg.NotifyURL,
		ChatID:  cfg.NotifyChatID,
		Timeout: cfg.NotifyTimeout,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("notifier: %w", err)
	}
	return wh, nil
}

func sessionConfig(cfg cliconfig.Config) app.SessionConfig {
	sc := app.DefaultSessionConfig()
	sc.DailyLimit = cfg.DailyLimit
	sc.HeartbeatInterval = cfg.HeartbeatInterval
	sc.TickInterval = cfg.TickInterval
	sc.CycleInterval = cfg.CycleInterval
	sc.RetryPause = cfg.RetryPause
	sc.RetryPauseMax = cfg.RetryPauseMax
	sc.WaitWindow = cfg.WaitWindow
	sc.WaitStatusInterval = cfg.WaitStatusInterval
	sc.CommentText = cfg.CommentText
	sc.TaskCategory = cfg.TaskCategory
	sc.DefaultDuration = cfg.DefaultDuration
	sc.Gate = transfer.Gate{MinLevel: cfg.MinLevel, MinScore: cfg.MinScore}
	sc.Targets = make([]domain.TransferTarget, 0, len(cfg.Targets))
	for _, t := range cfg.Targets {
		sc.Targets = append(sc.Targets, domain.TransferTarget(t))
	}
	return sc
}

func maskSecret(s string) string {
	if s == "" {
		return ""
	}
	return "*****"
}

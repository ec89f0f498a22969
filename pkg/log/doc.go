// Package log provides the logging port used by scoreship components.
//
// Components depend on the Logger interface only. The zerolog adapter is the
// production implementation; the no-op logger is meant for tests.
//
// # Usage
//
//	logger := log.NewZerologAdapterWithLogger(zerolog.New(os.Stderr))
//	accountLog := log.With(logger, log.String("account", "Wallet-1"))
//	accountLog.Info("session started", log.Int("daily_limit", 50))
package log

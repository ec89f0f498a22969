package configwatch

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/scoreship/internal/cliconfig"
	"github.com/bft-labs/scoreship/pkg/log"
)

// IntervalSetter is implemented by the status board.
type IntervalSetter interface {
	SetMinInterval(d time.Duration)
}

// LiveReload returns a Handler that applies the settings which can change
// without a restart: the status redraw interval and the log level. Every
// other key is ignored until the next start.
func LiveReload(board IntervalSetter, logger log.Logger) Handler {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return func(fc cliconfig.FileConfig) {
		if fc.StatusInterval != "" {
			d, err := time.ParseDuration(fc.StatusInterval)
			switch {
			case err != nil:
				logger.Warn("ignoring status_interval", log.String("value", fc.StatusInterval), log.Err(err))
			case d <= 0:
				logger.Warn("ignoring non-positive status_interval", log.Duration("value", d))
			default:
				board.SetMinInterval(d)
				logger.Info("status interval updated", log.Duration("interval", d))
			}
		}

		if fc.LogLevel != "" {
			lvl, err := cliconfig.ParseLevel(fc.LogLevel)
			if err != nil {
				logger.Warn("ignoring log_level", log.String("value", fc.LogLevel), log.Err(err))
				return
			}
			zerolog.SetGlobalLevel(lvl)
			logger.Info("log level updated", log.String("level", lvl.String()))
		}
	}
}

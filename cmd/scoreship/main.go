package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/scoreship/internal/cliconfig"
)

const helpBanner = `
 ___  ___ ___  _ __ ___  ___| |__ (_)_ __
/ __|/ __/ _ \| '__/ _ \/ __| '_ \| | '_ \
\__ \ (_| (_) | | |  __/\__ \ | | | | |_) |
|___/\___\___/|_|  \___||___/_| |_|_| .__/
                                    |_|
`

const helpDescription = `
Run many account sessions side by side and ship their score where it belongs.

Highlights:
  - One independent session per credential, all on a single status board.
  - Consumes content up to a daily limit, then waits for the next day window.
  - Transfers score to your targets with fee-aware amounts and decaying retries.
  - Configure via file, env (SCORESHIP_*), or flags.
`

var longHelp = strings.TrimSpace(helpBanner) + "\n\n" + strings.TrimSpace(helpDescription)

var exampleUsage = strings.TrimSpace(`
  scoreship --credentials pk.txt --target 0xabc --target 0xdef
  scoreship --config $HOME/.scoreship/config.toml --daily-limit 20
  scoreship calc 2200 --targets 2
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "scoreship",
		Short:         "Run concurrent account sessions and transfer their score",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			watchFile := ""
			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
				watchFile = cfgFile
			}

			// Environment overrides the file; explicitly set flags win.
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			return run(cmd.Context(), cfg, watchFile)
		},
	}

	flags := root.Flags()
	flags.StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.scoreship/config.toml)")
	flags.StringVar(&cfg.CredentialsFile, "credentials", cfg.CredentialsFile, "file with one credential per line")
	flags.StringSliceVar(&cfg.Targets, "target", cfg.Targets, "transfer recipient (repeatable)")

	flags.IntVar(&cfg.DailyLimit, "daily-limit", cfg.DailyLimit, "content items per account per day window")
	flags.IntVar(&cfg.TransferMaxAttempts, "transfer-attempts", cfg.TransferMaxAttempts, "attempts per target before giving up")
	flags.IntVar(&cfg.MinLevel, "min-level", cfg.MinLevel, "minimum account level before transferring")
	flags.Int64Var(&cfg.MinScore, "min-score", cfg.MinScore, "minimum score before transferring")

	flags.DurationVar(&cfg.HeartbeatInterval, "heartbeat-interval", cfg.HeartbeatInterval, "minimum spacing between heartbeats")
	flags.DurationVar(&cfg.TickInterval, "tick-interval", cfg.TickInterval, "length of one simulated playback second")
	flags.DurationVar(&cfg.CycleInterval, "cycle-interval", cfg.CycleInterval, "pause between active cycles")
	flags.DurationVar(&cfg.RetryPause, "retry-pause", cfg.RetryPause, "initial pause when no content is available")
	flags.DurationVar(&cfg.RetryPauseMax, "retry-pause-max", cfg.RetryPauseMax, "upper bound for the no-content pause")
	flags.DurationVar(&cfg.WaitWindow, "wait-window", cfg.WaitWindow, "wait between daily sessions")
	flags.DurationVar(&cfg.WaitStatusInterval, "wait-status-interval", cfg.WaitStatusInterval, "countdown refresh while waiting")
	flags.DurationVar(&cfg.StatusInterval, "status-interval", cfg.StatusInterval, "minimum spacing between progress redraws")
	flags.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "how long to wait for sessions on shutdown")

	flags.StringVar(&cfg.CommentText, "comment", cfg.CommentText, "comment posted on each content item")
	flags.IntVar(&cfg.TaskCategory, "task-category", cfg.TaskCategory, "daily task category to track")
	flags.IntVar(&cfg.DefaultDuration, "default-duration", cfg.DefaultDuration, "playback seconds when the remote reports none")

	flags.StringVar(&cfg.NotifyURL, "notify-url", cfg.NotifyURL, "webhook for transfer receipts (optional)")
	flags.StringVar(&cfg.NotifyChatID, "notify-chat-id", cfg.NotifyChatID, "chat id sent with each receipt")
	flags.DurationVar(&cfg.NotifyTimeout, "notify-timeout", cfg.NotifyTimeout, "webhook request timeout")

	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (trace, debug, info, warn, error)")
	flags.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write logs to this file instead of stderr")

	flags.StringVar(&cfg.Backend, "backend", cfg.Backend, "remote backend (sim)")
	flags.Float64Var(&cfg.SimFailureRate, "sim-failure-rate", cfg.SimFailureRate, "probability that a simulated call fails")
	flags.IntVar(&cfg.SimDuration, "sim-duration", cfg.SimDuration, "simulated content duration in seconds")
	flags.Int64Var(&cfg.SimSeed, "sim-seed", cfg.SimSeed, "seed for simulated failures (0 = random)")
	for _, name := range []string{"sim-failure-rate", "sim-duration", "sim-seed"} {
		if err := flags.MarkHidden(name); err != nil {
			fmt.Fprintf(os.Stderr, "hide %s flag: %v\n", name, err)
		}
	}

	root.AddCommand(newCalcCommand(cfg.TransferMaxAttempts))

	if err := root.Execute(); err != nil {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		logger.Error().Err(err).Msg("scoreship")
		os.Exit(1)
	}
}

// cmd/mastermind/main.go
//
// Entry point: load configuration, set up zerolog, run the cobra command tree.

package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tomasrobino/mastermind/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	closeLog, err := setupLogging(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open log file")
	}

	err = newRootCmd(cfg).Execute()
	if err != nil {
		log.Error().Err(err).Msg("command failed")
	}
	closeLog()
	if err != nil {
		os.Exit(1)
	}
}

// setupLogging applies LOG_LEVEL and points the global logger at LOG_FILE
// (JSON) or stderr (console). The returned func closes the log file.
func setupLogging(cfg *config.Config) (func(), error) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogFile == "" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		return func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return func() { _ = f.Close() }, nil
}

// internal/config/config.go
//
// Runtime configuration for the mastermind binary.
// Values come from the environment (optionally seeded from a .env file) and
// are validated before use. Command-line flags override them in cmd/.
//
// Environment variables:
//   LOG_LEVEL                 zerolog level (default info)
//   LOG_FILE                  write JSON logs here instead of stderr
//   MASTERMIND_CODE_LENGTH    symbols per code (default 4)
//   MASTERMIND_MAX_ROUNDS     guesses before the game is lost (default 10)
//   MASTERMIND_COLORS         use only the first N palette colors (0 = all)
//   MASTERMIND_PALETTE        embedded palette name or YAML file path
//   MASTERMIND_SEED           fixed generator seed (0 = random)
//   MASTERMIND_DAILY_SALT     salt for the daily challenge seed

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds every tunable of the game and the binary around it.
type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=trace debug info warn error fatal panic disabled"`
	LogFile  string `env:"LOG_FILE"`

	CodeLength int    `env:"MASTERMIND_CODE_LENGTH" envDefault:"4" validate:"min=1,max=12"`
	MaxRounds  int    `env:"MASTERMIND_MAX_ROUNDS" envDefault:"10" validate:"min=1,max=50"`
	Colors     int    `env:"MASTERMIND_COLORS" envDefault:"0" validate:"eq=0|min=2"`
	Palette    string `env:"MASTERMIND_PALETTE"`
	Seed       int64  `env:"MASTERMIND_SEED" envDefault:"0"`
	DailySalt  string `env:"MASTERMIND_DAILY_SALT" envDefault:"local_dev_salt" validate:"required"`
}

var validate = validator.New()

// Load reads .env (if present) and the environment into a validated Config.
func Load(dotenv ...string) (*Config, error) {
	if err := godotenv.Load(dotenv...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges; call it again after applying flag overrides.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

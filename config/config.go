package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the runtime options. Everything comes from the
// environment; the game itself takes no flags.
type Config struct {
	Lives      int    `env:"HANGMAN_LIVES"        envDefault:"6"`
	Debug      bool   `env:"HANGMAN_DEBUG"        envDefault:"false"`
	Mute       bool   `env:"HANGMAN_MUTE"         envDefault:"false"`
	WaitOnExit bool   `env:"HANGMAN_WAIT_ON_EXIT" envDefault:"true"`
	ScoresPath string `env:"HANGMAN_SCORES"`
}

// Load reads a .env file when one exists, then parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Lives < 1 {
		return Config{}, fmt.Errorf("HANGMAN_LIVES must be positive, got %d", cfg.Lives)
	}
	return cfg, nil
}

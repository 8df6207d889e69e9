// Package config provides server configuration loaded from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all tunable server settings.
type Config struct {
	// Server
	Port     int    `env:"PORT" envDefault:"8765"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Google API
	GoogleAPIKey string `env:"GOOGLE_API_KEY"`

	// Models
	LiveModel       string `env:"LIVE_MODEL" envDefault:"models/gemini-2.0-flash-exp"`
	ClassifierModel string `env:"CLASSIFIER_MODEL" envDefault:"gemini-2.0-flash"`

	// Trigger audio cache. Empty dir runs badger in memory.
	CacheDir string `env:"CACHE_DIR"`

	// Optional YAML overrides for personas and detection vocabularies.
	AgentsFile string `env:"AGENTS_FILE"`
	TuningFile string `env:"TUNING_FILE"`

	// Mode timeout tuning.
	ChatTimeout      time.Duration `env:"CHAT_TIMEOUT" envDefault:"60s"`
	QATimeout        time.Duration `env:"QA_TIMEOUT" envDefault:"20s"`
	IntroTimeout     time.Duration `env:"INTRO_TIMEOUT" envDefault:"45s"`
	StoppedPrompt    time.Duration `env:"STOPPED_PROMPT_TIMEOUT" envDefault:"30s"`
	StoppedTerminate time.Duration `env:"STOPPED_TIMEOUT" envDefault:"60s"`
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.GoogleAPIKey == "" {
		return errors.New("config: GOOGLE_API_KEY is required")
	}
	if c.StoppedPrompt >= c.StoppedTerminate {
		return errors.New("config: STOPPED_PROMPT_TIMEOUT must be below STOPPED_TIMEOUT")
	}
	return nil
}

// Package config provides configuration management for the rental agent.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"rentscout/internal/models"
)

// Configuration validation errors.
var (
	ErrInvalidRate           = errors.New("agent.exchange_rate must be positive")
	ErrInvalidTargetCurrency = errors.New("agent.target_currency must be GHS or USD")
	ErrInvalidResultCap      = errors.New("agent.result_cap must be at least 1")
	ErrNoLocations           = errors.New("at least one canonical location is required")
	ErrEmptyAlias            = errors.New("location aliases must be non-empty")
	ErrInvalidMaxAttempts    = errors.New("scraper.retry.max_attempts must be at least 1")
	ErrInvalidInitialDelay   = errors.New("scraper.retry.initial_delay_ms must be non-negative")
	ErrInvalidTimeout        = errors.New("scraper.retry.timeout_sec must be at least 1")
	ErrMissingBaseURL        = errors.New("scraper.base_url is required")
	ErrInvalidLogLevel       = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete agent configuration.
type Config struct {
	Agent   AgentConfig   `yaml:"agent"`
	Scraper ScraperConfig `yaml:"scraper"`
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
}

// AgentConfig contains the normalization and query settings.
type AgentConfig struct {
	// ExchangeRate is GHS per USD, fixed for the session.
	ExchangeRate   float64             `yaml:"exchange_rate"`
	TargetCurrency models.Currency     `yaml:"target_currency"`
	ResultCap      int                 `yaml:"result_cap"`
	Locations      map[string][]string `yaml:"locations"`
}

// ScraperConfig contains fetch settings for the listing portal.
type ScraperConfig struct {
	BaseURL   string      `yaml:"base_url"`
	UserAgent string      `yaml:"user_agent"`
	Retry     RetryPolicy `yaml:"retry"`
}

// RetryPolicy defines fetch retry behavior.
type RetryPolicy struct {
	MaxAttempts    int `yaml:"max_attempts"`
	InitialDelayMs int `yaml:"initial_delay_ms"`
	MaxDelayMs     int `yaml:"max_delay_ms"`
	TimeoutSec     int `yaml:"timeout_sec"`
}

// ServerConfig contains HTTP API settings.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns a configuration with the built-in Accra gazetteer and
// sensible defaults, so components are usable without a config file.
func Default() *Config {
	return &Config{
		Agent: AgentConfig{
			ExchangeRate:   14.5,
			TargetCurrency: models.CurrencyGHS,
			ResultCap:      10,
			Locations: map[string][]string{
				"East Legon":               {"east legon"},
				"Cantonments":              {"cantonments"},
				"Osu":                      {"osu"},
				"Airport Residential Area": {"airport residential area", "airport residential"},
				"Airport Hills":            {"airport hills"},
				"Labone":                   {"labone"},
				"Roman Ridge":              {"roman ridge"},
				"Downtown Accra":           {"downtown accra", "accra central"},
				"Spintex":                  {"spintex", "spintex road"},
				"Tema":                     {"tema"},
				"Tesano":                   {"tesano"},
				"Dansoman":                 {"dansoman"},
				"Adenta":                   {"adenta", "adentan"},
				"Dome":                     {"dome"},
				"Lapaz":                    {"lapaz", "la paz"},
				"Kwame Nkrumah Circle":     {"circle", "kwame nkrumah circle"},
			},
		},
		Scraper: ScraperConfig{
			BaseURL:   "https://www.meqasa.com",
			UserAgent: "rentscout/1.0 (+https://github.com/rentscout)",
			Retry: RetryPolicy{
				MaxAttempts:    3,
				InitialDelayMs: 500,
				MaxDelayMs:     10000,
				TimeoutSec:     30,
			},
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig loads configuration from a YAML file, applying defaults for
// fields the file omits. The file is decoded into a fresh Config so a
// supplied locations table replaces the built-in gazetteer instead of being
// merged into it.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// applyDefaults fills zero-valued fields from Default(). A negative value
// supplied by the file is kept so Validate can reject it.
func (c *Config) applyDefaults() {
	def := Default()

	if c.Agent.ExchangeRate == 0 {
		c.Agent.ExchangeRate = def.Agent.ExchangeRate
	}

	if c.Agent.TargetCurrency == "" {
		c.Agent.TargetCurrency = def.Agent.TargetCurrency
	}

	if c.Agent.ResultCap == 0 {
		c.Agent.ResultCap = def.Agent.ResultCap
	}

	if c.Agent.Locations == nil {
		c.Agent.Locations = def.Agent.Locations
	}

	if c.Scraper.BaseURL == "" {
		c.Scraper.BaseURL = def.Scraper.BaseURL
	}

	if c.Scraper.UserAgent == "" {
		c.Scraper.UserAgent = def.Scraper.UserAgent
	}

	if c.Scraper.Retry.MaxAttempts == 0 {
		c.Scraper.Retry.MaxAttempts = def.Scraper.Retry.MaxAttempts
	}

	if c.Scraper.Retry.InitialDelayMs == 0 {
		c.Scraper.Retry.InitialDelayMs = def.Scraper.Retry.InitialDelayMs
	}

	if c.Scraper.Retry.MaxDelayMs == 0 {
		c.Scraper.Retry.MaxDelayMs = def.Scraper.Retry.MaxDelayMs
	}

	if c.Scraper.Retry.TimeoutSec == 0 {
		c.Scraper.Retry.TimeoutSec = def.Scraper.Retry.TimeoutSec
	}

	if c.Server.Addr == "" {
		c.Server.Addr = def.Server.Addr
	}

	if c.Logging.Level == "" {
		c.Logging.Level = def.Logging.Level
	}

	if c.Logging.Format == "" {
		c.Logging.Format = def.Logging.Format
	}
}

// ApplyEnv overlays supported environment variables onto the config. Called
// by the cmds after godotenv has loaded any .env file.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("RENTSCOUT_EXCHANGE_RATE"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("RENTSCOUT_EXCHANGE_RATE: %w", err)
		}

		c.Agent.ExchangeRate = rate
	}

	if v := os.Getenv("RENTSCOUT_TARGET_CURRENCY"); v != "" {
		c.Agent.TargetCurrency = models.Currency(v)
	}

	if v := os.Getenv("RENTSCOUT_ADDR"); v != "" {
		c.Server.Addr = v
	}

	return nil
}

// Validate validates the configuration. An invalid exchange rate is fatal
// here, before any scraping or querying begins.
func (c *Config) Validate() error {
	if c.Agent.ExchangeRate <= 0 {
		return ErrInvalidRate
	}

	if c.Agent.TargetCurrency != models.CurrencyGHS && c.Agent.TargetCurrency != models.CurrencyUSD {
		return ErrInvalidTargetCurrency
	}

	if c.Agent.ResultCap < 1 {
		return ErrInvalidResultCap
	}

	if len(c.Agent.Locations) == 0 {
		return ErrNoLocations
	}

	for canonical, aliases := range c.Agent.Locations {
		if canonical == "" {
			return ErrEmptyAlias
		}

		for _, a := range aliases {
			if a == "" {
				return fmt.Errorf("%w: location %q", ErrEmptyAlias, canonical)
			}
		}
	}

	if c.Scraper.BaseURL == "" {
		return ErrMissingBaseURL
	}

	if c.Scraper.Retry.MaxAttempts < 1 {
		return ErrInvalidMaxAttempts
	}

	if c.Scraper.Retry.InitialDelayMs < 0 {
		return ErrInvalidInitialDelay
	}

	if c.Scraper.Retry.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// AliasTable flattens the canonical-location map into alias -> canonical
// form for the location matcher. Each canonical name is its own alias.
func (c *Config) AliasTable() map[string]string {
	table := make(map[string]string, len(c.Agent.Locations)*2)

	for canonical, aliases := range c.Agent.Locations {
		table[canonical] = canonical
		for _, a := range aliases {
			table[a] = canonical
		}
	}

	return table
}

// GetTimeout returns the fetch timeout duration.
func (rp *RetryPolicy) GetTimeout() time.Duration {
	return time.Duration(rp.TimeoutSec) * time.Second
}

// GetInitialDelay returns the first retry wait.
func (rp *RetryPolicy) GetInitialDelay() time.Duration {
	return time.Duration(rp.InitialDelayMs) * time.Millisecond
}

// GetMaxDelay returns the retry wait ceiling.
func (rp *RetryPolicy) GetMaxDelay() time.Duration {
	return time.Duration(rp.MaxDelayMs) * time.Millisecond
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Rate: %.2f, Target: %s, Cap: %d, Locations: %d}",
		c.Agent.ExchangeRate,
		c.Agent.TargetCurrency,
		c.Agent.ResultCap,
		len(c.Agent.Locations),
	)
}

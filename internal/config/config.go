// Package config provides environment-based configuration for the platform.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Default values applied when the corresponding environment variable is unset.
const (
	DefaultPort         = 8080
	DefaultParserAPIURL = "https://resumeparser.app/resume/parse"
	DefaultBaseURL      = "http://localhost:8080"
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "json"
)

// Config holds everything the process needs at startup. All values come
// from the environment; Load never fails, Validate reports what is missing.
type Config struct {
	Port         int    // HTTP listen port (PORT)
	DatabaseURL  string // PostgreSQL connection URL (DATABASE_URL)
	ParserAPIKey string // Bearer credential for the resume parser (PARSER_API_KEY)
	ParserAPIURL string // Endpoint of the resume parser (PARSER_API_URL)
	BaseURL      string // Public base URL used to build share links (BASE_URL)
	LogLevel     string // zerolog level (LOG_LEVEL)
	LogFormat    string // "json" or "pretty" (LOG_FORMAT)
}

// Load reads the configuration from the environment, applying defaults for
// optional values. A .env file, if any, is loaded by main before this runs.
func Load() *Config {
	cfg := &Config{
		Port:         DefaultPort,
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		ParserAPIKey: os.Getenv("PARSER_API_KEY"),
		ParserAPIURL: os.Getenv("PARSER_API_URL"),
		BaseURL:      os.Getenv("BASE_URL"),
		LogLevel:     os.Getenv("LOG_LEVEL"),
		LogFormat:    os.Getenv("LOG_FORMAT"),
	}

	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil && p > 0 {
			cfg.Port = p
		}
	}
	if cfg.ParserAPIURL == "" {
		cfg.ParserAPIURL = DefaultParserAPIURL
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}

	return cfg
}

// Validate checks that the configuration is complete enough to start the
// process. A missing parser credential is a fatal startup condition.
func (c *Config) Validate() error {
	if c.ParserAPIKey == "" {
		return fmt.Errorf("config error: PARSER_API_KEY is required")
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("config error: DATABASE_URL is required")
	}
	return nil
}

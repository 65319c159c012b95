// Package config loads application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// ErrMissingToken is returned by RequireToken when no GitHub token is set.
var ErrMissingToken = errors.New("GITHUB_TOKEN environment variable not set")

// Config holds the application configuration loaded from environment variables.
type Config struct {
	GitHubToken   string
	Owner         string
	Repo          string
	DBPath        string
	PaceEvery     int
	PaceDelay     time.Duration
	OutputDir     string
	DashboardPath string
	ListenAddr    string
	LogLevel      slog.Level
}

// FullName returns the repository slug in "owner/repo" form.
func (c *Config) FullName() string {
	return c.Owner + "/" + c.Repo
}

// RequireToken returns ErrMissingToken unless a GitHub token is configured.
// Commands that talk to GitHub call it before building a client.
func (c *Config) RequireToken() error {
	if c.GitHubToken == "" {
		return ErrMissingToken
	}
	return nil
}

// Validate checks the values Load cannot reject on parse alone.
func (c *Config) Validate() error {
	if c.Owner == "" || strings.Contains(c.Owner, "/") {
		return fmt.Errorf("REALMSEED_OWNER %q is not a valid owner", c.Owner)
	}
	if c.Repo == "" || strings.Contains(c.Repo, "/") {
		return fmt.Errorf("REALMSEED_REPO %q is not a valid repository name", c.Repo)
	}
	if c.PaceEvery < 0 {
		return fmt.Errorf("REALMSEED_PACE_EVERY must not be negative, got %d", c.PaceEvery)
	}
	if c.PaceDelay < 0 {
		return fmt.Errorf("REALMSEED_PACE_DELAY must not be negative, got %s", c.PaceDelay)
	}
	return nil
}

// Load reads configuration from environment variables and returns a validated Config.
// The GitHub token comes from REALMSEED_GITHUB_TOKEN, falling back to GITHUB_TOKEN;
// it is optional here because only the seeding commands need it.
// Optional variables with defaults: REALMSEED_OWNER (michael-placeholder),
// REALMSEED_REPO (shadowed-realms), REALMSEED_DB_PATH (realmseed.db),
// REALMSEED_PACE_EVERY (3), REALMSEED_PACE_DELAY (2s), REALMSEED_OUTPUT_DIR (.),
// REALMSEED_DASHBOARD_PATH (docs/index.html), REALMSEED_LISTEN_ADDR (127.0.0.1:8080),
// REALMSEED_LOG_LEVEL (info).
func Load() (*Config, error) {
	token := os.Getenv("REALMSEED_GITHUB_TOKEN")
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}

	paceEvery := 3
	if v, ok := os.LookupEnv("REALMSEED_PACE_EVERY"); ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("REALMSEED_PACE_EVERY has invalid integer %q: %w", v, err)
		}
		paceEvery = parsed
	}

	paceDelay := 2 * time.Second
	if v, ok := os.LookupEnv("REALMSEED_PACE_DELAY"); ok {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("REALMSEED_PACE_DELAY has invalid duration %q: %w", v, err)
		}
		paceDelay = parsed
	}

	logLevel := slog.LevelInfo
	if v, ok := os.LookupEnv("REALMSEED_LOG_LEVEL"); ok && v != "" {
		if err := logLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("REALMSEED_LOG_LEVEL has invalid level %q: %w", v, err)
		}
	}

	cfg := &Config{
		GitHubToken:   token,
		Owner:         envOr("REALMSEED_OWNER", "michael-placeholder"),
		Repo:          envOr("REALMSEED_REPO", "shadowed-realms"),
		DBPath:        envOr("REALMSEED_DB_PATH", "realmseed.db"),
		PaceEvery:     paceEvery,
		PaceDelay:     paceDelay,
		OutputDir:     envOr("REALMSEED_OUTPUT_DIR", "."),
		DashboardPath: envOr("REALMSEED_DASHBOARD_PATH", "docs/index.html"),
		ListenAddr:    envOr("REALMSEED_LISTEN_ADDR", "127.0.0.1:8080"),
		LogLevel:      logLevel,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

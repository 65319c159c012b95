package config

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allConfigKeys lists every env var that Load() reads.
var allConfigKeys = []string{
	"REALMSEED_GITHUB_TOKEN",
	"GITHUB_TOKEN",
	"REALMSEED_OWNER",
	"REALMSEED_REPO",
	"REALMSEED_DB_PATH",
	"REALMSEED_PACE_EVERY",
	"REALMSEED_PACE_DELAY",
	"REALMSEED_OUTPUT_DIR",
	"REALMSEED_DASHBOARD_PATH",
	"REALMSEED_LISTEN_ADDR",
	"REALMSEED_LOG_LEVEL",
}

// isolateConfigEnv saves and unsets all config env vars so tests don't
// inherit values from the host environment (e.g. a token exported in CI).
// t.Cleanup restores original values after the test.
func isolateConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range allConfigKeys {
		if orig, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad_Success(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("REALMSEED_GITHUB_TOKEN", "ghp_test123")
	t.Setenv("REALMSEED_OWNER", "acme")
	t.Setenv("REALMSEED_REPO", "game")
	t.Setenv("REALMSEED_DB_PATH", "/tmp/test.db")
	t.Setenv("REALMSEED_PACE_EVERY", "5")
	t.Setenv("REALMSEED_PACE_DELAY", "250ms")
	t.Setenv("REALMSEED_OUTPUT_DIR", "/tmp/out")
	t.Setenv("REALMSEED_DASHBOARD_PATH", "site/index.html")
	t.Setenv("REALMSEED_LISTEN_ADDR", "0.0.0.0:9090")
	t.Setenv("REALMSEED_LOG_LEVEL", "debug")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "ghp_test123", cfg.GitHubToken)
	assert.Equal(t, "acme/game", cfg.FullName())
	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
	assert.Equal(t, 5, cfg.PaceEvery)
	assert.Equal(t, 250*time.Millisecond, cfg.PaceDelay)
	assert.Equal(t, "/tmp/out", cfg.OutputDir)
	assert.Equal(t, "site/index.html", cfg.DashboardPath)
	assert.Equal(t, "0.0.0.0:9090", cfg.ListenAddr)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoad_Defaults(t *testing.T) {
	isolateConfigEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "michael-placeholder/shadowed-realms", cfg.FullName())
	assert.Equal(t, "realmseed.db", cfg.DBPath)
	assert.Equal(t, 3, cfg.PaceEvery)
	assert.Equal(t, 2*time.Second, cfg.PaceDelay)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, "docs/index.html", cfg.DashboardPath)
	assert.Equal(t, "127.0.0.1:8080", cfg.ListenAddr)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoad_TokenFallback(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("GITHUB_TOKEN", "ghp_fallback")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "ghp_fallback", cfg.GitHubToken)

	t.Setenv("REALMSEED_GITHUB_TOKEN", "ghp_preferred")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "ghp_preferred", cfg.GitHubToken)
}

// TestLoad_MissingToken verifies that a missing token does not fail Load;
// only RequireToken reports it.
func TestLoad_MissingToken(t *testing.T) {
	isolateConfigEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "", cfg.GitHubToken)
	assert.ErrorIs(t, cfg.RequireToken(), ErrMissingToken)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		wantErr string
	}{
		{"REALMSEED_PACE_EVERY", "often", "REALMSEED_PACE_EVERY has invalid integer"},
		{"REALMSEED_PACE_EVERY", "-1", "REALMSEED_PACE_EVERY must not be negative"},
		{"REALMSEED_PACE_DELAY", "soon", "REALMSEED_PACE_DELAY has invalid duration"},
		{"REALMSEED_PACE_DELAY", "-2s", "REALMSEED_PACE_DELAY must not be negative"},
		{"REALMSEED_LOG_LEVEL", "loud", "REALMSEED_LOG_LEVEL has invalid level"},
		{"REALMSEED_OWNER", "a/b", "REALMSEED_OWNER"},
		{"REALMSEED_REPO", "", "REALMSEED_REPO"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			isolateConfigEnv(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

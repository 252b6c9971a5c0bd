package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, BackendGemini, cfg.VisionBackend)
	assert.Equal(t, "pdflatex", cfg.LatexBinary)
	assert.Equal(t, "info", cfg.LogLevel)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("VISION_BACKEND", "claude")
	t.Setenv("CLAUDE_API_KEY", "sk-test")
	t.Setenv("CLAUDE_MODEL", "claude-test-model")
	t.Setenv("LISTEN_ADDR", ":9090")

	cfg := Load()
	assert.Equal(t, BackendClaude, cfg.VisionBackend)
	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "sk-test", cfg.APIKey())
	assert.Equal(t, "claude-test-model", cfg.Model())
	require.NoError(t, cfg.Validate())
}

func TestValidateRejectsUnknownBackend(t *testing.T) {
	cfg := Load()
	cfg.VisionBackend = "ollama"
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsUnknownLogLevel(t *testing.T) {
	cfg := Load()
	cfg.LogLevel = "verbose"
	assert.Error(t, cfg.Validate())
}

func TestAPIKeyFollowsBackend(t *testing.T) {
	cfg := &Config{
		VisionBackend: BackendGemini,
		ClaudeAPIKey:  "claude-key",
		GeminiAPIKey:  "gemini-key",
		GeminiModel:   "gemini-flash-latest",
	}
	assert.Equal(t, "gemini-key", cfg.APIKey())
	assert.Equal(t, "gemini-flash-latest", cfg.Model())
}

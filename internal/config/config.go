// Package config loads process configuration from environment variables.
// Secrets arrive either from the environment directly or via a .env file
// loaded by godotenv in main.
package config

import (
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Vision backends.
const (
	BackendClaude = "claude"
	BackendGemini = "gemini"
)

type Config struct {
	ListenAddr    string
	VisionBackend string
	ClaudeAPIKey  string
	ClaudeModel   string
	GeminiAPIKey  string
	GeminiModel   string
	LatexBinary   string
	LogLevel      string
	LogFile       string
}

func Load() *Config {
	return &Config{
		ListenAddr:    getEnv("LISTEN_ADDR", ":8080"),
		VisionBackend: getEnv("VISION_BACKEND", BackendGemini),
		ClaudeAPIKey:  getEnv("CLAUDE_API_KEY", ""),
		ClaudeModel:   getEnv("CLAUDE_MODEL", "claude-sonnet-4-0"),
		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-flash-latest"),
		LatexBinary:   getEnv("PDFLATEX_BIN", "pdflatex"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFile:       getEnv("LOG_FILE", ""),
	}
}

// Validate checks the configuration shape. The API key matching the selected
// backend is checked separately because only extraction paths need one.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.ListenAddr, validation.Required),
		validation.Field(&c.VisionBackend, validation.Required, validation.In(BackendClaude, BackendGemini)),
		validation.Field(&c.LatexBinary, validation.Required),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
	)
}

// APIKey returns the key for the selected vision backend, which may be empty
// when only JSON input is used.
func (c *Config) APIKey() string {
	if c.VisionBackend == BackendClaude {
		return c.ClaudeAPIKey
	}
	return c.GeminiAPIKey
}

// Model returns the model name for the selected vision backend.
func (c *Config) Model() string {
	if c.VisionBackend == BackendClaude {
		return c.ClaudeModel
	}
	return c.GeminiModel
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}

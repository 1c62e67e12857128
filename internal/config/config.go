// Package config loads process configuration from the environment, after
// reading an optional .env file.
package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/KirkDiggler/rpg-dm/internal/clients/narrator"
	"github.com/KirkDiggler/rpg-dm/internal/errors"
)

// Log formats
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{LogFormatJSON, LogFormatText}
)

// Config is the full process configuration
type Config struct {
	NarratorBackend string        `envconfig:"NARRATOR_BACKEND" default:"gemini"`
	NarratorModel   string        `envconfig:"NARRATOR_MODEL"`
	NarratorBaseURL string        `envconfig:"NARRATOR_BASE_URL"`
	NarratorTimeout time.Duration `envconfig:"NARRATOR_TIMEOUT" default:"60s"`
	GeminiAPIKey    string        `envconfig:"GEMINI_API_KEY"`
	LegacyAPIKey    string        `envconfig:"API_KEY"`
	OpenAIAPIKey    string        `envconfig:"OPENAI_API_KEY"`

	RedisURL       string `envconfig:"REDIS_URL"`
	StoreNamespace string `envconfig:"STORE_NAMESPACE" default:"rpgdm"`

	HTTPPort     int           `envconfig:"HTTP_PORT" default:"8080"`
	CORSOrigins  []string      `envconfig:"CORS_ORIGINS" default:"http://localhost:3000"`
	VictoryDelay time.Duration `envconfig:"VICTORY_DELAY" default:"2s"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
}

// Load reads the given env files, or .env when none are given, then the
// environment. Missing env files are ignored.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "failed to read env file")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges and enums
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("NARRATOR_BACKEND", strings.ToLower(c.NarratorBackend), narrator.Backends, vb)
	if c.NarratorTimeout <= 0 {
		vb.Field("NARRATOR_TIMEOUT", "must be positive")
	}
	if c.VictoryDelay < 0 {
		vb.Field("VICTORY_DELAY", "must not be negative")
	}
	errors.ValidateRange("HTTP_PORT", c.HTTPPort, 1, 65535, vb)
	errors.ValidateEnum("LOG_LEVEL", strings.ToLower(c.LogLevel), logLevels, vb)
	errors.ValidateEnum("LOG_FORMAT", strings.ToLower(c.LogFormat), logFormats, vb)

	return vb.Build()
}

// ValidateNarrator checks the credentials of the selected backend. Commands
// that never call the storyteller skip it.
func (c *Config) ValidateNarrator() error {
	vb := errors.NewValidationBuilder()

	switch strings.ToLower(c.NarratorBackend) {
	case narrator.BackendGemini:
		if c.APIKey() == "" {
			vb.Field("GEMINI_API_KEY", "is required for the gemini backend")
		}
	case narrator.BackendOpenAI:
		if c.OpenAIAPIKey == "" && c.NarratorBaseURL == "" {
			vb.Field("OPENAI_API_KEY", "is required unless NARRATOR_BASE_URL points at a compatible server")
		}
	}

	return vb.Build()
}

// APIKey returns the key of the selected backend. GEMINI_API_KEY wins over
// the older API_KEY.
func (c *Config) APIKey() string {
	switch strings.ToLower(c.NarratorBackend) {
	case narrator.BackendGemini:
		if c.GeminiAPIKey != "" {
			return c.GeminiAPIKey
		}
		return c.LegacyAPIKey
	case narrator.BackendOpenAI:
		return c.OpenAIAPIKey
	}
	return ""
}

// Narrator returns the backend selection for the narrator client
func (c *Config) Narrator() *narrator.BackendConfig {
	return &narrator.BackendConfig{
		Backend: strings.ToLower(c.NarratorBackend),
		Model:   c.NarratorModel,
		BaseURL: c.NarratorBaseURL,
		APIKey:  c.APIKey(),
		Timeout: c.NarratorTimeout,
	}
}

// SlogLevel maps LOG_LEVEL onto a slog level
func (c *Config) SlogLevel() slog.Level {
	return ParseLevel(c.LogLevel)
}

// ParseLevel maps a level name onto a slog level, defaulting to info
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

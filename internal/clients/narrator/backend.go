package narrator

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-dm/internal/errors"
)

// Backend names
const (
	BackendGemini = "gemini"
	BackendOpenAI = "openai"
	BackendOllama = "ollama"
)

// Backends lists the supported backend names
var Backends = []string{BackendGemini, BackendOpenAI, BackendOllama}

// BackendConfig selects and configures a Generator
type BackendConfig struct {
	Backend string
	Model   string
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Validate validates the config
func (c *BackendConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("Backend", strings.ToLower(c.Backend), Backends, vb)
	if strings.EqualFold(c.Backend, BackendGemini) {
		errors.ValidateRequired("APIKey", c.APIKey, vb)
	}
	return vb.Build()
}

// NewGenerator builds the configured backend. The returned close function
// releases backend resources and is never nil.
func NewGenerator(ctx context.Context, cfg *BackendConfig) (Generator, func() error, error) {
	noop := func() error { return nil }

	if cfg == nil {
		return nil, noop, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, noop, errors.Wrap(err, "invalid narrator backend config")
	}

	httpClient := &http.Client{Timeout: cfg.Timeout}

	switch strings.ToLower(cfg.Backend) {
	case BackendGemini:
		g, err := NewGemini(ctx, &GeminiConfig{APIKey: cfg.APIKey, Model: cfg.Model})
		if err != nil {
			return nil, noop, err
		}
		slog.InfoContext(ctx, "narrator backend ready", "backend", BackendGemini, "model", g.model)
		return g, g.Close, nil

	case BackendOpenAI:
		g, err := NewOpenAI(&OpenAIConfig{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    cfg.BaseURL,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, noop, err
		}
		slog.InfoContext(ctx, "narrator backend ready", "backend", BackendOpenAI, "model", g.model, "base_url", cfg.BaseURL)
		return g, noop, nil

	case BackendOllama:
		g, err := NewOllama(&OllamaConfig{
			BaseURL:    cfg.BaseURL,
			Model:      cfg.Model,
			HTTPClient: httpClient,
		})
		if err != nil {
			return nil, noop, err
		}
		slog.InfoContext(ctx, "narrator backend ready", "backend", BackendOllama, "model", g.model)
		return g, noop, nil
	}

	return nil, noop, errors.InvalidArgumentf("unknown narrator backend %q", cfg.Backend)
}

package narrator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/ollama/ollama/api"

	"github.com/KirkDiggler/rpg-dm/internal/errors"
)

// Ollama defaults
const (
	DefaultOllamaModel   = "llama3.1"
	DefaultOllamaBaseURL = "http://localhost:11434"
)

// OllamaConfig configures a local Ollama backend
type OllamaConfig struct {
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

// OllamaGenerator generates text with the Ollama chat API
type OllamaGenerator struct {
	client *api.Client
	model  string
}

// NewOllama creates an Ollama backend
func NewOllama(cfg *OllamaConfig) (*OllamaGenerator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	base := cfg.BaseURL
	if base == "" {
		base = DefaultOllamaBaseURL
	}
	// the native API lives beside the OpenAI-compatible /v1 prefix
	base = strings.TrimSuffix(strings.TrimSuffix(base, "/"), "/v1")

	parsed, err := url.Parse(base)
	if err != nil {
		return nil, errors.InvalidArgumentf("invalid ollama base url %q", base)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	model := cfg.Model
	if model == "" {
		model = DefaultOllamaModel
	}

	return &OllamaGenerator{
		client: api.NewClient(parsed, httpClient),
		model:  model,
	}, nil
}

// Name implements Generator
func (g *OllamaGenerator) Name() string {
	return "ollama"
}

// Generate implements Generator
func (g *OllamaGenerator) Generate(ctx context.Context, req *Request) (*Response, error) {
	messages := make([]api.Message, 0, 2)
	if req.System != "" {
		messages = append(messages, api.Message{Role: "system", Content: req.System})
	}
	messages = append(messages, api.Message{Role: "user", Content: req.Prompt})

	stream := false
	chatReq := &api.ChatRequest{
		Model:    g.model,
		Messages: messages,
		Stream:   &stream,
	}
	if req.Schema != nil {
		format, err := json.Marshal(req.Schema)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode response schema")
		}
		chatReq.Format = format
	}

	var final api.ChatResponse
	err := g.client.Chat(ctx, chatReq, func(r api.ChatResponse) error {
		final = r
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "ollama chat")
	}
	if final.Message.Content == "" {
		return nil, errors.Internal("ollama returned an empty response")
	}

	return &Response{
		Text:             final.Message.Content,
		PromptTokens:     final.PromptEvalCount,
		CompletionTokens: final.EvalCount,
	}, nil
}

package narrator

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/pkoukk/tiktoken-go"
	openai "github.com/sashabaranov/go-openai"

	"github.com/KirkDiggler/rpg-dm/internal/errors"
)

// DefaultOpenAIModel is used when no model is configured
const DefaultOpenAIModel = "gpt-4o-mini"

// OpenAIConfig configures an OpenAI-compatible backend
type OpenAIConfig struct {
	APIKey string
	Model  string
	// BaseURL points at any OpenAI-compatible endpoint, the public API when empty
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the config
func (c *OpenAIConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.APIKey == "" && c.BaseURL == "" {
		vb.Field("APIKey", "is required for the public OpenAI API")
	}
	return vb.Build()
}

// OpenAIGenerator generates text with the chat completions API
type OpenAIGenerator struct {
	client *openai.Client
	model  string

	encodingOnce sync.Once
	encoding     *tiktoken.Tiktoken
}

// NewOpenAI creates an OpenAI-compatible backend
func NewOpenAI(cfg *OpenAIConfig) (*OpenAIGenerator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid openai config")
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	if cfg.HTTPClient != nil {
		clientCfg.HTTPClient = cfg.HTTPClient
	}

	model := cfg.Model
	if model == "" {
		model = DefaultOpenAIModel
	}

	return &OpenAIGenerator{
		client: openai.NewClientWithConfig(clientCfg),
		model:  model,
	}, nil
}

// Name implements Generator
func (g *OpenAIGenerator) Name() string {
	return "openai"
}

// CountTokens estimates the prompt tokens of a request, 0 when the model
// has no known encoding. Only used when the server reports no usage.
func (g *OpenAIGenerator) CountTokens(req *Request) int {
	g.encodingOnce.Do(func() {
		encoding, err := tiktoken.EncodingForModel(g.model)
		if err != nil {
			// self-hosted models have no tiktoken table
			slog.Debug("no tiktoken encoding for model", "model", g.model, "error", err)
			return
		}
		g.encoding = encoding
	})
	if g.encoding == nil {
		return 0
	}
	return len(g.encoding.Encode(req.System, nil, nil)) + len(g.encoding.Encode(req.Prompt, nil, nil))
}

// Generate implements Generator
func (g *OpenAIGenerator) Generate(ctx context.Context, req *Request) (*Response, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})

	chatReq := openai.ChatCompletionRequest{
		Model:    g.model,
		Messages: messages,
	}
	if req.Schema != nil {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   req.Operation,
				Schema: req.Schema,
			},
		}
	}

	resp, err := g.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, errors.Wrap(err, "openai chat completion")
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, errors.Internal("openai returned an empty response")
	}

	out := &Response{
		Text:             resp.Choices[0].Message.Content,
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
	}
	if out.PromptTokens == 0 {
		out.PromptTokens = g.CountTokens(req)
	}
	return out, nil
}

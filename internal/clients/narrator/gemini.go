package narrator

import (
	"context"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/sashabaranov/go-openai/jsonschema"
	"google.golang.org/api/option"

	"github.com/KirkDiggler/rpg-dm/internal/errors"
)

// DefaultGeminiModel is used when no model is configured
const DefaultGeminiModel = "gemini-2.5-flash"

// GeminiConfig configures the Gemini backend
type GeminiConfig struct {
	APIKey string
	Model  string
}

// Validate validates the config
func (c *GeminiConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("APIKey", c.APIKey, vb)
	return vb.Build()
}

// GeminiGenerator generates text with Google Gemini
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini backend. Close releases the underlying client.
func NewGemini(ctx context.Context, cfg *GeminiConfig) (*GeminiGenerator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid gemini config")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create gemini client")
	}

	model := cfg.Model
	if model == "" {
		model = DefaultGeminiModel
	}

	return &GeminiGenerator{client: client, model: model}, nil
}

// Name implements Generator
func (g *GeminiGenerator) Name() string {
	return "gemini"
}

// Close releases the client
func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}

// Generate implements Generator
func (g *GeminiGenerator) Generate(ctx context.Context, req *Request) (*Response, error) {
	model := g.client.GenerativeModel(g.model)
	if req.System != "" {
		model.SystemInstruction = genai.NewUserContent(genai.Text(req.System))
	}
	if req.Schema != nil {
		model.ResponseMIMEType = "application/json"
		model.ResponseSchema = toGenaiSchema(req.Schema)
	}

	resp, err := model.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		return nil, errors.Wrap(err, "gemini generate content")
	}

	out := &Response{Text: geminiText(resp)}
	if resp.UsageMetadata != nil {
		out.PromptTokens = int(resp.UsageMetadata.PromptTokenCount)
		out.CompletionTokens = int(resp.UsageMetadata.CandidatesTokenCount)
	}
	if out.Text == "" {
		return nil, errors.Internal("gemini returned no text")
	}
	return out, nil
}

func geminiText(resp *genai.GenerateContentResponse) string {
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				b.WriteString(string(txt))
			}
		}
		// first candidate only
		break
	}
	return b.String()
}

func toGenaiSchema(def *jsonschema.Definition) *genai.Schema {
	if def == nil {
		return nil
	}

	s := &genai.Schema{
		Description: def.Description,
		Required:    def.Required,
		Enum:        def.Enum,
	}

	switch def.Type {
	case jsonschema.Object:
		s.Type = genai.TypeObject
	case jsonschema.Array:
		s.Type = genai.TypeArray
	case jsonschema.Integer:
		s.Type = genai.TypeInteger
	case jsonschema.Number:
		s.Type = genai.TypeNumber
	case jsonschema.Boolean:
		s.Type = genai.TypeBoolean
	default:
		s.Type = genai.TypeString
	}

	if def.Items != nil {
		s.Items = toGenaiSchema(def.Items)
	}
	if len(def.Properties) > 0 {
		s.Properties = make(map[string]*genai.Schema, len(def.Properties))
		for name, prop := range def.Properties {
			prop := prop
			s.Properties[name] = toGenaiSchema(&prop)
		}
	}

	return s
}

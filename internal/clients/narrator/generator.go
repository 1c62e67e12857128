package narrator

//go:generate mockgen -destination=mock/mock_generator.go -package=narratormock github.com/KirkDiggler/rpg-dm/internal/clients/narrator Generator

import (
	"context"

	"github.com/sashabaranov/go-openai/jsonschema"
)

// Operation names, used in logs, metrics and narration errors
const (
	OperationBackstory    = "backstory"
	OperationOpeningScene = "opening_scene"
	OperationNextSegment  = "next_segment"
	OperationCombatTurn   = "combat_turn"
)

// Request is a single generation round trip
type Request struct {
	Operation string
	System    string
	Prompt    string
	// Schema requests a JSON answer of this shape. Nil asks for plain text.
	Schema *jsonschema.Definition
}

// Response is the raw generator answer
type Response struct {
	Text             string
	PromptTokens     int
	CompletionTokens int
}

// Generator is a text generation backend
type Generator interface {
	// Name identifies the backend in metrics
	Name() string

	// Generate sends one request and returns the raw answer text
	Generate(ctx context.Context, req *Request) (*Response, error)
}

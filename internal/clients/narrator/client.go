// Package narrator is the client for the generative storyteller. It builds
// the prompts, asks a Generator backend for JSON of a declared shape, and
// shape-checks the answer into typed results.
package narrator

//go:generate mockgen -destination=mock/mock_client.go -package=narratormock github.com/KirkDiggler/rpg-dm/internal/clients/narrator Client

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-dm/internal/entities"
	"github.com/KirkDiggler/rpg-dm/internal/errors"
)

// FallbackBackstory is used whenever backstory generation fails
const FallbackBackstory = "A mysterious past shrouded in shadow..."

// DefaultTimeout bounds a single narration request
const DefaultTimeout = 60 * time.Second

// Client defines the narrative operations of the game
type Client interface {
	// GenerateBackstory never fails; it returns FallbackBackstory instead
	GenerateBackstory(ctx context.Context, draft *entities.CharacterDraft) string

	// GetOpeningScene returns the first scene of an adventure
	// Returns errors.Unavailable when the backend fails or answers malformed JSON
	GetOpeningScene(ctx context.Context, party []entities.Character) (*entities.StorySegment, error)

	// GetNextStorySegment continues the story after a choice. The outcome is
	// either a StoryContinuation or a CombatStart.
	// Returns errors.Unavailable when the backend fails or answers malformed JSON
	GetNextStorySegment(ctx context.Context, party []entities.Character, previousNarration, choice string) (Outcome, error)

	// GetCombatActionNarration narrates one combat turn
	// Returns errors.Unavailable when the backend fails or answers malformed JSON
	GetCombatActionNarration(ctx context.Context, input *CombatActionInput) (*CombatActionResult, error)
}

// Config holds the client dependencies
type Config struct {
	Generator Generator
	// Timeout bounds each request, DefaultTimeout when zero
	Timeout time.Duration
}

// Validate validates the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Generator == nil {
		vb.RequiredField("Generator")
	}
	if c.Timeout < 0 {
		vb.Field("Timeout", "must not be negative")
	}

	return vb.Build()
}

type client struct {
	generator Generator
	timeout   time.Duration
}

// NewClient creates a narrator client
func NewClient(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid narrator config")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &client{
		generator: cfg.Generator,
		timeout:   timeout,
	}, nil
}

// generate runs one request and records its metrics. Decode failures are
// recorded by the caller through observeMalformed.
func (c *client) generate(parent context.Context, req *Request) (string, error) {
	ctx, cancel := context.WithTimeout(parent, c.timeout)
	defer cancel()

	backend := c.generator.Name()
	start := time.Now()

	slog.DebugContext(ctx, "narration request",
		"operation", req.Operation,
		"backend", backend,
		"prompt_bytes", len(req.Prompt))

	resp, err := c.generator.Generate(ctx, req)
	duration := time.Since(start)
	requestDuration.WithLabelValues(req.Operation, backend).Observe(duration.Seconds())

	if err != nil {
		requestsTotal.WithLabelValues(req.Operation, backend, statusError).Inc()
		slog.WarnContext(ctx, "narration request failed",
			"operation", req.Operation,
			"backend", backend,
			"duration", duration,
			"error", err)

		// the caller gave up, as opposed to the storyteller timing out
		if parent.Err() != nil {
			return "", errors.Wrap(parent.Err(), "narration request abandoned")
		}
		return "", errors.WrapWithCode(err, errors.CodeUnavailable, "the storyteller is unavailable").
			WithMeta("operation", req.Operation)
	}

	if resp.PromptTokens > 0 {
		promptTokens.WithLabelValues(req.Operation, backend).Observe(float64(resp.PromptTokens))
	}
	if resp.CompletionTokens > 0 {
		completionTokens.WithLabelValues(req.Operation, backend).Observe(float64(resp.CompletionTokens))
	}

	slog.DebugContext(ctx, "narration response",
		"operation", req.Operation,
		"backend", backend,
		"duration", duration,
		"response_bytes", len(resp.Text))

	return resp.Text, nil
}

func (c *client) record(ctx context.Context, operation string, err error) {
	status := statusSuccess
	if err != nil {
		status = statusMalformed
		slog.WarnContext(ctx, "discarding narration response", "operation", operation, "error", err)
	}
	requestsTotal.WithLabelValues(operation, c.generator.Name(), status).Inc()
}

func (c *client) GenerateBackstory(ctx context.Context, draft *entities.CharacterDraft) string {
	if draft == nil {
		return FallbackBackstory
	}

	text, err := c.generate(ctx, &Request{
		Operation: OperationBackstory,
		System:    backstorySystem,
		Prompt:    backstoryPrompt(draft),
	})
	if err != nil {
		return FallbackBackstory
	}

	backstory := strings.TrimSpace(StripFences(text))
	if backstory == "" {
		c.record(ctx, OperationBackstory, malformed(OperationBackstory, "empty text"))
		return FallbackBackstory
	}

	c.record(ctx, OperationBackstory, nil)
	return backstory
}

func (c *client) GetOpeningScene(ctx context.Context, party []entities.Character) (*entities.StorySegment, error) {
	text, err := c.generate(ctx, &Request{
		Operation: OperationOpeningScene,
		System:    systemInstruction(party),
		Prompt:    openingScenePrompt(party),
		Schema:    &storySchema,
	})
	if err != nil {
		return nil, err
	}

	segment, err := decodeOpeningScene(text)
	c.record(ctx, OperationOpeningScene, err)
	if err != nil {
		return nil, err
	}
	return segment, nil
}

func (c *client) GetNextStorySegment(ctx context.Context, party []entities.Character, previousNarration, choice string) (Outcome, error) {
	text, err := c.generate(ctx, &Request{
		Operation: OperationNextSegment,
		System:    systemInstruction(party),
		Prompt:    nextSegmentPrompt(previousNarration, choice),
		Schema:    &nextSegmentSchema,
	})
	if err != nil {
		return nil, err
	}

	outcome, err := decodeNextSegment(text)
	c.record(ctx, OperationNextSegment, err)
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

func (c *client) GetCombatActionNarration(ctx context.Context, input *CombatActionInput) (*CombatActionResult, error) {
	if input == nil {
		return nil, errors.InvalidArgument("combat action input is required")
	}

	text, err := c.generate(ctx, &Request{
		Operation: OperationCombatTurn,
		System:    systemInstruction(input.Party),
		Prompt:    combatTurnPrompt(input),
		Schema:    &combatTurnSchema,
	})
	if err != nil {
		return nil, err
	}

	result, err := decodeCombatTurn(text)
	c.record(ctx, OperationCombatTurn, err)
	if err != nil {
		return nil, err
	}
	return result, nil
}

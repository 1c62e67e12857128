// Package v1 serves the game session over HTTP
package v1

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KirkDiggler/rpg-dm/internal/errors"
	"github.com/KirkDiggler/rpg-dm/internal/orchestrators/combat"
	"github.com/KirkDiggler/rpg-dm/internal/orchestrators/game"
	"github.com/KirkDiggler/rpg-dm/internal/pkg/clock"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	Service      game.Service
	Clock        clock.Clock
	VictoryDelay time.Duration
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Service == nil {
		vb.RequiredField("Service")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.VictoryDelay < 0 {
		vb.Field("VictoryDelay", "must not be negative")
	}
	return vb.Build()
}

// Handler exposes game intents as JSON endpoints
type Handler struct {
	service game.Service
	clock   clock.Clock
	delay   time.Duration

	mu      sync.Mutex
	victory clock.Timer
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		service: cfg.Service,
		clock:   cfg.Clock,
		delay:   cfg.VictoryDelay,
	}, nil
}

// RegisterRoutes mounts the API under rg
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/state", h.GetState)

	menu := rg.Group("/menu")
	menu.POST("/continue", h.intent(h.service.Continue))
	menu.POST("/new-game", h.intent(h.service.NewGame))
	menu.POST("/heroes", h.intent(h.service.ManageHeroes))

	rg.POST("/back", h.Back)
	rg.POST("/creator", h.intent(h.service.OpenCreator))
	rg.GET("/ability-scores/roll", h.RollAbilityScores)

	rg.POST("/characters", h.CreateCharacter)
	rg.DELETE("/characters/:id", h.DeleteCharacter)
	rg.POST("/party/start", h.StartAdventure)

	rg.POST("/adventure/choose", h.Choose)
	rg.POST("/adventure/retry", h.intent(h.service.RetryNarration))

	rg.POST("/combat/roll", h.CombatRoll)
	rg.POST("/combat/action", h.CommitAction)
	rg.POST("/combat/next", h.intent(h.service.NextTurn))

	rg.GET("/events", h.Events)
}

// GetState returns the current session view
func (h *Handler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.State(c.Request.Context()))
}

func (h *Handler) intent(fn func(context.Context) (*game.View, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := fn(c.Request.Context())
		h.respond(c, view, err)
	}
}

// respond renders the view, or the error, and schedules the victory resume
// when a fight was just won
func (h *Handler) respond(c *gin.Context, view *game.View, err error) {
	if err != nil {
		writeError(c, err)
		return
	}
	if view.PendingVictory {
		h.scheduleVictory(c.Request.Context())
	}
	c.JSON(http.StatusOK, view)
}

// Back also cancels a scheduled victory resume
func (h *Handler) Back(c *gin.Context) {
	h.cancelVictory()
	view, err := h.service.Back(c.Request.Context())
	h.respond(c, view, err)
}

// RollAbilityScores draws a fresh set of scores for the creator
func (h *Handler) RollAbilityScores(c *gin.Context) {
	scores, err := h.service.RollAbilityScores(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, scores)
}

// CreateCharacter adds a hero to the roster
func (h *Handler) CreateCharacter(c *gin.Context) {
	var req CreateCharacterRequest
	if !bind(c, &req) {
		return
	}

	out, err := h.service.CreateCharacter(c.Request.Context(), req.toInput())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, CreateCharacterResponse{
		Character: out.Character,
		State:     out.View,
	})
}

// DeleteCharacter removes a hero from the roster
func (h *Handler) DeleteCharacter(c *gin.Context) {
	view, err := h.service.DeleteCharacter(c.Request.Context(), &game.DeleteCharacterInput{
		CharacterID: c.Param("id"),
	})
	h.respond(c, view, err)
}

// StartAdventure sets off with the chosen party
func (h *Handler) StartAdventure(c *gin.Context) {
	var req StartAdventureRequest
	if !bind(c, &req) {
		return
	}

	view, err := h.service.StartAdventure(c.Request.Context(), &game.StartAdventureInput{
		CharacterIDs: req.CharacterIDs,
	})
	h.respond(c, view, err)
}

// Choose continues the story
func (h *Handler) Choose(c *gin.Context) {
	var req ChooseRequest
	if !bind(c, &req) {
		return
	}

	view, err := h.service.Choose(c.Request.Context(), &game.ChooseInput{Choice: req.Choice})
	h.respond(c, view, err)
}

// CombatRoll records the d20. An empty body draws it server side.
func (h *Handler) CombatRoll(c *gin.Context) {
	var req CombatRollRequest
	if !bindOptional(c, &req) {
		return
	}

	view, err := h.service.CombatRoll(c.Request.Context(), &game.CombatRollInput{Value: req.Value})
	h.respond(c, view, err)
}

// CommitAction commits the acting hero's action
func (h *Handler) CommitAction(c *gin.Context) {
	var req CombatActionRequest
	if !bind(c, &req) {
		return
	}

	action, err := combat.ParseAction(req.Action)
	if err != nil {
		writeError(c, err)
		return
	}

	view, err := h.service.CommitAction(c.Request.Context(), &game.CommitActionInput{Action: action})
	h.respond(c, view, err)
}

func (h *Handler) scheduleVictory(ctx context.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.victory != nil {
		return
	}

	slog.DebugContext(ctx, "scheduling victory resume", "delay", h.delay)
	h.victory = h.clock.AfterFunc(h.delay, h.resumeAfterVictory)
}

func (h *Handler) resumeAfterVictory() {
	h.mu.Lock()
	h.victory = nil
	h.mu.Unlock()

	ctx := context.Background()
	if _, err := h.service.ResumeAfterVictory(ctx); err != nil {
		slog.WarnContext(ctx, "failed to resume after victory", "error", err)
	}
}

func (h *Handler) cancelVictory() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.victory != nil {
		h.victory.Stop()
		h.victory = nil
	}
}

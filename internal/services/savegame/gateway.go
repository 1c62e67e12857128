// Package savegame is the fail-soft persistence gateway of the game. Every
// operation logs and swallows storage and decode failures so that a broken
// store degrades to "no saved data" instead of an error.
package savegame

//go:generate mockgen -destination=mock/mock_gateway.go -package=savegamemock github.com/KirkDiggler/rpg-dm/internal/services/savegame Gateway

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/KirkDiggler/rpg-dm/internal/entities"
	"github.com/KirkDiggler/rpg-dm/internal/errors"
	"github.com/KirkDiggler/rpg-dm/internal/repositories/gamestore"
)

// MaxPartySize bounds the party stored in a snapshot
const MaxPartySize = 6

// Gateway reads and writes the roster and the single save slot
type Gateway interface {
	// LoadRoster returns every created character, empty when absent or unreadable
	LoadRoster(ctx context.Context) []entities.Character

	// SaveRoster replaces the stored roster
	SaveRoster(ctx context.Context, roster []entities.Character)

	// LoadSnapshot returns the saved game, nil when absent or invalid
	LoadSnapshot(ctx context.Context) *entities.SavedGame

	// SaveSnapshot overwrites the save slot and reports whether it was written
	SaveSnapshot(ctx context.Context, snapshot *entities.SavedGame) bool

	// ClearSnapshot empties the save slot
	ClearSnapshot(ctx context.Context)

	// HasSnapshot reports whether LoadSnapshot would return a game
	HasSnapshot(ctx context.Context) bool
}

// Config contains the gateway dependencies
type Config struct {
	Store gamestore.Repository
}

// Validate validates the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Store == nil {
		vb.RequiredField("Store")
	}

	return vb.Build()
}

type gateway struct {
	store gamestore.Repository
}

// New creates a gateway over a game store
func New(cfg *Config) (Gateway, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid savegame config")
	}

	return &gateway{store: cfg.Store}, nil
}

func (g *gateway) LoadRoster(ctx context.Context) []entities.Character {
	out, err := g.store.Get(ctx, gamestore.GetInput{Key: gamestore.KeyCharacters})
	if err != nil {
		if !errors.IsNotFound(err) {
			slog.WarnContext(ctx, "failed to load roster", "error", err)
		}
		return []entities.Character{}
	}

	var roster []entities.Character
	if err := json.Unmarshal(out.Value, &roster); err != nil {
		slog.WarnContext(ctx, "discarding unreadable roster", "error", err)
		return []entities.Character{}
	}
	if roster == nil {
		roster = []entities.Character{}
	}

	return roster
}

func (g *gateway) SaveRoster(ctx context.Context, roster []entities.Character) {
	if roster == nil {
		roster = []entities.Character{}
	}

	data, err := json.Marshal(roster)
	if err != nil {
		slog.ErrorContext(ctx, "failed to encode roster", "error", err)
		return
	}

	if _, err := g.store.Put(ctx, gamestore.PutInput{Key: gamestore.KeyCharacters, Value: data}); err != nil {
		slog.WarnContext(ctx, "failed to save roster", "error", err, "characters", len(roster))
	}
}

// storedGame mirrors SavedGame with pointers so absent fields stay visible
type storedGame struct {
	GameState *entities.Phase           `json:"gameState"`
	Party     *[]entities.Character     `json:"party"`
	Story     *entities.StorySegment    `json:"story"`
	Encounter *entities.CombatEncounter `json:"encounter"`
}

func (g *gateway) LoadSnapshot(ctx context.Context) *entities.SavedGame {
	out, err := g.store.Get(ctx, gamestore.GetInput{Key: gamestore.KeySavedGame})
	if err != nil {
		if !errors.IsNotFound(err) {
			slog.WarnContext(ctx, "failed to load saved game", "error", err)
		}
		return nil
	}

	var stored storedGame
	if err := json.Unmarshal(out.Value, &stored); err != nil {
		slog.WarnContext(ctx, "discarding unreadable saved game", "error", err)
		return nil
	}

	if err := validateStored(&stored); err != nil {
		slog.WarnContext(ctx, "discarding invalid saved game", "error", err)
		return nil
	}

	return &entities.SavedGame{
		GameState: *stored.GameState,
		Party:     *stored.Party,
		Story:     stored.Story,
		Encounter: stored.Encounter,
	}
}

func validateStored(stored *storedGame) error {
	vb := errors.NewValidationBuilder()

	if stored.GameState == nil {
		vb.RequiredField("gameState")
	} else if !stored.GameState.InAdventure() {
		vb.Fieldf("gameState", "%s is not a resumable phase", stored.GameState)
	} else if *stored.GameState == entities.PhaseCombat && stored.Encounter == nil {
		vb.Field("encounter", "is required in COMBAT")
	}

	if stored.Party == nil {
		vb.RequiredField("party")
	} else if n := len(*stored.Party); n == 0 || n > MaxPartySize {
		vb.Fieldf("party", "must have 1 to %d members, got %d", MaxPartySize, n)
	}

	return vb.Build()
}

func (g *gateway) SaveSnapshot(ctx context.Context, snapshot *entities.SavedGame) bool {
	if snapshot == nil {
		return false
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		slog.ErrorContext(ctx, "failed to encode saved game", "error", err)
		return false
	}

	if _, err := g.store.Put(ctx, gamestore.PutInput{Key: gamestore.KeySavedGame, Value: data}); err != nil {
		slog.WarnContext(ctx, "failed to save game", "error", err, "phase", snapshot.GameState.String())
		return false
	}

	return true
}

func (g *gateway) ClearSnapshot(ctx context.Context) {
	if _, err := g.store.Delete(ctx, gamestore.DeleteInput{Key: gamestore.KeySavedGame}); err != nil {
		slog.WarnContext(ctx, "failed to clear saved game", "error", err)
	}
}

func (g *gateway) HasSnapshot(ctx context.Context) bool {
	return g.LoadSnapshot(ctx) != nil
}

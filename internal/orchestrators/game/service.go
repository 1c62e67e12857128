// Package game owns a single player session: the phase state machine, the
// autosave commit point and the storyteller request lifecycle.
package game

//go:generate mockgen -destination=mock/mock_service.go -package=gamemock github.com/KirkDiggler/rpg-dm/internal/orchestrators/game Service

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-dm/internal/clients/narrator"
	"github.com/KirkDiggler/rpg-dm/internal/entities"
	"github.com/KirkDiggler/rpg-dm/internal/errors"
	"github.com/KirkDiggler/rpg-dm/internal/orchestrators/combat"
	"github.com/KirkDiggler/rpg-dm/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-dm/internal/rules"
	"github.com/KirkDiggler/rpg-dm/internal/services/savegame"
)

// Service drives one player's game. Every intent validates the current phase
// and returns the resulting view.
type Service interface {
	State(ctx context.Context) *View

	// Start menu
	Continue(ctx context.Context) (*View, error)
	NewGame(ctx context.Context) (*View, error)
	ManageHeroes(ctx context.Context) (*View, error)
	Back(ctx context.Context) (*View, error)

	// Roster
	OpenCreator(ctx context.Context) (*View, error)
	RollAbilityScores(ctx context.Context) (*entities.AbilityScores, error)
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*View, error)
	StartAdventure(ctx context.Context, input *StartAdventureInput) (*View, error)

	// Adventure
	Choose(ctx context.Context, input *ChooseInput) (*View, error)
	RetryNarration(ctx context.Context) (*View, error)

	// Combat
	CombatRoll(ctx context.Context, input *CombatRollInput) (*View, error)
	CommitAction(ctx context.Context, input *CommitActionInput) (*View, error)
	NextTurn(ctx context.Context) (*View, error)
	ResumeAfterVictory(ctx context.Context) (*View, error)

	EventBus() events.EventBus
}

// Config holds the session dependencies
type Config struct {
	Gateway     savegame.Gateway
	Narrator    narrator.Client
	Roller      dice.Roller
	IDGenerator idgen.Generator
	EventBus    events.EventBus
	SessionID   string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Gateway == nil {
		vb.RequiredField("Gateway")
	}
	if c.Narrator == nil {
		vb.RequiredField("Narrator")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}

	return vb.Build()
}

type session struct {
	gateway  savegame.Gateway
	narrator narrator.Client
	roller   dice.Roller
	idGen    idgen.Generator
	bus      events.EventBus
	entity   *sessionEntity

	mu             sync.Mutex
	phase          entities.Phase
	roster         []entities.Character
	party          []entities.Character
	story          *entities.StorySegment
	encounter      *entities.CombatEncounter
	controller     *combat.Controller
	isLoading      bool
	narrationErr   *NarrationError
	hasSavedGame   bool
	pendingVictory bool

	// epoch invalidates in-flight narration when the player leaves the
	// adventure; retry re-issues the last failed request
	epoch int
	retry *narrationRequest

	pending []events.Event
}

// NewSession loads the roster and saved-game flag once and starts at the
// start menu
func NewSession(ctx context.Context, cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid game session config")
	}

	id := cfg.SessionID
	if id == "" {
		id = "local"
	}

	return &session{
		gateway:      cfg.Gateway,
		narrator:     cfg.Narrator,
		roller:       cfg.Roller,
		idGen:        cfg.IDGenerator,
		bus:          cfg.EventBus,
		entity:       &sessionEntity{id: id},
		phase:        entities.PhaseStartMenu,
		roster:       cfg.Gateway.LoadRoster(ctx),
		hasSavedGame: cfg.Gateway.HasSnapshot(ctx),
	}, nil
}

func (s *session) EventBus() events.EventBus {
	return s.bus
}

func (s *session) State(_ context.Context) *View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

// unlock releases the session and delivers any events queued while it was held
func (s *session) unlock(ctx context.Context) {
	evts := s.pending
	s.pending = nil
	s.mu.Unlock()
	s.publish(ctx, evts)
}

func (s *session) setPhase(to entities.Phase) {
	from := s.phase
	s.phase = to
	s.phaseChanged(from, to)
}

func (s *session) requirePhase(op string, allowed ...entities.Phase) error {
	for _, p := range allowed {
		if s.phase == p {
			return nil
		}
	}
	return errors.FailedPreconditionf("%s is not available during %s", op, s.phase).
		WithMeta("phase", s.phase.String())
}

func (s *session) requireIdle(op string) error {
	if s.isLoading {
		return errors.FailedPreconditionf("%s is not available while the storyteller is speaking", op)
	}
	return nil
}

// commit autosaves adventure state. A failed save leaves the flag to the
// store's own answer.
func (s *session) commit(ctx context.Context) {
	if !s.phase.InAdventure() {
		return
	}
	if s.gateway.SaveSnapshot(ctx, s.snapshotLocked()) {
		s.hasSavedGame = true
		return
	}
	s.hasSavedGame = s.gateway.HasSnapshot(ctx)
}

func (s *session) snapshotLocked() *entities.SavedGame {
	saved := &entities.SavedGame{
		GameState: s.phase,
		Party:     entities.CloneCharacters(s.party),
	}
	if s.story != nil {
		saved.Story = s.story.Clone()
	}
	if s.encounter != nil {
		saved.Encounter = s.encounter.Clone()
	}
	return saved
}

func (s *session) viewLocked() *View {
	v := &View{
		Phase:          s.phase,
		Roster:         entities.CloneCharacters(s.roster),
		Party:          entities.CloneCharacters(s.party),
		IsLoading:      s.isLoading,
		HasSavedGame:   s.hasSavedGame,
		PendingVictory: s.pendingVictory,
	}
	if s.story != nil {
		v.Story = s.story.Clone()
		v.ImageURL = narrator.ImageURL(s.story.ImagePrompt)
	}
	if s.encounter != nil {
		v.Encounter = s.encounter.Clone()
	}
	if s.narrationErr != nil {
		ne := *s.narrationErr
		v.NarrationError = &ne
	}
	if s.controller != nil && s.phase == entities.PhaseCombat {
		turn := &CombatTurn{TurnView: s.controller.View()}
		if idx := s.controller.Turn(); idx >= 0 && idx < len(s.party) {
			actor := s.party[idx]
			turn.ActorID = actor.ID
			turn.ActorName = actor.Name
			turn.Modifier = rules.CombatModifier(&actor)
		}
		v.Turn = turn
	}
	return v
}

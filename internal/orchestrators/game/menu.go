package game

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-dm/internal/clients/narrator"
	"github.com/KirkDiggler/rpg-dm/internal/entities"
	"github.com/KirkDiggler/rpg-dm/internal/errors"
	"github.com/KirkDiggler/rpg-dm/internal/orchestrators/combat"
	"github.com/KirkDiggler/rpg-dm/internal/rules"
)

// Ability score bounds of a 4d6-drop-lowest roll
const (
	MinAbilityScore = 3
	MaxAbilityScore = 18
)

// abandon drops any in-flight narration and its error
func (s *session) abandon() {
	s.epoch++
	s.isLoading = false
	s.narrationErr = nil
	s.retry = nil
}

func (s *session) Continue(ctx context.Context) (*View, error) {
	s.mu.Lock()
	defer s.unlock(ctx)

	if err := s.requirePhase("continue", entities.PhaseStartMenu); err != nil {
		return nil, err
	}

	saved := s.gateway.LoadSnapshot(ctx)
	if saved == nil {
		s.hasSavedGame = false
		return nil, errors.FailedPrecondition("there is no saved adventure to continue")
	}

	s.abandon()
	s.party = entities.CloneCharacters(saved.Party)
	s.story = saved.Story.Clone()
	s.encounter = saved.Encounter.Clone()
	s.pendingVictory = false
	s.controller = nil

	switch {
	case saved.GameState == entities.PhaseCombat && s.encounter != nil && s.encounter.Monster.Defeated():
		// saved in the victory window; the presenter resumes the story
		s.pendingVictory = true
	case saved.GameState == entities.PhaseCombat:
		ctrl, err := combat.NewController(len(s.party))
		if err != nil {
			return nil, errors.Wrap(err, "failed to resume combat")
		}
		s.controller = ctrl
	}
	s.setPhase(saved.GameState)

	slog.InfoContext(ctx, "continued saved adventure",
		"phase", s.phase.String(),
		"party_size", len(s.party))

	if s.phase == entities.PhaseAdventure && s.story == nil {
		return s.narrate(ctx, &narrationRequest{operation: narrator.OperationOpeningScene}) // resume before the first scene arrived
	}
	return s.viewLocked(), nil
}

func (s *session) NewGame(ctx context.Context) (*View, error) {
	s.mu.Lock()
	defer s.unlock(ctx)

	if err := s.requirePhase("new game", entities.PhaseStartMenu); err != nil {
		return nil, err
	}

	s.abandon()
	s.gateway.ClearSnapshot(ctx)
	s.hasSavedGame = s.gateway.HasSnapshot(ctx)
	s.party = nil
	s.story = nil
	s.encounter = nil
	s.controller = nil
	s.pendingVictory = false

	if len(s.roster) == 0 {
		s.setPhase(entities.PhaseCharacterCreation)
	} else {
		s.setPhase(entities.PhasePartySelection)
	}
	return s.viewLocked(), nil
}

func (s *session) ManageHeroes(ctx context.Context) (*View, error) {
	s.mu.Lock()
	defer s.unlock(ctx)

	if err := s.requirePhase("manage heroes", entities.PhaseStartMenu); err != nil {
		return nil, err
	}
	s.setPhase(entities.PhaseHallOfHeroes)
	return s.viewLocked(), nil
}

// Back returns to the start menu from anywhere. The creator steps back to
// party selection when heroes exist. In-memory adventure state is kept and
// nothing is persisted.
func (s *session) Back(ctx context.Context) (*View, error) {
	s.mu.Lock()
	defer s.unlock(ctx)

	s.abandon()
	s.pendingVictory = false

	if s.phase == entities.PhaseCharacterCreation && len(s.roster) > 0 {
		s.setPhase(entities.PhasePartySelection)
	} else {
		s.setPhase(entities.PhaseStartMenu)
	}
	return s.viewLocked(), nil
}

func (s *session) OpenCreator(ctx context.Context) (*View, error) {
	s.mu.Lock()
	defer s.unlock(ctx)

	if err := s.requirePhase("open creator", entities.PhasePartySelection, entities.PhaseHallOfHeroes); err != nil {
		return nil, err
	}
	s.setPhase(entities.PhaseCharacterCreation)
	return s.viewLocked(), nil
}

func (s *session) RollAbilityScores(_ context.Context) (*entities.AbilityScores, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requirePhase("roll ability scores", entities.PhaseCharacterCreation); err != nil {
		return nil, err
	}
	scores, err := rules.RollAbilityScores(s.roller)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll ability scores")
	}
	return scores, nil
}

func validateCreate(input *CreateCharacterInput) error {
	if input == nil {
		return errors.InvalidArgument("input is required")
	}
	if strings.TrimSpace(input.Name) == "" {
		return errors.InvalidArgument("Your hero must have a name!")
	}
	if input.AbilityScores == nil {
		return errors.InvalidArgument("Roll your ability scores before creating your hero!")
	}

	vb := errors.NewValidationBuilder()
	if !rules.IsValidRace(input.Race) {
		vb.Fieldf("race", "unknown race %q", input.Race)
	}
	if !rules.IsValidClass(input.CharacterClass) {
		vb.Fieldf("characterClass", "unknown class %q", input.CharacterClass)
	}
	scores := input.AbilityScores
	for field, value := range map[string]int{
		"strength":     scores.Strength,
		"dexterity":    scores.Dexterity,
		"constitution": scores.Constitution,
		"intelligence": scores.Intelligence,
		"wisdom":       scores.Wisdom,
		"charisma":     scores.Charisma,
	} {
		errors.ValidateRange(field, value, MinAbilityScore, MaxAbilityScore, vb)
	}
	return vb.Build()
}

// CreateCharacter generates a backstory, appends the hero to the roster and
// persists it. The backstory call runs with the session marked loading.
func (s *session) CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error) {
	s.mu.Lock()
	defer s.unlock(ctx)

	if err := s.requirePhase("create character", entities.PhaseCharacterCreation); err != nil {
		return nil, err
	}
	if err := s.requireIdle("create character"); err != nil {
		return nil, err
	}
	if err := validateCreate(input); err != nil {
		return nil, err
	}

	draft := &entities.CharacterDraft{
		Name:           strings.TrimSpace(input.Name),
		Race:           input.Race,
		CharacterClass: input.CharacterClass,
		AbilityScores:  input.AbilityScores,
	}

	epoch := s.epoch
	s.isLoading = true
	s.mu.Unlock()
	backstory := s.narrator.GenerateBackstory(ctx, draft)
	s.mu.Lock()

	if epoch != s.epoch {
		slog.InfoContext(ctx, "discarding backstory for abandoned creation", "name", draft.Name)
		return nil, errors.FailedPrecondition("the game moved on before the storyteller answered")
	}
	s.isLoading = false

	char := entities.Character{
		ID:             s.idGen.Generate(),
		Name:           draft.Name,
		Race:           draft.Race,
		CharacterClass: draft.CharacterClass,
		Level:          rules.StartingLevel,
		XP:             rules.StartingXP,
		HP:             rules.PlaceholderHP,
		MaxHP:          rules.PlaceholderHP,
		AbilityScores:  *draft.AbilityScores,
		Backstory:      backstory,
	}
	s.roster = append(s.roster, char)
	s.gateway.SaveRoster(ctx, s.roster)
	s.setPhase(entities.PhasePartySelection)

	slog.InfoContext(ctx, "created character",
		"character_id", char.ID,
		"class", string(char.CharacterClass))

	return &CreateCharacterOutput{Character: char, View: s.viewLocked()}, nil
}

func (s *session) DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*View, error) {
	s.mu.Lock()
	defer s.unlock(ctx)

	if err := s.requirePhase("delete character", entities.PhaseHallOfHeroes); err != nil {
		return nil, err
	}
	if input == nil || input.CharacterID == "" {
		return nil, errors.InvalidArgument("character id is required")
	}

	idx := s.rosterIndex(input.CharacterID)
	if idx < 0 {
		return nil, errors.InvalidArgumentf("unknown character %q", input.CharacterID)
	}
	roster := make([]entities.Character, 0, len(s.roster)-1)
	roster = append(roster, s.roster[:idx]...)
	roster = append(roster, s.roster[idx+1:]...)
	s.roster = roster
	s.gateway.SaveRoster(ctx, s.roster)

	return s.viewLocked(), nil
}

func (s *session) rosterIndex(id string) int {
	for i := range s.roster {
		if s.roster[i].ID == id {
			return i
		}
	}
	return -1
}

// StartAdventure snapshots the chosen heroes with level, xp and hp reset,
// autosaves, and asks for the opening scene
func (s *session) StartAdventure(ctx context.Context, input *StartAdventureInput) (*View, error) {
	s.mu.Lock()
	defer s.unlock(ctx)

	if err := s.requirePhase("start adventure", entities.PhasePartySelection); err != nil {
		return nil, err
	}
	if err := s.requireIdle("start adventure"); err != nil {
		return nil, err
	}
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	n := len(input.CharacterIDs)
	if n < MinPartySize || n > MaxPartySize {
		return nil, errors.InvalidArgumentf("choose between %d and %d heroes for your party", MinPartySize, MaxPartySize).
			WithMeta("party_size", n)
	}

	seen := make(map[string]bool, n)
	party := make([]entities.Character, 0, n)
	for _, id := range input.CharacterIDs {
		if seen[id] {
			return nil, errors.InvalidArgumentf("character %q chosen twice", id)
		}
		seen[id] = true
		idx := s.rosterIndex(id)
		if idx < 0 {
			return nil, errors.InvalidArgumentf("unknown character %q", id)
		}
		party = append(party, rules.PrepareForParty(s.roster[idx]))
	}

	s.abandon()
	s.party = party
	s.story = nil
	s.encounter = nil
	s.controller = nil
	s.pendingVictory = false
	s.setPhase(entities.PhaseAdventure)
	s.commit(ctx)

	slog.InfoContext(ctx, "adventure started", "party_size", len(party))

	return s.narrate(ctx, &narrationRequest{operation: narrator.OperationOpeningScene})
}

package v1

import (
	"github.com/KirkDiggler/rpg-dm/internal/entities"
	"github.com/KirkDiggler/rpg-dm/internal/orchestrators/game"
)

// CreateCharacterRequest is the creator form
type CreateCharacterRequest struct {
	Name           string                  `json:"name"`
	Race           string                  `json:"race"`
	CharacterClass string                  `json:"characterClass"`
	AbilityScores  *entities.AbilityScores `json:"abilityScores"`
}

func (r *CreateCharacterRequest) toInput() *game.CreateCharacterInput {
	return &game.CreateCharacterInput{
		Name:           r.Name,
		Race:           entities.Race(r.Race),
		CharacterClass: entities.Class(r.CharacterClass),
		AbilityScores:  r.AbilityScores,
	}
}

// CreateCharacterResponse carries the new hero and the resulting state
type CreateCharacterResponse struct {
	Character entities.Character `json:"character"`
	State     *game.View         `json:"state"`
}

// StartAdventureRequest names the party members
type StartAdventureRequest struct {
	CharacterIDs []string `json:"characterIds"`
}

// ChooseRequest picks a story choice
type ChooseRequest struct {
	Choice string `json:"choice"`
}

// CombatRollRequest carries a client-side d20 roll
type CombatRollRequest struct {
	Value *int `json:"value"`
}

// CombatActionRequest names the committed action
type CombatActionRequest struct {
	Action string `json:"action"`
}

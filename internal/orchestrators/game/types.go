package game

import (
	"time"

	"github.com/KirkDiggler/rpg-dm/internal/entities"
	"github.com/KirkDiggler/rpg-dm/internal/orchestrators/combat"
)

// Party size bounds for an adventure
const (
	MinPartySize = 1
	MaxPartySize = 6
)

// VictoryDelay is the pause between a monster falling and the story resuming
const VictoryDelay = 2 * time.Second

// VictoryChoice is the synthetic choice issued when combat is won
const VictoryChoice = "The monster is defeated. What's next?"

// NarrationError is a recoverable storyteller failure. The session stays in
// its phase and RetryNarration re-issues the failed request.
type NarrationError struct {
	Operation string `json:"operation"`
	Message   string `json:"message"`
}

// CombatTurn is the turn view shown during COMBAT
type CombatTurn struct {
	combat.TurnView
	ActorID   string `json:"actorId"`
	ActorName string `json:"actorName"`
	Modifier  int    `json:"modifier"`
}

// View is an immutable copy of the session state
type View struct {
	Phase          entities.Phase            `json:"phase"`
	Roster         []entities.Character      `json:"roster"`
	Party          []entities.Character      `json:"party"`
	Story          *entities.StorySegment    `json:"story,omitempty"`
	ImageURL       string                    `json:"imageUrl,omitempty"`
	Encounter      *entities.CombatEncounter `json:"encounter,omitempty"`
	Turn           *CombatTurn               `json:"turn,omitempty"`
	IsLoading      bool                      `json:"isLoading"`
	NarrationError *NarrationError           `json:"narrationError,omitempty"`
	HasSavedGame   bool                      `json:"hasSavedGame"`
	PendingVictory bool                      `json:"pendingVictory"`
}

// CreateCharacterInput is the player's character creation form
type CreateCharacterInput struct {
	Name           string
	Race           entities.Race
	CharacterClass entities.Class
	AbilityScores  *entities.AbilityScores
}

// CreateCharacterOutput returns the new roster entry
type CreateCharacterOutput struct {
	Character entities.Character
	View      *View
}

// DeleteCharacterInput selects a roster entry to remove
type DeleteCharacterInput struct {
	CharacterID string
}

// StartAdventureInput selects the party from the roster
type StartAdventureInput struct {
	CharacterIDs []string
}

// ChooseInput picks one of the offered story choices
type ChooseInput struct {
	Choice string
}

// CombatRollInput records the acting hero's d20. A nil Value draws it.
type CombatRollInput struct {
	Value *int
}

// CommitActionInput commits the acting hero's action
type CommitActionInput struct {
	Action combat.Action
}

package narrator

import (
	"github.com/KirkDiggler/rpg-dm/internal/entities"
)

// Outcome is the result of continuing the story. It is either a
// StoryContinuation or a CombatStart.
type Outcome interface {
	isOutcome()
}

// StoryContinuation carries the next peaceful scene
type StoryContinuation struct {
	Segment *entities.StorySegment
}

// CombatStart carries a freshly introduced encounter
type CombatStart struct {
	Encounter *entities.CombatEncounter
}

func (StoryContinuation) isOutcome() {}
func (CombatStart) isOutcome()       {}

// CombatActionInput describes one resolved player turn
type CombatActionInput struct {
	Party    []entities.Character
	Actor    entities.Character
	Monster  entities.Monster
	Action   string
	Roll     int
	Modifier int
}

// CombatActionResult is the narrated result of a turn
type CombatActionResult struct {
	Narration       string `json:"narration"`
	DamageToMonster int    `json:"damageToMonster"`
	DamageToPlayer  int    `json:"damageToPlayer"`
	MonsterDefeated bool   `json:"monsterDefeated"`
}

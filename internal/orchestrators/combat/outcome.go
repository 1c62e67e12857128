package combat

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-dm/internal/clients/narrator"
	"github.com/KirkDiggler/rpg-dm/internal/entities"
	"github.com/KirkDiggler/rpg-dm/internal/rules"
)

// NoTarget marks a turn in which no hero was hurt
const NoTarget = -1

// AppliedOutcome is the state after a narrated turn
type AppliedOutcome struct {
	Party           []entities.Character
	Encounter       *entities.CombatEncounter
	TargetIndex     int
	DamageTaken     int
	MonsterDefeated bool
}

// ApplyOutcome applies a narrated turn to copies of the party and encounter.
// The monster loses damageToMonster hp, clamped at 0, and is set to 0 when
// defeated. Unless the monster fell, a random hero takes damageToPlayer,
// clamped at 0. The turn narration is appended to the encounter log.
func ApplyOutcome(roller dice.Roller, party []entities.Character, encounter *entities.CombatEncounter, result *narrator.CombatActionResult) (*AppliedOutcome, error) {
	enc := encounter.Clone()
	updated := entities.CloneCharacters(party)

	hp := enc.Monster.HP - result.DamageToMonster
	if hp < 0 {
		hp = 0
	}
	defeated := result.MonsterDefeated || hp == 0
	if defeated {
		hp = 0
	}
	enc.Monster.HP = hp
	enc.AppendNarration(result.Narration)

	out := &AppliedOutcome{
		Party:           updated,
		Encounter:       enc,
		TargetIndex:     NoTarget,
		MonsterDefeated: defeated,
	}

	if !defeated && result.DamageToPlayer > 0 && len(updated) > 0 {
		idx, err := rules.PickTarget(roller, len(updated))
		if err != nil {
			return nil, err
		}

		target := &updated[idx]
		before := target.HP
		target.HP -= result.DamageToPlayer
		if target.HP < 0 {
			target.HP = 0
		}
		out.TargetIndex = idx
		out.DamageTaken = before - target.HP
	}

	return out, nil
}

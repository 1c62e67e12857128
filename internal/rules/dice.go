package rules

import (
	"sort"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-dm/internal/errors"
	"github.com/KirkDiggler/rpg-dm/internal/entities"
)

// Natural d20 results with special meaning
const (
	CriticalFailure = 1
	CriticalSuccess = 20
)

// RollAbilityScore rolls 4d6 and drops the lowest die
func RollAbilityScore(roller dice.Roller) (int, error) {
	rolls, err := roller.RollN(4, 6)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll ability score")
	}
	if len(rolls) != 4 {
		return 0, errors.Internalf("expected 4 dice, got %d", len(rolls))
	}

	sorted := append([]int(nil), rolls...)
	sort.Ints(sorted)

	total := 0
	for _, r := range sorted[1:] {
		total += r
	}
	return total, nil
}

// RollAbilityScores rolls all six ability scores in order
func RollAbilityScores(roller dice.Roller) (*entities.AbilityScores, error) {
	var values [6]int
	for i := range values {
		v, err := RollAbilityScore(roller)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}

	return &entities.AbilityScores{
		Strength:     values[0],
		Dexterity:    values[1],
		Constitution: values[2],
		Intelligence: values[3],
		Wisdom:       values[4],
		Charisma:     values[5],
	}, nil
}

// RollD20 draws a uniform value in [1,20]
func RollD20(roller dice.Roller) (int, error) {
	v, err := roller.Roll(20)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll d20")
	}
	return v, nil
}

// PickTarget picks a uniform index in [0,n)
func PickTarget(roller dice.Roller, n int) (int, error) {
	if n <= 0 {
		return 0, errors.InvalidArgument("no targets to pick from")
	}
	v, err := roller.Roll(n)
	if err != nil {
		return 0, errors.Wrap(err, "failed to pick target")
	}
	return v - 1, nil
}

// IsCriticalFailure reports a natural 1
func IsCriticalFailure(roll int) bool {
	return roll == CriticalFailure
}

// IsCriticalSuccess reports a natural 20
func IsCriticalSuccess(roll int) bool {
	return roll == CriticalSuccess
}

// ValidRoll reports whether roll is a face of a d20
func ValidRoll(roll int) bool {
	return roll >= 1 && roll <= 20
}

package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-dm/internal/entities"
	"github.com/KirkDiggler/rpg-dm/internal/rules"
	"github.com/KirkDiggler/rpg-dm/internal/testutils/builders"
)

func TestAbilityModifier(t *testing.T) {
	testCases := []struct {
		score    int
		expected int
	}{
		{score: 1, expected: -5},
		{score: 3, expected: -4},
		{score: 8, expected: -1},
		{score: 9, expected: -1},
		{score: 10, expected: 0},
		{score: 11, expected: 0},
		{score: 12, expected: 1},
		{score: 15, expected: 2},
		{score: 18, expected: 4},
		{score: 20, expected: 5},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, rules.AbilityModifier(tc.score), "score %d", tc.score)
	}
}

func TestDeriveHP(t *testing.T) {
	t.Run("base hp per class with average constitution", func(t *testing.T) {
		assert.Equal(t, 10, rules.DeriveHP(entities.ClassFighter, 10))
		assert.Equal(t, 6, rules.DeriveHP(entities.ClassWizard, 10))
		assert.Equal(t, 8, rules.DeriveHP(entities.ClassRogue, 10))
		assert.Equal(t, 8, rules.DeriveHP(entities.ClassCleric, 10))
	})

	t.Run("constitution modifier applies", func(t *testing.T) {
		assert.Equal(t, 12, rules.DeriveHP(entities.ClassFighter, 14))
		assert.Equal(t, 11, rules.DeriveHP(entities.ClassRogue, 16))
	})

	t.Run("low constitution is not clamped", func(t *testing.T) {
		assert.Equal(t, 2, rules.DeriveHP(entities.ClassWizard, 3))
	})

	t.Run("unknown class only gets the modifier", func(t *testing.T) {
		assert.Equal(t, 4, rules.DeriveHP(entities.Class("Bard"), 18))
	})
}

func TestCombatModifier(t *testing.T) {
	scores := entities.AbilityScores{
		Strength:     16,
		Dexterity:    14,
		Constitution: 12,
		Intelligence: 18,
		Wisdom:       8,
		Charisma:     10,
	}

	build := func(class entities.Class) *entities.Character {
		c := builders.NewCharacterBuilder().WithClass(class).WithAbilityScores(scores).Build()
		return &c
	}

	assert.Equal(t, 3, rules.CombatModifier(build(entities.ClassFighter)))
	assert.Equal(t, 2, rules.CombatModifier(build(entities.ClassRogue)))
	assert.Equal(t, 4, rules.CombatModifier(build(entities.ClassWizard)))
	assert.Equal(t, -1, rules.CombatModifier(build(entities.ClassCleric)))
	assert.Equal(t, 0, rules.CombatModifier(build(entities.Class("Bard"))))
	assert.Equal(t, 0, rules.CombatModifier(nil))
}

func TestPrepareForParty(t *testing.T) {
	c := builders.NewCharacterBuilder().
		WithClass(entities.ClassRogue).
		WithHP(3, 10).
		WithLevel(4, 900).
		WithAbilityScores(entities.AbilityScores{Constitution: 14}).
		Build()

	prepared := rules.PrepareForParty(c)

	assert.Equal(t, 1, prepared.Level)
	assert.Equal(t, 0, prepared.XP)
	assert.Equal(t, 10, prepared.HP)
	assert.Equal(t, 10, prepared.MaxHP)
	// input is a value, the roster copy is untouched
	assert.Equal(t, 3, c.HP)
	assert.Equal(t, 4, c.Level)
}

func TestValidRaceAndClass(t *testing.T) {
	for _, r := range entities.Races {
		assert.True(t, rules.IsValidRace(r))
	}
	for _, c := range entities.Classes {
		assert.True(t, rules.IsValidClass(c))
	}
	assert.False(t, rules.IsValidRace("Orc"))
	assert.False(t, rules.IsValidClass("Bard"))
	assert.False(t, rules.IsValidRace(""))
}

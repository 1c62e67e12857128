package rules

import (
	"github.com/KirkDiggler/rpg-dm/internal/entities"
)

// Starting values for a freshly created roster character. Real values are
// derived when the character joins a party.
const (
	PlaceholderHP = 10
	StartingLevel = 1
	StartingXP    = 0
)

var baseHP = map[entities.Class]int{
	entities.ClassFighter: 10,
	entities.ClassWizard:  6,
	entities.ClassRogue:   8,
	entities.ClassCleric:  8,
}

// AbilityModifier returns floor((score-10)/2)
func AbilityModifier(score int) int {
	diff := score - 10
	if diff < 0 {
		// Go division truncates toward zero
		return (diff - 1) / 2
	}
	return diff / 2
}

// BaseHP returns the class hit die maximum, 0 for unknown classes
func BaseHP(class entities.Class) int {
	return baseHP[class]
}

// DeriveHP returns the level 1 hit points for a class and constitution
// score. The result is not clamped.
func DeriveHP(class entities.Class, constitution int) int {
	return BaseHP(class) + AbilityModifier(constitution)
}

// CombatModifier returns the modifier of the character's primary ability
func CombatModifier(c *entities.Character) int {
	if c == nil {
		return 0
	}
	scores := c.AbilityScores
	switch c.CharacterClass {
	case entities.ClassFighter:
		return AbilityModifier(scores.Strength)
	case entities.ClassRogue:
		return AbilityModifier(scores.Dexterity)
	case entities.ClassWizard:
		return AbilityModifier(scores.Intelligence)
	case entities.ClassCleric:
		return AbilityModifier(scores.Wisdom)
	default:
		return 0
	}
}

// PrepareForParty resets a roster character to a fresh level 1 adventurer
// with derived hit points
func PrepareForParty(c entities.Character) entities.Character {
	hp := DeriveHP(c.CharacterClass, c.AbilityScores.Constitution)
	c.Level = StartingLevel
	c.XP = StartingXP
	c.HP = hp
	c.MaxHP = hp
	return c
}

// IsValidRace reports whether r is a playable race
func IsValidRace(r entities.Race) bool {
	for _, known := range entities.Races {
		if known == r {
			return true
		}
	}
	return false
}

// IsValidClass reports whether c is a playable class
func IsValidClass(c entities.Class) bool {
	_, ok := baseHP[c]
	return ok
}

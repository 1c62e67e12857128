// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-dm/internal/entities"
)

// CharacterBuilder provides a fluent interface for building test Character instances
type CharacterBuilder struct {
	character entities.Character
}

// NewCharacterBuilder creates a new builder with minimal defaults
func NewCharacterBuilder() *CharacterBuilder {
	return &CharacterBuilder{
		character: entities.Character{
			ID:             "char-test-001",
			Name:           "Test Character",
			Race:           entities.RaceHuman,
			CharacterClass: entities.ClassFighter,
			Level:          1,
			HP:             10,
			MaxHP:          10,
			AbilityScores: entities.AbilityScores{
				Strength: 10, Dexterity: 10, Constitution: 10,
				Intelligence: 10, Wisdom: 10, Charisma: 10,
			},
		},
	}
}

// WithID sets the character ID
func (b *CharacterBuilder) WithID(id string) *CharacterBuilder {
	b.character.ID = id
	return b
}

// WithName sets the character name
func (b *CharacterBuilder) WithName(name string) *CharacterBuilder {
	b.character.Name = name
	return b
}

// WithRace sets the race
func (b *CharacterBuilder) WithRace(race entities.Race) *CharacterBuilder {
	b.character.Race = race
	return b
}

// WithClass sets the class
func (b *CharacterBuilder) WithClass(class entities.Class) *CharacterBuilder {
	b.character.CharacterClass = class
	return b
}

// WithHP sets current and maximum hit points
func (b *CharacterBuilder) WithHP(hp, maxHP int) *CharacterBuilder {
	b.character.HP = hp
	b.character.MaxHP = maxHP
	return b
}

// WithLevel sets level and xp
func (b *CharacterBuilder) WithLevel(level, xp int) *CharacterBuilder {
	b.character.Level = level
	b.character.XP = xp
	return b
}

// WithAbilityScores sets the ability scores
func (b *CharacterBuilder) WithAbilityScores(scores entities.AbilityScores) *CharacterBuilder {
	b.character.AbilityScores = scores
	return b
}

// WithBackstory sets the backstory
func (b *CharacterBuilder) WithBackstory(backstory string) *CharacterBuilder {
	b.character.Backstory = backstory
	return b
}

// Build returns the built character
func (b *CharacterBuilder) Build() entities.Character {
	return b.character
}

package testutils

import (
	"github.com/KirkDiggler/rpg-dm/internal/entities"
)

const (
	// TestCharacterName is the default character name for test fixtures
	TestCharacterName = "Arin"
	// TestMonsterName is the default monster name for test fixtures
	TestMonsterName = "Goblin"
)

// AverageScores returns ability scores of 10 across the board
func AverageScores() entities.AbilityScores {
	return entities.AbilityScores{
		Strength:     10,
		Dexterity:    10,
		Constitution: 10,
		Intelligence: 10,
		Wisdom:       10,
		Charisma:     10,
	}
}

// CreateTestCharacter creates a level 1 roster character with placeholder hp
func CreateTestCharacter(id, name string, class entities.Class) entities.Character {
	return entities.Character{
		ID:             id,
		Name:           name,
		Race:           entities.RaceHuman,
		CharacterClass: class,
		Level:          1,
		HP:             10,
		MaxHP:          10,
		AbilityScores:  AverageScores(),
		Backstory:      "Raised by wolves.",
	}
}

// CreateTestMonster creates a monster at full health
func CreateTestMonster(hp int) entities.Monster {
	return entities.Monster{
		Name:        TestMonsterName,
		HP:          hp,
		MaxHP:       hp,
		Attack:      "rusty dagger",
		Description: "A snarling goblin.",
	}
}

// CreateTestStory creates a story segment with the given choices
func CreateTestStory(narration string, choices ...string) *entities.StorySegment {
	return &entities.StorySegment{
		Narration:   narration,
		Choices:     choices,
		ImagePrompt: "dark forest",
	}
}

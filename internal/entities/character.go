package entities

// Race is a playable ancestry
type Race string

// Playable races
const (
	RaceHuman    Race = "Human"
	RaceElf      Race = "Elf"
	RaceDwarf    Race = "Dwarf"
	RaceHalfling Race = "Halfling"
)

// Races lists the playable races in menu order
var Races = []Race{RaceHuman, RaceElf, RaceDwarf, RaceHalfling}

// Class is a character class
type Class string

// Playable classes
const (
	ClassFighter Class = "Fighter"
	ClassWizard  Class = "Wizard"
	ClassRogue   Class = "Rogue"
	ClassCleric  Class = "Cleric"
)

// Classes lists the playable classes in menu order
var Classes = []Class{ClassFighter, ClassWizard, ClassRogue, ClassCleric}

// EntityTypeCharacter is the toolkit entity type reported by Character
const EntityTypeCharacter = "character"

// AbilityScores holds the six core ability scores
type AbilityScores struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// Character is a hero in the roster or in the active party
type Character struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Race           Race          `json:"race"`
	CharacterClass Class         `json:"characterClass"`
	Level          int           `json:"level"`
	XP             int           `json:"xp"`
	HP             int           `json:"hp"`
	MaxHP          int           `json:"maxHp"`
	AbilityScores  AbilityScores `json:"abilityScores"`
	Backstory      string        `json:"backstory"`
}

// GetID implements core.Entity
func (c *Character) GetID() string {
	return c.ID
}

// GetType implements core.Entity
func (c *Character) GetType() string {
	return EntityTypeCharacter
}

// CharacterDraft is the player input gathered on the creation screen
type CharacterDraft struct {
	Name           string
	Race           Race
	CharacterClass Class
	AbilityScores  *AbilityScores
}

// CloneCharacters returns a copy of the slice. Character has no reference
// fields, so copying the values is a deep copy.
func CloneCharacters(in []Character) []Character {
	if in == nil {
		return nil
	}
	out := make([]Character, len(in))
	copy(out, in)
	return out
}

package narrator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-dm/internal/clients/narrator"
	"github.com/KirkDiggler/rpg-dm/internal/entities"
)

func TestStripFences(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: `{"a":1}`, expected: `{"a":1}`},
		{name: "padded", input: "  {\"a\":1}\n", expected: `{"a":1}`},
		{name: "json fence", input: "```json\n{\"a\":1}\n```", expected: `{"a":1}`},
		{name: "bare fence", input: "```\n{\"a\":1}\n```", expected: `{"a":1}`},
		{name: "single line fence", input: "```json{\"a\":1}```", expected: `{"a":1}`},
		{name: "prose", input: "Once upon a time", expected: "Once upon a time"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, narrator.StripFences(tc.input))
		})
	}
}

func TestImageURL(t *testing.T) {
	assert.Equal(t, "https://picsum.photos/seed/adarkforest/800/400", narrator.ImageURL("a dark\tforest "))
	assert.Equal(t, "", narrator.ImageURL(""))
	assert.Equal(t, "", narrator.ImageURL(" \n "))
	assert.Equal(t, "https://picsum.photos/seed/cave%2Fentrance/800/400", narrator.ImageURL("cave/entrance"))
}

func TestPartyLine(t *testing.T) {
	c := entities.Character{
		Name:           "Arin",
		Race:           entities.RaceDwarf,
		CharacterClass: entities.ClassCleric,
		Level:          1,
	}
	assert.Equal(t, "- Arin the Dwarf Cleric (Level 1)", narrator.PartyLine(c))
}

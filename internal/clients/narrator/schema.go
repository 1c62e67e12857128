package narrator

import (
	"github.com/sashabaranov/go-openai/jsonschema"
)

var (
	storySchema = jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"narration":   {Type: jsonschema.String},
			"choices":     {Type: jsonschema.Array, Items: &jsonschema.Definition{Type: jsonschema.String}},
			"imagePrompt": {Type: jsonschema.String},
		},
		Required: []string{"narration", "choices"},
	}

	nextSegmentSchema = jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"narration":   {Type: jsonschema.String},
			"choices":     {Type: jsonschema.Array, Items: &jsonschema.Definition{Type: jsonschema.String}},
			"imagePrompt": {Type: jsonschema.String},
			"combat": {
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"monster": {
						Type: jsonschema.Object,
						Properties: map[string]jsonschema.Definition{
							"name":        {Type: jsonschema.String},
							"hp":          {Type: jsonschema.Integer},
							"attack":      {Type: jsonschema.String, Description: "A brief description of the monster's main attack"},
							"description": {Type: jsonschema.String},
						},
						Required: []string{"name", "hp"},
					},
					"narration": {Type: jsonschema.String, Description: "The narration introducing the combat."},
				},
				Required: []string{"monster"},
			},
			"town": {Type: jsonschema.Boolean, Description: "Set to true if the party has entered a town."},
		},
		Required: []string{"narration"},
	}

	combatTurnSchema = jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"narration":       {Type: jsonschema.String, Description: "The player's action and the monster's counter-attack."},
			"damageToMonster": {Type: jsonschema.Integer, Description: "Damage dealt to the monster."},
			"damageToPlayer":  {Type: jsonschema.Integer, Description: "Damage the monster deals to a random hero."},
			"monsterDefeated": {Type: jsonschema.Boolean, Description: "True if the monster's HP is 0 or less."},
		},
		Required: []string{"narration", "damageToMonster", "damageToPlayer", "monsterDefeated"},
	}
)

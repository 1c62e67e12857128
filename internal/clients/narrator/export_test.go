package narrator

import (
	"github.com/sashabaranov/go-openai/jsonschema"
)

// CombatTurnSchema exposes the combat turn schema to external tests
func CombatTurnSchema() *jsonschema.Definition {
	return &combatTurnSchema
}

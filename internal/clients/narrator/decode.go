package narrator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-dm/internal/entities"
	"github.com/KirkDiggler/rpg-dm/internal/errors"
)

// TownChoices replace generator choices when the party reaches a town
var TownChoices = []string{"Visit the Tavern", "Go to the Shop", "Rest at the Inn", "Leave Town"}

// StripFences removes a surrounding markdown code fence, with or without a
// language tag
func StripFences(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		// drop the language tag line, e.g. ```json
		s = s[nl+1:]
	} else {
		s = strings.TrimPrefix(s, "json")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func malformed(operation, format string, args ...any) error {
	detail := fmt.Sprintf(format, args...)
	return errors.Newf(errors.CodeUnavailable, "narrator returned a malformed %s response: %s", operation, detail).
		WithMeta("operation", operation)
}

func decodeJSON(operation, text string, out any) error {
	if err := json.Unmarshal([]byte(StripFences(text)), out); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, fmt.Sprintf("narrator returned invalid JSON for %s", operation)).
			WithMeta("operation", operation)
	}
	return nil
}

type storyPayload struct {
	Narration   *string        `json:"narration"`
	Choices     []string       `json:"choices"`
	ImagePrompt string         `json:"imagePrompt"`
	Combat      *combatPayload `json:"combat"`
	Town        bool           `json:"town"`
}

type combatPayload struct {
	Monster   *monsterPayload `json:"monster"`
	Narration string          `json:"narration"`
}

type monsterPayload struct {
	Name        string `json:"name"`
	HP          *int   `json:"hp"`
	Attack      string `json:"attack"`
	Description string `json:"description"`
}

type combatTurnPayload struct {
	Narration       *string `json:"narration"`
	DamageToMonster *int    `json:"damageToMonster"`
	DamageToPlayer  *int    `json:"damageToPlayer"`
	MonsterDefeated *bool   `json:"monsterDefeated"`
}

func decodeSegment(operation string, p *storyPayload) (*entities.StorySegment, error) {
	if p.Narration == nil || strings.TrimSpace(*p.Narration) == "" {
		return nil, malformed(operation, "narration is missing")
	}

	choices := make([]string, 0, len(p.Choices))
	for _, c := range p.Choices {
		if c = strings.TrimSpace(c); c != "" {
			choices = append(choices, c)
		}
	}
	if len(choices) == 0 {
		return nil, malformed(operation, "no choices offered")
	}

	return &entities.StorySegment{
		Narration:   *p.Narration,
		Choices:     choices,
		ImagePrompt: p.ImagePrompt,
	}, nil
}

func decodeOpeningScene(text string) (*entities.StorySegment, error) {
	var p storyPayload
	if err := decodeJSON(OperationOpeningScene, text, &p); err != nil {
		return nil, err
	}
	return decodeSegment(OperationOpeningScene, &p)
}

func decodeNextSegment(text string) (Outcome, error) {
	var p storyPayload
	if err := decodeJSON(OperationNextSegment, text, &p); err != nil {
		return nil, err
	}

	if p.Combat != nil {
		return decodeCombatStart(&p)
	}

	if p.Town {
		if p.Narration == nil || strings.TrimSpace(*p.Narration) == "" {
			return nil, malformed(OperationNextSegment, "narration is missing")
		}
		return StoryContinuation{Segment: &entities.StorySegment{
			Narration: *p.Narration,
			Choices:   append([]string(nil), TownChoices...),
		}}, nil
	}

	segment, err := decodeSegment(OperationNextSegment, &p)
	if err != nil {
		return nil, err
	}
	return StoryContinuation{Segment: segment}, nil
}

func decodeCombatStart(p *storyPayload) (Outcome, error) {
	m := p.Combat.Monster
	if m == nil {
		return nil, malformed(OperationNextSegment, "combat has no monster")
	}
	if strings.TrimSpace(m.Name) == "" {
		return nil, malformed(OperationNextSegment, "monster has no name")
	}
	if m.HP == nil || *m.HP <= 0 {
		return nil, malformed(OperationNextSegment, "monster hp must be a positive integer")
	}

	narration := p.Combat.Narration
	if strings.TrimSpace(narration) == "" && p.Narration != nil {
		narration = *p.Narration
	}

	return CombatStart{Encounter: &entities.CombatEncounter{
		Monster: entities.Monster{
			Name:        m.Name,
			HP:          *m.HP,
			MaxHP:       *m.HP,
			Attack:      m.Attack,
			Description: m.Description,
		},
		Narration: narration,
	}}, nil
}

func decodeCombatTurn(text string) (*CombatActionResult, error) {
	var p combatTurnPayload
	if err := decodeJSON(OperationCombatTurn, text, &p); err != nil {
		return nil, err
	}

	switch {
	case p.Narration == nil || strings.TrimSpace(*p.Narration) == "":
		return nil, malformed(OperationCombatTurn, "narration is missing")
	case p.DamageToMonster == nil || *p.DamageToMonster < 0:
		return nil, malformed(OperationCombatTurn, "damageToMonster must be a non-negative integer")
	case p.DamageToPlayer == nil || *p.DamageToPlayer < 0:
		return nil, malformed(OperationCombatTurn, "damageToPlayer must be a non-negative integer")
	case p.MonsterDefeated == nil:
		return nil, malformed(OperationCombatTurn, "monsterDefeated is missing")
	}

	return &CombatActionResult{
		Narration:       *p.Narration,
		DamageToMonster: *p.DamageToMonster,
		DamageToPlayer:  *p.DamageToPlayer,
		MonsterDefeated: *p.MonsterDefeated,
	}, nil
}

package entities

// EntityTypeMonster is the toolkit entity type reported by Monster
const EntityTypeMonster = "monster"

// StorySegment is one narrated scene with the choices offered to the party
type StorySegment struct {
	Narration   string   `json:"narration"`
	Choices     []string `json:"choices"`
	ImagePrompt string   `json:"imagePrompt,omitempty"`
}

// Clone returns a deep copy, nil-safe
func (s *StorySegment) Clone() *StorySegment {
	if s == nil {
		return nil
	}
	out := *s
	out.Choices = append([]string(nil), s.Choices...)
	return &out
}

// Monster is the opponent of a combat encounter
type Monster struct {
	Name        string `json:"name"`
	HP          int    `json:"hp"`
	MaxHP       int    `json:"maxHp"`
	Attack      string `json:"attack"`
	Description string `json:"description"`
}

// GetID implements core.Entity. Encounters hold a single monster, so its
// name identifies it.
func (m *Monster) GetID() string {
	return m.Name
}

// GetType implements core.Entity
func (m *Monster) GetType() string {
	return EntityTypeMonster
}

// Defeated reports whether the monster has no hit points left
func (m *Monster) Defeated() bool {
	return m.HP <= 0
}

// CombatEncounter is the live combat state. Narration is an append-only log.
type CombatEncounter struct {
	Monster   Monster `json:"monster"`
	Narration string  `json:"narration"`
}

// Clone returns a copy, nil-safe
func (e *CombatEncounter) Clone() *CombatEncounter {
	if e == nil {
		return nil
	}
	out := *e
	return &out
}

// AppendNarration adds a turn's narration to the log
func (e *CombatEncounter) AppendNarration(text string) {
	if e.Narration == "" {
		e.Narration = text
		return
	}
	e.Narration += "\n\n" + text
}

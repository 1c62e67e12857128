package entities

import (
	"fmt"
)

// Phase is one discrete mode of the game state machine
type Phase int

// Game phases. Town and GameOver are reserved and never entered.
const (
	PhaseStartMenu Phase = iota
	PhaseCharacterCreation
	PhasePartySelection
	PhaseHallOfHeroes
	PhaseAdventure
	PhaseCombat
	PhaseTown
	PhaseGameOver
)

var phaseNames = map[Phase]string{
	PhaseStartMenu:         "START_MENU",
	PhaseCharacterCreation: "CHARACTER_CREATION",
	PhasePartySelection:    "PARTY_SELECTION",
	PhaseHallOfHeroes:      "HALL_OF_HEROES",
	PhaseAdventure:         "ADVENTURE",
	PhaseCombat:            "COMBAT",
	PhaseTown:              "TOWN",
	PhaseGameOver:          "GAME_OVER",
}

// String returns the upper-case phase name
func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PHASE(%d)", int(p))
}

// InAdventure reports whether the phase belongs to a running adventure,
// the only phases that are autosaved
func (p Phase) InAdventure() bool {
	return p == PhaseAdventure || p == PhaseCombat
}

// ParsePhase converts a phase name back to a Phase
func ParsePhase(name string) (Phase, error) {
	for p, n := range phaseNames {
		if n == name {
			return p, nil
		}
	}
	return PhaseStartMenu, fmt.Errorf("unknown phase %q", name)
}

// MarshalText implements encoding.TextMarshaler
func (p Phase) MarshalText() ([]byte, error) {
	name, ok := phaseNames[p]
	if !ok {
		return nil, fmt.Errorf("unknown phase %d", int(p))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *Phase) UnmarshalText(text []byte) error {
	parsed, err := ParsePhase(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

package entities

// SavedGame is the single-slot snapshot of an in-progress adventure
type SavedGame struct {
	GameState Phase            `json:"gameState"`
	Party     []Character      `json:"party"`
	Story     *StorySegment    `json:"story"`
	Encounter *CombatEncounter `json:"encounter"`
}

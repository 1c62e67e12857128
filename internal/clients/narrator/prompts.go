package narrator

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-dm/internal/entities"
)

const backstorySystem = "You are a creative writer who specializes in short fantasy character backstories."

// PartyLine renders one roster line of the system instruction
func PartyLine(c entities.Character) string {
	return fmt.Sprintf("- %s the %s %s (Level %d)", c.Name, c.Race, c.CharacterClass, c.Level)
}

func systemInstruction(party []entities.Character) string {
	lines := make([]string, len(party))
	for i, c := range party {
		lines[i] = PartyLine(c)
	}

	plural := ""
	if len(party) != 1 {
		plural = "s"
	}

	var b strings.Builder
	b.WriteString("You are an experienced Dungeon Master running a Dungeons & Dragons style adventure.\n")
	b.WriteString("Keep the tone epic, descriptive and a little dramatic. Favour fun and heroics over punishing difficulty.\n")
	fmt.Fprintf(&b, "You are guiding a party of %d adventurer%s. Characters never die permanently; a fallen hero can always be revived or rescued.\n\n", len(party), plural)
	b.WriteString("The party:\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\nAnswer in JSON only. Do not wrap the answer in markdown code fences.\n")
	return b.String()
}

func backstoryPrompt(draft *entities.CharacterDraft) string {
	return fmt.Sprintf(
		"Write a short backstory of two or three sentences for a level 1 %s %s named %s, set in a classic fantasy world.",
		draft.Race, draft.CharacterClass, draft.Name,
	)
}

func openingScenePrompt(party []entities.Character) string {
	heroes := "our hero"
	purpose := "that sets them on their path"
	if len(party) > 1 {
		heroes = fmt.Sprintf("our %d heroes", len(party))
		purpose = "that brings them together for the first time"
	}

	return fmt.Sprintf(`The adventure is just beginning for %s. Write an exciting opening scene %s.
They start in a busy town square or a warm tavern. Describe it vividly and give them a clear hook for a first quest.
Offer 2-3 distinct choices of action.
Include a short image-generation prompt that captures the scene.`, heroes, purpose)
}

func nextSegmentPrompt(previousNarration, choice string) string {
	return fmt.Sprintf(`The story so far: "%s"
The party chose to: "%s"

Continue the story with the outcome of that choice.
- If things stay peaceful, describe the next scene and offer 2-3 new choices.
- If the choice leads to a fight, introduce a fitting monster in "combat", describe the tension, and stop there.
- Now and then the road leads to a village or town. When it does, set "town" to true.
- Include a short image-generation prompt for the new scene.`, previousNarration, choice)
}

func combatTurnPrompt(in *CombatActionInput) string {
	a := in.Actor
	return fmt.Sprintf(`Combat turn
Character: %s the %s %s
Action: %s
Dice roll (d20): %d
Ability modifier: %d
Total: %d

Monster: %s (HP: %d)
Monster attack style: %s

Narrate the outcome of %s's action.
- A natural 1 is a critical failure: describe a clumsy or funny miss.
- A natural 20 is a critical success: describe a spectacular hit with extra damage.
- A total below 12 is most likely a miss, 12 or higher is a hit.
- A hit deals damage suited to the class (fighters hit harder than wizards with weapons).
- Then describe the monster's counter-attack against one random hero and the damage it deals.
- If the monster's HP drops to 0 or below, declare it defeated and describe its end.

Return only the JSON object.`,
		a.Name, a.Race, a.CharacterClass,
		in.Action, in.Roll, in.Modifier, in.Roll+in.Modifier,
		in.Monster.Name, in.Monster.HP, in.Monster.Attack,
		a.Name,
	)
}

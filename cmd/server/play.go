package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-dm/internal/entities"
	"github.com/KirkDiggler/rpg-dm/internal/errors"
	"github.com/KirkDiggler/rpg-dm/internal/orchestrators/combat"
	"github.com/KirkDiggler/rpg-dm/internal/orchestrators/game"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		session, cleanup, err := buildSession(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to build game session: %w", err)
		}
		defer cleanup()

		t := newTerminal(session, cmd.InOrStdin(), cmd.OutOrStdout(), cfg.VictoryDelay)
		return t.run(ctx)
	},
}

// terminal is a line-oriented front end over a game session
type terminal struct {
	svc   game.Service
	in    *bufio.Scanner
	out   io.Writer
	delay time.Duration
	sleep func(time.Duration)
}

func newTerminal(svc game.Service, in io.Reader, out io.Writer, delay time.Duration) *terminal {
	return &terminal{
		svc:   svc,
		in:    bufio.NewScanner(in),
		out:   out,
		delay: delay,
		sleep: time.Sleep,
	}
}

var errQuit = errors.New(errors.CodeCanceled, "quit")

func (t *terminal) printf(format string, args ...any) {
	fmt.Fprintf(t.out, format, args...)
}

// ask prompts and reads one trimmed line; "q" and end of input quit
func (t *terminal) ask(prompt string) (string, error) {
	t.printf("%s> ", prompt)
	if !t.in.Scan() {
		if err := t.in.Err(); err != nil {
			return "", err
		}
		return "", errQuit
	}
	line := strings.TrimSpace(t.in.Text())
	if strings.EqualFold(line, "q") {
		return "", errQuit
	}
	return line, nil
}

func (t *terminal) run(ctx context.Context) error {
	t.printf("Welcome, adventurer. Type q at any prompt to quit.\n")

	for {
		view := t.svc.State(ctx)

		var err error
		switch view.Phase {
		case entities.PhaseStartMenu:
			err = t.startMenu(ctx, view)
		case entities.PhaseCharacterCreation:
			err = t.creator(ctx)
		case entities.PhasePartySelection:
			err = t.partySelection(ctx, view)
		case entities.PhaseHallOfHeroes:
			err = t.hallOfHeroes(ctx, view)
		case entities.PhaseAdventure:
			err = t.adventure(ctx, view)
		case entities.PhaseCombat:
			err = t.combat(ctx, view)
		default:
			_, err = t.svc.Back(ctx)
		}

		switch {
		case err == nil:
		case err == errQuit:
			t.printf("Farewell.\n")
			return nil
		case errors.GetCode(err) == errors.CodeInternal:
			return err
		default:
			t.printf("! %s\n", errors.GetMessage(err))
		}
	}
}

func (t *terminal) startMenu(ctx context.Context, view *game.View) error {
	t.printf("\n== rpg-dm ==\n")
	if view.HasSavedGame {
		t.printf("  1) Continue\n")
	}
	t.printf("  2) New game\n  3) Hall of heroes\n")

	choice, err := t.ask("menu")
	if err != nil {
		return err
	}
	switch choice {
	case "1":
		_, err = t.svc.Continue(ctx)
	case "2":
		_, err = t.svc.NewGame(ctx)
	case "3":
		_, err = t.svc.ManageHeroes(ctx)
	}
	return err
}

func (t *terminal) pick(prompt string, options []string) (string, bool, error) {
	for i, o := range options {
		t.printf("  %d) %s\n", i+1, o)
	}
	for {
		line, err := t.ask(prompt)
		if err != nil {
			return "", false, err
		}
		if strings.EqualFold(line, "b") {
			return "", false, nil
		}
		if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(options) {
			return options[n-1], true, nil
		}
		t.printf("choose 1-%d, or b to go back\n", len(options))
	}
}

func (t *terminal) creator(ctx context.Context) error {
	t.printf("\n== Create a hero == (b to go back)\n")

	name, err := t.ask("name")
	if err != nil {
		return err
	}
	if strings.EqualFold(name, "b") {
		_, err = t.svc.Back(ctx)
		return err
	}

	races := make([]string, len(entities.Races))
	for i, r := range entities.Races {
		races[i] = string(r)
	}
	race, ok, err := t.pick("race", races)
	if err != nil || !ok {
		return t.backUnless(ctx, err)
	}

	classes := make([]string, len(entities.Classes))
	for i, c := range entities.Classes {
		classes[i] = string(c)
	}
	class, ok, err := t.pick("class", classes)
	if err != nil || !ok {
		return t.backUnless(ctx, err)
	}

	var scores *entities.AbilityScores
	for scores == nil {
		rolled, err := t.svc.RollAbilityScores(ctx)
		if err != nil {
			return err
		}
		t.printf("  STR %d  DEX %d  CON %d  INT %d  WIS %d  CHA %d\n",
			rolled.Strength, rolled.Dexterity, rolled.Constitution,
			rolled.Intelligence, rolled.Wisdom, rolled.Charisma)

		answer, err := t.ask("keep these scores? (y/n)")
		if err != nil {
			return err
		}
		if strings.EqualFold(answer, "y") {
			scores = rolled
		}
	}

	t.printf("The storyteller ponders %s's past...\n", name)
	out, err := t.svc.CreateCharacter(ctx, &game.CreateCharacterInput{
		Name:           name,
		Race:           entities.Race(race),
		CharacterClass: entities.Class(class),
		AbilityScores:  scores,
	})
	if err != nil {
		return err
	}
	t.printf("%s joins the roster.\n%s\n", out.Character.Name, out.Character.Backstory)
	return nil
}

func (t *terminal) backUnless(ctx context.Context, err error) error {
	if err != nil {
		return err
	}
	_, err = t.svc.Back(ctx)
	return err
}

func (t *terminal) listRoster(view *game.View) {
	for i, c := range view.Roster {
		t.printf("  %d) %s the %s %s (Level %d)\n", i+1, c.Name, c.Race, c.CharacterClass, c.Level)
	}
}

func (t *terminal) partySelection(ctx context.Context, view *game.View) error {
	t.printf("\n== Choose your party == numbers separated by spaces, c to create, b to go back\n")
	t.listRoster(view)

	line, err := t.ask("party")
	if err != nil {
		return err
	}
	switch strings.ToLower(line) {
	case "b":
		_, err = t.svc.Back(ctx)
		return err
	case "c":
		_, err = t.svc.OpenCreator(ctx)
		return err
	}

	var ids []string
	for _, field := range strings.Fields(line) {
		n, err := strconv.Atoi(field)
		if err != nil || n < 1 || n > len(view.Roster) {
			return errors.InvalidArgumentf("%q is not a hero number", field)
		}
		ids = append(ids, view.Roster[n-1].ID)
	}

	t.printf("The storyteller sets the scene...\n")
	_, err = t.svc.StartAdventure(ctx, &game.StartAdventureInput{CharacterIDs: ids})
	return err
}

func (t *terminal) hallOfHeroes(ctx context.Context, view *game.View) error {
	t.printf("\n== Hall of heroes == d N to delete, c to create, b to go back\n")
	t.listRoster(view)

	line, err := t.ask("hall")
	if err != nil {
		return err
	}
	fields := strings.Fields(strings.ToLower(line))
	switch {
	case len(fields) == 0:
		return nil
	case fields[0] == "b":
		_, err = t.svc.Back(ctx)
	case fields[0] == "c":
		_, err = t.svc.OpenCreator(ctx)
	case fields[0] == "d" && len(fields) == 2:
		n, convErr := strconv.Atoi(fields[1])
		if convErr != nil || n < 1 || n > len(view.Roster) {
			return errors.InvalidArgumentf("%q is not a hero number", fields[1])
		}
		_, err = t.svc.DeleteCharacter(ctx, &game.DeleteCharacterInput{CharacterID: view.Roster[n-1].ID})
	}
	return err
}

func (t *terminal) adventure(ctx context.Context, view *game.View) error {
	if view.NarrationError != nil {
		t.printf("\nThe storyteller falters: %s\n", view.NarrationError.Message)
		line, err := t.ask("r to retry, b to go back")
		if err != nil {
			return err
		}
		if strings.EqualFold(line, "b") {
			_, err = t.svc.Back(ctx)
			return err
		}
		_, err = t.svc.RetryNarration(ctx)
		return err
	}
	if view.Story == nil {
		_, err := t.svc.Back(ctx)
		return err
	}

	t.printf("\n%s\n", view.Story.Narration)
	if view.ImageURL != "" {
		t.printf("[%s]\n", view.ImageURL)
	}
	choice, ok, err := t.pick("choice", view.Story.Choices)
	if err != nil || !ok {
		return t.backUnless(ctx, err)
	}

	t.printf("The storyteller continues...\n")
	_, err = t.svc.Choose(ctx, &game.ChooseInput{Choice: choice})
	return err
}

func (t *terminal) combat(ctx context.Context, view *game.View) error {
	if view.PendingVictory {
		t.printf("\n%s is defeated!\n", view.Encounter.Monster.Name)
		t.sleep(t.delay)
		_, err := t.svc.ResumeAfterVictory(ctx)
		return err
	}
	if view.NarrationError != nil {
		t.printf("\nThe storyteller falters: %s\n", view.NarrationError.Message)
		if _, err := t.ask("press enter to retry"); err != nil {
			return err
		}
		_, err := t.svc.RetryNarration(ctx)
		return err
	}

	if view.Encounter == nil || view.Turn == nil {
		_, err := t.svc.Back(ctx)
		return err
	}

	m := view.Encounter.Monster
	turn := view.Turn
	t.printf("\n%s\n-- %s (HP %d/%d) --\n", view.Encounter.Narration, m.Name, m.HP, m.MaxHP)
	for _, c := range view.Party {
		t.printf("  %s HP %d/%d\n", c.Name, c.HP, c.MaxHP)
	}

	switch turn.Step {
	case combat.StepAwaitingRoll:
		line, err := t.ask(fmt.Sprintf("%s, enter to roll a d20 (or type your roll)", turn.ActorName))
		if err != nil {
			return err
		}
		input := &game.CombatRollInput{}
		if line != "" {
			v, convErr := strconv.Atoi(line)
			if convErr != nil {
				return errors.InvalidArgumentf("%q is not a number", line)
			}
			input.Value = &v
		}
		view, err = t.svc.CombatRoll(ctx, input)
		if err != nil {
			return err
		}
		t.printf("%s rolls %d (%+d)\n", turn.ActorName, view.Turn.Roll, view.Turn.Modifier)
		return nil

	case combat.StepRolled:
		line, err := t.ask("a to attack, d to defend, enter to re-roll")
		if err != nil {
			return err
		}
		var action combat.Action
		switch strings.ToLower(line) {
		case "a":
			action = combat.ActionAttack
		case "d":
			action = combat.ActionDefend
		default:
			_, err = t.svc.CombatRoll(ctx, &game.CombatRollInput{})
			return err
		}
		_, err = t.svc.CommitAction(ctx, &game.CommitActionInput{Action: action})
		return err

	default:
		if _, err := t.ask("enter for the next turn"); err != nil {
			return err
		}
		_, err := t.svc.NextTurn(ctx)
		return err
	}
}

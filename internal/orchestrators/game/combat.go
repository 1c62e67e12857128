package game

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-dm/internal/clients/narrator"
	"github.com/KirkDiggler/rpg-dm/internal/entities"
	"github.com/KirkDiggler/rpg-dm/internal/errors"
	"github.com/KirkDiggler/rpg-dm/internal/orchestrators/combat"
	"github.com/KirkDiggler/rpg-dm/internal/rules"
)

func (s *session) requireTurn(op string) error {
	if err := s.requirePhase(op, entities.PhaseCombat); err != nil {
		return err
	}
	if err := s.requireIdle(op); err != nil {
		return err
	}
	if s.controller == nil || s.encounter == nil {
		return errors.FailedPreconditionf("%s is not available, the fight is over", op)
	}
	return nil
}

// CombatRoll records the acting hero's d20, drawing it when no value is given
func (s *session) CombatRoll(ctx context.Context, input *CombatRollInput) (*View, error) {
	s.mu.Lock()
	defer s.unlock(ctx)

	if err := s.requireTurn("roll"); err != nil {
		return nil, err
	}

	if input == nil || input.Value == nil {
		if _, err := s.controller.RollD20(s.roller); err != nil {
			return nil, err
		}
	} else if err := s.controller.Roll(*input.Value); err != nil {
		return nil, err
	}
	return s.viewLocked(), nil
}

// CommitAction locks in the action and narrates the turn with the roll and
// the actor's class modifier
func (s *session) CommitAction(ctx context.Context, input *CommitActionInput) (*View, error) {
	s.mu.Lock()
	defer s.unlock(ctx)

	if err := s.requireTurn("commit action"); err != nil {
		return nil, err
	}
	if input == nil {
		return nil, errors.InvalidArgument("action is required")
	}

	roll, err := s.controller.Commit(input.Action)
	if err != nil {
		return nil, err
	}

	actor := s.party[s.controller.Turn()]
	return s.narrate(ctx, &narrationRequest{
		operation: narrator.OperationCombatTurn,
		turn: &narrator.CombatActionInput{
			Party:    entities.CloneCharacters(s.party),
			Actor:    actor,
			Monster:  s.encounter.Monster,
			Action:   string(input.Action),
			Roll:     roll,
			Modifier: rules.CombatModifier(&actor),
		},
	})
}

func (s *session) applyTurn(ctx context.Context, in *narrator.CombatActionInput, res *narrator.CombatActionResult) error {
	if s.controller == nil || s.encounter == nil {
		return errors.FailedPrecondition("the fight ended before the turn was narrated")
	}

	applied, err := combat.ApplyOutcome(s.roller, s.party, s.encounter, res)
	if err != nil {
		return errors.Wrap(err, "failed to apply combat outcome")
	}
	if err := s.controller.Resolve(); err != nil {
		return err
	}

	s.party = applied.Party
	s.encounter = applied.Encounter

	actor := in.Actor
	monster := applied.Encounter.Monster
	s.turnResolved(&actor, &monster, map[string]any{
		KeyTurn:            s.controller.Turn(),
		KeyRoll:            in.Roll,
		KeyAction:          in.Action,
		KeyTargetIndex:     applied.TargetIndex,
		KeyDamageTaken:     applied.DamageTaken,
		KeyMonsterHP:       monster.HP,
		KeyMonsterDefeated: applied.MonsterDefeated,
	})

	if applied.MonsterDefeated {
		s.controller = nil
		s.pendingVictory = true
		slog.InfoContext(ctx, "monster defeated", "monster", monster.Name)
	}
	return nil
}

// NextTurn passes the turn to the next hero once the current one resolved
func (s *session) NextTurn(ctx context.Context) (*View, error) {
	s.mu.Lock()
	defer s.unlock(ctx)

	if err := s.requireTurn("next turn"); err != nil {
		return nil, err
	}
	if err := s.controller.Advance(); err != nil {
		return nil, err
	}
	return s.viewLocked(), nil
}

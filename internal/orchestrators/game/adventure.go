package game

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-dm/internal/clients/narrator"
	"github.com/KirkDiggler/rpg-dm/internal/entities"
	"github.com/KirkDiggler/rpg-dm/internal/errors"
	"github.com/KirkDiggler/rpg-dm/internal/orchestrators/combat"
)

// narrationRequest is a storyteller call that can be re-issued after failure
type narrationRequest struct {
	operation string
	previous  string
	choice    string
	turn      *narrator.CombatActionInput
}

type narrationResult struct {
	segment *entities.StorySegment
	outcome narrator.Outcome
	turn    *narrator.CombatActionResult
}

func (s *session) call(ctx context.Context, req *narrationRequest, party []entities.Character) (*narrationResult, error) {
	switch req.operation {
	case narrator.OperationOpeningScene:
		seg, err := s.narrator.GetOpeningScene(ctx, party)
		return &narrationResult{segment: seg}, err
	case narrator.OperationNextSegment:
		out, err := s.narrator.GetNextStorySegment(ctx, party, req.previous, req.choice)
		return &narrationResult{outcome: out}, err
	case narrator.OperationCombatTurn:
		res, err := s.narrator.GetCombatActionNarration(ctx, req.turn)
		return &narrationResult{turn: res}, err
	default:
		return nil, errors.Internalf("unknown narration operation %q", req.operation)
	}
}

// narrate issues req with the lock released and applies the answer under the
// lock. The caller holds the lock and still holds it on return.
func (s *session) narrate(ctx context.Context, req *narrationRequest) (*View, error) {
	epoch := s.epoch
	party := entities.CloneCharacters(s.party)
	s.isLoading = true
	s.narrationErr = nil
	s.retry = nil

	evts := s.pending
	s.pending = nil
	s.mu.Unlock()
	s.publish(ctx, evts)

	result, err := s.call(ctx, req, party)

	s.mu.Lock()
	if epoch != s.epoch {
		slog.InfoContext(ctx, "discarding stale narration",
			"operation", req.operation,
			"phase", s.phase.String())
		return nil, errors.FailedPrecondition("the game moved on before the storyteller answered").
			WithMeta("operation", req.operation)
	}
	s.isLoading = false

	if err != nil {
		slog.WarnContext(ctx, "narration failed",
			"operation", req.operation,
			"error", err)
		s.narrationErr = &NarrationError{
			Operation: req.operation,
			Message:   errors.GetMessage(err),
		}
		s.retry = req
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "the storyteller could not continue").
			WithMeta("operation", req.operation)
	}

	if err := s.apply(ctx, req, result); err != nil {
		return nil, err
	}
	s.commit(ctx)
	return s.viewLocked(), nil
}

func (s *session) apply(ctx context.Context, req *narrationRequest, result *narrationResult) error {
	switch req.operation {
	case narrator.OperationOpeningScene:
		s.story = result.segment
		return nil
	case narrator.OperationNextSegment:
		return s.applyOutcome(ctx, result.outcome)
	case narrator.OperationCombatTurn:
		return s.applyTurn(ctx, req.turn, result.turn)
	}
	return errors.Internalf("unknown narration operation %q", req.operation)
}

func (s *session) applyOutcome(ctx context.Context, outcome narrator.Outcome) error {
	switch out := outcome.(type) {
	case narrator.StoryContinuation:
		s.story = out.Segment
		s.encounter = nil
		s.setPhase(entities.PhaseAdventure)
	case narrator.CombatStart:
		ctrl, err := combat.NewController(len(s.party))
		if err != nil {
			return errors.Wrap(err, "failed to start combat")
		}
		s.encounter = out.Encounter
		s.controller = ctrl
		s.pendingVictory = false
		s.setPhase(entities.PhaseCombat)
		slog.InfoContext(ctx, "combat started",
			"monster", out.Encounter.Monster.Name,
			"monster_hp", out.Encounter.Monster.HP)
	default:
		return errors.Internalf("unexpected story outcome %T", outcome)
	}
	return nil
}

// Choose continues the story with one of the offered choices
func (s *session) Choose(ctx context.Context, input *ChooseInput) (*View, error) {
	s.mu.Lock()
	defer s.unlock(ctx)

	if err := s.requirePhase("choose", entities.PhaseAdventure); err != nil {
		return nil, err
	}
	if err := s.requireIdle("choose"); err != nil {
		return nil, err
	}
	if s.story == nil {
		return nil, errors.FailedPrecondition("the story has not begun yet")
	}
	if input == nil || !containsChoice(s.story.Choices, input.Choice) {
		return nil, errors.InvalidArgument("choose one of the offered paths").
			WithMeta("choices", append([]string(nil), s.story.Choices...))
	}

	return s.narrate(ctx, &narrationRequest{
		operation: narrator.OperationNextSegment,
		previous:  s.story.Narration,
		choice:    input.Choice,
	})
}

func containsChoice(choices []string, choice string) bool {
	for _, c := range choices {
		if c == choice {
			return true
		}
	}
	return false
}

// RetryNarration re-issues the last failed storyteller request
func (s *session) RetryNarration(ctx context.Context) (*View, error) {
	s.mu.Lock()
	defer s.unlock(ctx)

	if err := s.requirePhase("retry", entities.PhaseAdventure, entities.PhaseCombat); err != nil {
		return nil, err
	}
	if err := s.requireIdle("retry"); err != nil {
		return nil, err
	}
	if s.retry == nil {
		return nil, errors.FailedPrecondition("there is nothing to retry")
	}

	slog.InfoContext(ctx, "retrying narration", "operation", s.retry.operation)
	return s.narrate(ctx, s.retry)
}

// ResumeAfterVictory leaves a won combat and asks what happens next
func (s *session) ResumeAfterVictory(ctx context.Context) (*View, error) {
	s.mu.Lock()
	defer s.unlock(ctx)

	if err := s.requirePhase("resume after victory", entities.PhaseCombat); err != nil {
		return nil, err
	}
	if !s.pendingVictory {
		return nil, errors.FailedPrecondition("the monster still stands")
	}

	s.pendingVictory = false
	s.encounter = nil
	s.controller = nil
	s.setPhase(entities.PhaseAdventure)
	s.commit(ctx)

	if s.story == nil {
		return s.narrate(ctx, &narrationRequest{operation: narrator.OperationOpeningScene})
	}
	return s.narrate(ctx, &narrationRequest{
		operation: narrator.OperationNextSegment,
		previous:  s.story.Narration,
		choice:    VictoryChoice,
	})
}

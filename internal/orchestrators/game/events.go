package game

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-dm/internal/entities"
)

// Event types published on the session bus
const (
	EventPhaseChanged       = "game.phase_changed"
	EventCombatTurnResolved = "game.combat_turn_resolved"
)

// Event context keys
const (
	KeyFromPhase       = "from"
	KeyToPhase         = "to"
	KeyTurn            = "turn"
	KeyRoll            = "roll"
	KeyAction          = "action"
	KeyTargetIndex     = "target_index"
	KeyDamageTaken     = "damage_taken"
	KeyMonsterHP       = "monster_hp"
	KeyMonsterDefeated = "monster_defeated"
)

// EntityTypeSession is the toolkit entity type of a game session
const EntityTypeSession = "game_session"

type sessionEntity struct {
	id string
}

func (e *sessionEntity) GetID() string   { return e.id }
func (e *sessionEntity) GetType() string { return EntityTypeSession }

func (s *session) phaseChanged(from, to entities.Phase) {
	if from == to {
		return
	}
	evt := events.NewGameEvent(EventPhaseChanged, s.entity, nil)
	evt.Context().Set(KeyFromPhase, from.String())
	evt.Context().Set(KeyToPhase, to.String())
	s.pending = append(s.pending, evt)
}

func (s *session) turnResolved(actor core.Entity, monster core.Entity, data map[string]any) {
	evt := events.NewGameEvent(EventCombatTurnResolved, actor, monster)
	for k, v := range data {
		evt.Context().Set(k, v)
	}
	s.pending = append(s.pending, evt)
}

// publish delivers queued events outside the session lock, so handlers may
// read the session
func (s *session) publish(ctx context.Context, evts []events.Event) {
	for _, evt := range evts {
		if err := s.bus.Publish(ctx, evt); err != nil {
			slog.WarnContext(ctx, "failed to publish game event", "type", evt.Type(), "error", err)
		}
	}
}

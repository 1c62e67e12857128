// Package combat holds the turn controller nested inside the COMBAT phase and
// the rules for applying a narrated turn outcome to the party and monster.
package combat

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-dm/internal/errors"
	"github.com/KirkDiggler/rpg-dm/internal/rules"
)

// Step is the position of the current turn
type Step string

// Turn steps
const (
	StepAwaitingRoll    Step = "awaiting-roll"
	StepRolled          Step = "rolled"
	StepActionCommitted Step = "action-committed"
)

// Action is what the acting hero does this turn
type Action string

// Combat actions
const (
	ActionAttack Action = "Attack"
	ActionDefend Action = "Defend"
)

// Actions lists the available actions
var Actions = []Action{ActionAttack, ActionDefend}

// ParseAction validates an action name
func ParseAction(name string) (Action, error) {
	for _, a := range Actions {
		if string(a) == name {
			return a, nil
		}
	}
	return "", errors.InvalidArgumentf("unknown action %q, expected Attack or Defend", name)
}

// TurnView is an immutable snapshot of the controller
type TurnView struct {
	Step     Step   `json:"step"`
	Turn     int    `json:"turn"`
	Roll     int    `json:"roll,omitempty"`
	Action   Action `json:"action,omitempty"`
	Resolved bool   `json:"resolved"`
}

// Controller is the turn sub-state machine. It tracks whose turn it is, the
// roll, and whether an action has been committed. A committed action stays
// unresolved until its narrated outcome is applied.
type Controller struct {
	partySize int
	turn      int
	step      Step
	roll      int
	action    Action
	resolved  bool
}

// NewController creates a controller awaiting the roll of party member 0
func NewController(partySize int) (*Controller, error) {
	if partySize <= 0 {
		return nil, errors.InvalidArgument("combat needs at least one hero")
	}
	return &Controller{
		partySize: partySize,
		step:      StepAwaitingRoll,
	}, nil
}

// View returns the current turn state
func (c *Controller) View() TurnView {
	return TurnView{
		Step:     c.step,
		Turn:     c.turn,
		Roll:     c.roll,
		Action:   c.action,
		Resolved: c.resolved,
	}
}

// Turn returns the party index of the acting hero
func (c *Controller) Turn() int {
	return c.turn
}

// Roll records the d20 result of the acting hero. Rolling again before
// committing replaces the roll.
func (c *Controller) Roll(value int) error {
	if c.step == StepActionCommitted {
		return errors.FailedPrecondition("an action was already committed this turn")
	}
	if !rules.ValidRoll(value) {
		return errors.InvalidArgumentf("roll must be between 1 and 20, got %d", value)
	}

	c.roll = value
	c.step = StepRolled
	return nil
}

// RollD20 draws the roll from a die
func (c *Controller) RollD20(roller dice.Roller) (int, error) {
	if c.step == StepActionCommitted {
		return 0, errors.FailedPrecondition("an action was already committed this turn")
	}

	value, err := rules.RollD20(roller)
	if err != nil {
		return 0, err
	}
	return value, c.Roll(value)
}

// Commit locks in the action for the rolled turn and returns the roll
func (c *Controller) Commit(action Action) (int, error) {
	if _, err := ParseAction(string(action)); err != nil {
		return 0, err
	}
	switch c.step {
	case StepAwaitingRoll:
		return 0, errors.InvalidArgument("roll the die before choosing an action")
	case StepActionCommitted:
		return 0, errors.FailedPrecondition("an action was already committed this turn")
	}

	c.action = action
	c.step = StepActionCommitted
	c.resolved = false
	return c.roll, nil
}

// Resolve marks the committed action as narrated
func (c *Controller) Resolve() error {
	if c.step != StepActionCommitted {
		return errors.FailedPrecondition("no committed action to resolve")
	}
	c.resolved = true
	return nil
}

// Advance passes the turn to the next hero in round-robin order
func (c *Controller) Advance() error {
	if c.step != StepActionCommitted || !c.resolved {
		return errors.FailedPrecondition("the current turn has not been resolved")
	}

	c.turn = (c.turn + 1) % c.partySize
	c.step = StepAwaitingRoll
	c.roll = 0
	c.action = ""
	c.resolved = false
	return nil
}

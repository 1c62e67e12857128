package combat_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-dm/internal/errors"
	"github.com/KirkDiggler/rpg-dm/internal/orchestrators/combat"
	"github.com/KirkDiggler/rpg-dm/internal/testutils"
)

type ControllerTestSuite struct {
	suite.Suite
	controller *combat.Controller
}

func (s *ControllerTestSuite) SetupTest() {
	c, err := combat.NewController(3)
	s.Require().NoError(err)
	s.controller = c
}

func (s *ControllerTestSuite) TestInitialState() {
	view := s.controller.View()
	s.Equal(combat.StepAwaitingRoll, view.Step)
	s.Equal(0, view.Turn)
	s.Zero(view.Roll)
	s.Empty(view.Action)
}

func (s *ControllerTestSuite) TestFullTurn() {
	s.Require().NoError(s.controller.Roll(14))
	s.Equal(combat.StepRolled, s.controller.View().Step)

	roll, err := s.controller.Commit(combat.ActionAttack)
	s.Require().NoError(err)
	s.Equal(14, roll)
	s.Equal(combat.StepActionCommitted, s.controller.View().Step)

	s.Require().NoError(s.controller.Resolve())
	s.Require().NoError(s.controller.Advance())

	view := s.controller.View()
	s.Equal(combat.StepAwaitingRoll, view.Step)
	s.Equal(1, view.Turn)
	s.Zero(view.Roll)
	s.Empty(view.Action)
	s.False(view.Resolved)
}

func (s *ControllerTestSuite) TestRoundRobin() {
	var turns []int
	for i := 0; i < 7; i++ {
		turns = append(turns, s.controller.Turn())
		s.Require().NoError(s.controller.Roll(10))
		_, err := s.controller.Commit(combat.ActionDefend)
		s.Require().NoError(err)
		s.Require().NoError(s.controller.Resolve())
		s.Require().NoError(s.controller.Advance())
	}
	s.Equal([]int{0, 1, 2, 0, 1, 2, 0}, turns)
}

func (s *ControllerTestSuite) TestCommitWithoutRoll() {
	_, err := s.controller.Commit(combat.ActionAttack)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal(combat.StepAwaitingRoll, s.controller.View().Step)
}

func (s *ControllerTestSuite) TestUnknownAction() {
	s.Require().NoError(s.controller.Roll(10))

	_, err := s.controller.Commit(combat.Action("Flee"))
	s.True(errors.IsInvalidArgument(err))
	s.Equal(combat.StepRolled, s.controller.View().Step)
}

func (s *ControllerTestSuite) TestRollOutOfRange() {
	for _, v := range []int{0, 21, -3} {
		err := s.controller.Roll(v)
		s.True(errors.IsInvalidArgument(err), "roll %d", v)
	}
	s.Equal(combat.StepAwaitingRoll, s.controller.View().Step)
}

func (s *ControllerTestSuite) TestRerollBeforeCommit() {
	s.Require().NoError(s.controller.Roll(3))
	s.Require().NoError(s.controller.Roll(17))
	s.Equal(17, s.controller.View().Roll)
}

func (s *ControllerTestSuite) TestNoRollAfterCommit() {
	s.Require().NoError(s.controller.Roll(3))
	_, err := s.controller.Commit(combat.ActionAttack)
	s.Require().NoError(err)

	s.True(errors.IsFailedPrecondition(s.controller.Roll(12)))
	_, err = s.controller.Commit(combat.ActionAttack)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *ControllerTestSuite) TestAdvanceRequiresResolution() {
	s.True(errors.IsFailedPrecondition(s.controller.Advance()))

	s.Require().NoError(s.controller.Roll(3))
	_, err := s.controller.Commit(combat.ActionAttack)
	s.Require().NoError(err)
	s.True(errors.IsFailedPrecondition(s.controller.Advance()))
}

func (s *ControllerTestSuite) TestRollD20() {
	value, err := s.controller.RollD20(testutils.NewScriptedRoller(20))
	s.Require().NoError(err)
	s.Equal(20, value)
	s.Equal(20, s.controller.View().Roll)
}

func (s *ControllerTestSuite) TestParseAction() {
	a, err := combat.ParseAction("Defend")
	s.Require().NoError(err)
	s.Equal(combat.ActionDefend, a)

	_, err = combat.ParseAction("attack")
	s.True(errors.IsInvalidArgument(err))
}

func TestControllerTestSuite(t *testing.T) {
	suite.Run(t, new(ControllerTestSuite))
}

func TestNewController_EmptyParty(t *testing.T) {
	_, err := combat.NewController(0)
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

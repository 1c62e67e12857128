package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-dm/internal/entities"
	"github.com/KirkDiggler/rpg-dm/internal/errors"
	v1 "github.com/KirkDiggler/rpg-dm/internal/handlers/game/v1"
	"github.com/KirkDiggler/rpg-dm/internal/orchestrators/combat"
	"github.com/KirkDiggler/rpg-dm/internal/orchestrators/game"
	gamemock "github.com/KirkDiggler/rpg-dm/internal/orchestrators/game/mock"
	"github.com/KirkDiggler/rpg-dm/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-dm/internal/testutils"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *gamemock.MockService
	clock   *clock.Fake
	router  *gin.Engine
}

func (s *HandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = gamemock.NewMockService(s.ctrl)
	s.clock = clock.NewFake(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	h, err := v1.NewHandler(&v1.HandlerConfig{
		Service:      s.service,
		Clock:        s.clock,
		VictoryDelay: game.VictoryDelay,
	})
	s.Require().NoError(err)

	s.router = gin.New()
	h.RegisterRoutes(s.router.Group("/api/v1"))
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) decodeError(rec *httptest.ResponseRecorder) v1.ErrorResponse {
	var body v1.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (s *HandlerTestSuite) TestNewHandler_Validation() {
	_, err := v1.NewHandler(&v1.HandlerConfig{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestGetState() {
	s.service.EXPECT().State(gomock.Any()).Return(&game.View{
		Phase:  entities.PhaseStartMenu,
		Roster: []entities.Character{testutils.CreateTestCharacter("c1", "Arin", entities.ClassRogue)},
	})

	rec := s.do(http.MethodGet, "/api/v1/state", "")
	s.Equal(http.StatusOK, rec.Code)

	var body map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("START_MENU", body["phase"])
	s.Len(body["roster"], 1)
}

func (s *HandlerTestSuite) TestErrorStatusMapping() {
	testCases := []struct {
		name   string
		err    error
		status int
		code   errors.Code
	}{
		{name: "wrong phase", err: errors.FailedPrecondition("not now"), status: http.StatusConflict, code: errors.CodeFailedPrecondition},
		{name: "validation", err: errors.InvalidArgument("bad"), status: http.StatusBadRequest, code: errors.CodeInvalidArgument},
		{name: "storyteller down", err: errors.Unavailable("silent").WithMeta("operation", "next_segment"), status: http.StatusServiceUnavailable, code: errors.CodeUnavailable},
		{name: "unknown", err: context.DeadlineExceeded, status: http.StatusInternalServerError, code: errors.CodeInternal},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.service.EXPECT().Continue(gomock.Any()).Return(nil, tc.err)

			rec := s.do(http.MethodPost, "/api/v1/menu/continue", "")
			s.Equal(tc.status, rec.Code)
			s.Equal(tc.code, s.decodeError(rec).Code)
		})
	}
}

func (s *HandlerTestSuite) TestErrorMeta() {
	s.service.EXPECT().Choose(gomock.Any(), &game.ChooseInput{Choice: "Left"}).
		Return(nil, errors.Unavailable("the storyteller could not continue").WithMeta("operation", "next_segment"))

	rec := s.do(http.MethodPost, "/api/v1/adventure/choose", `{"choice":"Left"}`)
	s.Equal(http.StatusServiceUnavailable, rec.Code)

	body := s.decodeError(rec)
	s.Equal("the storyteller could not continue", body.Message)
	s.Equal("next_segment", body.Meta["operation"])
}

func (s *HandlerTestSuite) TestCreateCharacter() {
	scores := testutils.AverageScores()
	arin := testutils.CreateTestCharacter("hero_1", "Arin", entities.ClassRogue)

	s.service.EXPECT().
		CreateCharacter(gomock.Any(), &game.CreateCharacterInput{
			Name:           "Arin",
			Race:           entities.RaceElf,
			CharacterClass: entities.ClassRogue,
			AbilityScores:  &scores,
		}).
		Return(&game.CreateCharacterOutput{
			Character: arin,
			View:      &game.View{Phase: entities.PhasePartySelection},
		}, nil)

	body := `{"name":"Arin","race":"Elf","characterClass":"Rogue","abilityScores":{"strength":10,"dexterity":10,"constitution":10,"intelligence":10,"wisdom":10,"charisma":10}}`
	rec := s.do(http.MethodPost, "/api/v1/characters", body)
	s.Require().Equal(http.StatusCreated, rec.Code)

	var resp v1.CreateCharacterResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(arin, resp.Character)
	s.Equal(entities.PhasePartySelection, resp.State.Phase)
}

func (s *HandlerTestSuite) TestCreateCharacter_MalformedBody() {
	rec := s.do(http.MethodPost, "/api/v1/characters", `{"name":`)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(errors.CodeInvalidArgument, s.decodeError(rec).Code)
}

func (s *HandlerTestSuite) TestDeleteCharacter() {
	s.service.EXPECT().
		DeleteCharacter(gomock.Any(), &game.DeleteCharacterInput{CharacterID: "c1"}).
		Return(&game.View{Phase: entities.PhaseHallOfHeroes}, nil)

	rec := s.do(http.MethodDelete, "/api/v1/characters/c1", "")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *HandlerTestSuite) TestStartAdventure() {
	s.service.EXPECT().
		StartAdventure(gomock.Any(), &game.StartAdventureInput{CharacterIDs: []string{"c1", "c2"}}).
		Return(&game.View{Phase: entities.PhaseAdventure}, nil)

	rec := s.do(http.MethodPost, "/api/v1/party/start", `{"characterIds":["c1","c2"]}`)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"phase":"ADVENTURE"`)
}

func (s *HandlerTestSuite) TestCombatRoll() {
	s.Run("server side draw", func() {
		s.service.EXPECT().CombatRoll(gomock.Any(), &game.CombatRollInput{}).
			Return(&game.View{Phase: entities.PhaseCombat}, nil)

		rec := s.do(http.MethodPost, "/api/v1/combat/roll", "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("client roll", func() {
		twenty := 20
		s.service.EXPECT().CombatRoll(gomock.Any(), &game.CombatRollInput{Value: &twenty}).
			Return(&game.View{Phase: entities.PhaseCombat}, nil)

		rec := s.do(http.MethodPost, "/api/v1/combat/roll", `{"value":20}`)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("chunked empty body draws server side", func() {
		s.service.EXPECT().CombatRoll(gomock.Any(), &game.CombatRollInput{}).
			Return(&game.View{Phase: entities.PhaseCombat}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/combat/roll", io.NopCloser(strings.NewReader("")))
		req.ContentLength = -1
		req.TransferEncoding = []string{"chunked"}
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("malformed body", func() {
		rec := s.do(http.MethodPost, "/api/v1/combat/roll", `{"value":`)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *HandlerTestSuite) TestCommitAction_UnknownAction() {
	rec := s.do(http.MethodPost, "/api/v1/combat/action", `{"action":"Flee"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestVictoryResumesAfterDelay() {
	s.service.EXPECT().
		CommitAction(gomock.Any(), &game.CommitActionInput{Action: combat.ActionAttack}).
		Return(&game.View{Phase: entities.PhaseCombat, PendingVictory: true}, nil)

	rec := s.do(http.MethodPost, "/api/v1/combat/action", `{"action":"Attack"}`)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Equal(1, s.clock.Pending())

	s.clock.Advance(time.Second)
	s.Equal(1, s.clock.Pending(), "resume waits for the full delay")

	s.service.EXPECT().ResumeAfterVictory(gomock.Any()).
		Return(&game.View{Phase: entities.PhaseAdventure}, nil)
	s.clock.Advance(time.Second)
	s.Equal(0, s.clock.Pending())
}

func (s *HandlerTestSuite) TestBackCancelsVictory() {
	s.service.EXPECT().
		CommitAction(gomock.Any(), gomock.Any()).
		Return(&game.View{Phase: entities.PhaseCombat, PendingVictory: true}, nil)
	s.service.EXPECT().Back(gomock.Any()).
		Return(&game.View{Phase: entities.PhaseStartMenu}, nil)

	s.do(http.MethodPost, "/api/v1/combat/action", `{"action":"Defend"}`)
	s.Equal(1, s.clock.Pending())

	rec := s.do(http.MethodPost, "/api/v1/back", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(0, s.clock.Pending())

	s.clock.Advance(game.VictoryDelay)
}

func (s *HandlerTestSuite) TestEventStream() {
	bus := events.NewBus()
	s.service.EXPECT().EventBus().Return(bus).AnyTimes()

	srv := httptest.NewServer(s.router)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/events"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	s.Require().NoError(err)
	defer conn.Close()

	// the subscription lands shortly after the handshake
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		ticker := time.NewTicker(20 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				evt := events.NewGameEvent(game.EventPhaseChanged, nil, nil)
				evt.Context().Set(game.KeyFromPhase, "START_MENU")
				evt.Context().Set(game.KeyToPhase, "HALL_OF_HEROES")
				_ = bus.Publish(context.Background(), evt)
			}
		}
	}()

	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))
	var msg v1.EventMessage
	s.Require().NoError(conn.ReadJSON(&msg))

	s.Equal(game.EventPhaseChanged, msg.Type)
	s.Equal("START_MENU", msg.Data[game.KeyFromPhase])
	s.Equal("HALL_OF_HEROES", msg.Data[game.KeyToPhase])
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

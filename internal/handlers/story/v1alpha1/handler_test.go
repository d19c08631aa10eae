package v1alpha1_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-narrative/internal/engine"
	"github.com/KirkDiggler/rpg-narrative/internal/entities"
	"github.com/KirkDiggler/rpg-narrative/internal/errors"
	v1alpha1 "github.com/KirkDiggler/rpg-narrative/internal/handlers/story/v1alpha1"
	"github.com/KirkDiggler/rpg-narrative/internal/orchestrators/session"
	sessionmock "github.com/KirkDiggler/rpg-narrative/internal/orchestrators/session/mock"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *sessionmock.MockService
	handler     *v1alpha1.Handler
	ctx         context.Context
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = sessionmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{SessionService: s.mockService})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) request(fields map[string]any) *structpb.Struct {
	req, err := structpb.NewStruct(fields)
	s.Require().NoError(err)
	return req
}

func (s *HandlerTestSuite) TestNewHandlerRequiresService() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.True(errors.IsInvalidArgument(err))

	_, err = v1alpha1.NewHandler(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestRegisterHero() {
	s.mockService.EXPECT().
		RegisterHero(s.ctx, &session.RegisterHeroInput{PlayerID: "p1", Name: "иван петров"}).
		Return(&session.RegisterHeroOutput{HeroName: "Иван Петров"}, nil)

	resp, err := s.handler.RegisterHero(s.ctx, s.request(map[string]any{
		v1alpha1.KeyPlayerID: "p1",
		v1alpha1.KeyName:     "иван петров",
	}))

	s.Require().NoError(err)
	s.Equal("Иван Петров", resp.GetFields()[v1alpha1.KeyHeroName].GetStringValue())
}

func (s *HandlerTestSuite) TestRegisterHeroInvalidName() {
	s.mockService.EXPECT().
		RegisterHero(s.ctx, gomock.Any()).
		Return(nil, errors.InvalidHeroName("Иван"))

	_, err := s.handler.RegisterHero(s.ctx, s.request(map[string]any{
		v1alpha1.KeyPlayerID: "p1",
		v1alpha1.KeyName:     "Иван",
	}))

	s.Equal(codes.InvalidArgument, status.Code(err))
	s.Equal(errors.CodeInvalidHeroName, errors.GetCode(errors.FromGRPCError(err)))
}

func (s *HandlerTestSuite) TestRegisterHeroRequiresPlayer() {
	_, err := s.handler.RegisterHero(s.ctx, s.request(map[string]any{v1alpha1.KeyName: "Иван Петров"}))
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestCreateSession() {
	s.mockService.EXPECT().
		CreateSession(s.ctx, &session.CreateSessionInput{PlayerID: "p1", HeroName: "Иван Петров"}).
		Return(&session.CreateSessionOutput{
			SessionID: "session_1",
			Status: &session.Status{
				SessionID:     "session_1",
				PlayerID:      "p1",
				State:         session.StateAtDialogue,
				HeroName:      "Иван Петров",
				LineID:        1,
				LocationID:    1,
				LocationName:  "Холл",
				Directions:    []string{"Вниз"},
				ProtagonistHP: 10,
				ProtagonistXP: 7,
				AntagonistHP:  1,
				Inventory:     []string{},
			},
		}, nil)

	resp, err := s.handler.CreateSession(s.ctx, s.request(map[string]any{
		v1alpha1.KeyPlayerID: "p1",
		v1alpha1.KeyHeroName: "Иван Петров",
	}))
	s.Require().NoError(err)

	s.Equal("session_1", resp.GetFields()[v1alpha1.KeySessionID].GetStringValue())
	st := resp.GetFields()["status"].GetStructValue().AsMap()
	s.Equal("AT_DIALOGUE", st["state"])
	s.Equal("Холл", st["location_name"])
	s.Equal([]any{"Вниз"}, st["directions"])
	s.Equal(float64(10), st["protagonist_hp"])
	s.Equal(float64(7), st["protagonist_xp"])
	s.Equal(float64(1), st["antagonist_hp"])
	s.Equal([]any{}, st["inventory"])
}

func (s *HandlerTestSuite) TestSessionIDRequired() {
	calls := map[string]func(context.Context, *structpb.Struct) (*structpb.Struct, error){
		v1alpha1.MethodGetStatus:      s.handler.GetStatus,
		v1alpha1.MethodAdvance:        s.handler.Advance,
		v1alpha1.MethodChooseOption:   s.handler.ChooseOption,
		v1alpha1.MethodMove:           s.handler.Move,
		v1alpha1.MethodLocationPrompt: s.handler.LocationPrompt,
		v1alpha1.MethodGetInventory:   s.handler.GetInventory,
		v1alpha1.MethodGiveItem:       s.handler.GiveItem,
		v1alpha1.MethodUseItem:        s.handler.UseItem,
		v1alpha1.MethodEndSession:     s.handler.EndSession,
	}

	for name, call := range calls {
		_, err := call(s.ctx, s.request(map[string]any{}))
		s.Equal(codes.InvalidArgument, status.Code(err), name)
	}
}

func (s *HandlerTestSuite) TestAdvanceForkDialogue() {
	s.mockService.EXPECT().
		Advance(s.ctx, &session.AdvanceInput{SessionID: "session_1"}).
		Return(&session.AdvanceOutput{Outcome: &session.Outcome{
			Kind: session.OutcomeDialogue,
			Dialogue: &engine.DialogueView{
				LineID:     3,
				LocationID: 1,
				Text:       "Что делаем?",
				OptionA:    "Осмотреть",
				OptionB:    "Подождать",
				Fork:       true,
			},
		}}, nil)

	resp, err := s.handler.Advance(s.ctx, s.request(map[string]any{v1alpha1.KeySessionID: "session_1"}))
	s.Require().NoError(err)

	out := resp.AsMap()
	s.Equal("dialogue", out["kind"])
	dialogue := out["dialogue"].(map[string]any)
	s.Equal(float64(3), dialogue["line_id"])
	s.Equal(true, dialogue["fork"])
	s.Equal("Осмотреть", dialogue["option_a"])
	s.Equal("Подождать", dialogue["option_b"])
	s.NotContains(out, "location")
}

func (s *HandlerTestSuite) TestAdvanceGameOver() {
	s.mockService.EXPECT().
		Advance(s.ctx, gomock.Any()).
		Return(&session.AdvanceOutput{Outcome: &session.Outcome{
			Kind:    session.OutcomeGameOver,
			Message: entities.ProtagonistDefeatedMessage,
		}}, nil)

	resp, err := s.handler.Advance(s.ctx, s.request(map[string]any{v1alpha1.KeySessionID: "session_1"}))
	s.Require().NoError(err)

	s.Equal("game_over", resp.AsMap()["kind"])
	s.Equal(entities.ProtagonistDefeatedMessage, resp.AsMap()["message"])
}

func (s *HandlerTestSuite) TestAdvanceAfterGameOver() {
	s.mockService.EXPECT().
		Advance(s.ctx, gomock.Any()).
		Return(nil, errors.GameOver("session_1"))

	_, err := s.handler.Advance(s.ctx, s.request(map[string]any{v1alpha1.KeySessionID: "session_1"}))

	s.Equal(codes.FailedPrecondition, status.Code(err))
	s.True(errors.IsGameOver(errors.FromGRPCError(err)))
}

func (s *HandlerTestSuite) TestMove() {
	s.Run("location prompt", func() {
		s.mockService.EXPECT().
			Move(s.ctx, &session.MoveInput{SessionID: "session_1", Direction: "Вниз"}).
			Return(&session.MoveOutput{Outcome: &session.Outcome{
				Kind: session.OutcomeLocation,
				Location: &session.LocationPrompt{
					LocationID: 2,
					Name:       "Подвал",
					Directions: []string{"Наверх"},
				},
			}}, nil)

		resp, err := s.handler.Move(s.ctx, s.request(map[string]any{
			v1alpha1.KeySessionID: "session_1",
			v1alpha1.KeyDirection: "Вниз",
		}))
		s.Require().NoError(err)

		location := resp.AsMap()["location"].(map[string]any)
		s.Equal(float64(2), location["location_id"])
		s.Equal([]any{"Наверх"}, location["directions"])
	})

	s.Run("blocked", func() {
		s.mockService.EXPECT().
			Move(s.ctx, gomock.Any()).
			Return(&session.MoveOutput{Outcome: &session.Outcome{
				Kind:    session.OutcomeMovementBlocked,
				Message: session.MessageCannotProceed,
			}}, nil)

		resp, err := s.handler.Move(s.ctx, s.request(map[string]any{
			v1alpha1.KeySessionID: "session_1",
			v1alpha1.KeyDirection: "Вниз",
		}))
		s.Require().NoError(err)
		s.Equal("movement_blocked", resp.AsMap()["kind"])
		s.Equal(session.MessageCannotProceed, resp.AsMap()["message"])
	})

	s.Run("invalid direction", func() {
		s.mockService.EXPECT().
			Move(s.ctx, gomock.Any()).
			Return(nil, errors.InvalidDirectionf(1, "В космос"))

		_, err := s.handler.Move(s.ctx, s.request(map[string]any{
			v1alpha1.KeySessionID: "session_1",
			v1alpha1.KeyDirection: "В космос",
		}))

		s.Equal(codes.InvalidArgument, status.Code(err))
		s.True(errors.IsInvalidDirection(errors.FromGRPCError(err)))
	})
}

func (s *HandlerTestSuite) TestGiveItem() {
	s.mockService.EXPECT().
		GiveItem(s.ctx, &session.GiveItemInput{SessionID: "session_1", Item: "Укол", Receiver: "Медсестра"}).
		Return(&session.GiveItemOutput{Items: []string{}}, nil)

	resp, err := s.handler.GiveItem(s.ctx, s.request(map[string]any{
		v1alpha1.KeySessionID: "session_1",
		v1alpha1.KeyItem:      "Укол",
		v1alpha1.KeyReceiver:  "Медсестра",
	}))

	s.Require().NoError(err)
	s.Empty(resp.AsMap()["items"])
}

func (s *HandlerTestSuite) TestUseItem() {
	s.mockService.EXPECT().
		UseItem(s.ctx, &session.UseItemInput{SessionID: "session_1", Item: "Укол"}).
		Return(&session.UseItemOutput{Items: []string{}, ProtagonistHP: 9, ProtagonistXP: 9}, nil)

	resp, err := s.handler.UseItem(s.ctx, s.request(map[string]any{
		v1alpha1.KeySessionID: "session_1",
		v1alpha1.KeyItem:      "Укол",
	}))

	s.Require().NoError(err)
	m := resp.AsMap()
	s.Equal([]any{}, m["items"])
	s.Equal(float64(9), m["protagonist_hp"])
	s.Equal(float64(9), m["protagonist_xp"])
}

func (s *HandlerTestSuite) TestUseItemNotHeld() {
	s.mockService.EXPECT().
		UseItem(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("item \"Ключ\" is not in the inventory"))

	_, err := s.handler.UseItem(s.ctx, s.request(map[string]any{
		v1alpha1.KeySessionID: "session_1",
		v1alpha1.KeyItem:      "Ключ",
	}))

	s.Equal(codes.NotFound, status.Code(err))
}

func (s *HandlerTestSuite) TestEndSession() {
	s.mockService.EXPECT().
		EndSession(s.ctx, &session.EndSessionInput{SessionID: "session_1"}).
		Return(&session.EndSessionOutput{ProgressMarker: 7, LocationID: 2}, nil)

	resp, err := s.handler.EndSession(s.ctx, s.request(map[string]any{v1alpha1.KeySessionID: "session_1"}))

	s.Require().NoError(err)
	s.Equal(float64(7), resp.AsMap()["progress_marker"])
	s.Equal(float64(2), resp.AsMap()["location_id"])
}

func (s *HandlerTestSuite) TestEndSessionNotFound() {
	s.mockService.EXPECT().
		EndSession(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("session missing not found"))

	_, err := s.handler.EndSession(s.ctx, s.request(map[string]any{v1alpha1.KeySessionID: "missing"}))

	s.Equal(codes.NotFound, status.Code(err))
}

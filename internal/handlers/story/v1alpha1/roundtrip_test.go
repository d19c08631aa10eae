package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-narrative/internal/content"
	"github.com/KirkDiggler/rpg-narrative/internal/errors"
	v1alpha1 "github.com/KirkDiggler/rpg-narrative/internal/handlers/story/v1alpha1"
	"github.com/KirkDiggler/rpg-narrative/internal/orchestrators/session"
	"github.com/KirkDiggler/rpg-narrative/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-narrative/internal/repositories/progress"
	"github.com/KirkDiggler/rpg-narrative/internal/repositories/story"
)

// RoundTripTestSuite drives the real session service over an in-process
// gRPC connection
type RoundTripTestSuite struct {
	suite.Suite
	ctx    context.Context
	server *grpc.Server
	conn   *grpc.ClientConn
	client v1alpha1.StoryServiceClient
}

func TestRoundTripSuite(t *testing.T) {
	suite.Run(t, new(RoundTripTestSuite))
}

func (s *RoundTripTestSuite) SetupTest() {
	s.ctx = context.Background()

	doc, err := content.Default()
	s.Require().NoError(err)
	storyRepo, err := story.NewInMemory(&story.InMemoryConfig{Story: doc})
	s.Require().NoError(err)

	svc, err := session.NewOrchestrator(&session.Config{
		StoryRepo:    storyRepo,
		ProgressRepo: progress.NewMemory(&progress.MemoryConfig{}),
		IDGenerator:  idgen.NewSequential("session"),
	})
	s.Require().NoError(err)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{SessionService: svc})
	s.Require().NoError(err)

	lis := bufconn.Listen(1024 * 1024)
	s.server = grpc.NewServer()
	v1alpha1.RegisterStoryServiceServer(s.server, handler)
	go func() {
		_ = s.server.Serve(lis) // nolint:errcheck // returns on Stop
	}()

	s.conn, err = grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.client = v1alpha1.NewStoryServiceClient(s.conn)
}

func (s *RoundTripTestSuite) TearDownTest() {
	_ = s.conn.Close() // nolint:errcheck // safe to ignore in cleanup
	s.server.Stop()
}

func (s *RoundTripTestSuite) request(fields map[string]any) *structpb.Struct {
	req, err := structpb.NewStruct(fields)
	s.Require().NoError(err)
	return req
}

func (s *RoundTripTestSuite) TestPlayThroughFirstFork() {
	_, err := s.client.RegisterHero(s.ctx, s.request(map[string]any{
		v1alpha1.KeyPlayerID: "p1",
		v1alpha1.KeyName:     "иван петров",
	}))
	s.Require().NoError(err)

	created, err := s.client.CreateSession(s.ctx, s.request(map[string]any{v1alpha1.KeyPlayerID: "p1"}))
	s.Require().NoError(err)
	sessionID := created.GetFields()[v1alpha1.KeySessionID].GetStringValue()
	s.NotEmpty(sessionID)
	ref := s.request(map[string]any{v1alpha1.KeySessionID: sessionID})

	first, err := s.client.Advance(s.ctx, ref)
	s.Require().NoError(err)
	text := first.AsMap()["dialogue"].(map[string]any)["text"]
	s.Contains(text, "Иван Петров")

	_, err = s.client.Advance(s.ctx, ref)
	s.Require().NoError(err)

	fork, err := s.client.Advance(s.ctx, ref)
	s.Require().NoError(err)
	s.Equal(true, fork.AsMap()["dialogue"].(map[string]any)["fork"])

	blocked, err := s.client.Move(s.ctx, s.request(map[string]any{
		v1alpha1.KeySessionID: sessionID,
		v1alpha1.KeyDirection: "В коридор",
	}))
	s.Require().NoError(err)
	s.Equal("movement_blocked", blocked.AsMap()["kind"])

	chosen, err := s.client.ChooseOption(s.ctx, s.request(map[string]any{
		v1alpha1.KeySessionID: sessionID,
		v1alpha1.KeyOption:    "A",
	}))
	s.Require().NoError(err)
	s.Equal(float64(4), chosen.AsMap()["dialogue"].(map[string]any)["line_id"])

	moved, err := s.client.Move(s.ctx, s.request(map[string]any{
		v1alpha1.KeySessionID: sessionID,
		v1alpha1.KeyDirection: "В коридор",
	}))
	s.Require().NoError(err)
	s.Equal(float64(6), moved.AsMap()["dialogue"].(map[string]any)["line_id"])

	ended, err := s.client.EndSession(s.ctx, ref)
	s.Require().NoError(err)
	s.Equal(float64(7), ended.AsMap()["progress_marker"])

	_, err = s.client.GetStatus(s.ctx, ref)
	s.Equal(codes.NotFound, status.Code(err))
}

func (s *RoundTripTestSuite) TestErrorsKeepDomainCodes() {
	created, err := s.client.CreateSession(s.ctx, s.request(map[string]any{v1alpha1.KeyHeroName: "Анна Смирнова"}))
	s.Require().NoError(err)
	sessionID := created.GetFields()[v1alpha1.KeySessionID].GetStringValue()

	_, err = s.client.ChooseOption(s.ctx, s.request(map[string]any{
		v1alpha1.KeySessionID: sessionID,
		v1alpha1.KeyOption:    "A",
	}))
	s.Equal(codes.InvalidArgument, status.Code(err))

	_, err = s.client.CreateSession(s.ctx, s.request(map[string]any{v1alpha1.KeyHeroName: "Анна"}))
	s.Equal(codes.InvalidArgument, status.Code(err))
	s.True(errors.IsInvalidHeroName(errors.FromGRPCError(err)))
}

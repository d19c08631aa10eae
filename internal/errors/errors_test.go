package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-narrative/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "location not found",
			expected: "NOT_FOUND: location not found",
		},
		{
			name:     "invalid direction error",
			code:     errors.CodeInvalidDirection,
			message:  "no road north",
			expected: "INVALID_DIRECTION: no road north",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("database is locked")
	wrapped := errors.Wrap(baseErr, "failed to load story line")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to load story line", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	baseErr := errors.InvalidDirectionf(3, "north")
	wrapped := errors.Wrap(baseErr, "move failed")

	s.Equal(errors.CodeInvalidDirection, wrapped.Code)
	s.Equal("north", wrapped.Meta["direction"])
	s.True(errors.IsInvalidDirection(wrapped))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	baseErr := errors.NotFound("record missing").WithMeta("line_id", 7)
	wrapped := errors.WrapWithCode(baseErr, errors.CodeInternal, "content is inconsistent")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal(7, wrapped.Meta["line_id"])
	s.Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "should be nil"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeNotFound, "should be nil"))
}

func (s *ErrorsTestSuite) TestDomainConstructors() {
	defeated := errors.CharacterDefeated("protagonist", -2, "game over")
	s.True(errors.IsCharacterDefeated(defeated))
	s.Equal("game over", errors.GetMessage(defeated))
	s.Equal(-2, defeated.Meta["hp"])
	s.Equal("protagonist", defeated.Meta["character"])

	s.True(errors.IsInvalidHeroName(errors.InvalidHeroName("x")))
	s.True(errors.IsGameOver(errors.GameOver("sess_1")))
	s.False(errors.IsGameOver(errors.NotFound("x")))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err1 := errors.NotFound("a")
	err2 := errors.NotFound("b")
	err3 := errors.InvalidArgument("a")

	s.True(err1.Is(err2))
	s.False(err1.Is(err3))
	s.True(errors.Is(errors.Wrap(err1, "wrapped"), err2))
}

func (s *ErrorsTestSuite) TestGetCode() {
	err := errors.NotFound("test")
	wrapped := errors.Wrap(err, "wrapped")

	s.Equal(errors.CodeNotFound, errors.GetCode(err))
	s.Equal(errors.CodeNotFound, errors.GetCode(wrapped))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Equal(errors.CodeOK, errors.GetCode(nil))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	err := errors.NotFound("user friendly message")
	wrapped := errors.Wrap(err, "wrapped message")

	s.Equal("user friendly message", errors.GetMessage(err))
	s.Equal("wrapped message", errors.GetMessage(wrapped))
	s.Equal("standard error", errors.GetMessage(fmt.Errorf("standard error")))
	s.Nil(errors.GetMeta(fmt.Errorf("standard error")))
}

func (s *ErrorsTestSuite) TestGRPCRoundTrip() {
	err := errors.InvalidDirectionf(4, "налево")

	grpcErr := errors.ToGRPCError(err)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Equal(codes.InvalidArgument, st.Code())
	s.Len(st.Details(), 1)

	back := errors.FromGRPCError(grpcErr)
	s.Equal(errors.CodeInvalidDirection, errors.GetCode(back))
	s.Equal("налево", errors.GetMeta(back)["direction"])
	// structpb numbers come back as float64
	s.Equal(float64(4), errors.GetMeta(back)["location_id"])
}

func (s *ErrorsTestSuite) TestFromPlainGRPCError() {
	err := errors.FromGRPCError(status.Error(codes.NotFound, "session not found"))
	s.Equal(errors.CodeNotFound, errors.GetCode(err))
	s.Equal("session not found", errors.GetMessage(err))
}

func (s *ErrorsTestSuite) TestGRPCCodeMapping() {
	testCases := []struct {
		code     errors.Code
		expected codes.Code
	}{
		{errors.CodeNotFound, codes.NotFound},
		{errors.CodeInvalidArgument, codes.InvalidArgument},
		{errors.CodeInvalidHeroName, codes.InvalidArgument},
		{errors.CodeCharacterDefeated, codes.FailedPrecondition},
		{errors.CodeGameOver, codes.FailedPrecondition},
		{errors.CodeInternal, codes.Internal},
		{errors.CodeUnavailable, codes.Unavailable},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, tc.code.GRPCCode())
		})
	}
}

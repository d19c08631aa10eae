package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-narrative/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("lines[3].location_id", "references unknown location 99")
	ve.AddFieldError("connections[0].direction", "is required")

	s.True(ve.HasErrors())
	s.Equal(
		"validation failed: connections[0].direction: is required; lines[3].location_id: references unknown location 99",
		ve.Error(),
	)

	err := ve.ToError()
	s.Equal(errors.CodeInvalidArgument, err.Code)
	s.NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationErrorSurvivesGRPC() {
	err := errors.NewValidationBuilder().RequiredField("name").Build()
	s.Require().Error(err)

	st, ok := status.FromError(errors.ToGRPCError(err))
	s.Require().True(ok)
	s.Len(st.Details(), 1)
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Fieldf("line_id", "must be positive, got %d", -1).
		RequiredField("direction")

	s.True(vb.HasErrors())
	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	s.NoError(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidateHelpers() {
	testCases := []struct {
		name      string
		apply     func(vb *errors.ValidationBuilder)
		shouldErr bool
	}{
		{"required present", func(vb *errors.ValidationBuilder) { errors.ValidateRequired("f", "x", vb) }, false},
		{"required blank", func(vb *errors.ValidationBuilder) { errors.ValidateRequired("f", "  ", vb) }, true},
		{"positive", func(vb *errors.ValidationBuilder) { errors.ValidatePositive("id", 1, vb) }, false},
		{"zero", func(vb *errors.ValidationBuilder) { errors.ValidatePositive("id", 0, vb) }, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			tc.apply(vb)
			if tc.shouldErr {
				s.Error(vb.Build())
			} else {
				s.NoError(vb.Build())
			}
		})
	}
}

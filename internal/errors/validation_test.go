package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-dm/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationErrorIsStable() {
	ve := errors.NewValidationError()
	ve.AddFieldError("race", "must be one of: Human, Elf")
	ve.AddFieldError("name", "is required")

	s.True(ve.HasErrors())
	s.Equal("validation failed: name: is required; race: must be one of: Human, Elf", ve.Error())

	err := ve.ToError()
	s.Equal(errors.CodeInvalidArgument, err.Code)
	s.NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Fieldf("party", "must have between %d and %d heroes", 1, 6).
		RequiredField("class")

	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	s.NoError(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "Arin", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("name", tc.value, vb)
			if tc.shouldErr {
				s.Error(vb.Build())
			} else {
				s.NoError(vb.Build())
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("roll", 21, 1, 20, vb)
	s.Error(vb.Build())

	vb = errors.NewValidationBuilder()
	errors.ValidateRange("roll", 20, 1, 20, vb)
	s.NoError(vb.Build())
}

func (s *ValidationTestSuite) TestValidateEnum() {
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("class", "Bard", []string{"Fighter", "Wizard"}, vb)
	s.Error(vb.Build())

	vb = errors.NewValidationBuilder()
	errors.ValidateEnum("class", "Wizard", []string{"Fighter", "Wizard"}, vb)
	s.NoError(vb.Build())
}

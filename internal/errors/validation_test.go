package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/genesys-dice/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func validationFields(s *ValidationTestSuite, err error) map[string][]string {
	var customErr *errors.Error
	s.Require().True(errors.As(err, &customErr))
	fields, ok := customErr.Meta[errors.MetaValidation].(map[string][]string)
	s.Require().True(ok)
	return fields
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	err := errors.NewValidationBuilder().
		Field("name", "is required").
		Fieldf("bonus.s", "must not be negative, got %d", -1).
		RequiredField("dice").
		InvalidField("bonus.z", "unknown symbol").
		Build()

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal("INVALID_ARGUMENT: validation failed: "+
		"bonus.s: must not be negative, got -1; "+
		"bonus.z: is invalid: unknown symbol; "+
		"dice: is required; "+
		"name: is required", err.Error())
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	s.NoError(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestSameFieldTwice() {
	err := errors.NewValidationBuilder().
		RequiredField("dice").
		Field("dice", "must not be blank").
		Build()

	s.Equal([]string{"is required", "must not be blank"}, validationFields(s, err)["dice"])
	s.Contains(err.Error(), "dice: is required, must not be blank")
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "Climb", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  Climb  ", false},
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
	errors.ValidateRange("GRPCPort", 70000, 1, 65535, vb)
	errors.ValidateRange("characteristic", 3, 1, 6, vb)
	errors.ValidateRange("dice", 0, 1, 100, vb)

	fields := validationFields(s, vb.Build())
	s.Equal([]string{"must be between 1 and 65535"}, fields["GRPCPort"])
	s.Equal([]string{"must be between 1 and 100"}, fields["dice"])
	s.NotContains(fields, "characteristic")
}

func (s *ValidationTestSuite) TestValidateEnum() {
	levels := []string{"debug", "info", "warn", "error"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("LogLevel", "loud", levels, vb)
	errors.ValidateEnum("fallback", "info", levels, vb)

	fields := validationFields(s, vb.Build())
	s.Equal([]string{"must be one of: debug, info, warn, error"}, fields["LogLevel"])
	s.NotContains(fields, "fallback")
}

package validator

import (
	"testing"

	"sahyogjeevan/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_CustomRoleTag(t *testing.T) {
	v := New()

	err := v.Validate(&dto.RegisterRequest{Role: "employer"})
	assert.NoError(t, err)

	err = v.Validate(&dto.RegisterRequest{Role: "superuser"})
	require.Error(t, err)
	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "role", "field name comes from the json tag")
}

func TestValidate_OTPRequest(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&dto.VerifyOTPRequest{Phone: "+919876543210", OTP: "123456"}))

	err := v.Validate(&dto.VerifyOTPRequest{Phone: "+919876543210", OTP: "12ab56"})
	require.Error(t, err)

	err = v.Validate(&dto.VerifyOTPRequest{Phone: "+919876543210", OTP: "1234"})
	require.Error(t, err)
	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "otp")
}

func TestValidate_JobTypeTag(t *testing.T) {
	v := New()

	err := v.Validate(&dto.CreateJobRequest{
		Title:    "Electrician",
		Location: "Mumbai",
		JobType:  "gig",
	})
	require.Error(t, err)
	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "type")
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Errors: map[string]string{"role": "This field is required"}}
	assert.Contains(t, err.Error(), "role")
	assert.Contains(t, err.Error(), "Validation failed")
}

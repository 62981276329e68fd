package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"nome" validate:"required"`
}

func TestValidateSuccess(t *testing.T) {
	v := New()
	err := v.Validate(&sample{Email: "maria@example.com", Password: "secret123", Name: "Maria"})
	assert.NoError(t, err)
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	v := New()
	err := v.Validate(&sample{Email: "not-an-email", Password: "123", Name: ""})
	require.Error(t, err)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))

	assert.True(t, vErr.Field("email"))
	assert.True(t, vErr.Field("password"))
	assert.True(t, vErr.Field("nome"))
	assert.False(t, vErr.Field("Email"))
}

func TestValidationMessages(t *testing.T) {
	v := New()
	err := v.Validate(&sample{Email: "maria@example.com", Password: "123", Name: "Maria"})
	require.Error(t, err)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "must be at least 6 characters", vErr.Errors["password"])
}

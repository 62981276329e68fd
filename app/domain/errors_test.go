package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFailureKindUserMessage(t *testing.T) {
	tests := []struct {
		kind FailureKind
		want string
	}{
		{FailureUserNotFound, "Usuário não encontrado."},
		{FailureWrongCredential, "Senha incorreta."},
		{FailureInvalidEmail, "Email inválido."},
		{FailureEmailInUse, "Email já em uso."},
		{FailureWeakPassword, "Senha deve ter pelo menos 6 caracteres."},
		{FailureRateLimited, "Muitas tentativas. Tente mais tarde."},
		{FailureUnknown, ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.UserMessage())
		})
	}
}

func TestKindOf(t *testing.T) {
	base := NewAuthError(FailureWrongCredential, "login rejected", errors.New("401"))

	assert.Equal(t, FailureWrongCredential, KindOf(base))
	assert.Equal(t, FailureWrongCredential, KindOf(fmt.Errorf("wrapped: %w", base)))
	assert.Equal(t, FailureUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, FailureUnknown, KindOf(nil))
}

func TestAuthErrorUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewAuthError(FailureUnknown, "provider unreachable", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "provider unreachable")
	assert.Contains(t, err.Error(), "connection reset")

	bare := NewAuthError(FailureRateLimited, "slow down", nil)
	assert.Equal(t, "slow down", bare.Error())
}

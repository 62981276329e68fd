package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAuthStateCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from AuthState
		to   AuthState
		want bool
	}{
		{"initializing to unauthenticated", AuthStateInitializing, AuthStateUnauthenticated, true},
		{"initializing to authenticated", AuthStateInitializing, AuthStateAuthenticated, true},
		{"initializing to authenticating", AuthStateInitializing, AuthStateAuthenticating, true},
		{"unauthenticated to authenticating", AuthStateUnauthenticated, AuthStateAuthenticating, true},
		{"unauthenticated to authenticated", AuthStateUnauthenticated, AuthStateAuthenticated, true},
		{"unauthenticated self loop", AuthStateUnauthenticated, AuthStateUnauthenticated, true},
		{"authenticating to authenticated", AuthStateAuthenticating, AuthStateAuthenticated, true},
		{"authenticating to unauthenticated", AuthStateAuthenticating, AuthStateUnauthenticated, true},
		{"authenticating cannot restart", AuthStateAuthenticating, AuthStateAuthenticating, false},
		{"authenticated to unauthenticated", AuthStateAuthenticated, AuthStateUnauthenticated, true},
		{"authenticated refresh", AuthStateAuthenticated, AuthStateAuthenticated, true},
		{"authenticated to authenticating", AuthStateAuthenticated, AuthStateAuthenticating, true},
		{"authenticating cannot go back to initializing", AuthStateAuthenticating, AuthStateInitializing, false},
		{"unknown state", AuthState("bogus"), AuthStateAuthenticated, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransition(tt.to))
		})
	}
}

func TestSessionIsAuthenticated(t *testing.T) {
	ident := &Identity{ID: uuid.New(), Email: "maria@example.com"}

	assert.True(t, Session{State: AuthStateAuthenticated, Identity: ident}.IsAuthenticated())
	assert.False(t, Session{State: AuthStateAuthenticated}.IsAuthenticated())
	assert.False(t, Session{State: AuthStateUnauthenticated, Identity: ident}.IsAuthenticated())
}

func TestSessionLoading(t *testing.T) {
	assert.True(t, Session{State: AuthStateInitializing}.Loading())
	assert.True(t, Session{State: AuthStateAuthenticating}.Loading())
	assert.False(t, Session{State: AuthStateUnauthenticated}.Loading())
	assert.False(t, Session{State: AuthStateAuthenticated}.Loading())
}

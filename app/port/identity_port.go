package port

//go:generate mockgen -source=identity_port.go -destination=../mocks/mock_identity_port.go -package=mocks

import (
	"context"

	"github.com/ihelperdrone/droneops/app/domain"
)

// IdentityProvider wraps the external authentication service. Every call is a
// single round trip; this layer performs no retries.
type IdentityProvider interface {
	// Subscribe registers a change listener. Once the initial session state
	// is known it fires with the current identity (or nil), then on every
	// sign-in/out event. The returned function removes the listener.
	Subscribe(fn func(*domain.Identity)) (unsubscribe func())

	// Current returns the currently authenticated identity, or nil.
	Current() *domain.Identity

	SignIn(ctx context.Context, email, password string) error
	SignUp(ctx context.Context, name, email, password string) error
	SignOut(ctx context.Context) error
}

// CredentialSource exposes the bearer credential to the API access layer.
// The credential's lifecycle is owned by the identity provider adapter and is
// never handed to the shell.
type CredentialSource interface {
	// Credential returns the current bearer token, or "" when absent.
	Credential(ctx context.Context) string
}

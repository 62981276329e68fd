package port

//go:generate mockgen -source=session_port.go -destination=../mocks/mock_session_port.go -package=mocks

import "github.com/ihelperdrone/droneops/app/domain"

// SessionStore persists the serialized domain user profile locally so the
// shell can render before the first identity provider callback resolves.
// The stored record is a best-effort cache and may be stale or absent; it
// never contains the raw credential.
type SessionStore interface {
	Save(profile *domain.User) error
	// Load returns the cached profile, or (nil, nil) when no entry exists.
	Load() (*domain.User, error)
	Clear() error
}

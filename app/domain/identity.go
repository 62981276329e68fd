package domain

import "github.com/google/uuid"

// Identity is the externally managed authenticated-user record, owned by the
// identity provider and read-only to this client.
type Identity struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Verified bool      `json:"verified"`
}

// DisplayName returns the identity's name, falling back to the default
// profile name when the provider carries none.
func (i *Identity) DisplayName() string {
	if i.Name == "" {
		return FallbackUserName
	}
	return i.Name
}

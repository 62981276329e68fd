package domain

import (
	"fmt"
	"net/mail"
	"time"
)

// AccessLevel represents the backend access level of a user profile.
// Values are the literals the domain backend stores.
type AccessLevel string

const (
	AccessLevelOperator AccessLevel = "OPERADOR"
	AccessLevelUser     AccessLevel = "USER"
	AccessLevelAdmin    AccessLevel = "ADMIN"
)

// UserStatus represents the status of a user profile in the backend.
type UserStatus string

const (
	UserStatusActive   UserStatus = "ATIVO"
	UserStatusInactive UserStatus = "INATIVO"
	UserStatusBlocked  UserStatus = "BLOQUEADO"
)

// FallbackUserName is used when the identity provider carries no display name.
const FallbackUserName = "Usuário"

// User is the domain user profile stored by the backend, distinct from the
// identity-provider record. JSON field names follow the backend wire format.
type User struct {
	ID           int64       `json:"idUsuario,omitempty"`
	Name         string      `json:"nome"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"senhaHash,omitempty"`
	AccessLevel  AccessLevel `json:"nivelAcesso"`
	Status       UserStatus  `json:"status"`
	CreatedAt    string      `json:"dataCriacao,omitempty"`
	UpdatedAt    string      `json:"dataAtualizacao,omitempty"`
}

// NewDefaultUser synthesizes the profile created for an identity that has no
// backend record yet. The backend assigns the numeric ID on creation.
func NewDefaultUser(name, email string, level AccessLevel) (*User, error) {
	if name == "" {
		name = FallbackUserName
	}

	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email format: %w", err)
	}
	if err := level.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)

	return &User{
		Name:        name,
		Email:       email,
		AccessLevel: level,
		Status:      UserStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Validate checks the access level against the known backend values.
func (l AccessLevel) Validate() error {
	switch l {
	case AccessLevelOperator, AccessLevelUser, AccessLevelAdmin:
		return nil
	}
	return fmt.Errorf("invalid access level: %s", l)
}

// Validate checks the status against the known backend values.
func (s UserStatus) Validate() error {
	switch s {
	case UserStatusActive, UserStatusInactive, UserStatusBlocked:
		return nil
	}
	return fmt.Errorf("invalid user status: %s", s)
}

// IsActive returns true if the profile status is active.
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

// ChangeAccessLevel changes the profile access level with validation.
func (u *User) ChangeAccessLevel(level AccessLevel) error {
	if err := level.Validate(); err != nil {
		return err
	}
	u.AccessLevel = level
	u.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return nil
}

// ChangeStatus changes the profile status with validation.
func (u *User) ChangeStatus(status UserStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	u.Status = status
	u.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return nil
}

package domain

import "errors"

// FailureKind enumerates the identity provider failure classes surfaced to
// callers. Unrecognized provider errors collapse to FailureUnknown.
type FailureKind string

const (
	FailureUserNotFound    FailureKind = "USER_NOT_FOUND"
	FailureWrongCredential FailureKind = "WRONG_CREDENTIAL"
	FailureInvalidEmail    FailureKind = "INVALID_EMAIL"
	FailureEmailInUse      FailureKind = "EMAIL_IN_USE"
	FailureWeakPassword    FailureKind = "WEAK_PASSWORD"
	FailureRateLimited     FailureKind = "RATE_LIMITED"
	FailureUnknown         FailureKind = "UNKNOWN"
)

// UserMessage maps a failure kind to the user-facing message shown by the
// shell. FailureUnknown returns "" so callers substitute an operation-specific
// fallback.
func (k FailureKind) UserMessage() string {
	switch k {
	case FailureUserNotFound:
		return "Usuário não encontrado."
	case FailureWrongCredential:
		return "Senha incorreta."
	case FailureInvalidEmail:
		return "Email inválido."
	case FailureEmailInUse:
		return "Email já em uso."
	case FailureWeakPassword:
		return "Senha deve ter pelo menos 6 caracteres."
	case FailureRateLimited:
		return "Muitas tentativas. Tente mais tarde."
	}
	return ""
}

// AuthError is an identity provider error normalized into a failure kind.
type AuthError struct {
	Kind    FailureKind
	Message string
	Cause   error
}

func (e *AuthError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Cause
}

// NewAuthError creates a new normalized identity provider error.
func NewAuthError(kind FailureKind, message string, cause error) *AuthError {
	return &AuthError{
		Kind:    kind,
		Message: message,
		Cause:   cause,
	}
}

// KindOf extracts the failure kind from an error chain, defaulting to
// FailureUnknown.
func KindOf(err error) FailureKind {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr.Kind
	}
	return FailureUnknown
}

// Session store and reconciliation errors.
var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrNoIdentity      = errors.New("no identity present")
)

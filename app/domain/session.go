package domain

// AuthState is the authentication state of the client session.
type AuthState string

const (
	// AuthStateInitializing is the state between process start and the first
	// identity provider callback.
	AuthStateInitializing AuthState = "initializing"
	// AuthStateUnauthenticated means no identity is present.
	AuthStateUnauthenticated AuthState = "unauthenticated"
	// AuthStateAuthenticating means a login or registration is in flight.
	AuthStateAuthenticating AuthState = "authenticating"
	// AuthStateAuthenticated means an identity is present and the profile has
	// been resolved (or resolution was attempted, see Session.User).
	AuthStateAuthenticated AuthState = "authenticated"
)

// CanTransition reports whether the state machine allows moving to next.
func (s AuthState) CanTransition(next AuthState) bool {
	switch s {
	case AuthStateInitializing:
		return next == AuthStateUnauthenticated || next == AuthStateAuthenticated || next == AuthStateAuthenticating
	case AuthStateUnauthenticated:
		return next == AuthStateAuthenticating || next == AuthStateAuthenticated || next == AuthStateUnauthenticated
	case AuthStateAuthenticating:
		return next == AuthStateAuthenticated || next == AuthStateUnauthenticated
	case AuthStateAuthenticated:
		return next == AuthStateUnauthenticated || next == AuthStateAuthenticated || next == AuthStateAuthenticating
	}
	return false
}

// Session is the client's local view of "who is logged in". Exactly one live
// Session exists per running client; it is mutated only by the session
// controller and read by everything else as an immutable snapshot.
type Session struct {
	State    AuthState
	Identity *Identity
	// User is the cached domain profile. It may be nil while Authenticated
	// when reconciliation has not yet succeeded, and may be stale relative to
	// the backend (best-effort cache).
	User *User
}

// IsAuthenticated returns true when an identity is present.
func (s Session) IsAuthenticated() bool {
	return s.State == AuthStateAuthenticated && s.Identity != nil
}

// Loading returns true before the first identity provider callback resolves.
func (s Session) Loading() bool {
	return s.State == AuthStateInitializing || s.State == AuthStateAuthenticating
}

// Package usecase implements the client's business logic.
package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/ihelperdrone/droneops/app/domain"
	"github.com/ihelperdrone/droneops/app/port"
	"github.com/ihelperdrone/droneops/app/utils/validator"
)

// Fallback user-facing messages for failures with no recognizable kind.
const (
	loginFallbackMessage    = "Falha no login. Verifique suas credenciais."
	registerFallbackMessage = "Falha no registro. Tente novamente."
)

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type registerInput struct {
	Name     string `json:"nome" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// SessionUseCase is the auth session controller. It owns the single live
// Session value: all writes go through here, everything else reads immutable
// snapshots. State machine: Initializing → Unauthenticated → Authenticating →
// Authenticated → Unauthenticated.
type SessionUseCase struct {
	provider   port.IdentityProvider
	store      port.SessionStore
	reconciler port.UserReconciler
	validate   *validator.Validator
	logger     *slog.Logger

	mu          sync.Mutex
	session     domain.Session
	subs        map[int]func(domain.Session)
	nextSub     int
	unsubscribe func()
}

// NewSessionUseCase creates the session controller in the Initializing state.
func NewSessionUseCase(provider port.IdentityProvider, store port.SessionStore, reconciler port.UserReconciler, logger *slog.Logger) *SessionUseCase {
	return &SessionUseCase{
		provider:   provider,
		store:      store,
		reconciler: reconciler,
		validate:   validator.New(),
		logger:     logger.With("component", "session_controller"),
		session:    domain.Session{State: domain.AuthStateInitializing},
		subs:       make(map[int]func(domain.Session)),
	}
}

// Start paints the cached profile optimistically and subscribes to identity
// provider changes. The first provider callback settles the terminal state.
func (uc *SessionUseCase) Start(ctx context.Context) {
	cached, err := uc.store.Load()
	if err != nil {
		uc.logger.Warn("could not load cached profile", "error", err)
	} else if cached != nil {
		uc.mu.Lock()
		if uc.session.State == domain.AuthStateInitializing {
			uc.session.User = cached
		}
		uc.mu.Unlock()
		uc.logger.Debug("cached profile loaded for optimistic render", "email", cached.Email)
	}

	uc.unsubscribe = uc.provider.Subscribe(func(ident *domain.Identity) {
		uc.handleChange(ctx, ident)
	})
}

// Close detaches from the identity provider.
func (uc *SessionUseCase) Close() {
	if uc.unsubscribe != nil {
		uc.unsubscribe()
		uc.unsubscribe = nil
	}
}

// Snapshot returns the current session value.
func (uc *SessionUseCase) Snapshot() domain.Session {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.session
}

// Subscribe registers a listener published on every committed transition.
// It fires once immediately with the current snapshot and returns an
// unsubscribe function. Intermediate states are never exposed: listeners only
// see committed session values.
func (uc *SessionUseCase) Subscribe(fn func(domain.Session)) func() {
	uc.mu.Lock()
	id := uc.nextSub
	uc.nextSub++
	uc.subs[id] = fn
	current := uc.session
	uc.mu.Unlock()

	fn(current)

	return func() {
		uc.mu.Lock()
		delete(uc.subs, id)
		uc.mu.Unlock()
	}
}

// Login authenticates with the identity provider. It returns only after the
// resulting session transition is committed, so a true result guarantees the
// session is populated. On failure it returns false and a user-facing
// message.
func (uc *SessionUseCase) Login(ctx context.Context, email, password string) (bool, string) {
	if err := uc.validate.Validate(&loginInput{Email: email, Password: password}); err != nil {
		return false, inputMessage(err, loginFallbackMessage)
	}

	uc.transition(domain.Session{State: domain.AuthStateAuthenticating})

	if err := uc.provider.SignIn(ctx, email, password); err != nil {
		uc.logger.Warn("login failed", "kind", domain.KindOf(err), "error", err)
		uc.toUnauthenticated()
		return false, userMessage(err, loginFallbackMessage)
	}

	ident := uc.provider.Current()
	if ident == nil {
		uc.logger.Error("provider reported sign-in success without an identity")
		uc.toUnauthenticated()
		return false, loginFallbackMessage
	}

	if err := uc.settle(ctx, ident); err != nil {
		// Authenticated without a confirmed backend profile; reconciliation
		// is retried on the next authenticated action.
		uc.logger.Warn("login settled without backend profile", "error", err)
	}

	return true, ""
}

// Register creates an identity with the provider and eagerly reconciles the
// backend profile, independent of the subscription path.
func (uc *SessionUseCase) Register(ctx context.Context, name, email, password string) (bool, string) {
	if err := uc.validate.Validate(&registerInput{Name: name, Email: email, Password: password}); err != nil {
		return false, inputMessage(err, registerFallbackMessage)
	}

	uc.transition(domain.Session{State: domain.AuthStateAuthenticating})

	if err := uc.provider.SignUp(ctx, name, email, password); err != nil {
		uc.logger.Warn("registration failed", "kind", domain.KindOf(err), "error", err)
		uc.toUnauthenticated()
		return false, userMessage(err, registerFallbackMessage)
	}

	ident := uc.provider.Current()
	if ident == nil {
		// Provider accepted the registration but issued no session (e.g.
		// verification required before first login).
		uc.transition(domain.Session{State: domain.AuthStateUnauthenticated})
		return true, ""
	}

	if err := uc.settle(ctx, ident); err != nil {
		uc.logger.Warn("registration settled without backend profile", "error", err)
	}

	return true, ""
}

// Logout signs out of the provider best-effort: local state and the session
// store are cleared unconditionally so the shell is never stranded in a
// logged-in-looking state. A provider failure is reported but not fatal.
func (uc *SessionUseCase) Logout(ctx context.Context) error {
	err := uc.provider.SignOut(ctx)
	if err != nil {
		uc.logger.Warn("provider sign-out failed, clearing local session anyway", "error", err)
	}

	uc.toUnauthenticated()
	return err
}

// handleChange is the identity provider subscription callback.
func (uc *SessionUseCase) handleChange(ctx context.Context, ident *domain.Identity) {
	if ident == nil {
		uc.toUnauthenticated()
		return
	}

	if err := uc.settle(ctx, ident); err != nil {
		uc.logger.Error("profile reconciliation failed", "email", ident.Email, "error", err)
	}
}

// settle commits the Authenticated state for ident, reconciling and
// persisting the backend profile. Already-settled sessions for the same
// identity are left untouched so the login path and the subscription path do
// not reconcile twice.
func (uc *SessionUseCase) settle(ctx context.Context, ident *domain.Identity) error {
	uc.mu.Lock()
	settled := uc.session.State == domain.AuthStateAuthenticated &&
		uc.session.Identity != nil &&
		uc.session.Identity.ID == ident.ID &&
		uc.session.User != nil
	uc.mu.Unlock()
	if settled {
		return nil
	}

	profile, err := uc.reconciler.Ensure(ctx, ident)
	if err != nil {
		uc.transition(domain.Session{State: domain.AuthStateAuthenticated, Identity: ident})
		return err
	}

	if saveErr := uc.store.Save(profile); saveErr != nil {
		// The persisted record and the in-memory session may diverge here;
		// readers tolerate eventual consistency.
		uc.logger.Warn("could not persist profile", "error", saveErr)
	}

	uc.transition(domain.Session{State: domain.AuthStateAuthenticated, Identity: ident, User: profile})
	return nil
}

// toUnauthenticated clears the session store and commits the state.
func (uc *SessionUseCase) toUnauthenticated() {
	if err := uc.store.Clear(); err != nil {
		uc.logger.Warn("could not clear session store", "error", err)
	}
	uc.transition(domain.Session{State: domain.AuthStateUnauthenticated})
}

// transition atomically replaces the session value and publishes it.
// Subscribers run outside the lock with the committed snapshot.
func (uc *SessionUseCase) transition(next domain.Session) {
	uc.mu.Lock()
	if !uc.session.State.CanTransition(next.State) {
		uc.logger.Debug("transition outside the state machine",
			"from", uc.session.State, "to", next.State)
	}
	uc.session = next
	fns := make([]func(domain.Session), 0, len(uc.subs))
	for _, fn := range uc.subs {
		fns = append(fns, fn)
	}
	uc.mu.Unlock()

	for _, fn := range fns {
		fn(next)
	}
}

// userMessage maps a provider error to its user-facing message.
func userMessage(err error, fallback string) string {
	if msg := domain.KindOf(err).UserMessage(); msg != "" {
		return msg
	}
	return fallback
}

// inputMessage maps client-side validation failures onto the same messages
// the provider failures use.
func inputMessage(err error, fallback string) string {
	var vErr *validator.ValidationError
	if errors.As(err, &vErr) {
		if vErr.Field("email") {
			return domain.FailureInvalidEmail.UserMessage()
		}
		if vErr.Field("password") {
			return domain.FailureWeakPassword.UserMessage()
		}
	}
	return fallback
}

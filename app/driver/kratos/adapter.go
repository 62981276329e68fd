package kratos

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"
	kratosclient "github.com/ory/kratos-client-go"

	"github.com/ihelperdrone/droneops/app/domain"
	"github.com/ihelperdrone/droneops/app/driver/store"
)

// Adapter implements port.IdentityProvider and port.CredentialSource over
// Kratos native flows. Change notifications fire on every sign-in/out event
// and once per Subscribe call with the current identity.
type Adapter struct {
	client *Client
	tokens *store.TokenFile
	logger *slog.Logger

	mu      sync.Mutex
	token   string
	current *domain.Identity
	ready   bool
	subs    map[int]func(*domain.Identity)
	nextSub int
}

// NewAdapter creates a new identity provider adapter.
func NewAdapter(client *Client, tokens *store.TokenFile, logger *slog.Logger) *Adapter {
	return &Adapter{
		client: client,
		tokens: tokens,
		logger: logger.With("component", "identity_adapter"),
		subs:   make(map[int]func(*domain.Identity)),
	}
}

// Bootstrap restores the persisted session token and resolves the current
// identity against the provider. A failed resolution leaves the client signed
// out; only a definitive 401 discards the persisted token.
func (a *Adapter) Bootstrap(ctx context.Context) {
	token, err := a.tokens.Load()
	if err != nil {
		a.logger.Warn("could not load persisted session token", "error", err)
	}
	if token == "" {
		a.setSession("", nil)
		return
	}

	session, resp, err := a.client.API().FrontendAPI.ToSession(ctx).XSessionToken(token).Execute()
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			a.logger.Info("persisted session token rejected, clearing")
			if clearErr := a.tokens.Clear(); clearErr != nil {
				a.logger.Warn("could not clear token file", "error", clearErr)
			}
			a.setSession("", nil)
			return
		}
		a.logger.Warn("session bootstrap failed, continuing signed out", "error", err)
		a.setSession("", nil)
		return
	}

	if session.Active != nil && !*session.Active {
		a.setSession("", nil)
		return
	}

	ident := identityFromKratos(session.Identity)
	a.logger.Info("session restored", "identity_id", ident.ID)
	a.setSession(token, ident)
}

// Subscribe registers a change listener. Once the initial session state is
// known it fires with the current identity (or nil), then on every
// sign-in/out event. Listeners attached before Bootstrap completes get their
// first callback from the bootstrap result instead of a premature nil.
func (a *Adapter) Subscribe(fn func(*domain.Identity)) func() {
	a.mu.Lock()
	id := a.nextSub
	a.nextSub++
	a.subs[id] = fn
	current := a.current
	ready := a.ready
	a.mu.Unlock()

	if ready {
		fn(current)
	}

	return func() {
		a.mu.Lock()
		delete(a.subs, id)
		a.mu.Unlock()
	}
}

// Current returns the currently authenticated identity, or nil.
func (a *Adapter) Current() *domain.Identity {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

// Credential returns the current session token, or "" when signed out.
func (a *Adapter) Credential(ctx context.Context) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.token
}

// SignIn submits a native login flow with the password method. A single round
// trip pair (create flow, submit flow); no retries.
func (a *Adapter) SignIn(ctx context.Context, email, password string) error {
	api := a.client.API().FrontendAPI

	flow, resp, err := api.CreateNativeLoginFlow(ctx).Execute()
	if err != nil {
		return classifyError(a.logger, err, resp, "create login flow")
	}

	body := kratosclient.UpdateLoginFlowBody{
		UpdateLoginFlowWithPasswordMethod: &kratosclient.UpdateLoginFlowWithPasswordMethod{
			Identifier: email,
			Method:     "password",
			Password:   password,
		},
	}

	result, resp, err := api.UpdateLoginFlow(ctx).Flow(flow.Id).UpdateLoginFlowBody(body).Execute()
	if err != nil {
		return classifyError(a.logger, err, resp, "submit login flow")
	}

	return a.adoptSession(result.SessionToken, result.Session.Identity, "sign-in")
}

// SignUp submits a native registration flow with the password method. When
// Kratos issues a session on registration the new identity is adopted
// immediately, mirroring the sign-in path.
func (a *Adapter) SignUp(ctx context.Context, name, email, password string) error {
	api := a.client.API().FrontendAPI

	flow, resp, err := api.CreateNativeRegistrationFlow(ctx).Execute()
	if err != nil {
		return classifyError(a.logger, err, resp, "create registration flow")
	}

	body := kratosclient.UpdateRegistrationFlowBody{
		UpdateRegistrationFlowWithPasswordMethod: &kratosclient.UpdateRegistrationFlowWithPasswordMethod{
			Method:   "password",
			Password: password,
			Traits: map[string]interface{}{
				"email": email,
				"name":  name,
			},
		},
	}

	result, resp, err := api.UpdateRegistrationFlow(ctx).Flow(flow.Id).UpdateRegistrationFlowBody(body).Execute()
	if err != nil {
		return classifyError(a.logger, err, resp, "submit registration flow")
	}

	if result.Session != nil && result.Session.Identity != nil {
		return a.adoptSession(result.SessionToken, result.Session.Identity, "sign-up")
	}
	return a.adoptSession(result.SessionToken, &result.Identity, "sign-up")
}

// adoptSession commits a provider-issued session. A session carrying no
// identity is rejected rather than adopted blind: the local state is cleared
// and the operation reports failure.
func (a *Adapter) adoptSession(sessionToken *string, kid *kratosclient.Identity, operation string) error {
	ident := identityFromKratos(kid)
	if ident == nil {
		a.setSession("", nil)
		return domain.NewAuthError(domain.FailureUnknown,
			fmt.Sprintf("identity provider %s returned a session without an identity", operation), nil)
	}

	token := ""
	if sessionToken != nil {
		token = *sessionToken
	}

	a.logger.Info(operation+" succeeded", "identity_id", ident.ID)
	a.setSession(token, ident)
	return nil
}

// SignOut revokes the provider session. Local state is cleared regardless of
// the revocation outcome so the client never appears logged in after logout.
func (a *Adapter) SignOut(ctx context.Context) error {
	a.mu.Lock()
	token := a.token
	a.mu.Unlock()

	var signOutErr error
	if token != "" {
		resp, err := a.client.API().FrontendAPI.PerformNativeLogout(ctx).
			PerformNativeLogoutBody(kratosclient.PerformNativeLogoutBody{SessionToken: token}).
			Execute()
		if err != nil {
			signOutErr = classifyError(a.logger, err, resp, "logout")
			a.logger.Warn("provider sign-out failed, clearing local session anyway", "error", err)
		}
	}

	a.setSession("", nil)
	return signOutErr
}

// setSession commits a token/identity pair, persists or clears the token file
// and notifies subscribers outside the lock.
func (a *Adapter) setSession(token string, ident *domain.Identity) {
	a.mu.Lock()
	a.token = token
	a.current = ident
	a.ready = true
	fns := make([]func(*domain.Identity), 0, len(a.subs))
	for _, fn := range a.subs {
		fns = append(fns, fn)
	}
	a.mu.Unlock()

	if token == "" {
		if err := a.tokens.Clear(); err != nil {
			a.logger.Warn("could not clear token file", "error", err)
		}
	} else {
		if err := a.tokens.Save(token); err != nil {
			a.logger.Warn("could not persist session token", "error", err)
		}
	}

	for _, fn := range fns {
		fn(ident)
	}
}

// identityFromKratos maps a Kratos identity to the domain value.
func identityFromKratos(kid *kratosclient.Identity) *domain.Identity {
	if kid == nil {
		return nil
	}

	ident := &domain.Identity{}
	if parsed, err := uuid.Parse(kid.Id); err == nil {
		ident.ID = parsed
	}

	if traits, ok := kid.Traits.(map[string]interface{}); ok {
		if email, ok := traits["email"].(string); ok {
			ident.Email = email
		}
		if name, ok := traits["name"].(string); ok {
			ident.Name = name
		}
	}

	for _, addr := range kid.VerifiableAddresses {
		if addr.Value == ident.Email && addr.Verified {
			ident.Verified = true
			break
		}
	}

	return ident
}

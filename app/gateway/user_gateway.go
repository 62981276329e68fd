// Package gateway holds anti-corruption layers between the domain and the
// backend drivers.
package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ihelperdrone/droneops/app/domain"
	"github.com/ihelperdrone/droneops/app/port"
)

// UserGateway implements port.UserReconciler: it guarantees a backend user
// profile exists for every authenticated identity.
type UserGateway struct {
	directory    port.UserDirectory
	defaultLevel domain.AccessLevel
	logger       *slog.Logger
}

// NewUserGateway creates a new UserGateway instance.
func NewUserGateway(directory port.UserDirectory, defaultLevel domain.AccessLevel, logger *slog.Logger) *UserGateway {
	return &UserGateway{
		directory:    directory,
		defaultLevel: defaultLevel,
		logger:       logger.With("component", "user_gateway"),
	}
}

// Ensure returns the backend profile matching the identity's email, creating
// a default record when none exists. The backend offers no filter-by-email,
// so the full list is scanned; the match is case-sensitive exact and the
// first hit wins (list order is whatever the backend returns).
//
// Create failures propagate to the caller: the identity session is not rolled
// back and reconciliation is retried on the next authenticated action.
func (g *UserGateway) Ensure(ctx context.Context, identity *domain.Identity) (*domain.User, error) {
	if identity == nil {
		return nil, domain.ErrNoIdentity
	}

	users, err := g.directory.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing backend users: %w", err)
	}

	for i := range users {
		if users[i].Email == identity.Email {
			g.logger.Debug("profile found",
				"user_id", users[i].ID,
				"email", users[i].Email)
			return &users[i], nil
		}
	}

	profile, err := domain.NewDefaultUser(identity.DisplayName(), identity.Email, g.defaultLevel)
	if err != nil {
		return nil, fmt.Errorf("building default profile: %w", err)
	}

	g.logger.Info("no profile for identity, creating default",
		"email", identity.Email,
		"access_level", g.defaultLevel)

	created, err := g.directory.Create(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("creating default profile: %w", err)
	}

	g.logger.Info("profile created",
		"user_id", created.ID,
		"email", created.Email)

	return created, nil
}

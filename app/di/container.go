// Package di wires the application together.
package di

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ihelperdrone/droneops/app/config"
	"github.com/ihelperdrone/droneops/app/driver/kratos"
	"github.com/ihelperdrone/droneops/app/driver/rest"
	"github.com/ihelperdrone/droneops/app/driver/store"
	"github.com/ihelperdrone/droneops/app/gateway"
	"github.com/ihelperdrone/droneops/app/usecase"
	"github.com/ihelperdrone/droneops/app/utils/logger"
)

// Container holds all application dependencies.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	Identity *kratos.Adapter
	Session  *usecase.SessionUseCase

	Drones  *rest.DroneAPI
	Areas   *rest.RiskAreaAPI
	Sensors *rest.SensorAPI
	Alerts  *rest.AlertAPI
	Signage *rest.SignageAPI
	Users   *rest.UserAPI
}

// NewContainer builds the dependency graph from configuration. Nothing talks
// to the network yet; Start performs the bootstrap round trips.
func NewContainer(cfg *config.Config) (*Container, error) {
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}

	kratosClient, err := kratos.NewClient(cfg.KratosPublicURL, log)
	if err != nil {
		return nil, fmt.Errorf("initializing kratos client: %w", err)
	}

	identity := kratos.NewAdapter(kratosClient, store.NewTokenFile(cfg.DataDir), log)

	apiClient := rest.NewClient(cfg.APIBaseURL, identity, log)
	users := rest.NewUserAPI(apiClient)

	reconciler := gateway.NewUserGateway(users, cfg.DefaultAccessLevel, log)
	profiles := store.NewFileStore(cfg.DataDir, log)

	session := usecase.NewSessionUseCase(identity, profiles, reconciler, log)

	return &Container{
		Config:   cfg,
		Logger:   log,
		Identity: identity,
		Session:  session,
		Drones:   rest.NewDroneAPI(apiClient),
		Areas:    rest.NewRiskAreaAPI(apiClient),
		Sensors:  rest.NewSensorAPI(apiClient),
		Alerts:   rest.NewAlertAPI(apiClient),
		Signage:  rest.NewSignageAPI(apiClient),
		Users:    users,
	}, nil
}

// Start restores any persisted session and begins tracking identity changes.
// The session controller leaves Initializing before this returns.
func (c *Container) Start(ctx context.Context) {
	c.Session.Start(ctx)
	c.Identity.Bootstrap(ctx)
}

// Close releases the container's subscriptions.
func (c *Container) Close() {
	c.Session.Close()
}

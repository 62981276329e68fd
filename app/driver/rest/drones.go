package rest

import (
	"context"
	"fmt"

	"github.com/ihelperdrone/droneops/app/domain"
)

// DroneAPI accesses the drones resource.
type DroneAPI struct {
	c *Client
}

// NewDroneAPI creates the drones resource client.
func NewDroneAPI(c *Client) *DroneAPI {
	return &DroneAPI{c: c}
}

func (a *DroneAPI) List(ctx context.Context) ([]domain.Drone, error) {
	var out []domain.Drone
	if err := a.c.get(ctx, "/drones", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *DroneAPI) GetByID(ctx context.Context, id int64) (*domain.Drone, error) {
	var out domain.Drone
	if err := a.c.get(ctx, fmt.Sprintf("/drones/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *DroneAPI) Create(ctx context.Context, drone *domain.Drone) (*domain.Drone, error) {
	var out domain.Drone
	if err := a.c.post(ctx, "/drones", drone, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *DroneAPI) Update(ctx context.Context, id int64, drone *domain.Drone) (*domain.Drone, error) {
	var out domain.Drone
	if err := a.c.put(ctx, fmt.Sprintf("/drones/%d", id), drone, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *DroneAPI) Delete(ctx context.Context, id int64) error {
	return a.c.delete(ctx, fmt.Sprintf("/drones/%d", id))
}

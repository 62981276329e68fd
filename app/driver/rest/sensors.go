package rest

import (
	"context"
	"fmt"

	"github.com/ihelperdrone/droneops/app/domain"
)

// SensorAPI accesses the sensores resource.
type SensorAPI struct {
	c *Client
}

// NewSensorAPI creates the sensors resource client.
func NewSensorAPI(c *Client) *SensorAPI {
	return &SensorAPI{c: c}
}

func (a *SensorAPI) List(ctx context.Context) ([]domain.Sensor, error) {
	var out []domain.Sensor
	if err := a.c.get(ctx, "/sensores", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *SensorAPI) GetByID(ctx context.Context, id int64) (*domain.Sensor, error) {
	var out domain.Sensor
	if err := a.c.get(ctx, fmt.Sprintf("/sensores/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *SensorAPI) Create(ctx context.Context, sensor *domain.Sensor) (*domain.Sensor, error) {
	var out domain.Sensor
	if err := a.c.post(ctx, "/sensores", sensor, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *SensorAPI) Update(ctx context.Context, id int64, sensor *domain.Sensor) (*domain.Sensor, error) {
	var out domain.Sensor
	if err := a.c.put(ctx, fmt.Sprintf("/sensores/%d", id), sensor, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *SensorAPI) Delete(ctx context.Context, id int64) error {
	return a.c.delete(ctx, fmt.Sprintf("/sensores/%d", id))
}

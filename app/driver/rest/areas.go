package rest

import (
	"context"
	"fmt"

	"github.com/ihelperdrone/droneops/app/domain"
)

// RiskAreaAPI accesses the area-risco resource.
type RiskAreaAPI struct {
	c *Client
}

// NewRiskAreaAPI creates the risk areas resource client.
func NewRiskAreaAPI(c *Client) *RiskAreaAPI {
	return &RiskAreaAPI{c: c}
}

func (a *RiskAreaAPI) List(ctx context.Context) ([]domain.RiskArea, error) {
	var out []domain.RiskArea
	if err := a.c.get(ctx, "/area-risco", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *RiskAreaAPI) GetByID(ctx context.Context, id int64) (*domain.RiskArea, error) {
	var out domain.RiskArea
	if err := a.c.get(ctx, fmt.Sprintf("/area-risco/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *RiskAreaAPI) Create(ctx context.Context, area *domain.RiskArea) (*domain.RiskArea, error) {
	var out domain.RiskArea
	if err := a.c.post(ctx, "/area-risco", area, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *RiskAreaAPI) Update(ctx context.Context, id int64, area *domain.RiskArea) (*domain.RiskArea, error) {
	var out domain.RiskArea
	if err := a.c.put(ctx, fmt.Sprintf("/area-risco/%d", id), area, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *RiskAreaAPI) Delete(ctx context.Context, id int64) error {
	return a.c.delete(ctx, fmt.Sprintf("/area-risco/%d", id))
}

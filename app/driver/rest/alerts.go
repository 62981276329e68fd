package rest

import (
	"context"
	"fmt"

	"github.com/ihelperdrone/droneops/app/domain"
)

// AlertAPI accesses the alertas resource.
type AlertAPI struct {
	c *Client
}

// NewAlertAPI creates the alerts resource client.
func NewAlertAPI(c *Client) *AlertAPI {
	return &AlertAPI{c: c}
}

func (a *AlertAPI) List(ctx context.Context) ([]domain.Alert, error) {
	var out []domain.Alert
	if err := a.c.get(ctx, "/alertas", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *AlertAPI) GetByID(ctx context.Context, id int64) (*domain.Alert, error) {
	var out domain.Alert
	if err := a.c.get(ctx, fmt.Sprintf("/alertas/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AlertAPI) Create(ctx context.Context, alert *domain.Alert) (*domain.Alert, error) {
	var out domain.Alert
	if err := a.c.post(ctx, "/alertas", alert, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AlertAPI) Update(ctx context.Context, id int64, alert *domain.Alert) (*domain.Alert, error) {
	var out domain.Alert
	if err := a.c.put(ctx, fmt.Sprintf("/alertas/%d", id), alert, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AlertAPI) Delete(ctx context.Context, id int64) error {
	return a.c.delete(ctx, fmt.Sprintf("/alertas/%d", id))
}

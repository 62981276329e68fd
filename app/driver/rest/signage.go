package rest

import (
	"context"
	"fmt"

	"github.com/ihelperdrone/droneops/app/domain"
)

// SignageAPI accesses the sinalizacoes resource.
type SignageAPI struct {
	c *Client
}

// NewSignageAPI creates the signage resource client.
func NewSignageAPI(c *Client) *SignageAPI {
	return &SignageAPI{c: c}
}

func (a *SignageAPI) List(ctx context.Context) ([]domain.Signage, error) {
	var out []domain.Signage
	if err := a.c.get(ctx, "/sinalizacoes", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *SignageAPI) GetByID(ctx context.Context, id int64) (*domain.Signage, error) {
	var out domain.Signage
	if err := a.c.get(ctx, fmt.Sprintf("/sinalizacoes/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *SignageAPI) Create(ctx context.Context, signage *domain.Signage) (*domain.Signage, error) {
	var out domain.Signage
	if err := a.c.post(ctx, "/sinalizacoes", signage, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *SignageAPI) Update(ctx context.Context, id int64, signage *domain.Signage) (*domain.Signage, error) {
	var out domain.Signage
	if err := a.c.put(ctx, fmt.Sprintf("/sinalizacoes/%d", id), signage, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *SignageAPI) Delete(ctx context.Context, id int64) error {
	return a.c.delete(ctx, fmt.Sprintf("/sinalizacoes/%d", id))
}

package rest

import (
	"context"
	"fmt"

	"github.com/ihelperdrone/droneops/app/domain"
)

// UserAPI accesses the usuarios resource. It implements port.UserDirectory.
type UserAPI struct {
	c *Client
}

// NewUserAPI creates the users resource client.
func NewUserAPI(c *Client) *UserAPI {
	return &UserAPI{c: c}
}

func (a *UserAPI) List(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	if err := a.c.get(ctx, "/usuarios", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *UserAPI) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var out domain.User
	if err := a.c.get(ctx, fmt.Sprintf("/usuarios/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *UserAPI) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	var out domain.User
	if err := a.c.post(ctx, "/usuarios", user, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *UserAPI) Update(ctx context.Context, id int64, user *domain.User) (*domain.User, error) {
	var out domain.User
	if err := a.c.put(ctx, fmt.Sprintf("/usuarios/%d", id), user, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *UserAPI) Delete(ctx context.Context, id int64) error {
	return a.c.delete(ctx, fmt.Sprintf("/usuarios/%d", id))
}

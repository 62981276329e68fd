package port

//go:generate mockgen -source=user_port.go -destination=../mocks/mock_user_port.go -package=mocks

import (
	"context"

	"github.com/ihelperdrone/droneops/app/domain"
)

// UserDirectory is the backend users resource. The backend offers no
// server-side filter-by-email, so lookups scan the full list.
type UserDirectory interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, id int64, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}

// UserReconciler ensures a backend user profile exists for an authenticated
// identity, creating a default record when none matches.
type UserReconciler interface {
	Ensure(ctx context.Context, identity *domain.Identity) (*domain.User, error)
}

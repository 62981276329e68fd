package gateway

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ihelperdrone/droneops/app/domain"
	"github.com/ihelperdrone/droneops/app/mocks"
)

func testIdentity(email, name string) *domain.Identity {
	return &domain.Identity{ID: uuid.New(), Email: email, Name: name}
}

func TestEnsureReturnsExistingProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	directory := mocks.NewMockUserDirectory(ctrl)

	directory.EXPECT().List(gomock.Any()).Return([]domain.User{
		{ID: 1, Name: "Outro", Email: "outro@example.com"},
		{ID: 2, Name: "Maria", Email: "maria@example.com", AccessLevel: domain.AccessLevelAdmin},
	}, nil)

	g := NewUserGateway(directory, domain.AccessLevelOperator, slog.Default())
	profile, err := g.Ensure(context.Background(), testIdentity("maria@example.com", "Maria"))

	require.NoError(t, err)
	assert.Equal(t, int64(2), profile.ID)
	assert.Equal(t, domain.AccessLevelAdmin, profile.AccessLevel)
}

func TestEnsureMatchIsCaseSensitive(t *testing.T) {
	ctrl := gomock.NewController(t)
	directory := mocks.NewMockUserDirectory(ctrl)

	directory.EXPECT().List(gomock.Any()).Return([]domain.User{
		{ID: 1, Name: "Maria", Email: "Maria@Example.com"},
	}, nil)
	directory.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u *domain.User) (*domain.User, error) {
			created := *u
			created.ID = 7
			return &created, nil
		})

	g := NewUserGateway(directory, domain.AccessLevelOperator, slog.Default())
	profile, err := g.Ensure(context.Background(), testIdentity("maria@example.com", "Maria"))

	require.NoError(t, err)
	assert.Equal(t, int64(7), profile.ID)
}

func TestEnsureFirstMatchWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	directory := mocks.NewMockUserDirectory(ctrl)

	directory.EXPECT().List(gomock.Any()).Return([]domain.User{
		{ID: 3, Name: "Primeiro", Email: "dup@example.com"},
		{ID: 9, Name: "Segundo", Email: "dup@example.com"},
	}, nil)

	g := NewUserGateway(directory, domain.AccessLevelOperator, slog.Default())
	profile, err := g.Ensure(context.Background(), testIdentity("dup@example.com", ""))

	require.NoError(t, err)
	assert.Equal(t, int64(3), profile.ID)
}

func TestEnsureCreatesDefaultProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	directory := mocks.NewMockUserDirectory(ctrl)

	directory.EXPECT().List(gomock.Any()).Return([]domain.User{}, nil)
	directory.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u *domain.User) (*domain.User, error) {
			assert.Equal(t, domain.FallbackUserName, u.Name)
			assert.Equal(t, "novo@example.com", u.Email)
			assert.Equal(t, domain.AccessLevelOperator, u.AccessLevel)
			assert.Equal(t, domain.UserStatusActive, u.Status)
			created := *u
			created.ID = 42
			return &created, nil
		})

	g := NewUserGateway(directory, domain.AccessLevelOperator, slog.Default())
	profile, err := g.Ensure(context.Background(), testIdentity("novo@example.com", ""))

	require.NoError(t, err)
	assert.Equal(t, int64(42), profile.ID)
}

func TestEnsureUsesConfiguredAccessLevel(t *testing.T) {
	ctrl := gomock.NewController(t)
	directory := mocks.NewMockUserDirectory(ctrl)

	directory.EXPECT().List(gomock.Any()).Return(nil, nil)
	directory.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u *domain.User) (*domain.User, error) {
			assert.Equal(t, domain.AccessLevelUser, u.AccessLevel)
			return u, nil
		})

	g := NewUserGateway(directory, domain.AccessLevelUser, slog.Default())
	_, err := g.Ensure(context.Background(), testIdentity("novo@example.com", "Novo"))
	require.NoError(t, err)
}

func TestEnsureErrors(t *testing.T) {
	listErr := errors.New("backend unavailable")
	createErr := errors.New("conflict")

	tests := []struct {
		name     string
		identity *domain.Identity
		setup    func(directory *mocks.MockUserDirectory)
		wantErr  error
	}{
		{
			name:     "nil identity",
			identity: nil,
			setup:    func(directory *mocks.MockUserDirectory) {},
			wantErr:  domain.ErrNoIdentity,
		},
		{
			name:     "list failure",
			identity: testIdentity("maria@example.com", "Maria"),
			setup: func(directory *mocks.MockUserDirectory) {
				directory.EXPECT().List(gomock.Any()).Return(nil, listErr)
			},
			wantErr: listErr,
		},
		{
			name:     "create failure",
			identity: testIdentity("maria@example.com", "Maria"),
			setup: func(directory *mocks.MockUserDirectory) {
				directory.EXPECT().List(gomock.Any()).Return(nil, nil)
				directory.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, createErr)
			},
			wantErr: createErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			directory := mocks.NewMockUserDirectory(ctrl)
			tt.setup(directory)

			g := NewUserGateway(directory, domain.AccessLevelOperator, slog.Default())
			profile, err := g.Ensure(context.Background(), tt.identity)

			assert.Nil(t, profile)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

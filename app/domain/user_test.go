package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultUser(t *testing.T) {
	tests := []struct {
		name      string
		userName  string
		email     string
		level     AccessLevel
		wantErr   bool
		wantName  string
		wantLevel AccessLevel
	}{
		{
			name:      "valid user",
			userName:  "Maria Silva",
			email:     "maria@example.com",
			level:     AccessLevelOperator,
			wantName:  "Maria Silva",
			wantLevel: AccessLevelOperator,
		},
		{
			name:      "empty name falls back to default",
			userName:  "",
			email:     "anon@example.com",
			level:     AccessLevelUser,
			wantName:  FallbackUserName,
			wantLevel: AccessLevelUser,
		},
		{
			name:     "empty email",
			userName: "Maria",
			email:    "",
			wantErr:  true,
		},
		{
			name:     "invalid email format",
			userName: "Maria",
			email:    "not-an-email",
			level:    AccessLevelOperator,
			wantErr:  true,
		},
		{
			name:     "invalid access level",
			userName: "Maria",
			email:    "maria@example.com",
			level:    AccessLevel("SUPERVISOR"),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := NewDefaultUser(tt.userName, tt.email, tt.level)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantName, user.Name)
			assert.Equal(t, tt.email, user.Email)
			assert.Equal(t, tt.wantLevel, user.AccessLevel)
			assert.Equal(t, UserStatusActive, user.Status)
			assert.NotEmpty(t, user.CreatedAt)
			assert.Equal(t, user.CreatedAt, user.UpdatedAt)
			assert.Zero(t, user.ID)
		})
	}
}

func TestAccessLevelValidate(t *testing.T) {
	assert.NoError(t, AccessLevelOperator.Validate())
	assert.NoError(t, AccessLevelUser.Validate())
	assert.NoError(t, AccessLevelAdmin.Validate())
	assert.Error(t, AccessLevel("").Validate())
	assert.Error(t, AccessLevel("root").Validate())
}

func TestUserChangeAccessLevel(t *testing.T) {
	user, err := NewDefaultUser("Maria", "maria@example.com", AccessLevelOperator)
	require.NoError(t, err)

	require.NoError(t, user.ChangeAccessLevel(AccessLevelAdmin))
	assert.Equal(t, AccessLevelAdmin, user.AccessLevel)

	err = user.ChangeAccessLevel(AccessLevel("SUPERVISOR"))
	assert.Error(t, err)
	assert.Equal(t, AccessLevelAdmin, user.AccessLevel)
}

func TestUserChangeStatus(t *testing.T) {
	user, err := NewDefaultUser("Maria", "maria@example.com", AccessLevelOperator)
	require.NoError(t, err)
	assert.True(t, user.IsActive())

	require.NoError(t, user.ChangeStatus(UserStatusBlocked))
	assert.False(t, user.IsActive())

	assert.Error(t, user.ChangeStatus(UserStatus("SUSPENSO")))
	assert.Equal(t, UserStatusBlocked, user.Status)
}

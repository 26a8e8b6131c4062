//go:build unit

package user_test

import (
	"testing"

	"fittingroom/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	for _, s := range []string{"viewer", "operator", "admin"} {
		r, err := user.NewRole(s)
		require.NoError(t, err)
		assert.Equal(t, s, r.String())
	}

	_, err := user.NewRole("superuser")
	require.ErrorIs(t, err, user.ErrInvalidRole)
	_, err = user.NewRole("")
	require.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestRoleAtLeast(t *testing.T) {
	assert.True(t, user.RoleAdmin.AtLeast(user.RoleOperator))
	assert.True(t, user.RoleOperator.AtLeast(user.RoleOperator))
	assert.False(t, user.RoleViewer.AtLeast(user.RoleOperator))
	assert.False(t, user.Role("ghost").AtLeast(user.RoleViewer))
}

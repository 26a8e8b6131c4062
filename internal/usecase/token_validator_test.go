//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"fittingroom/internal/domain/user"
	"fittingroom/internal/pkg/clock"
	"fittingroom/internal/pkg/jwt"
	"fittingroom/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenValidator(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	svc := jwt.NewService("validator-secret", time.Hour, clk)
	validator := usecase.NewTokenValidator(svc)
	userID := uuid.New()

	t.Run("success: operator token", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, user.RoleOperator)
		require.NoError(t, err)

		identity, err := validator.ValidateToken(token)

		require.NoError(t, err)
		assert.Equal(t, userID, identity.UserID)
		assert.Equal(t, user.RoleOperator, identity.Role)
	})

	t.Run("error: unknown role", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, user.Role("janitor"))
		require.NoError(t, err)

		_, err = validator.ValidateToken(token)

		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})

	t.Run("error: expired token", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, user.RoleViewer)
		require.NoError(t, err)
		clk.Add(2 * time.Hour)
		defer clk.Add(-2 * time.Hour)

		_, err = validator.ValidateToken(token)

		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})
}

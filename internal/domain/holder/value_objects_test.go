//go:build unit

package holder_test

import (
	"testing"

	"fittingroom/internal/domain/holder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContact(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  string
		errIs error
	}{
		{name: "plain digits", raw: "5551234567", want: "5551234567"},
		{name: "international with separators", raw: "+1 (555) 123-4567", want: "+15551234567"},
		{name: "dotted", raw: "555.123.4567", want: "5551234567"},
		{name: "empty is allowed", raw: "   ", want: ""},
		{name: "too short", raw: "12345", errIs: holder.ErrInvalidContact},
		{name: "too long", raw: "1234567890123456", errIs: holder.ErrInvalidContact},
		{name: "letters rejected", raw: "555-CALL-NOW", errIs: holder.ErrInvalidContact},
		{name: "plus in the middle", raw: "555+1234567", errIs: holder.ErrInvalidContact},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := holder.NewContact(tt.raw)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.String())
		})
	}
}

func TestNewHolder(t *testing.T) {
	contact, err := holder.NewContact("5551234567")
	require.NoError(t, err)
	userID := uuid.New()

	t.Run("contact only", func(t *testing.T) {
		h, err := holder.NewHolder(nil, contact)
		require.NoError(t, err)
		assert.False(t, h.IsRegistered())
		assert.Equal(t, "phone:5551234567", h.Key())
		require.NotNil(t, h.ContactPtr())
	})

	t.Run("user only", func(t *testing.T) {
		h, err := holder.NewHolder(&userID, holder.Contact{})
		require.NoError(t, err)
		assert.True(t, h.IsRegistered())
		assert.Equal(t, "user:"+userID.String(), h.Key())
		assert.Nil(t, h.ContactPtr())
	})

	t.Run("nil uuid counts as absent", func(t *testing.T) {
		nilID := uuid.Nil
		_, err := holder.NewHolder(&nilID, holder.Contact{})
		require.ErrorIs(t, err, holder.ErrHolderRequired)
	})

	t.Run("neither", func(t *testing.T) {
		_, err := holder.NewHolder(nil, holder.Contact{})
		require.ErrorIs(t, err, holder.ErrHolderRequired)
	})
}

func TestHolderMatches(t *testing.T) {
	contact, _ := holder.NewContact("5551234567")
	other, _ := holder.NewContact("5559999999")
	userID := uuid.New()

	byUser := holder.Reconstruct(&userID, "")
	byPhone := holder.Reconstruct(nil, contact.String())
	both := holder.Reconstruct(&userID, contact.String())

	assert.True(t, both.Matches(byUser))
	assert.True(t, both.Matches(byPhone))
	assert.False(t, byUser.Matches(byPhone))
	assert.False(t, byPhone.Matches(holder.Reconstruct(nil, other.String())))
}

package customer

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	userID := uuid.New()

	t.Run("valid customer", func(t *testing.T) {
		birth := time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC)
		c, err := NewCustomer(userID, "+1-555-0100", &birth, "1 Main St")
		require.NoError(t, err)
		assert.Equal(t, userID, c.UserID)
		assert.Equal(t, "+1-555-0100", c.Phone)
		require.NotNil(t, c.BirthDate)
		assert.Equal(t, 1990, c.BirthDate.Year())
	})

	t.Run("birthdate optional", func(t *testing.T) {
		c, err := NewCustomer(userID, "+1-555-0100", nil, "")
		require.NoError(t, err)
		assert.Nil(t, c.BirthDate)
	})

	t.Run("missing user rejected", func(t *testing.T) {
		_, err := NewCustomer(uuid.Nil, "+1-555-0100", nil, "")
		assert.Error(t, err)
	})

	t.Run("empty phone rejected", func(t *testing.T) {
		_, err := NewCustomer(userID, "", nil, "")
		assert.Error(t, err)
	})

	t.Run("overlong phone rejected", func(t *testing.T) {
		_, err := NewCustomer(userID, strings.Repeat("5", 33), nil, "")
		assert.Error(t, err)
	})
}

func TestCustomerUpdate(t *testing.T) {
	c, err := NewCustomer(uuid.New(), "+1-555-0100", nil, "1 Main St")
	require.NoError(t, err)

	t.Run("update contact details", func(t *testing.T) {
		birth := time.Date(1985, 1, 2, 0, 0, 0, 0, time.UTC)
		require.NoError(t, c.Update("+1-555-0199", &birth, "2 Oak Ave"))
		assert.Equal(t, "+1-555-0199", c.Phone)
		assert.Equal(t, "2 Oak Ave", c.Address)
		assert.Equal(t, 2, c.Version)
	})

	t.Run("empty phone rejected", func(t *testing.T) {
		assert.Error(t, c.Update("", nil, ""))
	})
}

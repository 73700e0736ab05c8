package catalog

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReview(t *testing.T) {
	productID := uuid.New()

	t.Run("valid review", func(t *testing.T) {
		r, err := NewReview(productID, "Ada", "Great beans")
		require.NoError(t, err)
		assert.Equal(t, productID, r.ProductID)
		assert.Equal(t, "Ada", r.Name)

		now := time.Now()
		assert.Equal(t, now.Year(), r.Date.Year())
		assert.Equal(t, now.YearDay(), r.Date.YearDay())
		assert.Equal(t, 0, r.Date.Hour())
	})

	t.Run("missing product rejected", func(t *testing.T) {
		_, err := NewReview(uuid.Nil, "Ada", "Great")
		assert.Error(t, err)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := NewReview(productID, "", "Great")
		assert.Error(t, err)
	})

	t.Run("empty description rejected", func(t *testing.T) {
		_, err := NewReview(productID, "Ada", "")
		assert.Error(t, err)
	})
}

func TestReviewUpdate(t *testing.T) {
	productID := uuid.New()
	r, err := NewReview(productID, "Ada", "Great beans")
	require.NoError(t, err)
	originalDate := r.Date

	t.Run("text updates, date does not", func(t *testing.T) {
		require.NoError(t, r.Update("Ada L.", "Even better on second tasting"))
		assert.Equal(t, "Ada L.", r.Name)
		assert.Equal(t, originalDate, r.Date)
	})

	t.Run("empty fields rejected", func(t *testing.T) {
		assert.Error(t, r.Update("", "text"))
		assert.Error(t, r.Update("Ada", ""))
	})
}

package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

func TestReviewService_Create(t *testing.T) {
	t.Run("assigns date server-side", func(t *testing.T) {
		reviewRepo := new(MockReviewRepository)
		productRepo := new(MockProductRepository)
		svc := NewReviewService(reviewRepo, productRepo)

		p := newTestProduct(t, "Beans", 1.00, uuid.New())
		productRepo.On("FindByID", mock.Anything, p.ID).Return(p, nil)
		reviewRepo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Review")).Return(nil)

		resp, err := svc.Create(context.Background(), p.ID, CreateReviewRequest{
			Name:        "Ada",
			Description: "Great beans",
		})
		require.NoError(t, err)
		assert.Equal(t, p.ID, resp.ProductID)
		assert.Equal(t, time.Now().Format("2006-01-02"), resp.Date)
	})

	t.Run("unknown product", func(t *testing.T) {
		reviewRepo := new(MockReviewRepository)
		productRepo := new(MockProductRepository)
		svc := NewReviewService(reviewRepo, productRepo)

		productID := uuid.New()
		productRepo.On("FindByID", mock.Anything, productID).Return(nil, shared.ErrNotFound)

		_, err := svc.Create(context.Background(), productID, CreateReviewRequest{
			Name:        "Ada",
			Description: "Great",
		})
		assert.ErrorIs(t, err, shared.ErrNotFound)
		reviewRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestReviewService_ListByProduct(t *testing.T) {
	reviewRepo := new(MockReviewRepository)
	productRepo := new(MockProductRepository)
	svc := NewReviewService(reviewRepo, productRepo)

	p := newTestProduct(t, "Beans", 1.00, uuid.New())
	r1, _ := catalog.NewReview(p.ID, "Ada", "Great")
	r2, _ := catalog.NewReview(p.ID, "Grace", "Solid")

	productRepo.On("FindByID", mock.Anything, p.ID).Return(p, nil)
	reviewRepo.On("FindByProduct", mock.Anything, p.ID, mock.AnythingOfType("shared.Filter")).
		Return(shared.NewPaginated([]catalog.Review{*r1, *r2}, 2, 1, 20), nil)

	responses, meta, err := svc.ListByProduct(context.Background(), p.ID, ReviewListFilter{})
	require.NoError(t, err)
	assert.Len(t, responses, 2)
	assert.Equal(t, int64(2), meta.Total)
}

func TestReviewService_ProductScoping(t *testing.T) {
	reviewRepo := new(MockReviewRepository)
	productRepo := new(MockProductRepository)
	svc := NewReviewService(reviewRepo, productRepo)

	otherProduct := uuid.New()
	review, _ := catalog.NewReview(otherProduct, "Ada", "Great")
	reviewRepo.On("FindByID", mock.Anything, review.ID).Return(review, nil)

	// A review reached through the wrong product behaves as absent
	_, err := svc.GetByID(context.Background(), uuid.New(), review.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestReviewService_Delete(t *testing.T) {
	reviewRepo := new(MockReviewRepository)
	productRepo := new(MockProductRepository)
	svc := NewReviewService(reviewRepo, productRepo)

	productID := uuid.New()
	review, _ := catalog.NewReview(productID, "Ada", "Great")
	reviewRepo.On("FindByID", mock.Anything, review.ID).Return(review, nil)
	reviewRepo.On("Delete", mock.Anything, review.ID).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), productID, review.ID))
	reviewRepo.AssertExpectations(t)
}

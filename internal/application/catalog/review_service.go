package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

// ReviewService handles product review operations.
// Reviews are always accessed through their product.
type ReviewService struct {
	reviewRepo  catalog.ReviewRepository
	productRepo catalog.ProductRepository
}

// NewReviewService creates a new ReviewService
func NewReviewService(
	reviewRepo catalog.ReviewRepository,
	productRepo catalog.ProductRepository,
) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

// Create adds a review to a product. The review date is assigned
// server-side and cannot be supplied by the caller.
func (s *ReviewService) Create(ctx context.Context, productID uuid.UUID, req CreateReviewRequest) (*ReviewResponse, error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	review, err := catalog.NewReview(productID, req.Name, req.Description)
	if err != nil {
		return nil, err
	}

	if err := s.reviewRepo.Save(ctx, review); err != nil {
		return nil, err
	}

	resp := ToReviewResponse(review)
	return &resp, nil
}

// GetByID retrieves a review scoped to a product
func (s *ReviewService) GetByID(ctx context.Context, productID, id uuid.UUID) (*ReviewResponse, error) {
	review, err := s.findForProduct(ctx, productID, id)
	if err != nil {
		return nil, err
	}

	resp := ToReviewResponse(review)
	return &resp, nil
}

// ListByProduct retrieves the reviews of a product
func (s *ReviewService) ListByProduct(ctx context.Context, productID uuid.UUID, filter ReviewListFilter) ([]ReviewResponse, *ListMeta, error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return nil, nil, err
	}

	domainFilter := shared.DefaultFilter()
	domainFilter.OrderBy = "date"
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}

	page, err := s.reviewRepo.FindByProduct(ctx, productID, domainFilter)
	if err != nil {
		return nil, nil, err
	}

	responses := make([]ReviewResponse, len(page.Items))
	for i, r := range page.Items {
		responses[i] = ToReviewResponse(&r)
	}

	meta := &ListMeta{
		Page:       page.Page,
		PageSize:   page.PageSize,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	}
	return responses, meta, nil
}

// Update updates a review's text; the date is immutable
func (s *ReviewService) Update(ctx context.Context, productID, id uuid.UUID, req UpdateReviewRequest) (*ReviewResponse, error) {
	review, err := s.findForProduct(ctx, productID, id)
	if err != nil {
		return nil, err
	}

	if err := review.Update(req.Name, req.Description); err != nil {
		return nil, err
	}

	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	resp := ToReviewResponse(review)
	return &resp, nil
}

// Delete removes a review from a product
func (s *ReviewService) Delete(ctx context.Context, productID, id uuid.UUID) error {
	if _, err := s.findForProduct(ctx, productID, id); err != nil {
		return err
	}

	return s.reviewRepo.Delete(ctx, id)
}

// findForProduct loads a review and checks it belongs to the product
func (s *ReviewService) findForProduct(ctx context.Context, productID, id uuid.UUID) (*catalog.Review, error) {
	review, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review.ProductID != productID {
		return nil, shared.ErrNotFound
	}
	return review, nil
}

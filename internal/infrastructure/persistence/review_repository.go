package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

// GormReviewRepository implements ReviewRepository using GORM
type GormReviewRepository struct {
	db *gorm.DB
}

// NewGormReviewRepository creates a new GormReviewRepository
func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// FindByID finds a review by its ID
func (r *GormReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Review, error) {
	var review catalog.Review
	if err := r.db.WithContext(ctx).First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &review, nil
}

// FindByProduct finds reviews for a product matching the filter
func (r *GormReviewRepository) FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) (shared.Paginated[catalog.Review], error) {
	filter.Normalize()

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.Review{}).
		Where("product_id = ?", productID).
		Count(&total).Error; err != nil {
		return shared.Paginated[catalog.Review]{}, err
	}

	var reviews []catalog.Review
	query := r.db.WithContext(ctx).
		Model(&catalog.Review{}).
		Where("product_id = ?", productID).
		Order(orderClause(filter, map[string]string{
			"date":       "date",
			"created_at": "created_at",
		}, "date DESC")).
		Offset(filter.Offset()).
		Limit(filter.PageSize)

	if err := query.Find(&reviews).Error; err != nil {
		return shared.Paginated[catalog.Review]{}, err
	}

	return shared.NewPaginated(reviews, total, filter.Page, filter.PageSize), nil
}

// Save creates a review
func (r *GormReviewRepository) Save(ctx context.Context, review *catalog.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

// Update updates an existing review
func (r *GormReviewRepository) Update(ctx context.Context, review *catalog.Review) error {
	result := r.db.WithContext(ctx).Save(review)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes a review
func (r *GormReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Review{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormReviewRepository implements ReviewRepository
var _ catalog.ReviewRepository = (*GormReviewRepository)(nil)

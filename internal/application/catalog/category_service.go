package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

// CategoryService handles category business operations
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
	productRepo  catalog.ProductRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(
	categoryRepo catalog.CategoryRepository,
	productRepo catalog.ProductRepository,
) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

// Create creates a new category
func (s *CategoryService) Create(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	category, err := catalog.NewCategory(req.Name)
	if err != nil {
		return nil, err
	}

	if req.FeaturedProductID != nil {
		if _, err := s.productRepo.FindByID(ctx, *req.FeaturedProductID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_PRODUCT", "Featured product not found")
			}
			return nil, err
		}
		category.SetFeaturedProduct(req.FeaturedProductID)
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	resp := ToCategoryResponse(category, 0)
	return &resp, nil
}

// GetByID retrieves a category with its live product count
func (s *CategoryService) GetByID(ctx context.Context, id uuid.UUID) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := s.productRepo.CountByCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := ToCategoryResponse(category, count)
	return &resp, nil
}

// List retrieves categories with per-category product counts
func (s *CategoryService) List(ctx context.Context, filter CategoryListFilter) ([]CategoryResponse, *ListMeta, error) {
	domainFilter := shared.DefaultFilter()
	domainFilter.Search = filter.Search
	domainFilter.OrderBy = "name"
	domainFilter.OrderDir = "asc"
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}

	page, err := s.categoryRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, nil, err
	}

	counts, err := s.productRepo.CountsByCategory(ctx)
	if err != nil {
		return nil, nil, err
	}

	responses := make([]CategoryResponse, len(page.Items))
	for i, c := range page.Items {
		responses[i] = ToCategoryResponse(&c, counts[c.ID])
	}

	meta := &ListMeta{
		Page:       page.Page,
		PageSize:   page.PageSize,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	}
	return responses, meta, nil
}

// Update updates a category
func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, req UpdateCategoryRequest) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := category.Update(*req.Name); err != nil {
			return nil, err
		}
	}

	if req.FeaturedProductID != nil {
		if _, err := s.productRepo.FindByID(ctx, *req.FeaturedProductID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_PRODUCT", "Featured product not found")
			}
			return nil, err
		}
		category.SetFeaturedProduct(req.FeaturedProductID)
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	count, err := s.productRepo.CountByCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := ToCategoryResponse(category, count)
	return &resp, nil
}

// Delete deletes a category. Deletion is refused while any product
// still references the category.
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.categoryRepo.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := s.productRepo.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.NewDomainError("CONFLICT", "Cannot delete category with associated products")
	}

	return s.categoryRepo.Delete(ctx, id)
}

package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

// OrderReferenceCounter reports how many order lines reference a product.
// Satisfied by the ordering repository.
type OrderReferenceCounter interface {
	CountItemsByProduct(ctx context.Context, productID uuid.UUID) (int64, error)
}

// ProductService handles product business operations
type ProductService struct {
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
	orderRefs    OrderReferenceCounter
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	categoryRepo catalog.CategoryRepository,
	orderRefs OrderReferenceCounter,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		orderRefs:    orderRefs,
	}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	if _, err := s.categoryRepo.FindByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_CATEGORY", "Category not found")
		}
		return nil, err
	}

	price := valueobject.NewMoneyUSD(req.UnitPrice)
	product, err := catalog.NewProduct(req.Name, req.Slug, req.Description, price, req.StockQuantity, req.CategoryID)
	if err != nil {
		return nil, err
	}
	if req.ImageURL != "" {
		product.SetImageURL(req.ImageURL)
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// List retrieves products with filtering, search, ordering and pagination
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) ([]ProductResponse, *ListMeta, error) {
	domainFilter := shared.DefaultFilter()
	domainFilter.Search = filter.Search
	if filter.CategoryID != nil {
		domainFilter.Filters["category_id"] = *filter.CategoryID
	}
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}

	page, err := s.productRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, nil, err
	}

	responses := make([]ProductResponse, len(page.Items))
	for i, p := range page.Items {
		responses[i] = ToProductResponse(&p)
	}

	meta := &ListMeta{
		Page:       page.Page,
		PageSize:   page.PageSize,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	}
	return responses, meta, nil
}

// Update updates a product
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		slug := product.Slug
		if req.Slug != nil {
			slug = *req.Slug
		}
		description := product.Description
		if req.Description != nil {
			description = *req.Description
		}
		if err := product.Update(*req.Name, slug, description); err != nil {
			return nil, err
		}
	} else if req.Slug != nil || req.Description != nil {
		slug := product.Slug
		if req.Slug != nil {
			slug = *req.Slug
		}
		description := product.Description
		if req.Description != nil {
			description = *req.Description
		}
		if err := product.Update(product.Name, slug, description); err != nil {
			return nil, err
		}
	}

	if req.UnitPrice != nil {
		if err := product.SetUnitPrice(valueobject.NewMoneyUSD(*req.UnitPrice)); err != nil {
			return nil, err
		}
	}

	if req.StockQuantity != nil {
		if err := product.SetStockQuantity(*req.StockQuantity); err != nil {
			return nil, err
		}
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ctx, *req.CategoryID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_CATEGORY", "Category not found")
			}
			return nil, err
		}
		if err := product.SetCategory(*req.CategoryID); err != nil {
			return nil, err
		}
	}

	if req.ImageURL != nil {
		product.SetImageURL(*req.ImageURL)
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// Delete deletes a product. Deletion is refused while any order line
// still references the product.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return err
	}

	refs, err := s.orderRefs.CountItemsByProduct(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return shared.NewDomainError("CONFLICT", "Cannot delete product referenced by order items")
	}

	return s.productRepo.Delete(ctx, id)
}

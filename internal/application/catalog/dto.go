package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/catalog"
)

// CreateCategoryRequest represents a request to create a category
type CreateCategoryRequest struct {
	Name              string     `json:"name" binding:"required,min=1,max=255"`
	FeaturedProductID *uuid.UUID `json:"featured_product_id"`
}

// UpdateCategoryRequest represents a request to update a category
type UpdateCategoryRequest struct {
	Name              *string    `json:"name" binding:"omitempty,min=1,max=255"`
	FeaturedProductID *uuid.UUID `json:"featured_product_id"`
}

// CategoryResponse represents a category in API responses,
// including the live count of products referencing it
type CategoryResponse struct {
	ID                uuid.UUID  `json:"id"`
	Name              string     `json:"name"`
	FeaturedProductID *uuid.UUID `json:"featured_product_id,omitempty"`
	ProductCount      int64      `json:"product_count"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	Version           int        `json:"version"`
}

// CategoryListFilter represents filter options for category lists
type CategoryListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ToCategoryResponse converts a domain Category to CategoryResponse
func ToCategoryResponse(c *catalog.Category, productCount int64) CategoryResponse {
	return CategoryResponse{
		ID:                c.ID,
		Name:              c.Name,
		FeaturedProductID: c.FeaturedProductID,
		ProductCount:      productCount,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
		Version:           c.Version,
	}
}

// CreateProductRequest represents a request to create a product
type CreateProductRequest struct {
	Name          string          `json:"name" binding:"required,min=1,max=255"`
	Slug          string          `json:"slug" binding:"max=255"`
	Description   string          `json:"description"`
	UnitPrice     decimal.Decimal `json:"unit_price" binding:"required"`
	StockQuantity int             `json:"stock_quantity" binding:"required,min=1"`
	ImageURL      string          `json:"image_url" binding:"max=500"`
	CategoryID    uuid.UUID       `json:"category_id" binding:"required"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name          *string          `json:"name" binding:"omitempty,min=1,max=255"`
	Slug          *string          `json:"slug" binding:"omitempty,max=255"`
	Description   *string          `json:"description"`
	UnitPrice     *decimal.Decimal `json:"unit_price"`
	StockQuantity *int             `json:"stock_quantity" binding:"omitempty,min=1"`
	ImageURL      *string          `json:"image_url" binding:"omitempty,max=500"`
	CategoryID    *uuid.UUID       `json:"category_id"`
}

// ProductResponse represents a product in API responses.
// PriceWithTax is computed at read time and never persisted.
type ProductResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Slug          string          `json:"slug"`
	Description   string          `json:"description"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	PriceWithTax  decimal.Decimal `json:"price_with_tax"`
	StockQuantity int             `json:"stock_quantity"`
	ImageURL      string          `json:"image_url,omitempty"`
	CategoryID    uuid.UUID       `json:"category_id"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Version       int             `json:"version"`
}

// SimpleProductResponse is the compact product projection embedded in
// cart and order line views
type SimpleProductResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// ProductListFilter represents filter options for product lists
type ProductListFilter struct {
	Search     string     `form:"search"`
	CategoryID *uuid.UUID `form:"category_id"`
	Page       int        `form:"page"`
	PageSize   int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string     `form:"order_by" binding:"omitempty,oneof=unit_price name created_at"`
	OrderDir   string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Slug:          p.Slug,
		Description:   p.Description,
		UnitPrice:     p.UnitPrice,
		PriceWithTax:  p.PriceWithTax().Amount(),
		StockQuantity: p.StockQuantity,
		ImageURL:      p.ImageURL,
		CategoryID:    p.CategoryID,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		Version:       p.Version,
	}
}

// ToSimpleProductResponse converts a domain Product to the compact projection
func ToSimpleProductResponse(p *catalog.Product) SimpleProductResponse {
	return SimpleProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		UnitPrice: p.UnitPrice,
	}
}

// CreateReviewRequest represents a request to add a product review
type CreateReviewRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"required"`
}

// UpdateReviewRequest represents a request to update a review's text
type UpdateReviewRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"required"`
}

// ReviewResponse represents a review in API responses
type ReviewResponse struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"product_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
}

// ReviewListFilter represents filter options for review lists
type ReviewListFilter struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ToReviewResponse converts a domain Review to ReviewResponse
func ToReviewResponse(r *catalog.Review) ReviewResponse {
	return ReviewResponse{
		ID:          r.ID,
		ProductID:   r.ProductID,
		Name:        r.Name,
		Description: r.Description,
		Date:        r.Date.Format("2006-01-02"),
	}
}

// ListMeta carries pagination metadata for list responses
type ListMeta struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	appcatalog "github.com/storefront/backend/internal/application/catalog"
)

// AddItemRequest represents a request to add a product to a cart
type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// UpdateItemRequest represents a request to replace a line's quantity
type UpdateItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// ItemResponse is a resolved cart line: the stored quantity joined with
// the product's live price
type ItemResponse struct {
	ID        uuid.UUID                        `json:"id"`
	Product   appcatalog.SimpleProductResponse `json:"product"`
	Quantity  int                              `json:"quantity"`
	LineTotal decimal.Decimal                  `json:"line_total"`
}

// CartResponse represents a cart with resolved lines and computed total
type CartResponse struct {
	ID        uuid.UUID       `json:"id"`
	Items     []ItemResponse  `json:"items"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
}

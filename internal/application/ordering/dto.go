package ordering

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/ordering"
)

// PlaceOrderRequest represents a request to place an order from a cart
type PlaceOrderRequest struct {
	CustomerID uuid.UUID `json:"customer_id" binding:"required"`
	CartID     uuid.UUID `json:"cart_id" binding:"required"`
}

// UpdatePaymentStatusRequest represents a direct payment status assignment
type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required,oneof=pending complete failed"`
}

// ItemResponse is an order line with its frozen unit price
type ItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID            uuid.UUID       `json:"id"`
	CustomerID    uuid.UUID       `json:"customer_id"`
	PaymentStatus string          `json:"payment_status"`
	Items         []ItemResponse  `json:"items"`
	Total         decimal.Decimal `json:"total"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Version       int             `json:"version"`
}

// OrderListFilter represents filter options for order lists
type OrderListFilter struct {
	CustomerID    *uuid.UUID `form:"customer_id"`
	PaymentStatus string     `form:"payment_status" binding:"omitempty,oneof=pending complete failed"`
	Page          int        `form:"page"`
	PageSize      int        `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ListMeta carries pagination metadata for list responses
type ListMeta struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// ToOrderResponse converts a domain Order to OrderResponse
func ToOrderResponse(o *ordering.Order) OrderResponse {
	items := make([]ItemResponse, len(o.Items))
	for i := range o.Items {
		item := &o.Items[i]
		items[i] = ItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal().Amount(),
		}
	}

	return OrderResponse{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		PaymentStatus: string(o.PaymentStatus),
		Items:         items,
		Total:         o.Total().Amount(),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
		Version:       o.Version,
	}
}

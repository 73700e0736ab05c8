package customer

import (
	"time"

	"github.com/google/uuid"

	"github.com/storefront/backend/internal/domain/customer"
)

// CreateCustomerRequest represents a request to create a customer profile
type CreateCustomerRequest struct {
	UserID    uuid.UUID  `json:"user_id" binding:"required"`
	Phone     string     `json:"phone" binding:"required,max=32"`
	BirthDate *time.Time `json:"birth_date" time_format:"2006-01-02"`
	Address   string     `json:"address" binding:"max=500"`
}

// UpdateCustomerRequest represents a request to update a customer profile
type UpdateCustomerRequest struct {
	Phone     *string    `json:"phone" binding:"omitempty,max=32"`
	BirthDate *time.Time `json:"birth_date" time_format:"2006-01-02"`
	Address   *string    `json:"address" binding:"omitempty,max=500"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Phone     string     `json:"phone"`
	BirthDate *string    `json:"birth_date,omitempty"`
	Address   string     `json:"address,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Version   int        `json:"version"`
}

// CustomerListFilter represents filter options for customer lists
type CustomerListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ListMeta carries pagination metadata for list responses
type ListMeta struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// ToCustomerResponse converts a domain Customer to CustomerResponse
func ToCustomerResponse(c *customer.Customer) CustomerResponse {
	resp := CustomerResponse{
		ID:        c.ID,
		UserID:    c.UserID,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Version:   c.Version,
	}
	if c.BirthDate != nil {
		d := c.BirthDate.Format("2006-01-02")
		resp.BirthDate = &d
	}
	return resp
}

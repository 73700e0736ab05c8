package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/storefront/backend/internal/domain/shared"
)

// Review is a customer review scoped to a single product.
// The review date is assigned at creation and never changes.
type Review struct {
	shared.BaseEntity
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	Date        time.Time `gorm:"type:date;not null"`
}

// TableName returns the table name for GORM
func (Review) TableName() string {
	return "reviews"
}

// NewReview creates a new review for a product with the date set to today
func NewReview(productID uuid.UUID, name, description string) (*Review, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Review product is required")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Reviewer name cannot be empty")
	}
	if len(name) > 255 {
		return nil, shared.NewDomainError("INVALID_NAME", "Reviewer name cannot exceed 255 characters")
	}
	if description == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Review description cannot be empty")
	}

	now := time.Now()
	return &Review{
		BaseEntity:  shared.NewBaseEntity(),
		ProductID:   productID,
		Name:        name,
		Description: description,
		Date:        time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
	}, nil
}

// Update updates the review text. The date is immutable.
func (r *Review) Update(name, description string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Reviewer name cannot be empty")
	}
	if description == "" {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Review description cannot be empty")
	}

	r.Name = name
	r.Description = description
	r.UpdatedAt = time.Now()

	return nil
}

package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/storefront/backend/internal/domain/shared"
)

// Category groups products in the catalog.
// Deleting a category is blocked while products still reference it.
type Category struct {
	shared.BaseAggregateRoot
	Name              string     `gorm:"type:varchar(255);not null;index"`
	FeaturedProductID *uuid.UUID `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a new category
func NewCategory(name string) (*Category, error) {
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}

	return &Category{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
	}, nil
}

// Update updates the category name
func (c *Category) Update(name string) error {
	if err := validateCategoryName(name); err != nil {
		return err
	}

	c.Name = name
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetFeaturedProduct sets or clears the featured product reference
func (c *Category) SetFeaturedProduct(productID *uuid.UUID) {
	c.FeaturedProductID = productID
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

func validateCategoryName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot be empty")
	}
	if len(name) > 255 {
		return shared.NewDomainError("INVALID_NAME", "Category name cannot exceed 255 characters")
	}
	return nil
}

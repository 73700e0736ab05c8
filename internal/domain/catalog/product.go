package catalog

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

// TaxRate is the flat tax rate applied when presenting prices.
// Prices are stored net of tax; price-with-tax is computed at read time.
var TaxRate = decimal.NewFromFloat(0.1)

// Product is a sellable catalog item. Prices are carried as net unit
// prices; order lines snapshot the unit price at placement time.
type Product struct {
	shared.BaseAggregateRoot
	Name          string          `gorm:"type:varchar(255);not null;index"`
	Slug          string          `gorm:"type:varchar(255);not null;index"`
	Description   string          `gorm:"type:text"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	StockQuantity int             `gorm:"not null"`
	ImageURL      string          `gorm:"type:varchar(500)"`
	CategoryID    uuid.UUID       `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product in the given category.
// An empty slug is derived from the name.
func NewProduct(name, slug, description string, unitPrice valueobject.Money, stockQuantity int, categoryID uuid.UUID) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if err := validateUnitPrice(unitPrice); err != nil {
		return nil, err
	}
	if err := validateStockQuantity(stockQuantity); err != nil {
		return nil, err
	}
	if categoryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Product category is required")
	}
	if slug == "" {
		slug = Slugify(name)
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Slug:              slug,
		Description:       description,
		UnitPrice:         unitPrice.Amount(),
		StockQuantity:     stockQuantity,
		CategoryID:        categoryID,
	}, nil
}

// Update updates the product's basic information
func (p *Product) Update(name, slug, description string) error {
	if err := validateProductName(name); err != nil {
		return err
	}
	if slug == "" {
		slug = Slugify(name)
	}

	p.Name = name
	p.Slug = slug
	p.Description = description
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetUnitPrice updates the net unit price
func (p *Product) SetUnitPrice(price valueobject.Money) error {
	if err := validateUnitPrice(price); err != nil {
		return err
	}

	p.UnitPrice = price.Amount()
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetStockQuantity updates the stock level
func (p *Product) SetStockQuantity(quantity int) error {
	if err := validateStockQuantity(quantity); err != nil {
		return err
	}

	p.StockQuantity = quantity
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetCategory moves the product to another category
func (p *Product) SetCategory(categoryID uuid.UUID) error {
	if categoryID == uuid.Nil {
		return shared.NewDomainError("INVALID_CATEGORY", "Product category is required")
	}

	p.CategoryID = categoryID
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetImageURL updates the product image URL
func (p *Product) SetImageURL(url string) {
	p.ImageURL = url
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// Price returns the net unit price as Money
func (p *Product) Price() valueobject.Money {
	return valueobject.NewMoneyUSD(p.UnitPrice)
}

// PriceWithTax returns the unit price with the flat tax rate applied.
// The result is exact: presentation rounding is left to callers.
func (p *Product) PriceWithTax() valueobject.Money {
	return p.Price().WithTax(TaxRate)
}

// Slugify derives a URL slug from a product name
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 255 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 255 characters")
	}
	return nil
}

func validateUnitPrice(price valueobject.Money) error {
	if !price.IsPositive() {
		return shared.NewDomainError("INVALID_PRICE", "Unit price must be positive")
	}
	return nil
}

func validateStockQuantity(quantity int) error {
	if quantity < 1 {
		return shared.NewDomainError("INVALID_STOCK", "Stock quantity must be at least 1")
	}
	return nil
}

package cart

import (
	"time"

	"github.com/google/uuid"

	"github.com/storefront/backend/internal/domain/shared"
)

// Cart is an anonymous shopping cart. Its ID doubles as the opaque
// token clients hold; possession of the token grants access.
type Cart struct {
	shared.BaseAggregateRoot
	Items []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (Cart) TableName() string {
	return "carts"
}

// NewCart creates a new empty cart
func NewCart() *Cart {
	return &Cart{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
	}
}

// CartItem is a line in a cart. A cart holds at most one line per
// product; adding the same product again merges quantities.
type CartItem struct {
	shared.BaseEntity
	CartID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_product"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_product"`
	Quantity  int       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CartItem) TableName() string {
	return "cart_items"
}

// NewCartItem creates a new cart line
func NewCartItem(cartID, productID uuid.UUID, quantity int) (*CartItem, error) {
	if cartID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CART", "Cart is required")
	}
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product is required")
	}
	if err := ValidateQuantity(quantity); err != nil {
		return nil, err
	}

	return &CartItem{
		BaseEntity: shared.NewBaseEntity(),
		CartID:     cartID,
		ProductID:  productID,
		Quantity:   quantity,
	}, nil
}

// SetQuantity replaces the line quantity
func (i *CartItem) SetQuantity(quantity int) error {
	if err := ValidateQuantity(quantity); err != nil {
		return err
	}

	i.Quantity = quantity
	i.UpdatedAt = time.Now()

	return nil
}

// ValidateQuantity checks that a line quantity is at least 1
func ValidateQuantity(quantity int) error {
	if quantity < 1 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	}
	return nil
}

package cart

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence port for carts and their items
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Cart, error)
	Save(ctx context.Context, cart *Cart) error
	// Delete removes the cart and cascades to its items
	Delete(ctx context.Context, id uuid.UUID) error

	FindItem(ctx context.Context, cartID, itemID uuid.UUID) (*CartItem, error)
	FindItemByProduct(ctx context.Context, cartID, productID uuid.UUID) (*CartItem, error)
	SaveItem(ctx context.Context, item *CartItem) error
	UpdateItem(ctx context.Context, item *CartItem) error
	DeleteItem(ctx context.Context, cartID, itemID uuid.UUID) error
	// IncrementItemQuantity atomically adds to an existing line's quantity,
	// so concurrent merges of the same product cannot lose updates.
	// Returns false if no line exists for the product.
	IncrementItemQuantity(ctx context.Context, cartID, productID uuid.UUID, delta int) (bool, error)
}

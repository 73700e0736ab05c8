package ordering

import (
	"context"

	"github.com/google/uuid"

	"github.com/storefront/backend/internal/domain/shared"
)

// Repository is the persistence port for orders
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[Order], error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) (shared.Paginated[Order], error)
	// Save persists the order together with its lines
	Save(ctx context.Context, order *Order) error
	Update(ctx context.Context, order *Order) error
	Delete(ctx context.Context, id uuid.UUID) error
	// CountItemsByProduct returns how many order lines reference a product.
	// Products with referencing lines must not be deleted.
	CountItemsByProduct(ctx context.Context, productID uuid.UUID) (int64, error)
}

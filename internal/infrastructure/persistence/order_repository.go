package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storefront/backend/internal/domain/ordering"
	"github.com/storefront/backend/internal/domain/shared"
)

// GormOrderRepository implements ordering.Repository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order by its ID with its lines preloaded
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Order, error) {
	var order ordering.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindAll finds all orders matching the filter
func (r *GormOrderRepository) FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[ordering.Order], error) {
	return r.findPage(ctx, r.db.WithContext(ctx).Model(&ordering.Order{}), filter)
}

// FindByCustomer finds a customer's orders matching the filter
func (r *GormOrderRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) (shared.Paginated[ordering.Order], error) {
	query := r.db.WithContext(ctx).
		Model(&ordering.Order{}).
		Where("customer_id = ?", customerID)
	return r.findPage(ctx, query, filter)
}

func (r *GormOrderRepository) findPage(ctx context.Context, query *gorm.DB, filter shared.Filter) (shared.Paginated[ordering.Order], error) {
	filter.Normalize()

	if status, ok := filter.Filters["payment_status"]; ok {
		query = query.Where("payment_status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return shared.Paginated[ordering.Order]{}, err
	}

	var orders []ordering.Order
	if err := query.
		Preload("Items").
		Order(orderClause(filter, map[string]string{
			"created_at": "created_at",
		}, "created_at DESC")).
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&orders).Error; err != nil {
		return shared.Paginated[ordering.Order]{}, err
	}

	return shared.NewPaginated(orders, total, filter.Page, filter.PageSize), nil
}

// Save persists the order together with its lines
func (r *GormOrderRepository) Save(ctx context.Context, order *ordering.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// Update updates an existing order. Lines are immutable and left untouched.
func (r *GormOrderRepository) Update(ctx context.Context, order *ordering.Order) error {
	result := r.db.WithContext(ctx).
		Omit("Items").
		Save(order)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes the order and its lines
func (r *GormOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&ordering.OrderItem{}, "order_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&ordering.Order{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// CountItemsByProduct counts order lines referencing a product
func (r *GormOrderRepository) CountItemsByProduct(ctx context.Context, productID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&ordering.OrderItem{}).
		Where("product_id = ?", productID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormOrderRepository implements ordering.Repository
var _ ordering.Repository = (*GormOrderRepository)(nil)

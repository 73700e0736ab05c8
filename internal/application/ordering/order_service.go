package ordering

import (
	"context"

	"github.com/google/uuid"

	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/customer"
	"github.com/storefront/backend/internal/domain/ordering"
	"github.com/storefront/backend/internal/domain/shared"
)

// Service handles order business operations. Placing an order freezes
// each product's current unit price into the order lines and consumes
// the cart.
type Service struct {
	orderRepo    ordering.Repository
	cartRepo     cart.Repository
	productRepo  catalog.ProductRepository
	customerRepo customer.Repository

	idempotencyStore shared.IdempotencyStore
	idempotencyCfg   shared.IdempotencyConfig
}

// NewService creates a new order Service. The idempotency store may be
// nil, in which case duplicate-placement protection is disabled.
func NewService(
	orderRepo ordering.Repository,
	cartRepo cart.Repository,
	productRepo catalog.ProductRepository,
	customerRepo customer.Repository,
	idempotencyStore shared.IdempotencyStore,
	idempotencyCfg shared.IdempotencyConfig,
) *Service {
	return &Service{
		orderRepo:        orderRepo,
		cartRepo:         cartRepo,
		productRepo:      productRepo,
		customerRepo:     customerRepo,
		idempotencyStore: idempotencyStore,
		idempotencyCfg:   idempotencyCfg,
	}
}

// PlaceOrder creates an order from a cart. Every line snapshots the
// product's unit price at this moment; the cart is deleted afterwards.
// A non-empty idempotencyKey makes retried placements reject as duplicates.
func (s *Service) PlaceOrder(ctx context.Context, req PlaceOrderRequest, idempotencyKey string) (*OrderResponse, error) {
	if idempotencyKey != "" && s.idempotencyStore != nil && s.idempotencyCfg.Enabled {
		fresh, err := s.idempotencyStore.MarkProcessed(ctx, "order:"+idempotencyKey, s.idempotencyCfg.TTL)
		if err != nil {
			return nil, err
		}
		if !fresh {
			return nil, shared.NewDomainError("DUPLICATE_REQUEST", "Order with this idempotency key was already placed")
		}
	}

	if _, err := s.customerRepo.FindByID(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	c, err := s.cartRepo.FindByID(ctx, req.CartID)
	if err != nil {
		return nil, err
	}
	if len(c.Items) == 0 {
		return nil, shared.NewDomainError("EMPTY_CART", "Cannot place an order from an empty cart")
	}

	ids := make([]uuid.UUID, len(c.Items))
	for i, item := range c.Items {
		ids[i] = item.ProductID
	}
	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*catalog.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	order, err := ordering.NewOrder(req.CustomerID)
	if err != nil {
		return nil, err
	}
	for _, item := range c.Items {
		product, ok := byID[item.ProductID]
		if !ok {
			return nil, shared.ErrNotFound
		}
		if err := order.AddLine(product.ID, item.Quantity, product.Price()); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	// the cart is consumed by the order
	if err := s.cartRepo.Delete(ctx, req.CartID); err != nil {
		return nil, err
	}

	resp := ToOrderResponse(order)
	return &resp, nil
}

// GetByID retrieves an order with its lines
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := ToOrderResponse(order)
	return &resp, nil
}

// List retrieves orders, optionally filtered by customer and payment status
func (s *Service) List(ctx context.Context, filter OrderListFilter) ([]OrderResponse, *ListMeta, error) {
	domainFilter := shared.DefaultFilter()
	if filter.PaymentStatus != "" {
		domainFilter.Filters["payment_status"] = filter.PaymentStatus
	}
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}

	var page shared.Paginated[ordering.Order]
	var err error
	if filter.CustomerID != nil {
		page, err = s.orderRepo.FindByCustomer(ctx, *filter.CustomerID, domainFilter)
	} else {
		page, err = s.orderRepo.FindAll(ctx, domainFilter)
	}
	if err != nil {
		return nil, nil, err
	}

	responses := make([]OrderResponse, len(page.Items))
	for i := range page.Items {
		responses[i] = ToOrderResponse(&page.Items[i])
	}

	meta := &ListMeta{
		Page:       page.Page,
		PageSize:   page.PageSize,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	}
	return responses, meta, nil
}

// UpdatePaymentStatus assigns the order's payment status
func (s *Service) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, req UpdatePaymentStatusRequest) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := order.SetPaymentStatus(ordering.PaymentStatus(req.PaymentStatus)); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	resp := ToOrderResponse(order)
	return &resp, nil
}

// Delete deletes an order and its lines
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.orderRepo.FindByID(ctx, id); err != nil {
		return err
	}

	return s.orderRepo.Delete(ctx, id)
}

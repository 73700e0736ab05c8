package cart

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	appcatalog "github.com/storefront/backend/internal/application/catalog"
	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

// Service handles cart business operations. Line totals and the cart
// total are computed from live product prices at read time; nothing
// monetary is stored on the cart.
type Service struct {
	cartRepo    cart.Repository
	productRepo catalog.ProductRepository
}

// NewService creates a new cart Service
func NewService(cartRepo cart.Repository, productRepo catalog.ProductRepository) *Service {
	return &Service{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// Create creates a new empty cart and returns its token
func (s *Service) Create(ctx context.Context) (*CartResponse, error) {
	c := cart.NewCart()
	if err := s.cartRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	return s.toCartResponse(ctx, c)
}

// Get retrieves a cart with resolved lines and computed totals
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*CartResponse, error) {
	c, err := s.cartRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.toCartResponse(ctx, c)
}

// AddItem adds a product to a cart. If the cart already holds a line for
// the product, the quantities are merged into that line.
func (s *Service) AddItem(ctx context.Context, cartID uuid.UUID, req AddItemRequest) (*ItemResponse, error) {
	if _, err := s.cartRepo.FindByID(ctx, cartID); err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	if err := cart.ValidateQuantity(req.Quantity); err != nil {
		return nil, err
	}

	merged, err := s.cartRepo.IncrementItemQuantity(ctx, cartID, req.ProductID, req.Quantity)
	if err != nil {
		return nil, err
	}
	if !merged {
		item, err := cart.NewCartItem(cartID, req.ProductID, req.Quantity)
		if err != nil {
			return nil, err
		}
		if err := s.cartRepo.SaveItem(ctx, item); err != nil {
			// A concurrent add for the same product won the insert race;
			// fall back to merging into its line.
			if errors.Is(err, shared.ErrAlreadyExists) {
				if _, err := s.cartRepo.IncrementItemQuantity(ctx, cartID, req.ProductID, req.Quantity); err != nil {
					return nil, err
				}
			} else {
				return nil, err
			}
		}
	}

	item, err := s.cartRepo.FindItemByProduct(ctx, cartID, req.ProductID)
	if err != nil {
		return nil, err
	}

	resp := toItemResponse(item, product)
	return &resp, nil
}

// UpdateItemQuantity replaces a line's quantity
func (s *Service) UpdateItemQuantity(ctx context.Context, cartID, itemID uuid.UUID, req UpdateItemRequest) (*ItemResponse, error) {
	item, err := s.cartRepo.FindItem(ctx, cartID, itemID)
	if err != nil {
		return nil, err
	}

	if err := item.SetQuantity(req.Quantity); err != nil {
		return nil, err
	}

	if err := s.cartRepo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(ctx, item.ProductID)
	if err != nil {
		return nil, err
	}

	resp := toItemResponse(item, product)
	return &resp, nil
}

// RemoveItem removes a line from a cart
func (s *Service) RemoveItem(ctx context.Context, cartID, itemID uuid.UUID) error {
	return s.cartRepo.DeleteItem(ctx, cartID, itemID)
}

// Delete deletes a cart and all of its lines
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.cartRepo.Delete(ctx, id)
}

// toCartResponse resolves the cart's lines against current products
func (s *Service) toCartResponse(ctx context.Context, c *cart.Cart) (*CartResponse, error) {
	resp := &CartResponse{
		ID:        c.ID,
		Items:     []ItemResponse{},
		Total:     decimal.Zero,
		CreatedAt: c.CreatedAt,
	}
	if len(c.Items) == 0 {
		return resp, nil
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

	for i := range c.Items {
		product, ok := byID[c.Items[i].ProductID]
		if !ok {
			// product row vanished between loads; the line carries no price
			continue
		}
		line := toItemResponse(&c.Items[i], product)
		resp.Items = append(resp.Items, line)
		resp.Total = resp.Total.Add(line.LineTotal)
	}

	return resp, nil
}

func toItemResponse(item *cart.CartItem, product *catalog.Product) ItemResponse {
	return ItemResponse{
		ID:        item.ID,
		Product:   appcatalog.ToSimpleProductResponse(product),
		Quantity:  item.Quantity,
		LineTotal: product.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))),
	}
}

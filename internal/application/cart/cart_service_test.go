package cart

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

// MockCartRepository is a mock implementation of cart.Repository
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) FindByID(ctx context.Context, id uuid.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartRepository) Save(ctx context.Context, c *cart.Cart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCartRepository) FindItem(ctx context.Context, cartID, itemID uuid.UUID) (*cart.CartItem, error) {
	args := m.Called(ctx, cartID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.CartItem), args.Error(1)
}

func (m *MockCartRepository) FindItemByProduct(ctx context.Context, cartID, productID uuid.UUID) (*cart.CartItem, error) {
	args := m.Called(ctx, cartID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.CartItem), args.Error(1)
}

func (m *MockCartRepository) SaveItem(ctx context.Context, item *cart.CartItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCartRepository) UpdateItem(ctx context.Context, item *cart.CartItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockCartRepository) DeleteItem(ctx context.Context, cartID, itemID uuid.UUID) error {
	args := m.Called(ctx, cartID, itemID)
	return args.Error(0)
}

func (m *MockCartRepository) IncrementItemQuantity(ctx context.Context, cartID, productID uuid.UUID, delta int) (bool, error) {
	args := m.Called(ctx, cartID, productID, delta)
	return args.Bool(0), args.Error(1)
}

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[catalog.Product], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.Paginated[catalog.Product]), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) CountsByCategory(ctx context.Context) (map[uuid.UUID]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[uuid.UUID]int64), args.Error(1)
}

func newTestProduct(t *testing.T, name string, price float64) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(name, "", "", valueobject.NewMoneyUSDFromFloat(price), 10, uuid.New())
	require.NoError(t, err)
	return p
}

func TestService_Create(t *testing.T) {
	cartRepo := new(MockCartRepository)
	svc := NewService(cartRepo, new(MockProductRepository))

	cartRepo.On("Save", mock.Anything, mock.AnythingOfType("*cart.Cart")).Return(nil)

	resp, err := svc.Create(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	assert.Empty(t, resp.Items)
	assert.True(t, resp.Total.IsZero())
}

func TestService_Get(t *testing.T) {
	t.Run("empty cart totals zero", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		svc := NewService(cartRepo, new(MockProductRepository))

		c := cart.NewCart()
		cartRepo.On("FindByID", mock.Anything, c.ID).Return(c, nil)

		resp, err := svc.Get(context.Background(), c.ID)
		require.NoError(t, err)
		assert.True(t, resp.Total.IsZero())
		assert.Empty(t, resp.Items)
	})

	t.Run("totals computed from live prices", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		svc := NewService(cartRepo, productRepo)

		beans := newTestProduct(t, "Beans", 10.00)
		milk := newTestProduct(t, "Milk", 2.50)

		c := cart.NewCart()
		line1, _ := cart.NewCartItem(c.ID, beans.ID, 2)
		line2, _ := cart.NewCartItem(c.ID, milk.ID, 4)
		c.Items = []cart.CartItem{*line1, *line2}

		cartRepo.On("FindByID", mock.Anything, c.ID).Return(c, nil)
		productRepo.On("FindByIDs", mock.Anything, mock.Anything).Return([]catalog.Product{*beans, *milk}, nil)

		resp, err := svc.Get(context.Background(), c.ID)
		require.NoError(t, err)
		require.Len(t, resp.Items, 2)
		assert.True(t, resp.Items[0].LineTotal.Equal(decimal.NewFromFloat(20.00)))
		assert.True(t, resp.Items[1].LineTotal.Equal(decimal.NewFromFloat(10.00)))
		assert.True(t, resp.Total.Equal(decimal.NewFromFloat(30.00)))
	})

	t.Run("unknown cart", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		svc := NewService(cartRepo, new(MockProductRepository))

		id := uuid.New()
		cartRepo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		_, err := svc.Get(context.Background(), id)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestService_AddItem(t *testing.T) {
	t.Run("new product inserts a line", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		svc := NewService(cartRepo, productRepo)

		beans := newTestProduct(t, "Beans", 10.00)
		c := cart.NewCart()
		line, _ := cart.NewCartItem(c.ID, beans.ID, 3)

		cartRepo.On("FindByID", mock.Anything, c.ID).Return(c, nil)
		productRepo.On("FindByID", mock.Anything, beans.ID).Return(beans, nil)
		cartRepo.On("IncrementItemQuantity", mock.Anything, c.ID, beans.ID, 3).Return(false, nil)
		cartRepo.On("SaveItem", mock.Anything, mock.AnythingOfType("*cart.CartItem")).Return(nil)
		cartRepo.On("FindItemByProduct", mock.Anything, c.ID, beans.ID).Return(line, nil)

		resp, err := svc.AddItem(context.Background(), c.ID, AddItemRequest{ProductID: beans.ID, Quantity: 3})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.Quantity)
		assert.True(t, resp.LineTotal.Equal(decimal.NewFromFloat(30.00)))
		cartRepo.AssertExpectations(t)
	})

	t.Run("existing product merges quantities", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		svc := NewService(cartRepo, productRepo)

		beans := newTestProduct(t, "Beans", 10.00)
		c := cart.NewCart()
		merged, _ := cart.NewCartItem(c.ID, beans.ID, 5)

		cartRepo.On("FindByID", mock.Anything, c.ID).Return(c, nil)
		productRepo.On("FindByID", mock.Anything, beans.ID).Return(beans, nil)
		cartRepo.On("IncrementItemQuantity", mock.Anything, c.ID, beans.ID, 2).Return(true, nil)
		cartRepo.On("FindItemByProduct", mock.Anything, c.ID, beans.ID).Return(merged, nil)

		resp, err := svc.AddItem(context.Background(), c.ID, AddItemRequest{ProductID: beans.ID, Quantity: 2})
		require.NoError(t, err)
		assert.Equal(t, 5, resp.Quantity)
		cartRepo.AssertNotCalled(t, "SaveItem", mock.Anything, mock.Anything)
	})

	t.Run("lost insert race falls back to merge", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		svc := NewService(cartRepo, productRepo)

		beans := newTestProduct(t, "Beans", 10.00)
		c := cart.NewCart()
		merged, _ := cart.NewCartItem(c.ID, beans.ID, 4)

		cartRepo.On("FindByID", mock.Anything, c.ID).Return(c, nil)
		productRepo.On("FindByID", mock.Anything, beans.ID).Return(beans, nil)
		cartRepo.On("IncrementItemQuantity", mock.Anything, c.ID, beans.ID, 2).Return(false, nil).Once()
		cartRepo.On("SaveItem", mock.Anything, mock.AnythingOfType("*cart.CartItem")).Return(shared.ErrAlreadyExists)
		cartRepo.On("IncrementItemQuantity", mock.Anything, c.ID, beans.ID, 2).Return(true, nil).Once()
		cartRepo.On("FindItemByProduct", mock.Anything, c.ID, beans.ID).Return(merged, nil)

		resp, err := svc.AddItem(context.Background(), c.ID, AddItemRequest{ProductID: beans.ID, Quantity: 2})
		require.NoError(t, err)
		assert.Equal(t, 4, resp.Quantity)
	})

	t.Run("unknown product", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		svc := NewService(cartRepo, productRepo)

		c := cart.NewCart()
		productID := uuid.New()
		cartRepo.On("FindByID", mock.Anything, c.ID).Return(c, nil)
		productRepo.On("FindByID", mock.Anything, productID).Return(nil, shared.ErrNotFound)

		_, err := svc.AddItem(context.Background(), c.ID, AddItemRequest{ProductID: productID, Quantity: 1})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("invalid quantity", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		productRepo := new(MockProductRepository)
		svc := NewService(cartRepo, productRepo)

		beans := newTestProduct(t, "Beans", 10.00)
		c := cart.NewCart()
		cartRepo.On("FindByID", mock.Anything, c.ID).Return(c, nil)
		productRepo.On("FindByID", mock.Anything, beans.ID).Return(beans, nil)

		_, err := svc.AddItem(context.Background(), c.ID, AddItemRequest{ProductID: beans.ID, Quantity: 0})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_QUANTITY", domainErr.Code)
	})
}

func TestService_UpdateItemQuantity(t *testing.T) {
	cartRepo := new(MockCartRepository)
	productRepo := new(MockProductRepository)
	svc := NewService(cartRepo, productRepo)

	beans := newTestProduct(t, "Beans", 10.00)
	c := cart.NewCart()
	line, _ := cart.NewCartItem(c.ID, beans.ID, 1)

	cartRepo.On("FindItem", mock.Anything, c.ID, line.ID).Return(line, nil)
	cartRepo.On("UpdateItem", mock.Anything, line).Return(nil)
	productRepo.On("FindByID", mock.Anything, beans.ID).Return(beans, nil)

	resp, err := svc.UpdateItemQuantity(context.Background(), c.ID, line.ID, UpdateItemRequest{Quantity: 7})
	require.NoError(t, err)
	assert.Equal(t, 7, resp.Quantity)
	assert.True(t, resp.LineTotal.Equal(decimal.NewFromFloat(70.00)))
}

func TestService_RemoveItem(t *testing.T) {
	t.Run("removes line", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		svc := NewService(cartRepo, new(MockProductRepository))

		cartID, itemID := uuid.New(), uuid.New()
		cartRepo.On("DeleteItem", mock.Anything, cartID, itemID).Return(nil)

		require.NoError(t, svc.RemoveItem(context.Background(), cartID, itemID))
	})

	t.Run("absent line is not found", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		svc := NewService(cartRepo, new(MockProductRepository))

		cartID, itemID := uuid.New(), uuid.New()
		cartRepo.On("DeleteItem", mock.Anything, cartID, itemID).Return(shared.ErrNotFound)

		assert.ErrorIs(t, svc.RemoveItem(context.Background(), cartID, itemID), shared.ErrNotFound)
	})
}

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/storefront/backend/internal/domain/ordering"
	"github.com/storefront/backend/internal/domain/shared"
)

func TestGormOrderRepository_FindByID(t *testing.T) {
	t.Run("finds order with lines preloaded", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormOrderRepository(db)

		orderID := uuid.New()
		customerID := uuid.New()
		productID := uuid.New()
		now := time.Now()

		orderRows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "version", "customer_id", "payment_status"}).
			AddRow(orderID, now, now, 1, customerID, "pending")
		itemRows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "order_id", "product_id", "quantity", "unit_price"}).
			AddRow(uuid.New(), now, now, orderID, productID, 2, decimal.NewFromFloat(10.00))

		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(orderID, 1).
			WillReturnRows(orderRows)
		mock.ExpectQuery(`SELECT \* FROM "order_items" WHERE "order_items"\."order_id" = \$1`).
			WithArgs(orderID).
			WillReturnRows(itemRows)

		order, err := repo.FindByID(context.Background(), orderID)

		assert.NoError(t, err)
		require.NotNil(t, order)
		assert.Equal(t, ordering.PaymentStatusPending, order.PaymentStatus)
		require.Len(t, order.Items, 1)
		assert.Equal(t, "20.00", order.Total().Amount().StringFixed(2))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for missing order", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormOrderRepository(db)

		orderID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "orders" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(orderID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		order, err := repo.FindByID(context.Background(), orderID)

		assert.Nil(t, order)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormOrderRepository_CountItemsByProduct(t *testing.T) {
	t.Run("counts referencing lines", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormOrderRepository(db)

		productID := uuid.New()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "order_items" WHERE product_id = \$1`).
			WithArgs(productID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		count, err := repo.CountItemsByProduct(context.Background(), productID)

		assert.NoError(t, err)
		assert.Equal(t, int64(2), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormOrderRepository_Delete(t *testing.T) {
	t.Run("deletes order and its lines", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormOrderRepository(db)

		orderID := uuid.New()

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "order_items" WHERE order_id = \$1`).
			WithArgs(orderID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`DELETE FROM "orders" WHERE id = \$1`).
			WithArgs(orderID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Delete(context.Background(), orderID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

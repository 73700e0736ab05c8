package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/shared"
)

func TestGormCartRepository_FindByID(t *testing.T) {
	t.Run("finds cart with items preloaded", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormCartRepository(db)

		cartID := uuid.New()
		itemID := uuid.New()
		productID := uuid.New()
		now := time.Now()

		cartRows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "version"}).
			AddRow(cartID, now, now, 1)
		itemRows := sqlmock.NewRows([]string{"id", "created_at", "updated_at", "cart_id", "product_id", "quantity"}).
			AddRow(itemID, now, now, cartID, productID, 2)

		mock.ExpectQuery(`SELECT \* FROM "carts" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(cartID, 1).
			WillReturnRows(cartRows)
		mock.ExpectQuery(`SELECT \* FROM "cart_items" WHERE "cart_items"\."cart_id" = \$1`).
			WithArgs(cartID).
			WillReturnRows(itemRows)

		c, err := repo.FindByID(context.Background(), cartID)

		assert.NoError(t, err)
		require.NotNil(t, c)
		require.Len(t, c.Items, 1)
		assert.Equal(t, productID, c.Items[0].ProductID)
		assert.Equal(t, 2, c.Items[0].Quantity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for missing cart", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormCartRepository(db)

		cartID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "carts" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(cartID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		c, err := repo.FindByID(context.Background(), cartID)

		assert.Nil(t, c)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCartRepository_SaveItem(t *testing.T) {
	t.Run("inserts new line", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormCartRepository(db)

		item, err := cart.NewCartItem(uuid.New(), uuid.New(), 1)
		require.NoError(t, err)

		mock.ExpectExec(`INSERT INTO "cart_items"`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.SaveItem(context.Background(), item))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps unique violation to ErrAlreadyExists", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormCartRepository(db)

		item, err := cart.NewCartItem(uuid.New(), uuid.New(), 1)
		require.NoError(t, err)

		mock.ExpectExec(`INSERT INTO "cart_items"`).
			WillReturnError(gorm.ErrDuplicatedKey)

		err = repo.SaveItem(context.Background(), item)

		assert.Equal(t, shared.ErrAlreadyExists, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCartRepository_IncrementItemQuantity(t *testing.T) {
	t.Run("merges into existing line", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormCartRepository(db)

		cartID := uuid.New()
		productID := uuid.New()

		mock.ExpectExec(`UPDATE "cart_items" SET "quantity"=quantity \+ \$1 WHERE cart_id = \$2 AND product_id = \$3`).
			WithArgs(3, cartID, productID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		merged, err := repo.IncrementItemQuantity(context.Background(), cartID, productID, 3)

		assert.NoError(t, err)
		assert.True(t, merged)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns false when no line exists", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormCartRepository(db)

		cartID := uuid.New()
		productID := uuid.New()

		mock.ExpectExec(`UPDATE "cart_items" SET "quantity"=quantity \+ \$1 WHERE cart_id = \$2 AND product_id = \$3`).
			WithArgs(1, cartID, productID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		merged, err := repo.IncrementItemQuantity(context.Background(), cartID, productID, 1)

		assert.NoError(t, err)
		assert.False(t, merged)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCartRepository_Delete(t *testing.T) {
	t.Run("deletes cart and its items", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormCartRepository(db)

		cartID := uuid.New()

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "cart_items" WHERE cart_id = \$1`).
			WithArgs(cartID).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(`DELETE FROM "carts" WHERE id = \$1`).
			WithArgs(cartID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Delete(context.Background(), cartID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for missing cart", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormCartRepository(db)

		cartID := uuid.New()

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "cart_items" WHERE cart_id = \$1`).
			WithArgs(cartID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM "carts" WHERE id = \$1`).
			WithArgs(cartID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Delete(context.Background(), cartID)

		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormCartRepository_DeleteItem(t *testing.T) {
	t.Run("scopes delete to the cart", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormCartRepository(db)

		cartID := uuid.New()
		itemID := uuid.New()

		mock.ExpectExec(`DELETE FROM "cart_items" WHERE id = \$1 AND cart_id = \$2`).
			WithArgs(itemID, cartID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.DeleteItem(context.Background(), cartID, itemID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound when line belongs to another cart", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormCartRepository(db)

		cartID := uuid.New()
		itemID := uuid.New()

		mock.ExpectExec(`DELETE FROM "cart_items" WHERE id = \$1 AND cart_id = \$2`).
			WithArgs(itemID, cartID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteItem(context.Background(), cartID, itemID)

		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

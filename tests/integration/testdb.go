// Package integration provides integration tests that drive the
// application services against a real database. Tests run on an
// in-memory SQLite database so the suite needs no external services.
package integration

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/customer"
	"github.com/storefront/backend/internal/domain/ordering"
)

// TestDB wraps a migrated in-memory database for a single test
type TestDB struct {
	DB *gorm.DB
	t  *testing.T
}

// NewTestDB opens a fresh in-memory SQLite database and migrates the
// full schema. Each test gets its own database, providing complete
// isolation.
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "Failed to open in-memory database")

	err = db.AutoMigrate(
		&catalog.Category{},
		&catalog.Product{},
		&catalog.Review{},
		&cart.Cart{},
		&cart.CartItem{},
		&customer.Customer{},
		&ordering.Order{},
		&ordering.OrderItem{},
	)
	require.NoError(t, err, "Failed to migrate schema")

	testDB := &TestDB{DB: db, t: t}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// Close closes the underlying connection, discarding the database
func (tdb *TestDB) Close() {
	sqlDB, err := tdb.DB.DB()
	if err != nil {
		tdb.t.Logf("Warning: failed to get underlying sql.DB: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		tdb.t.Logf("Warning: failed to close database: %v", err)
	}
}

package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

// GormCategoryRepository implements CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// FindByID finds a category by its ID
func (r *GormCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	var category catalog.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// FindAll finds all categories matching the filter
func (r *GormCategoryRepository) FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[catalog.Category], error) {
	filter.Normalize()

	var total int64
	countQuery := r.applySearch(r.db.WithContext(ctx).Model(&catalog.Category{}), filter)
	if err := countQuery.Count(&total).Error; err != nil {
		return shared.Paginated[catalog.Category]{}, err
	}

	var categories []catalog.Category
	query := r.applySearch(r.db.WithContext(ctx).Model(&catalog.Category{}), filter).
		Order(orderClause(filter, map[string]string{
			"name":       "name",
			"created_at": "created_at",
		}, "name ASC")).
		Offset(filter.Offset()).
		Limit(filter.PageSize)

	if err := query.Find(&categories).Error; err != nil {
		return shared.Paginated[catalog.Category]{}, err
	}

	return shared.NewPaginated(categories, total, filter.Page, filter.PageSize), nil
}

// Save creates a category
func (r *GormCategoryRepository) Save(ctx context.Context, category *catalog.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

// Update updates an existing category
func (r *GormCategoryRepository) Update(ctx context.Context, category *catalog.Category) error {
	result := r.db.WithContext(ctx).Save(category)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes a category
func (r *GormCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Category{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormCategoryRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ?", pattern)
	}
	return query
}

// orderClause builds an ORDER BY clause from the filter, allowing only
// whitelisted columns so user input never reaches SQL unchecked.
func orderClause(filter shared.Filter, allowed map[string]string, fallback string) string {
	column, ok := allowed[filter.OrderBy]
	if !ok {
		return fallback
	}
	dir := "ASC"
	if strings.ToLower(filter.OrderDir) == "desc" {
		dir = "DESC"
	}
	return column + " " + dir
}

// Ensure GormCategoryRepository implements CategoryRepository
var _ catalog.CategoryRepository = (*GormCategoryRepository)(nil)

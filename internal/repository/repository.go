package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository is the uniform transactional CRUD contract shared by every
// resource type. Each mutating call runs inside exactly one transaction:
// begin, statement(s), commit, with rollback on any error before commit, so a
// failed operation never leaves a partial row visible.
type Repository[T any] interface {
	// FindAll returns every row ordered by the mapping's order column.
	FindAll(ctx context.Context) ([]T, error)
	// FindByID returns the row matching id or gorm.ErrRecordNotFound.
	FindByID(ctx context.Context, id int64) (*T, error)
	// Create inserts entity and returns it with the store-assigned id and
	// timestamps populated.
	Create(ctx context.Context, entity *T) (*T, error)
	// Update writes the mapping's business columns of the row matching id and
	// returns the updated row. Returns gorm.ErrRecordNotFound when no row
	// matches.
	Update(ctx context.Context, id int64, entity *T) (*T, error)
	// Delete removes the row matching id and returns the affected row count
	// (0 or 1).
	Delete(ctx context.Context, id int64) (int64, error)
}

// Mapping binds a resource type to its SQL shape.
type Mapping struct {
	// OrderBy is the column FindAll sorts by, ascending. Defaults to
	// "updated_at".
	OrderBy string
	// UpdateColumns lists the business columns Update is allowed to write.
	// The store owns id, created_at and updated_at.
	UpdateColumns []string
}

type gormRepository[T any] struct {
	db      *gorm.DB
	mapping Mapping
}

// NewRepository builds a GORM-backed repository for one resource type.
func NewRepository[T any](db *gorm.DB, mapping Mapping) Repository[T] {
	if mapping.OrderBy == "" {
		mapping.OrderBy = "updated_at"
	}
	return &gormRepository[T]{db: db, mapping: mapping}
}

func (r *gormRepository[T]) FindAll(ctx context.Context) ([]T, error) {
	var items []T
	if err := r.db.WithContext(ctx).Order(r.mapping.OrderBy + " ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *gormRepository[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	var item T
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *gormRepository[T]) Create(ctx context.Context, entity *T) (*T, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(entity).Error
	})
	if err != nil {
		return nil, err
	}
	return entity, nil
}

func (r *gormRepository[T]) Update(ctx context.Context, id int64, entity *T) (*T, error) {
	var updated T
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(new(T)).
			Where("id = ?", id).
			Select(r.mapping.UpdateColumns).
			Updates(entity)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.First(&updated, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *gormRepository[T]) Delete(ctx context.Context, id int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(new(T), "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		count = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

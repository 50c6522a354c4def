package repository

import (
	"context"

	"gorm.io/gorm"

	"storefront/internal/model"
)

// UserRepository extends the generic contract with username lookups. Users
// have no updated_at column, so listing orders by created_at, and Update only
// touches profile fields: username and password never change through it.
type UserRepository interface {
	Repository[model.User]
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

type userRepository struct {
	Repository[model.User]
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		Repository: NewRepository[model.User](db, Mapping{
			OrderBy:       "created_at",
			UpdateColumns: []string{"first_name", "last_name", "email"},
		}),
		db: db,
	}
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"storefront/internal/auth"
	apperrors "storefront/internal/errors"
	"storefront/internal/metrics"
	"storefront/internal/model"
	"storefront/internal/repository"
)

// UserInput carries the fields a caller may supply for a user. Update only
// consumes the profile fields; username and password are fixed at creation.
type UserInput struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Password  string
}

// UserService exposes user CRUD. Rows handed back from Create and Update
// always have the password digest blanked.
type UserService interface {
	List(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id int64) (*model.User, error)
	Create(ctx context.Context, input UserInput) (*model.User, error)
	Update(ctx context.Context, id int64, input UserInput) (*model.User, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type userService struct {
	base   ResourceService[model.User]
	repo   repository.UserRepository
	hasher *auth.Hasher
}

// NewUserService builds a UserService.
func NewUserService(repo repository.UserRepository, hasher *auth.Hasher) UserService {
	return &userService{
		base:   NewResourceService[model.User]("users", repo),
		repo:   repo,
		hasher: hasher,
	}
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.base.List(ctx)
}

func (s *userService) Get(ctx context.Context, id int64) (*model.User, error) {
	return s.base.Get(ctx, id)
}

// Create inserts a user with a hashed password. When the username is already
// taken it returns the existing row instead of a conflict: create is
// idempotent on username. Intentional; clients retry signups.
func (s *userService) Create(ctx context.Context, input UserInput) (*model.User, error) {
	existing, err := s.repo.FindByUsername(ctx, input.Username)
	if err == nil {
		existing.Password = ""
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrInternal
	}

	user := &model.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Username:  input.Username,
		Email:     input.Email,
		Password:  s.hasher.Hash(input.Password),
	}
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, apperrors.ErrBadRequest
	}
	metrics.ResourceMutationsTotal.WithLabelValues("users", "create").Inc()

	created.Password = ""
	return created, nil
}

// Update writes the profile fields of one user. Username and password are
// never touched.
func (s *userService) Update(ctx context.Context, id int64, input UserInput) (*model.User, error) {
	updated, err := s.base.Update(ctx, id, &model.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
	})
	if err != nil {
		return nil, err
	}
	updated.Password = ""
	return updated, nil
}

func (s *userService) Delete(ctx context.Context, id int64) (int64, error) {
	return s.base.Delete(ctx, id)
}

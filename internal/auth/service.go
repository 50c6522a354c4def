package auth

import (
	"context"

	apperrors "storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/repository"
)

// Credentials are transient login data. Never persisted.
type Credentials struct {
	Username string
	Password string
}

// Service authenticates credentials against stored digests.
type Service interface {
	// Authenticate returns the principal for valid credentials. Unknown
	// username and wrong password both come back as ErrUnauthorized so the
	// caller cannot tell which one happened.
	Authenticate(ctx context.Context, creds Credentials) (*model.User, error)
}

type service struct {
	users  repository.UserRepository
	hasher *Hasher
}

// NewService creates an authentication service.
func NewService(users repository.UserRepository, hasher *Hasher) Service {
	return &service{users: users, hasher: hasher}
}

func (s *service) Authenticate(ctx context.Context, creds Credentials) (*model.User, error) {
	user, err := s.users.FindByUsername(ctx, creds.Username)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}
	if !s.hasher.Verify(creds.Password, user.Password) {
		return nil, apperrors.ErrUnauthorized
	}
	user.Password = ""
	return user, nil
}

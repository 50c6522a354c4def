package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"storefront/internal/auth"
	apperrors "storefront/internal/errors"
	"storefront/internal/model"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id int64, user *model.User) (*model.User, error) {
	args := m.Called(ctx, id, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func TestUserService_Create(t *testing.T) {
	hasher := auth.NewHasher("pepper")
	input := UserInput{
		FirstName: "Alice",
		LastName:  "Smith",
		Username:  "alice",
		Email:     "alice@example.com",
		Password:  "secret",
	}

	t.Run("new username inserts a hashed row and blanks the password", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByUsername", mock.Anything, "alice").Return(nil, gorm.ErrRecordNotFound)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.Username == "alice" && u.Password == hasher.Hash("secret")
		})).Return(&model.User{ID: 1, Username: "alice", Password: hasher.Hash("secret")}, nil)
		svc := NewUserService(repo, hasher)

		created, err := svc.Create(context.Background(), input)

		require.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
		assert.Empty(t, created.Password)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate username returns the existing row", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByUsername", mock.Anything, "alice").
			Return(&model.User{ID: 1, Username: "alice", Password: hasher.Hash("secret")}, nil)
		svc := NewUserService(repo, hasher)

		first, err := svc.Create(context.Background(), input)
		require.NoError(t, err)
		second, err := svc.Create(context.Background(), input)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Empty(t, first.Password)
		assert.Empty(t, second.Password)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("lookup failure is internal", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByUsername", mock.Anything, "alice").Return(nil, gorm.ErrInvalidDB)
		svc := NewUserService(repo, hasher)

		_, err := svc.Create(context.Background(), input)

		assert.ErrorIs(t, err, apperrors.ErrInternal)
	})

	t.Run("insert failure is a generic creation failure", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByUsername", mock.Anything, "alice").Return(nil, gorm.ErrRecordNotFound)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil, gorm.ErrInvalidTransaction)
		svc := NewUserService(repo, hasher)

		_, err := svc.Create(context.Background(), input)

		assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	})
}

func TestUserService_Update(t *testing.T) {
	hasher := auth.NewHasher("pepper")

	t.Run("missing user surfaces as not found", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("Update", mock.Anything, int64(999), mock.Anything).Return(nil, gorm.ErrRecordNotFound)
		svc := NewUserService(repo, hasher)

		_, err := svc.Update(context.Background(), 999, UserInput{FirstName: "A"})

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("updates profile fields only and blanks the password", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("Update", mock.Anything, int64(1), mock.MatchedBy(func(u *model.User) bool {
			return u.FirstName == "Alicia" && u.Username == "" && u.Password == ""
		})).Return(&model.User{ID: 1, FirstName: "Alicia", Username: "alice", Password: "digest"}, nil)
		svc := NewUserService(repo, hasher)

		updated, err := svc.Update(context.Background(), 1, UserInput{FirstName: "Alicia"})

		require.NoError(t, err)
		assert.Equal(t, int64(1), updated.ID)
		assert.Empty(t, updated.Password)
	})
}

func TestUserService_Delete(t *testing.T) {
	hasher := auth.NewHasher("pepper")

	t.Run("zero affected rows is not found", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("Delete", mock.Anything, int64(999)).Return(int64(0), nil)
		svc := NewUserService(repo, hasher)

		_, err := svc.Delete(context.Background(), 999)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "storefront/internal/errors"
	"storefront/internal/metrics"
	"storefront/internal/repository"
)

// ResourceService applies the error taxonomy uniformly on top of the generic
// repository. Every resource type routes through this one implementation, so
// the error mapping cannot drift between near-identical call sites.
type ResourceService[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, input *T) (*T, error)
	Update(ctx context.Context, id int64, input *T) (*T, error)
	// Delete returns the affected row count; zero rows is ErrNotFound.
	Delete(ctx context.Context, id int64) (int64, error)
}

type resourceService[T any] struct {
	resource string
	repo     repository.Repository[T]
}

// NewResourceService builds the service for one resource type. The resource
// name labels metrics.
func NewResourceService[T any](resource string, repo repository.Repository[T]) ResourceService[T] {
	return &resourceService[T]{resource: resource, repo: repo}
}

func (s *resourceService[T]) List(ctx context.Context) ([]T, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.ErrInternal
	}
	return items, nil
}

func (s *resourceService[T]) Get(ctx context.Context, id int64) (*T, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.ErrInternal
	}
	return item, nil
}

func (s *resourceService[T]) Create(ctx context.Context, input *T) (*T, error) {
	created, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, apperrors.ErrBadRequest
	}
	metrics.ResourceMutationsTotal.WithLabelValues(s.resource, "create").Inc()
	return created, nil
}

func (s *resourceService[T]) Update(ctx context.Context, id int64, input *T) (*T, error) {
	updated, err := s.repo.Update(ctx, id, input)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.ErrBadRequest
	}
	metrics.ResourceMutationsTotal.WithLabelValues(s.resource, "update").Inc()
	return updated, nil
}

func (s *resourceService[T]) Delete(ctx context.Context, id int64) (int64, error) {
	count, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, apperrors.ErrInternal
	}
	if count == 0 {
		return 0, apperrors.ErrNotFound
	}
	metrics.ResourceMutationsTotal.WithLabelValues(s.resource, "delete").Inc()
	return count, nil
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/cache"
	apperrors "storefront/internal/errors"
	"storefront/internal/search"
)

type stubSearcher struct {
	results []search.Licenceholder
	err     error
	calls   int
}

func (s *stubSearcher) Search(ctx context.Context, query string) ([]search.Licenceholder, error) {
	s.calls++
	return s.results, s.err
}

func TestSearchService_Search(t *testing.T) {
	t.Run("passes results through", func(t *testing.T) {
		searcher := &stubSearcher{results: []search.Licenceholder{{ID: 1, Holder: "Acme"}}}
		svc := NewSearchService(searcher, (*cache.Client)(nil))

		results, err := svc.Search(context.Background(), "acme")

		require.NoError(t, err)
		assert.Len(t, results, 1)
		assert.Equal(t, "Acme", results[0].Holder)
	})

	t.Run("index failure collapses to bad request", func(t *testing.T) {
		searcher := &stubSearcher{err: errors.New("index offline")}
		svc := NewSearchService(searcher, (*cache.Client)(nil))

		_, err := svc.Search(context.Background(), "acme")

		assert.ErrorIs(t, err, apperrors.ErrBadRequest)
		assert.NotContains(t, err.Error(), "index offline")
	})
}

package service

import (
	"context"
	"encoding/json"
	"time"

	"storefront/internal/cache"
	apperrors "storefront/internal/errors"
	"storefront/internal/metrics"
	"storefront/internal/search"
)

const searchCacheTTL = 5 * time.Minute

// SearchService queries the external full-text index, fronted by a fail-safe
// Redis cache. Resource rows are never cached; only search responses are.
type SearchService interface {
	Search(ctx context.Context, query string) ([]search.Licenceholder, error)
}

type searchService struct {
	searcher search.Searcher
	cache    *cache.Client
}

// NewSearchService builds a SearchService.
func NewSearchService(searcher search.Searcher, cache *cache.Client) SearchService {
	return &searchService{searcher: searcher, cache: cache}
}

func (s *searchService) cacheKey(query string) string {
	return "search:" + query
}

func (s *searchService) Search(ctx context.Context, query string) ([]search.Licenceholder, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(query)); data != nil {
		var cached []search.Licenceholder
		if err := json.Unmarshal(data, &cached); err == nil {
			metrics.SearchRequestsTotal.WithLabelValues("hit").Inc()
			return cached, nil
		}
	}

	results, err := s.searcher.Search(ctx, query)
	if err != nil {
		metrics.SearchRequestsTotal.WithLabelValues("error").Inc()
		return nil, apperrors.ErrBadRequest
	}
	metrics.SearchRequestsTotal.WithLabelValues("miss").Inc()

	if payload, err := json.Marshal(results); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(query), payload, searchCacheTTL)
	}
	return results, nil
}

package search

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/meilisearch/meilisearch-go"
)

type meiliSearcher struct {
	index meilisearch.IndexManager
}

// NewMeilisearch returns a Searcher backed by a Meilisearch index.
func NewMeilisearch(host, apiKey, index string) Searcher {
	client := meilisearch.New(host, meilisearch.WithAPIKey(apiKey))
	return &meiliSearcher{index: client.Index(index)}
}

func (m *meiliSearcher) Search(ctx context.Context, query string) ([]Licenceholder, error) {
	res, err := m.index.SearchWithContext(ctx, query, &meilisearch.SearchRequest{})
	if err != nil {
		return nil, fmt.Errorf("meilisearch query: %w", err)
	}

	raw, err := json.Marshal(res.Hits)
	if err != nil {
		return nil, fmt.Errorf("encode hits: %w", err)
	}
	var holders []Licenceholder
	if err := json.Unmarshal(raw, &holders); err != nil {
		return nil, fmt.Errorf("decode hits: %w", err)
	}
	return holders, nil
}

// Package search is the narrow interface to the full-text search
// collaborator. The index is owned and populated externally; this package
// only queries it.
package search

import "context"

// Licenceholder is a document in the licence-holder index.
type Licenceholder struct {
	ID      float64 `json:"id"`
	Holder  string  `json:"holder"`
	Website string  `json:"website"`
}

// Searcher queries the full-text index.
type Searcher interface {
	Search(ctx context.Context, query string) ([]Licenceholder, error)
}

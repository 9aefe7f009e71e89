package search

import (
	"context"

	"github.com/kailas-cloud/authordex/internal/domain/author"
	"github.com/kailas-cloud/authordex/internal/domain/search/clause"
)

// Repository defines the storage contract for name search.
type Repository interface {
	// Find returns one relevance-ordered page of matching authors.
	Find(ctx context.Context, c clause.Compound, limit, skip int) ([]author.Author, error)
	// Count returns the unpaged total match count for the same clause.
	Count(ctx context.Context, c clause.Compound) (int, error)
}

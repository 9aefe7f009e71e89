// Package search adapts compiled name queries onto the store's FT index.
package search

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/kailas-cloud/authordex/internal/db"
	"github.com/kailas-cloud/authordex/internal/domain"
	domauthor "github.com/kailas-cloud/authordex/internal/domain/author"
	"github.com/kailas-cloud/authordex/internal/domain/search/clause"
)

// resultFields is the projection returned for search hits. The internal
// revision counter and the raw alias blob are excluded.
var resultFields = []string{"name", "top_work", "work_count"}

// store is the consumer interface for search operations (ISP).
type store interface {
	SearchList(ctx context.Context, index, query string, offset, limit int, fields []string) (*db.SearchResult, error)
	SearchCount(ctx context.Context, index, query string) (int, error)
}

// Repo implements usecase/search.Repository.
type Repo struct {
	store store
}

// New creates a search repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Find returns one relevance-ordered page of authors for the compound clause.
func (r *Repo) Find(
	ctx context.Context, c clause.Compound, limit, skip int,
) ([]domauthor.Author, error) {
	query := db.CompoundQuery(c)

	result, err := r.store.SearchList(ctx, domain.AuthorIndexName, query, skip, limit, resultFields)
	if err != nil {
		return nil, fmt.Errorf("search authors: %w", err)
	}
	if result == nil || len(result.Entries) == 0 {
		return []domauthor.Author{}, nil
	}

	authors := make([]domauthor.Author, 0, len(result.Entries))
	for _, e := range result.Entries {
		authors = append(authors, authorFromEntry(e))
	}
	return authors, nil
}

// Count returns the unpaged total match count for the compound clause.
func (r *Repo) Count(ctx context.Context, c clause.Compound) (int, error) {
	query := db.CompoundQuery(c)

	total, err := r.store.SearchCount(ctx, domain.AuthorIndexName, query)
	if err != nil {
		return 0, fmt.Errorf("count authors: %w", err)
	}
	return total, nil
}

func authorFromEntry(e db.SearchEntry) domauthor.Author {
	id := strings.TrimPrefix(e.Key, domain.AuthorKeyPrefix)
	workCount, _ := strconv.Atoi(e.Fields["work_count"])
	return domauthor.Reconstruct(id, e.Fields["name"], nil, e.Fields["top_work"], workCount, 0)
}

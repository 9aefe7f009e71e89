// Package search runs the name-search pipeline: compile the query, fan out
// the page and count fetches, assemble the result envelope.
package search

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/authordex/internal/domain/author"
	"github.com/kailas-cloud/authordex/internal/domain/search/clause"
	"github.com/kailas-cloud/authordex/internal/domain/search/page"
	"github.com/kailas-cloud/authordex/internal/domain/search/request"
	"github.com/kailas-cloud/authordex/internal/metrics"
)

// Service handles author name search.
type Service struct {
	repo Repository
}

// New creates a search service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// Search executes a name search for a normalized request.
//
// An empty query (or one that tokenizes to nothing) completes with the empty
// envelope without touching the backend. Otherwise the result page and the
// total count are fetched concurrently; if either fetch fails the whole
// search fails, so the caller never sees results without a matching count.
func (s *Service) Search(ctx context.Context, req request.Request) (page.Page, error) {
	if req.IsZero() {
		return page.Empty(), nil
	}

	compound := clause.Compile(req.Query(), req.Autocomplete())
	if compound.IsEmpty() {
		return page.Empty(), nil
	}

	metrics.SearchQueries(req.Autocomplete())

	var (
		results []author.Author
		total   int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		results, err = s.repo.Find(gctx, compound, req.Limit(), req.Skip())
		if err != nil {
			return fmt.Errorf("fetch page: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		total, err = s.repo.Count(gctx, compound)
		if err != nil {
			return fmt.Errorf("fetch count: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return page.Page{}, err
	}

	return page.New(req.Skip(), total, results), nil
}

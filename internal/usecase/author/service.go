// Package author manages the searchable author catalog.
package author

import (
	"context"
	"fmt"

	domauthor "github.com/kailas-cloud/authordex/internal/domain/author"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Service handles author catalog operations.
type Service struct {
	repo            Repository
	defaultPageSize int
	maxPageSize     int
}

// New creates an author service.
func New(repo Repository) *Service {
	return &Service{
		repo:            repo,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// WithPagination overrides listing page size limits.
func (s *Service) WithPagination(defaultSize, maxSize int) *Service {
	if defaultSize > 0 {
		s.defaultPageSize = defaultSize
	}
	if maxSize > 0 {
		s.maxPageSize = maxSize
	}
	return s
}

// EnsureIndex makes sure the author search index exists.
func (s *Service) EnsureIndex(ctx context.Context) error {
	if err := s.repo.EnsureIndex(ctx); err != nil {
		return fmt.Errorf("ensure author index: %w", err)
	}
	return nil
}

// Upsert creates or replaces an author. Returns true if created.
func (s *Service) Upsert(ctx context.Context, a *domauthor.Author) (bool, error) {
	created, err := s.repo.Upsert(ctx, a)
	if err != nil {
		return false, fmt.Errorf("upsert author %s: %w", a.ID(), err)
	}
	return created, nil
}

// Get returns an author by ID.
func (s *Service) Get(ctx context.Context, id string) (domauthor.Author, error) {
	a, err := s.repo.Get(ctx, id)
	if err != nil {
		return domauthor.Author{}, fmt.Errorf("get author %s: %w", id, err)
	}
	return a, nil
}

// Delete removes an author by ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete author %s: %w", id, err)
	}
	return nil
}

// List returns authors with cursor-based pagination.
func (s *Service) List(ctx context.Context, cursor string, limit int) ([]domauthor.Author, string, error) {
	if limit <= 0 {
		limit = s.defaultPageSize
	}
	if limit > s.maxPageSize {
		limit = s.maxPageSize
	}

	authors, next, err := s.repo.List(ctx, cursor, limit)
	if err != nil {
		return nil, "", fmt.Errorf("list authors: %w", err)
	}
	return authors, next, nil
}

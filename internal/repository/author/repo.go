// Package author persists author documents as indexed hashes.
package author

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/kailas-cloud/authordex/internal/db"
	"github.com/kailas-cloud/authordex/internal/domain"
	domauthor "github.com/kailas-cloud/authordex/internal/domain/author"
)

// store is the consumer interface for author persistence (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	IndexExists(ctx context.Context, name string) (bool, error)
	SearchList(ctx context.Context, index, query string, offset, limit int, fields []string) (*db.SearchResult, error)
	SearchCount(ctx context.Context, index, query string) (int, error)
}

// Repo implements usecase/author.Repository.
type Repo struct {
	store store
}

// New creates an author repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// EnsureIndex creates the author FT index if it does not exist yet.
func (r *Repo) EnsureIndex(ctx context.Context) error {
	exists, err := r.store.IndexExists(ctx, domain.AuthorIndexName)
	if err != nil {
		return fmt.Errorf("probe index: %w", err)
	}
	if exists {
		return nil
	}

	def := db.NewIndex(domain.AuthorIndexName).
		Prefix(domain.AuthorKeyPrefix).
		Text("name").
		Text("aka").
		Numeric("work_count").
		MustBuild()

	if err := r.store.CreateIndex(ctx, def); err != nil && !errors.Is(err, db.ErrIndexExists) {
		return fmt.Errorf("create index: %w", err)
	}
	return nil
}

// Upsert creates or replaces an author. Returns true if created. The stored
// revision is written back into a, so callers see the persisted state.
func (r *Repo) Upsert(ctx context.Context, a *domauthor.Author) (bool, error) {
	key := authorKey(a.ID())

	existing, err := r.store.HGetAll(ctx, key)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	created := len(existing) == 0

	revision := 1
	if !created {
		if prev, err := strconv.Atoi(existing["revision"]); err == nil {
			revision = prev + 1
		}
	}

	if err := r.store.HSet(ctx, key, buildHashFields(a, revision)); err != nil {
		return false, fmt.Errorf("write %s: %w", key, err)
	}
	*a = domauthor.Reconstruct(a.ID(), a.Name(), a.AKA(), a.TopWork(), a.WorkCount(), revision)
	return created, nil
}

// Get returns an author by ID.
func (r *Repo) Get(ctx context.Context, id string) (domauthor.Author, error) {
	key := authorKey(id)
	m, err := r.store.HGetAll(ctx, key)
	if err != nil {
		return domauthor.Author{}, fmt.Errorf("read %s: %w", key, err)
	}
	if len(m) == 0 {
		return domauthor.Author{}, domain.ErrAuthorNotFound
	}
	return parseHashFields(id, m), nil
}

// Delete removes an author by ID.
func (r *Repo) Delete(ctx context.Context, id string) error {
	key := authorKey(id)
	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists %s: %w", key, err)
	}
	if !exists {
		return domain.ErrAuthorNotFound
	}
	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// List returns authors with offset-cursor pagination.
func (r *Repo) List(ctx context.Context, cursor string, limit int) ([]domauthor.Author, string, error) {
	offset := 0
	if cursor != "" {
		parsed, err := strconv.Atoi(cursor)
		if err != nil || parsed < 0 {
			return nil, "", fmt.Errorf("%w: %q", domain.ErrInvalidCursor, cursor)
		}
		offset = parsed
	}

	// Fetch one extra row to learn whether another page exists.
	result, err := r.store.SearchList(ctx, domain.AuthorIndexName, "*", offset, limit+1, nil)
	if err != nil {
		return nil, "", fmt.Errorf("list authors: %w", err)
	}
	if result == nil || len(result.Entries) == 0 {
		return nil, "", nil
	}

	entries := result.Entries
	nextCursor := ""
	if len(entries) > limit {
		entries = entries[:limit]
		nextCursor = strconv.Itoa(offset + limit)
	}

	authors := make([]domauthor.Author, 0, len(entries))
	for _, e := range entries {
		authors = append(authors, parseHashFields(idFromKey(e.Key), e.Fields))
	}
	return authors, nextCursor, nil
}

func authorKey(id string) string {
	return domain.AuthorKeyPrefix + id
}

func idFromKey(key string) string {
	if len(key) > len(domain.AuthorKeyPrefix) && key[:len(domain.AuthorKeyPrefix)] == domain.AuthorKeyPrefix {
		return key[len(domain.AuthorKeyPrefix):]
	}
	return key
}

// Package db defines the storage contract for the author catalog and its
// full-text search index. The concrete driver lives in db/redis.
package db

import (
	"context"
	"time"
)

// Store is the main database facade combining all sub-interfaces.
type Store interface {
	Pinger
	HashStore
	IndexManager
	Searcher
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HashStore provides hash-based key-value operations.
type HashStore interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// IndexManager provides FT index lifecycle operations.
type IndexManager interface {
	CreateIndex(ctx context.Context, def *IndexDefinition) error
	DropIndex(ctx context.Context, name string) error
	IndexExists(ctx context.Context, name string) (bool, error)
}

// Searcher provides search operations over FT indexes.
type Searcher interface {
	// SearchList runs a paginated, relevance-ordered query. fields limits
	// the returned projection; internal fields stay out of result pages.
	SearchList(ctx context.Context, index, query string, offset, limit int, fields []string) (*SearchResult, error)
	// SearchCount returns the unpaged total match count for a query.
	SearchCount(ctx context.Context, index, query string) (int, error)
}

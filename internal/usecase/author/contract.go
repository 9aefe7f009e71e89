package author

import (
	"context"

	domauthor "github.com/kailas-cloud/authordex/internal/domain/author"
)

// Repository defines the storage contract for the author catalog.
type Repository interface {
	EnsureIndex(ctx context.Context) error
	Upsert(ctx context.Context, a *domauthor.Author) (bool, error)
	Get(ctx context.Context, id string) (domauthor.Author, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, cursor string, limit int) ([]domauthor.Author, string, error)
}

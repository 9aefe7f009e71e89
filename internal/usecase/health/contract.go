package health

import "context"

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// IndexChecker probes the author search index.
type IndexChecker interface {
	IndexExists(ctx context.Context, name string) (bool, error)
}

// Package authordex is an embedded client for the author name-search engine.
// It wires the same repositories and services the API server uses on top of a
// caller-provided Redis connection, with no HTTP hop in between.
package authordex

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/authordex/internal/db"
	dbRedis "github.com/kailas-cloud/authordex/internal/db/redis"
	domauthor "github.com/kailas-cloud/authordex/internal/domain/author"
	"github.com/kailas-cloud/authordex/internal/domain/search/page"
	"github.com/kailas-cloud/authordex/internal/domain/search/request"
	authorrepo "github.com/kailas-cloud/authordex/internal/repository/author"
	searchrepo "github.com/kailas-cloud/authordex/internal/repository/search"
	authoruc "github.com/kailas-cloud/authordex/internal/usecase/author"
	searchuc "github.com/kailas-cloud/authordex/internal/usecase/search"
)

const defaultReadinessTimeout = 10 * time.Second

// Option configures the Client.
type Option func(*clientConfig)

type clientConfig struct {
	addrs            []string
	password         string
	readinessTimeout time.Duration
	defaultPageSize  int
	maxPageSize      int
}

// WithRedis sets the Redis connection address and password.
func WithRedis(addr, password string) Option {
	return func(c *clientConfig) {
		c.addrs = []string{addr}
		c.password = password
	}
}

// WithAddrs sets multiple Redis addresses (cluster or sentinel setups).
func WithAddrs(addrs ...string) Option {
	return func(c *clientConfig) {
		c.addrs = addrs
	}
}

// WithReadinessTimeout overrides how long New waits for the database.
func WithReadinessTimeout(d time.Duration) Option {
	return func(c *clientConfig) {
		c.readinessTimeout = d
	}
}

// WithPagination overrides catalog listing page size limits.
func WithPagination(defaultSize, maxSize int) Option {
	return func(c *clientConfig) {
		c.defaultPageSize = defaultSize
		c.maxPageSize = maxSize
	}
}

// Client is the authordex SDK entry point.
type Client struct {
	store     db.Store
	authorSvc *authoruc.Service
	searchSvc *searchuc.Service
}

// New creates an authordex Client and connects to the database.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		readinessTimeout: defaultReadinessTimeout,
	}
	for _, o := range opts {
		o(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("authordex: database address required (use WithRedis)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Password: cfg.password,
	})
	if err != nil {
		return nil, fmt.Errorf("authordex: create store: %w", err)
	}

	ctx := context.Background()
	if err := store.WaitForReady(ctx, cfg.readinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("authordex: database not ready: %w", err)
	}

	return wireClient(store, cfg), nil
}

func wireClient(store db.Store, cfg *clientConfig) *Client {
	authorSvc := authoruc.New(authorrepo.New(store))
	if cfg.defaultPageSize > 0 || cfg.maxPageSize > 0 {
		authorSvc = authorSvc.WithPagination(cfg.defaultPageSize, cfg.maxPageSize)
	}

	return &Client{
		store:     store,
		authorSvc: authorSvc,
		searchSvc: searchuc.New(searchrepo.New(store)),
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Author is the public author representation.
type Author struct {
	ID        string
	Name      string
	AKA       []string
	TopWork   string
	WorkCount int
	Revision  int
}

// SearchPage is one page of search results with pagination bookkeeping.
// LastItemIndex is nil when there are no further pages.
type SearchPage struct {
	TotalCount    int
	Count         int
	LastItemIndex *int
	Results       []Author
}

// SearchOptions configures a name search.
type SearchOptions struct {
	// Autocomplete treats the last query word as a prefix. A query with
	// trailing whitespace disables it for that call.
	Autocomplete bool
	Limit        int
	Skip         int
}

// EnsureIndex creates the author search index if it does not exist (idempotent).
func (c *Client) EnsureIndex(ctx context.Context) error {
	if err := c.authorSvc.EnsureIndex(ctx); err != nil {
		return fmt.Errorf("ensure index: %w", err)
	}
	return nil
}

// UpsertAuthor creates or replaces an author. Returns true if created.
func (c *Client) UpsertAuthor(ctx context.Context, a Author) (bool, error) {
	doc, err := domauthor.New(a.ID, a.Name, a.AKA, a.TopWork, a.WorkCount)
	if err != nil {
		return false, fmt.Errorf("upsert author: %w", err)
	}
	return c.authorSvc.Upsert(ctx, &doc)
}

// GetAuthor retrieves an author by ID.
func (c *Client) GetAuthor(ctx context.Context, id string) (Author, error) {
	doc, err := c.authorSvc.Get(ctx, id)
	if err != nil {
		return Author{}, err
	}
	return fromDomain(&doc), nil
}

// DeleteAuthor removes an author by ID.
func (c *Client) DeleteAuthor(ctx context.Context, id string) error {
	return c.authorSvc.Delete(ctx, id)
}

// ListAuthors returns a page of the catalog plus the cursor for the next one.
// An empty cursor starts from the beginning; an empty next cursor means done.
func (c *Client) ListAuthors(ctx context.Context, cursor string, limit int) ([]Author, string, error) {
	docs, next, err := c.authorSvc.List(ctx, cursor, limit)
	if err != nil {
		return nil, "", err
	}
	out := make([]Author, len(docs))
	for i := range docs {
		out[i] = fromDomain(&docs[i])
	}
	return out, next, nil
}

// SearchAuthors runs a name search. A nil opts searches with autocomplete
// enabled and default pagination.
func (c *Client) SearchAuthors(ctx context.Context, query string, opts *SearchOptions) (SearchPage, error) {
	if opts == nil {
		opts = &SearchOptions{Autocomplete: true}
	}

	req := request.New(query, opts.Autocomplete, opts.Limit, opts.Skip)
	p, err := c.searchSvc.Search(ctx, req)
	if err != nil {
		return SearchPage{}, fmt.Errorf("search authors: %w", err)
	}
	return fromPage(p), nil
}

func fromDomain(a *domauthor.Author) Author {
	return Author{
		ID:        a.ID(),
		Name:      a.Name(),
		AKA:       a.AKA(),
		TopWork:   a.TopWork(),
		WorkCount: a.WorkCount(),
		Revision:  a.Revision(),
	}
}

func fromPage(p page.Page) SearchPage {
	results := make([]Author, p.Count())
	for i, a := range p.Results() {
		results[i] = fromDomain(&a)
	}
	return SearchPage{
		TotalCount:    p.TotalCount(),
		Count:         p.Count(),
		LastItemIndex: p.LastItemIndex(),
		Results:       results,
	}
}

package chi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	domauthor "github.com/kailas-cloud/authordex/internal/domain/author"
	"github.com/kailas-cloud/authordex/internal/domain/search/clause"
	authoruc "github.com/kailas-cloud/authordex/internal/usecase/author"
	healthuc "github.com/kailas-cloud/authordex/internal/usecase/health"
	searchuc "github.com/kailas-cloud/authordex/internal/usecase/search"
)

// mockAuthorRepo implements the author use case repository for tests.
type mockAuthorRepo struct {
	upsertFn func(ctx context.Context, a *domauthor.Author) (bool, error)
	getFn    func(ctx context.Context, id string) (domauthor.Author, error)
	deleteFn func(ctx context.Context, id string) error
	listFn   func(ctx context.Context, cursor string, limit int) ([]domauthor.Author, string, error)
}

func (m *mockAuthorRepo) EnsureIndex(context.Context) error { return nil }

func (m *mockAuthorRepo) Upsert(ctx context.Context, a *domauthor.Author) (bool, error) {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, a)
	}
	return true, nil
}

func (m *mockAuthorRepo) Get(ctx context.Context, id string) (domauthor.Author, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return domauthor.Author{}, nil
}

func (m *mockAuthorRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockAuthorRepo) List(
	ctx context.Context, cursor string, limit int,
) ([]domauthor.Author, string, error) {
	if m.listFn != nil {
		return m.listFn(ctx, cursor, limit)
	}
	return nil, "", nil
}

// mockSearchRepo implements the search use case repository for tests.
type mockSearchRepo struct {
	findFn  func(ctx context.Context, c clause.Compound, limit, skip int) ([]domauthor.Author, error)
	countFn func(ctx context.Context, c clause.Compound) (int, error)
}

func (m *mockSearchRepo) Find(
	ctx context.Context, c clause.Compound, limit, skip int,
) ([]domauthor.Author, error) {
	if m.findFn != nil {
		return m.findFn(ctx, c, limit, skip)
	}
	return []domauthor.Author{}, nil
}

func (m *mockSearchRepo) Count(ctx context.Context, c clause.Compound) (int, error) {
	if m.countFn != nil {
		return m.countFn(ctx, c)
	}
	return 0, nil
}

// mockHealthDB implements the health DB pinger.
type mockHealthDB struct {
	pingErr error
}

func (m *mockHealthDB) Ping(context.Context) error { return m.pingErr }

func (m *mockHealthDB) IndexExists(context.Context, string) (bool, error) {
	return true, nil
}

type testEnv struct {
	authors *mockAuthorRepo
	search  *mockSearchRepo
	healthy *mockHealthDB
	router  *chi.Mux
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		authors: &mockAuthorRepo{},
		search:  &mockSearchRepo{},
		healthy: &mockHealthDB{},
	}

	srv := NewServer(
		authoruc.New(env.authors),
		searchuc.New(env.search),
		healthuc.New(env.healthy, env.healthy),
		zap.NewNop(),
	)

	env.router = chi.NewRouter()
	srv.Routes(env.router)
	return env
}

func (e *testEnv) do(t *testing.T, method, target string, body *string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(*body))
	} else {
		req = httptest.NewRequest(method, target, http.NoBody)
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

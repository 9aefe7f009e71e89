package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/authordex/internal/domain"
	domauthor "github.com/kailas-cloud/authordex/internal/domain/author"
	"github.com/kailas-cloud/authordex/internal/domain/search/page"
	"github.com/kailas-cloud/authordex/internal/domain/search/request"
	authoruc "github.com/kailas-cloud/authordex/internal/usecase/author"
	healthuc "github.com/kailas-cloud/authordex/internal/usecase/health"
	searchuc "github.com/kailas-cloud/authordex/internal/usecase/search"
)

// Error response codes returned to clients.
const (
	CodeBadRequest       = "bad_request"
	CodeValidationFailed = "validation_failed"
	CodeAuthorNotFound   = "author_not_found"
	CodeInvalidCursor    = "invalid_cursor"
	CodeInternalError    = "internal_error"
	CodeNotImplemented   = "not_implemented"
)

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server routes HTTP requests into the use case services.
type Server struct {
	authors       *authoruc.Service
	search        *searchuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	authors *authoruc.Service,
	search *searchuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		authors: authors,
		search:  search,
		health:  health,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrAuthorNotFound, http.StatusNotFound, CodeAuthorNotFound),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, CodeAuthorNotFound),
		sentinelHandler(domain.ErrInvalidAuthor, http.StatusBadRequest, CodeValidationFailed),
		sentinelHandler(domain.ErrInvalidCursor, http.StatusBadRequest, CodeInvalidCursor),
		sentinelHandler(domain.ErrNotImplemented, http.StatusNotImplemented, CodeNotImplemented),
	}
	return s
}

// Routes mounts all API routes on the given router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
	r.Route("/api/v1/authors", func(r chi.Router) {
		r.Get("/search", s.SearchAuthors)
		r.Get("/", s.ListAuthors)
		r.Put("/{id}", s.UpsertAuthor)
		r.Get("/{id}", s.GetAuthor)
		r.Delete("/{id}", s.DeleteAuthor)
	})
}

// SearchAuthorsResponse is the search result envelope.
type SearchAuthorsResponse struct {
	TotalCount    int            `json:"totalCount"`
	Count         int            `json:"count"`
	LastItemIndex *int           `json:"lastItemIndex"`
	Results       []AuthorResult `json:"results"`
}

// AuthorResult is a single search hit.
type AuthorResult struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	TopWork   string `json:"topWork,omitempty"`
	WorkCount int    `json:"workCount"`
}

// SearchAuthors handles GET /api/v1/authors/search.
//
// Query parameters: query (the free text), autocomplete (anything but an
// explicit falsy value enables it), limit, skip. Out-of-range paging values
// are clamped rather than rejected.
func (s *Server) SearchAuthors(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	autocomplete := request.ParseAutocomplete(q.Get("autocomplete"))

	limit, err := parseIntParam(q.Get("limit"))
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "limit must be an integer")
		return
	}
	skip, err := parseIntParam(q.Get("skip"))
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "skip must be an integer")
		return
	}

	req := request.New(q.Get("query"), autocomplete, limit, skip)

	p, err := s.search.Search(r.Context(), req)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pageToResponse(p))
}

func pageToResponse(p page.Page) SearchAuthorsResponse {
	results := make([]AuthorResult, p.Count())
	for i, a := range p.Results() {
		results[i] = authorToResult(&a)
	}
	return SearchAuthorsResponse{
		TotalCount:    p.TotalCount(),
		Count:         p.Count(),
		LastItemIndex: p.LastItemIndex(),
		Results:       results,
	}
}

func authorToResult(a *domauthor.Author) AuthorResult {
	return AuthorResult{
		ID:        a.ID(),
		Name:      a.Name(),
		TopWork:   a.TopWork(),
		WorkCount: a.WorkCount(),
	}
}

// UpsertAuthorRequest is the payload for PUT /api/v1/authors/{id}.
type UpsertAuthorRequest struct {
	Name      string   `json:"name"`
	AKA       []string `json:"aka,omitempty"`
	TopWork   string   `json:"topWork,omitempty"`
	WorkCount int      `json:"workCount"`
}

// AuthorResponse is the full author representation.
type AuthorResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	AKA       []string `json:"aka,omitempty"`
	TopWork   string   `json:"topWork,omitempty"`
	WorkCount int      `json:"workCount"`
	Revision  int      `json:"revision"`
}

// UpsertAuthor handles PUT /api/v1/authors/{id}.
func (s *Server) UpsertAuthor(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpsertAuthorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	a, err := domauthor.New(id, req.Name, req.AKA, req.TopWork, req.WorkCount)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	created, err := s.authors.Upsert(r.Context(), &a)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
		w.Header().Set("Location", "/api/v1/authors/"+id)
	}
	writeJSON(w, status, authorToGen(&a))
}

// GetAuthor handles GET /api/v1/authors/{id}.
func (s *Server) GetAuthor(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	a, err := s.authors.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.Header().Set("ETag", strconv.Quote(strconv.Itoa(a.Revision())))
	writeJSON(w, http.StatusOK, authorToGen(&a))
}

// DeleteAuthor handles DELETE /api/v1/authors/{id}.
func (s *Server) DeleteAuthor(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.authors.Delete(r.Context(), id); err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AuthorCursorListResponse is the paginated author listing envelope.
type AuthorCursorListResponse struct {
	Items      []AuthorResponse `json:"items"`
	HasMore    bool             `json:"hasMore"`
	NextCursor *string          `json:"nextCursor,omitempty"`
}

// ListAuthors handles GET /api/v1/authors.
func (s *Server) ListAuthors(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit, err := parseIntParam(q.Get("limit"))
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "limit must be an integer")
		return
	}

	authors, nextCursor, err := s.authors.List(r.Context(), q.Get("cursor"), limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]AuthorResponse, len(authors))
	for i := range authors {
		items[i] = authorToGen(&authors[i])
	}

	resp := AuthorCursorListResponse{
		Items:   items,
		HasMore: nextCursor != "",
	}
	if nextCursor != "" {
		resp.NextCursor = &nextCursor
	}

	writeJSON(w, http.StatusOK, resp)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func authorToGen(a *domauthor.Author) AuthorResponse {
	return AuthorResponse{
		ID:        a.ID(),
		Name:      a.Name(),
		AKA:       a.AKA(),
		TopWork:   a.TopWork(),
		WorkCount: a.WorkCount(),
		Revision:  a.Revision(),
	}
}

// parseIntParam parses an optional integer query parameter. Empty means 0.
func parseIntParam(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrAuthorNotFound,
		domain.ErrNotFound,
		domain.ErrInvalidAuthor,
		domain.ErrInvalidCursor,
		domain.ErrNotImplemented,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}

// Package request normalizes raw name-search parameters into a validated request.
package request

import "strings"

// Search parameter limits.
const (
	DefaultLimit = 20
	MaxLimit     = 50
	MaxSkip      = 1000
)

// Request is a validated name-search query.
type Request struct {
	query        string
	autocomplete bool
	limit        int
	skip         int
}

// New normalizes raw search parameters.
//
// The query is lower-cased and trimmed; an empty result means the caller
// should short-circuit to an empty envelope. Limit is clamped to [0,MaxLimit]
// and falls back to DefaultLimit when the clamped value is zero; skip is
// clamped to [0,MaxSkip]. A trailing space on the raw query means the user
// finished typing the last word, so autocomplete is forced off: there is no
// in-progress word to prefix-match.
func New(rawQuery string, autocomplete bool, limit, skip int) Request {
	if strings.HasSuffix(rawQuery, " ") {
		autocomplete = false
	}
	query := strings.TrimSpace(strings.ToLower(rawQuery))

	if limit < 0 {
		limit = 0
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if limit == 0 {
		limit = DefaultLimit
	}

	if skip < 0 {
		skip = 0
	}
	if skip > MaxSkip {
		skip = MaxSkip
	}

	return Request{
		query:        query,
		autocomplete: autocomplete,
		limit:        limit,
		skip:         skip,
	}
}

// Query returns the normalized query text.
func (r Request) Query() string { return r.query }

// Autocomplete reports whether the last word should be prefix-matched.
func (r Request) Autocomplete() bool { return r.autocomplete }

// Limit returns the effective page size.
func (r Request) Limit() int { return r.limit }

// Skip returns the effective page offset.
func (r Request) Skip() int { return r.skip }

// IsZero reports whether the normalized query is empty.
func (r Request) IsZero() bool { return r.query == "" }

// ParseAutocomplete coerces a boolean-like query parameter.
// Accepts the usual textual and numeric truthy forms; anything absent or
// unrecognized resolves to the default (true).
func ParseAutocomplete(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "false", "f", "0", "no", "off":
		return false
	default:
		return true
	}
}

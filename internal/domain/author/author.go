// Package author holds the author document value type.
package author

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/authordex/internal/domain"
)

// MaxNameLength bounds the indexed name field.
const MaxNameLength = 512

// Author is a person record searchable by name and known aliases.
type Author struct {
	id        string
	name      string
	aka       []string
	topWork   string
	workCount int
	revision  int
}

// New validates and creates an Author.
func New(id, name string, aka []string, topWork string, workCount int) (Author, error) {
	if id == "" {
		return Author{}, fmt.Errorf("%w: id is required", domain.ErrInvalidAuthor)
	}
	if strings.TrimSpace(name) == "" {
		return Author{}, fmt.Errorf("%w: name is required", domain.ErrInvalidAuthor)
	}
	if len(name) > MaxNameLength {
		return Author{}, fmt.Errorf("%w: name too long (max %d chars)", domain.ErrInvalidAuthor, MaxNameLength)
	}
	if workCount < 0 {
		return Author{}, fmt.Errorf("%w: work count must not be negative", domain.ErrInvalidAuthor)
	}
	return Author{
		id: id, name: name, aka: aka,
		topWork: topWork, workCount: workCount,
	}, nil
}

// Reconstruct builds an Author from storage without validation.
func Reconstruct(id, name string, aka []string, topWork string, workCount, revision int) Author {
	return Author{
		id: id, name: name, aka: aka,
		topWork: topWork, workCount: workCount, revision: revision,
	}
}

// ID returns the author identifier.
func (a *Author) ID() string { return a.id }

// Name returns the primary display name.
func (a *Author) Name() string { return a.name }

// AKA returns alternative names (pen names, transliterations).
func (a *Author) AKA() []string { return a.aka }

// TopWork returns the best-known work title.
func (a *Author) TopWork() string { return a.topWork }

// WorkCount returns the number of catalogued works.
func (a *Author) WorkCount() int { return a.workCount }

// Revision returns the internal storage revision. Never exposed in search results.
func (a *Author) Revision() int { return a.revision }

// Package page assembles a scored result page with its pagination cursor.
package page

import "github.com/kailas-cloud/authordex/internal/domain/author"

// Page is one page of search results plus the bookkeeping the caller needs
// to fetch the next one.
type Page struct {
	totalCount    int
	results       []author.Author
	lastItemIndex *int
}

// New assembles a page. The last-item index is skip+count when that value
// does not exceed the total match count; otherwise it is absent, signaling
// there are no further pages.
func New(skip, totalCount int, results []author.Author) Page {
	p := Page{totalCount: totalCount, results: results}
	idx := skip + len(results)
	if idx <= totalCount {
		p.lastItemIndex = &idx
	}
	return p
}

// Empty is the terminal envelope for an empty query.
func Empty() Page {
	return Page{results: []author.Author{}}
}

// TotalCount returns the unpaged match count.
func (p Page) TotalCount() int { return p.totalCount }

// Count returns the number of results on this page.
func (p Page) Count() int { return len(p.results) }

// LastItemIndex returns the cursor for the next page, or nil at the end.
func (p Page) LastItemIndex() *int { return p.lastItemIndex }

// Results returns the page's author documents in relevance order.
func (p Page) Results() []author.Author { return p.results }

// Package clause compiles a typed name query into a compound match clause.
//
// A query arrives as free text typed left to right. The compiler splits it
// into word tokens and decides which tokens are complete words (matched
// fuzzily against the whole name) and which token is still being typed
// (matched as a prefix). The resulting Compound is the request contract the
// search backend consumes; it carries no backend syntax.
package clause

import "regexp"

// Searchable author fields. Every clause spans both: a token may hit either
// the primary name or a known alias.
const (
	FieldName = "name"
	FieldAKA  = "aka"
)

// Fuzzy tolerance: one edit beyond an exact two-character prefix. Tokens at
// or below the prefix length are matched exactly, which keeps fuzziness from
// drifting on short name particles.
const (
	MaxEdits     = 1
	PrefixLength = 2
)

// Kind discriminates clause forms.
type Kind string

const (
	// KindPrefix matches documents where a field word starts with the term.
	KindPrefix Kind = "prefix"
	// KindFuzzy matches documents where a field word is within MaxEdits of
	// at least one of the terms.
	KindFuzzy Kind = "fuzzy"
)

// Clause is a single condition over the searchable field set.
type Clause struct {
	kind   Kind
	fields []string
	terms  []string
}

// Kind returns the clause form.
func (c Clause) Kind() Kind { return c.kind }

// Fields returns the searchable fields the clause spans.
func (c Clause) Fields() []string { return c.fields }

// Terms returns the clause terms. Prefix clauses carry exactly one term;
// fuzzy clauses match when any term matches.
func (c Clause) Terms() []string { return c.terms }

// Compound combines must and should clauses. Must clauses are AND'd: every
// one has to be satisfied. Should clauses only boost relevance and never
// gate inclusion; the set is currently always empty and exists as the
// extension point for boosting optional name components.
type Compound struct {
	must   []Clause
	should []Clause
}

// Must returns the required clauses.
func (c Compound) Must() []Clause { return c.must }

// Should returns the score-only clauses.
func (c Compound) Should() []Clause { return c.should }

// IsEmpty reports whether the compound has no required clauses.
func (c Compound) IsEmpty() bool { return len(c.must) == 0 }

var wordRe = regexp.MustCompile(`[a-z0-9]+`)

// Tokenize splits a normalized query into its word tokens, in typing order.
// Anything outside lowercase alphanumeric runs is a separator.
func Tokenize(query string) []string {
	return wordRe.FindAllString(query, -1)
}

// Compile builds the compound clause for a normalized query.
//
// With autocomplete on, the last token is treated as the word still being
// typed and becomes a prefix clause; only the preceding, completed tokens
// participate in fuzzy whole-word matching. With autocomplete off, all
// tokens are fuzzy search terms. The fuzzy clause matches when at least one
// term matches, so reordered or partial name components (first+last without
// a middle name) still satisfy it.
func Compile(query string, autocomplete bool) Compound {
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return Compound{}
	}

	var c Compound
	searchTerms := tokens

	if autocomplete {
		last := tokens[len(tokens)-1]
		searchTerms = tokens[:len(tokens)-1]
		c.must = append(c.must, Clause{
			kind:   KindPrefix,
			fields: []string{FieldName, FieldAKA},
			terms:  []string{last},
		})
	}

	if len(searchTerms) > 0 {
		c.must = append(c.must, Clause{
			kind:   KindFuzzy,
			fields: []string{FieldName, FieldAKA},
			terms:  searchTerms,
		})
	}

	return c
}

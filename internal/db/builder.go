package db

import (
	"strings"

	"github.com/kailas-cloud/authordex/internal/domain/search/clause"
)

// IndexBuilder is a fluent builder for FT index definitions.
type IndexBuilder struct {
	def IndexDefinition
}

// NewIndex starts building an FT index definition.
func NewIndex(name string) *IndexBuilder {
	return &IndexBuilder{
		def: IndexDefinition{
			Name:        name,
			StorageType: StorageHash,
		},
	}
}

// Prefix adds key prefixes to the index.
func (b *IndexBuilder) Prefix(prefixes ...string) *IndexBuilder {
	b.def.Prefixes = append(b.def.Prefixes, prefixes...)
	return b
}

// Numeric adds a NUMERIC field to the index.
func (b *IndexBuilder) Numeric(name string) *IndexBuilder {
	b.def.Fields = append(b.def.Fields, IndexField{
		Name: name,
		Type: IndexFieldNumeric,
	})
	return b
}

// Tag adds a TAG field to the index.
func (b *IndexBuilder) Tag(name string) *IndexBuilder {
	b.def.Fields = append(b.def.Fields, IndexField{
		Name: name,
		Type: IndexFieldTag,
	})
	return b
}

// Text adds a TEXT field to the index.
func (b *IndexBuilder) Text(name string) *IndexBuilder {
	b.def.Fields = append(b.def.Fields, IndexField{
		Name: name,
		Type: IndexFieldText,
	})
	return b
}

// Build validates and returns the index definition.
func (b *IndexBuilder) Build() (*IndexDefinition, error) {
	if err := b.def.Validate(); err != nil {
		return nil, err
	}
	return &b.def, nil
}

// MustBuild calls Build and panics on error.
func (b *IndexBuilder) MustBuild() *IndexDefinition {
	def, err := b.Build()
	if err != nil {
		panic(err)
	}
	return def
}

// CompoundQuery renders a compiled compound clause as an FT.SEARCH query
// string.
//
// Must clauses are space-joined, which is AND semantics in the query
// dialect. A prefix clause becomes term* over each field; a fuzzy clause
// becomes a |-joined alternation of its terms, so any single term matching
// satisfies the clause. Fuzzy tolerance is one edit (%term%), applied only
// to terms longer than clause.PrefixLength; shorter terms match exactly.
// Should clauses render as optional ~(...) groups: they raise the score of
// documents that satisfy them without gating inclusion.
//
// An empty compound renders as the match-all query.
func CompoundQuery(c clause.Compound) string {
	if c.IsEmpty() {
		return "*"
	}

	parts := make([]string, 0, len(c.Must())+len(c.Should()))
	for _, cl := range c.Must() {
		parts = append(parts, renderClause(cl))
	}
	for _, cl := range c.Should() {
		parts = append(parts, "~"+renderClause(cl))
	}
	return strings.Join(parts, " ")
}

func renderClause(cl clause.Clause) string {
	var alts []string
	switch cl.Kind() {
	case clause.KindPrefix:
		for _, t := range cl.Terms() {
			alts = append(alts, escapeTerm(t)+"*")
		}
	case clause.KindFuzzy:
		for _, t := range cl.Terms() {
			alts = append(alts, fuzzyTerm(t))
		}
	}
	inner := strings.Join(alts, "|")

	fields := make([]string, 0, len(cl.Fields()))
	for _, f := range cl.Fields() {
		fields = append(fields, "@"+f+":("+inner+")")
	}
	return "(" + strings.Join(fields, " | ") + ")"
}

// fuzzyTerm wraps a term in the one-edit fuzzy operator when it is long
// enough for fuzziness to stay meaningful.
func fuzzyTerm(t string) string {
	escaped := escapeTerm(t)
	if len(t) > clause.PrefixLength {
		return "%" + escaped + "%"
	}
	return escaped
}

func escapeTerm(s string) string {
	return termEscaper.Replace(s)
}

var termEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	`"`, `\"`,
	`@`, `\@`,
	`{`, `\{`,
	`}`, `\}`,
	`(`, `\(`,
	`)`, `\)`,
	`|`, `\|`,
	`-`, `\-`,
	`~`, `\~`,
	`*`, `\*`,
	`[`, `\[`,
	`]`, `\]`,
	`!`, `\!`,
	`%`, `\%`,
	`^`, `\^`,
	`$`, `\$`,
	`<`, `\<`,
	`>`, `\>`,
	`=`, `\=`,
	`;`, `\;`,
	`+`, `\+`,
)

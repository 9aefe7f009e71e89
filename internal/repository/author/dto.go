package author

import (
	"strconv"
	"strings"

	domauthor "github.com/kailas-cloud/authordex/internal/domain/author"
)

// akaSeparator joins alias names into a single indexed TEXT field.
const akaSeparator = "; "

// buildHashFields converts a domain Author into a flat map[string]string for
// HSET. Every field is always written: upsert replaces the whole document, so
// an empty value has to clear what a previous revision stored and indexed.
func buildHashFields(a *domauthor.Author, revision int) map[string]string {
	return map[string]string{
		"name":       a.Name(),
		"aka":        strings.Join(a.AKA(), akaSeparator),
		"top_work":   a.TopWork(),
		"work_count": strconv.Itoa(a.WorkCount()),
		"revision":   strconv.Itoa(revision),
	}
}

// parseHashFields converts a flat hash map back into a domain Author.
func parseHashFields(id string, m map[string]string) domauthor.Author {
	var aka []string
	if raw := m["aka"]; raw != "" {
		aka = strings.Split(raw, akaSeparator)
	}
	workCount, _ := strconv.Atoi(m["work_count"])
	revision, _ := strconv.Atoi(m["revision"])

	return domauthor.Reconstruct(id, m["name"], aka, m["top_work"], workCount, revision)
}

package suggest

import (
	"strings"

	"github.com/dukerupert/mercado/internal/model"
)

// DefaultLimit is how many suggestions the item form shows at once.
const DefaultLimit = 8

// Filter returns catalogue entries whose name contains query, ignoring case
// and surrounding whitespace, in catalogue order. An empty query matches
// nothing. A limit <= 0 means DefaultLimit.
func Filter(query string, limit int) []model.Suggestion {
	q := normalize(query)
	if q == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	var out []model.Suggestion
	for _, s := range table {
		if strings.Contains(normalize(s.Name), q) {
			out = append(out, s)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

// UnitFor returns the usual unit for an item name when the catalogue has an
// exact (case-insensitive) entry for it.
func UnitFor(name string) (model.Unit, bool) {
	n := normalize(name)
	if n == "" {
		return "", false
	}
	for _, s := range table {
		if normalize(s.Name) == n {
			return s.Unit, true
		}
	}
	return "", false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

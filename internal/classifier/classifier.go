// Package classifier maps free-text business ideas onto the fixed category
// set. It is deliberately a first-match-wins rule table, not a multi-label
// classifier: keyword order in the table encodes priority.
package classifier

import (
	"strings"

	"github.com/openlot/openlot-backend-go/internal/models"
)

// Match outcome constants, reported alongside the category so callers can
// tell a keyword hit from the catch-all fallback.
const (
	OutcomeMatched  = "matched"
	OutcomeFallback = "fallback"
)

// Result holds the resolved category and the keyword that selected it.
// Keyword is empty when the catch-all was used.
type Result struct {
	Category models.Category `json:"category"`
	Keyword  string          `json:"keyword,omitempty"`
	Outcome  string          `json:"outcome"`
}

// Classify resolves input to a business category. Matching is case-insensitive
// substring containment against each category's keyword list, categories
// tested in table order; the first category with any hit wins. Inputs that
// match nothing resolve to the catch-all. Never fails.
func Classify(input string) Result {
	text := strings.ToLower(input)

	for _, entry := range models.KeywordTable {
		for _, kw := range entry.Keywords {
			if strings.Contains(text, kw) {
				return Result{Category: entry.Category, Keyword: kw, Outcome: OutcomeMatched}
			}
		}
	}

	return Result{Category: models.CategoryGeneral, Outcome: OutcomeFallback}
}

package search

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"solar-map/internal/domain/entity"
	"solar-map/internal/domain/gateway/registry"
)

const (
	// MaxSuggestions caps the NotFound suggestion list
	MaxSuggestions = 5
	prefixRunes    = 3
)

// MatchKind tells how a query was resolved.
type MatchKind string

const (
	MatchExact    MatchKind = "exact"
	MatchPartial  MatchKind = "partial"
	MatchNotFound MatchKind = "not_found"
)

// MatchResult is the outcome of Resolve. City is only set for Exact and Partial,
// Suggestions only for NotFound.
type MatchResult struct {
	Kind        MatchKind
	Query       string
	City        entity.City
	Suggestions []string
}

// Found reports whether the result carries a city.
func (m MatchResult) Found() bool {
	return m.Kind == MatchExact || m.Kind == MatchPartial
}

// Resolve matches a free-text query against the registry:
//  1. blank query: ErrEmptyQuery
//  2. case-insensitive equality: Exact
//  3. query is a case-insensitive substring of a name: Partial, first in registry order
//  4. otherwise NotFound with up to five names containing the first three characters of the
//     query, in registry order
//
// It is a linear scan over the registry.
func Resolve(query string, cities registry.CityRegistry) (MatchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return MatchResult{}, fmt.Errorf("%w: search query is blank", entity.ErrEmptyQuery)
	}

	lower := cases.Lower(language.Und)
	needle := lower.String(query)
	all := cities.All()

	folded := make([]string, len(all))
	for i, city := range all {
		folded[i] = lower.String(city.Name)
		if folded[i] == needle {
			return MatchResult{Kind: MatchExact, Query: query, City: city}, nil
		}
	}

	for i, name := range folded {
		if strings.Contains(name, needle) {
			return MatchResult{Kind: MatchPartial, Query: query, City: all[i]}, nil
		}
	}

	prefix := firstRunes(needle, prefixRunes)
	suggestions := make([]string, 0, MaxSuggestions)
	for i, name := range folded {
		if len(suggestions) == MaxSuggestions {
			break
		}
		if strings.Contains(name, prefix) {
			suggestions = append(suggestions, all[i].Name)
		}
	}

	return MatchResult{Kind: MatchNotFound, Query: query, Suggestions: suggestions}, nil
}

func firstRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

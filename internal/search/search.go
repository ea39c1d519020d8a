package search

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"carddex/internal/domain"
)

// Cards filters the loaded card list by name. Matching is fuzzy,
// case- and diacritic-insensitive, with better matches first. An empty
// query returns the input unchanged.
func Cards(query string, cards []domain.Card) []domain.Card {
	query = strings.TrimSpace(query)
	if query == "" {
		return cards
	}

	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.Name
	}

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Sort(ranks)

	matched := make([]domain.Card, 0, len(ranks))
	for _, r := range ranks {
		matched = append(matched, cards[r.OriginalIndex])
	}
	return matched
}

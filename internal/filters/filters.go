// Package filters counts the labels of comma-separated filter strings.
package filters

import (
	"sort"
	"strings"

	"github.com/chrisprideC9/shopping-scraper-graphs/internal/entity"
)

// Tokenize splits a filters string on commas and returns the trimmed,
// non-empty labels in order.
func Tokenize(s string) []string {
	parts := strings.Split(s, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// Count tokenizes every raw string and returns label frequencies ordered by
// count descending. Equal counts keep first-seen order. A limit <= 0 uses
// entity.DefaultLimit.
func Count(raw []string, limit int) []entity.FilterCount {
	limit = entity.NormalizeLimit(limit)

	counts := []entity.FilterCount{}
	index := map[string]int{}
	for _, s := range raw {
		for _, tok := range Tokenize(s) {
			i, ok := index[tok]
			if !ok {
				i = len(counts)
				index[tok] = i
				counts = append(counts, entity.FilterCount{Filter: tok})
			}
			counts[i].Count++
		}
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	if len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
}

// Package scoring ranks catalog items against a free-text query using
// additive keyword, category, and occasion heuristics.
package scoring

import (
	"sort"
	"strings"

	"quotation-engine/internal/catalog"
)

// keywordGroup tags a named keyword set. Groups are data, not branching
// logic: adding a category means adding a row here.
type keywordGroup struct {
	name     string
	keywords []string
}

// categoryGroups boost items whose text shares a keyword group with the
// query. Each group keyword matched by a query term is worth +3 when the item
// text contains any keyword of the same group.
var categoryGroups = []keywordGroup{
	{name: "electronics", keywords: []string{"power bank", "speaker", "charger", "tech", "gadget", "electronics", "usb", "wireless"}},
	{name: "bags", keywords: []string{"bag", "briefcase", "laptop", "tote", "pouch", "backpack", "organizer", "travel"}},
	{name: "drinkware", keywords: []string{"mug", "tumbler", "bottle", "cup", "coffee", "tea", "water", "drink", "thermos"}},
	{name: "clothing", keywords: []string{"shirt", "polo", "jacket", "cap", "hat", "apparel", "clothing", "uniform"}},
	{name: "premium", keywords: []string{"executive", "luxury", "premium", "high-end", "elegant", "sophisticated"}},
	{name: "home", keywords: []string{"home", "kitchen", "appliance", "household", "domestic"}},
	{name: "festive", keywords: []string{"festive", "holiday", "seasonal", "christmas", "chinese new year", "celebration"}},
}

// occasionGroups add a flat +1 per triggered keyword regardless of item
// content: occasion relevance applies uniformly across the catalog.
var occasionGroups = []keywordGroup{
	{name: "corporate", keywords: []string{"client", "business", "corporate", "professional", "executive", "office"}},
	{name: "employee", keywords: []string{"employee", "staff", "team", "recognition", "appreciation", "achievement"}},
	{name: "event", keywords: []string{"conference", "seminar", "event", "meeting", "workshop", "trade show"}},
	{name: "personal", keywords: []string{"birthday", "wedding", "anniversary", "graduation", "farewell", "personal"}},
}

// Score ranks catalog items against query and returns at most limit items,
// best first. Zero-scoring items are excluded; ties keep catalog iteration
// order. Pure and total: a malformed item simply scores low or zero.
func Score(query string, items []catalog.Item, limit int) []catalog.Item {
	queryTerms := strings.Fields(strings.ToLower(query))

	type scored struct {
		score int
		item  catalog.Item
	}
	var results []scored

	for _, item := range items {
		score := 0
		itemText := item.SearchText()
		nameText := strings.ToLower(item.Name)

		// Basic keyword matching
		for _, term := range queryTerms {
			if strings.Contains(itemText, term) {
				score++
			}
		}

		// Category-group bonus: every group keyword the query mentions earns
		// +3 once the item text contains any keyword of that group.
		for _, group := range categoryGroups {
			for _, keyword := range group.keywords {
				if !termMatches(queryTerms, keyword) {
					continue
				}
				for _, groupKeyword := range group.keywords {
					if strings.Contains(itemText, groupKeyword) {
						score += 3
						break
					}
				}
			}
		}

		// Occasion bonus, independent of item content
		for _, group := range occasionGroups {
			for _, keyword := range group.keywords {
				if termMatches(queryTerms, keyword) {
					score++
				}
			}
		}

		// Name hits dominate
		if nameContainsAny(nameText, queryTerms) {
			score += 5
		}

		if score > 0 {
			results = append(results, scored{score: score, item: item})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})

	if limit > len(results) {
		limit = len(results)
	}
	out := make([]catalog.Item, 0, limit)
	for _, r := range results[:limit] {
		out = append(out, r.item)
	}
	return out
}

// termMatches reports whether any query term contains keyword as a substring.
func termMatches(queryTerms []string, keyword string) bool {
	for _, term := range queryTerms {
		if strings.Contains(term, keyword) {
			return true
		}
	}
	return false
}

func nameContainsAny(name string, queryTerms []string) bool {
	for _, term := range queryTerms {
		if strings.Contains(name, term) {
			return true
		}
	}
	return false
}

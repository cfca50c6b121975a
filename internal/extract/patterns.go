package extract

import "regexp"

// rule is one predicate/transform pair in a slot's chain. The chain is
// evaluated short-circuit: the first rule that matches anywhere in the search
// text wins and later rules are not consulted. Chain order is load-bearing;
// reordering changes observable extraction behavior.
type rule struct {
	re    *regexp.Regexp
	group int
}

// Search text is lowercased before matching, so the patterns only need
// lowercase character classes.
var (
	emailRules = []rule{
		{re: regexp.MustCompile(`\b[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}\b`), group: 0},
	}

	// Dollar sign first, then a "dollars" suffix, then a loose "budget ... n",
	// then "n ... per pack/person/pax". Only the numeric capture is kept.
	budgetRules = []rule{
		{re: regexp.MustCompile(`\$(\d+(?:\.\d{2})?)`), group: 1},
		{re: regexp.MustCompile(`(\d+)\s*dollars?`), group: 1},
		{re: regexp.MustCompile(`budget.*?(\d+)`), group: 1},
		{re: regexp.MustCompile(`(\d+).*?per\s+(?:pack|person|pax)`), group: 1},
	}

	quantityRules = []rule{
		{re: regexp.MustCompile(`(\d+)\s*(?:packs?|pieces?|units?|recipients?|people|pax)`), group: 1},
		{re: regexp.MustCompile(`need\s*(\d+)`), group: 1},
		{re: regexp.MustCompile(`(\d+)\s*employees?`), group: 1},
		{re: regexp.MustCompile(`(\d+)\s*clients?`), group: 1},
	}

	companyRules = []rule{
		{re: regexp.MustCompile(`company\s+(?:is\s+)?([a-z0-9\s&.-]+)`), group: 1},
		{re: regexp.MustCompile(`from\s+([a-z0-9\s&.-]+)\s+(?:company|corp|ltd|pte)`), group: 1},
		{re: regexp.MustCompile(`work\s+at\s+([a-z0-9\s&.-]+)`), group: 1},
		{re: regexp.MustCompile(`represent\s+([a-z0-9\s&.-]+)`), group: 1},
	}
)

// occasionCategory pairs a canonical occasion name with its trigger keywords.
type occasionCategory struct {
	name     string
	keywords []string
}

// Occasions are tested in this order; the first category with any keyword
// present in the text wins, no partial scoring.
var occasionCategories = []occasionCategory{
	{name: "client appreciation", keywords: []string{"client", "appreciation", "thank"}},
	{name: "employee recognition", keywords: []string{"employee", "staff", "recognition", "achievement"}},
	{name: "chinese new year", keywords: []string{"cny", "chinese new year", "lunar new year"}},
	{name: "conference", keywords: []string{"conference", "seminar", "event", "workshop"}},
	{name: "birthday", keywords: []string{"birthday", "celebration"}},
	{name: "wedding", keywords: []string{"wedding", "marriage"}},
	{name: "graduation", keywords: []string{"graduation", "graduate"}},
	{name: "farewell", keywords: []string{"farewell", "goodbye", "leaving"}},
}

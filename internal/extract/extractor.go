// Package extract derives a QuotationRecord from conversation history using
// layered pattern matching. Extraction is a pure function of the history: it
// never fails, never mutates, and recomputes every slot from scratch on each
// call.
package extract

import (
	"strings"

	"quotation-engine/internal/models"
)

// Extract scans the accumulated user utterances in history and returns the
// resulting record. Assistant messages are ignored. Empty history yields an
// all-unset record.
func Extract(history []models.Message) QuotationRecord {
	var parts []string
	for _, msg := range history {
		if msg.Role == models.RoleUser {
			parts = append(parts, strings.ToLower(msg.Content))
		}
	}
	text := strings.Join(parts, " ")

	var record QuotationRecord
	if text == "" {
		return record
	}

	record.set(SlotCustomerEmail, firstMatch(emailRules, text))
	record.set(SlotBudgetPerPack, firstMatch(budgetRules, text))
	record.set(SlotNumberOfPacks, firstMatch(quantityRules, text))
	record.set(SlotCompanyName, strings.TrimSpace(firstMatch(companyRules, text)))
	record.set(SlotOccasion, matchOccasion(text))
	// special_requests has no extraction rule; it stays unset and downstream
	// treats it as always-optional.

	return record
}

// firstMatch walks a rule chain and returns the configured capture group of
// the first rule that matches, or "" when none do.
func firstMatch(rules []rule, text string) string {
	for _, r := range rules {
		m := r.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		return m[r.group]
	}
	return ""
}

func matchOccasion(text string) string {
	for _, cat := range occasionCategories {
		for _, kw := range cat.keywords {
			if strings.Contains(text, kw) {
				return cat.name
			}
		}
	}
	return ""
}

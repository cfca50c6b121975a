// Package dialogue decides what the assistant says next about a partially
// collected quotation record.
package dialogue

import (
	"fmt"
	"strings"

	"quotation-engine/internal/extract"
)

// PriorityOrder fixes which missing slot is asked about first. This is a
// policy invariant: reordering changes observable conversational behavior, so
// any change must be explicitly versioned.
var PriorityOrder = []extract.Slot{
	extract.SlotOccasion,
	extract.SlotNumberOfPacks,
	extract.SlotBudgetPerPack,
	extract.SlotCompanyName,
	extract.SlotCustomerEmail,
	extract.SlotSpecialRequests,
}

var slotQuestions = map[extract.Slot]string{
	extract.SlotOccasion:        "What's the occasion for these gifts?",
	extract.SlotNumberOfPacks:   "How many recipients/packs do you need?",
	extract.SlotBudgetPerPack:   "What's your ideal budget per pack/person?",
	extract.SlotCompanyName:     "Which company should I prepare this quotation for?",
	extract.SlotCustomerEmail:   "What email should I send the quotation to?",
	extract.SlotSpecialRequests: "Any specific items you'd like included or special requirements?",
}

const completionTemplate = `Perfect! I have all the information needed for your quotation:
✓ Company: %s
✓ Email: %s
✓ Occasion: %s
✓ Quantity: %s packs
✓ Budget: $%s per pack
✓ Requirements: %s

I'll prepare your customized quotation and send it to %s within 2 working days. Thank you!`

// NextPrompt returns the text to say for the given record: a completion
// summary when every slot is set, otherwise an acknowledgement of collected
// slots followed by the canned question for the single highest-priority
// missing slot. Pure function, never fails.
func NextPrompt(record *extract.QuotationRecord) string {
	if record.IsComplete() {
		requests := record.SpecialRequests
		if requests == "" {
			requests = "Standard options"
		}
		return fmt.Sprintf(completionTemplate,
			record.CompanyName,
			record.CustomerEmail,
			record.Occasion,
			record.NumberOfPacks,
			record.BudgetPerPack,
			requests,
			record.CustomerEmail,
		)
	}

	acknowledgment := buildAcknowledgment(record)

	for _, slot := range PriorityOrder {
		if !record.IsSet(slot) {
			return acknowledgment + slotQuestions[slot]
		}
	}

	return acknowledgment + "Let me gather a bit more information to prepare your perfect quotation."
}

// buildAcknowledgment lists every already-set slot with its human-readable
// label, or returns "" when nothing has been collected yet.
func buildAcknowledgment(record *extract.QuotationRecord) string {
	var collected []string
	for _, slot := range extract.AllSlots {
		if record.IsSet(slot) {
			collected = append(collected, fmt.Sprintf("%s: %s", slot.Label(), record.Get(slot)))
		}
	}

	if len(collected) == 0 {
		return ""
	}
	return "Great! I have: " + strings.Join(collected, ", ") + ". "
}

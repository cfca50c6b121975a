package extract

import (
	"fmt"
	"strings"
)

// Slot names one of the six quotation fields.
type Slot string

const (
	SlotCustomerEmail   Slot = "customer_email"
	SlotCompanyName     Slot = "company_name"
	SlotBudgetPerPack   Slot = "budget_per_pack"
	SlotNumberOfPacks   Slot = "number_of_packs"
	SlotOccasion        Slot = "occasion"
	SlotSpecialRequests Slot = "special_requests"
)

// SlotCount is the number of slots in a complete record.
const SlotCount = 6

// AllSlots lists every slot in declaration order.
var AllSlots = []Slot{
	SlotCustomerEmail,
	SlotCompanyName,
	SlotBudgetPerPack,
	SlotNumberOfPacks,
	SlotOccasion,
	SlotSpecialRequests,
}

// Label returns the human-readable form used in acknowledgements,
// e.g. "budget_per_pack" -> "budget per pack".
func (s Slot) Label() string {
	return strings.ReplaceAll(string(s), "_", " ")
}

// QuotationRecord holds the six extracted fields. An empty string means the
// slot is unset. Records are derived views over conversation history, never
// stored.
type QuotationRecord struct {
	CustomerEmail   string `json:"customer_email"`
	CompanyName     string `json:"company_name"`
	BudgetPerPack   string `json:"budget_per_pack"`
	NumberOfPacks   string `json:"number_of_packs"`
	Occasion        string `json:"occasion"`
	SpecialRequests string `json:"special_requests"`
}

// Get returns the value held by the named slot.
func (r *QuotationRecord) Get(s Slot) string {
	switch s {
	case SlotCustomerEmail:
		return r.CustomerEmail
	case SlotCompanyName:
		return r.CompanyName
	case SlotBudgetPerPack:
		return r.BudgetPerPack
	case SlotNumberOfPacks:
		return r.NumberOfPacks
	case SlotOccasion:
		return r.Occasion
	case SlotSpecialRequests:
		return r.SpecialRequests
	}
	return ""
}

func (r *QuotationRecord) set(s Slot, value string) {
	switch s {
	case SlotCustomerEmail:
		r.CustomerEmail = value
	case SlotCompanyName:
		r.CompanyName = value
	case SlotBudgetPerPack:
		r.BudgetPerPack = value
	case SlotNumberOfPacks:
		r.NumberOfPacks = value
	case SlotOccasion:
		r.Occasion = value
	case SlotSpecialRequests:
		r.SpecialRequests = value
	}
}

// IsSet reports whether the named slot holds a value.
func (r *QuotationRecord) IsSet(s Slot) bool {
	return r.Get(s) != ""
}

// SetCount returns how many of the six slots hold a value.
func (r *QuotationRecord) SetCount() int {
	n := 0
	for _, s := range AllSlots {
		if r.IsSet(s) {
			n++
		}
	}
	return n
}

// Missing returns the unset slots in declaration order.
func (r *QuotationRecord) Missing() []Slot {
	var out []Slot
	for _, s := range AllSlots {
		if !r.IsSet(s) {
			out = append(out, s)
		}
	}
	return out
}

// Completion returns the "<k>/6" progress string.
func (r *QuotationRecord) Completion() string {
	return fmt.Sprintf("%d/%d", r.SetCount(), SlotCount)
}

// IsComplete reports whether every slot is set.
func (r *QuotationRecord) IsComplete() bool {
	return r.SetCount() == SlotCount
}

package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuotationRecord_Completion(t *testing.T) {
	tests := []struct {
		name     string
		record   QuotationRecord
		expected string
	}{
		{"empty", QuotationRecord{}, "0/6"},
		{"partial", QuotationRecord{CustomerEmail: "a@b.co", Occasion: "birthday"}, "2/6"},
		{
			"full",
			QuotationRecord{
				CustomerEmail:   "a@b.co",
				CompanyName:     "acme",
				BudgetPerPack:   "30",
				NumberOfPacks:   "100",
				Occasion:        "conference",
				SpecialRequests: "engraved pens",
			},
			"6/6",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.record.Completion())
		})
	}
}

func TestQuotationRecord_Missing(t *testing.T) {
	record := QuotationRecord{
		CustomerEmail: "a@b.co",
		BudgetPerPack: "30",
		Occasion:      "birthday",
	}

	missing := record.Missing()

	assert.Equal(t, []Slot{SlotCompanyName, SlotNumberOfPacks, SlotSpecialRequests}, missing)
}

func TestQuotationRecord_IsComplete(t *testing.T) {
	record := QuotationRecord{
		CustomerEmail: "a@b.co",
		CompanyName:   "acme",
		BudgetPerPack: "30",
		NumberOfPacks: "100",
		Occasion:      "conference",
	}
	assert.False(t, record.IsComplete())

	record.SpecialRequests = "standard"
	assert.True(t, record.IsComplete())
}

func TestQuotationRecord_GetCoversAllSlots(t *testing.T) {
	record := QuotationRecord{
		CustomerEmail:   "a@b.co",
		CompanyName:     "acme",
		BudgetPerPack:   "30",
		NumberOfPacks:   "100",
		Occasion:        "conference",
		SpecialRequests: "mugs",
	}

	for _, slot := range AllSlots {
		assert.NotEmpty(t, record.Get(slot), "slot %s", slot)
	}
	assert.Empty(t, record.Get(Slot("unknown")))
}

func TestSlot_Label(t *testing.T) {
	assert.Equal(t, "budget per pack", SlotBudgetPerPack.Label())
	assert.Equal(t, "occasion", SlotOccasion.Label())
}

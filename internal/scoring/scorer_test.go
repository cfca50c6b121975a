package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"quotation-engine/internal/catalog"
)

func testCatalog() []catalog.Item {
	return []catalog.Item{
		{
			Name:        "Power Bank 10000mAh",
			Description: "Fast charging portable power bank with USB ports",
			Category:    "Electronics",
		},
		{
			Name:        "Canvas Tote Bag",
			Description: "Durable everyday tote, customizable print area",
			Category:    "Bags",
		},
		{
			Name:        "Thermal Tumbler",
			Description: "Double-walled tumbler keeps coffee hot for hours",
			Category:    "Drinkware",
		},
		{
			Name:        "Desk Organizer",
			Description: "Bamboo desk organizer, holds a spare power bank too",
			Category:    "Office",
		},
		{
			Name:        "Silk Scarf",
			Description: "Elegant silk scarf in gift box",
			Category:    "Apparel",
		},
	}
}

func itemNames(items []catalog.Item) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return names
}

func TestScore_NameMatchOutranksDescriptionMatch(t *testing.T) {
	results := Score("power bank", testCatalog(), 5)

	names := itemNames(results)
	assert.Contains(t, names, "Power Bank 10000mAh")
	assert.Contains(t, names, "Desk Organizer")
	assert.Equal(t, "Power Bank 10000mAh", names[0],
		"name hit should rank above a description-only match")
}

func TestScore_ExcludesZeroScoreItems(t *testing.T) {
	results := Score("power bank", testCatalog(), 10)

	assert.NotContains(t, itemNames(results), "Silk Scarf")
}

func TestScore_LimitTruncates(t *testing.T) {
	results := Score("gift", testCatalog(), 1)

	assert.LessOrEqual(t, len(results), 1)
}

func TestScore_CategoryGroupBonus(t *testing.T) {
	// "tumbler" is a drinkware group keyword, so the tumbler collects the
	// group bonus on top of the direct keyword and name hits.
	results := Score("tumbler", testCatalog(), 5)

	assert.NotEmpty(t, results)
	assert.Equal(t, "Thermal Tumbler", results[0].Name)
}

func TestScore_OccasionBonusAppliesUniformly(t *testing.T) {
	// Occasion triggers add a flat bonus regardless of item content, so a
	// pure occasion query surfaces the whole catalog in catalog order.
	results := Score("graduation", testCatalog(), 10)

	assert.Equal(t, itemNames(testCatalog()), itemNames(results))
}

func TestScore_EmptyQuery(t *testing.T) {
	assert.Empty(t, Score("", testCatalog(), 5))
	assert.Empty(t, Score("   ", testCatalog(), 5))
}

func TestScore_EmptyCatalog(t *testing.T) {
	assert.Empty(t, Score("power bank", nil, 5))
}

func TestScore_TiesKeepCatalogOrder(t *testing.T) {
	items := []catalog.Item{
		{Name: "Gift Set A", Description: "classic gift"},
		{Name: "Gift Set B", Description: "classic gift"},
	}

	results := Score("gift", items, 2)

	assert.Equal(t, []string{"Gift Set A", "Gift Set B"}, itemNames(results))
}

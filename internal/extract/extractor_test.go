package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"quotation-engine/internal/models"
)

func userMsg(content string) models.Message {
	return models.Message{Role: models.RoleUser, Content: content}
}

func assistantMsg(content string) models.Message {
	return models.Message{Role: models.RoleAssistant, Content: content}
}

func TestExtract_AllSlotsFromSingleMessage(t *testing.T) {
	history := []models.Message{
		userMsg("Hi, I'm looking for CNY gifts, budget is $30 per pack, need 100 packs, my email is jane@acme.com"),
	}

	record := Extract(history)

	assert.Equal(t, "jane@acme.com", record.CustomerEmail)
	assert.Equal(t, "30", record.BudgetPerPack)
	assert.Equal(t, "100", record.NumberOfPacks)
	assert.Equal(t, "chinese new year", record.Occasion)
	assert.Empty(t, record.CompanyName)
	assert.Empty(t, record.SpecialRequests)
	assert.Equal(t, 4, record.SetCount())
}

func TestExtract_EmailPatterns(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected string
	}{
		{"plain address", "reach me at john.doe@example.com please", "john.doe@example.com"},
		{"subdomain", "it's ops@mail.acme.co", "ops@mail.acme.co"},
		{"plus tag", "send to jane+gifts@acme.com", "jane+gifts@acme.com"},
		{"uppercase input lowered", "Email: SALES@ACME.COM", "sales@acme.com"},
		{"no address", "I have no address to share yet", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := Extract([]models.Message{userMsg(tt.message)})
			assert.Equal(t, tt.expected, record.CustomerEmail)
		})
	}
}

func TestExtract_BudgetPatterns(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected string
	}{
		{"dollar sign", "we can do $25 each", "25"},
		{"dollar sign with cents", "around $19.99 per pack", "19.99"},
		{"dollars word", "say 40 dollars a head", "40"},
		{"budget keyword", "our budget for this run is 55", "55"},
		{"per pack phrasing", "thinking 20 for each per pack", "20"},
		{"dollar sign beats dollars word", "$30, although 50 dollars max", "30"},
		{"nothing numeric", "not sure about spend yet", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := Extract([]models.Message{userMsg(tt.message)})
			assert.Equal(t, tt.expected, record.BudgetPerPack)
		})
	}
}

func TestExtract_QuantityPatterns(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected string
	}{
		{"packs", "we want 150 packs", "150"},
		{"pieces", "maybe 80 pieces", "80"},
		{"pax", "catering for 45 pax", "45"},
		{"need phrasing", "we need 60 of them", "60"},
		{"employees", "gifts for our 200 employees", "200"},
		{"clients", "for 35 clients this quarter", "35"},
		{"unit word wins over need", "need gifts, 90 units total", "90"},
		{"no quantity", "quite a few of them", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := Extract([]models.Message{userMsg(tt.message)})
			assert.Equal(t, tt.expected, record.NumberOfPacks)
		})
	}
}

func TestExtract_CompanyPatterns(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected string
	}{
		{"company is", "our company is acme pte", "acme pte"},
		{"company without is", "company globex", "globex"},
		{"from ... company", "i'm from initech company", "initech"},
		{"work at", "i work at stark industries", "stark industries"},
		{"represent", "i represent wayne enterprises", "wayne enterprises"},
		{"no company", "just buying for friends", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := Extract([]models.Message{userMsg(tt.message)})
			assert.Equal(t, tt.expected, record.CompanyName)
		})
	}
}

func TestExtract_OccasionCategoryOrder(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected string
	}{
		{"cny keyword", "shopping for cny hampers", "chinese new year"},
		{"lunar new year", "lunar new year is coming", "chinese new year"},
		{"employee recognition", "staff achievement awards", "employee recognition"},
		{"conference", "giveaways for our seminar", "conference"},
		{"birthday", "her birthday is next week", "birthday"},
		{"wedding", "wedding favors needed", "wedding"},
		{"graduation", "she will graduate soon", "graduation"},
		{"farewell", "a goodbye gift for a colleague", "farewell"},
		// "client" appears before "event" in category order, so a message with
		// both resolves to client appreciation.
		{"earlier category wins", "client event next month", "client appreciation"},
		{"no occasion", "just browsing the catalog", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := Extract([]models.Message{userMsg(tt.message)})
			assert.Equal(t, tt.expected, record.Occasion)
		})
	}
}

func TestExtract_AccumulatesAcrossTurns(t *testing.T) {
	history := []models.Message{
		userMsg("looking for client appreciation gifts"),
		assistantMsg("How many recipients/packs do you need?"),
		userMsg("50 packs"),
		assistantMsg("What's your ideal budget per pack/person?"),
		userMsg("$25 each, email me at buyer@acme.com"),
	}

	record := Extract(history)

	assert.Equal(t, "client appreciation", record.Occasion)
	assert.Equal(t, "50", record.NumberOfPacks)
	assert.Equal(t, "25", record.BudgetPerPack)
	assert.Equal(t, "buyer@acme.com", record.CustomerEmail)
}

func TestExtract_IgnoresAssistantMessages(t *testing.T) {
	history := []models.Message{
		userMsg("hello"),
		assistantMsg("Is your budget $99 for 500 packs at mary@printngift.com?"),
	}

	record := Extract(history)

	assert.Empty(t, record.BudgetPerPack)
	assert.Empty(t, record.NumberOfPacks)
	assert.Empty(t, record.CustomerEmail)
}

func TestExtract_Idempotent(t *testing.T) {
	history := []models.Message{
		userMsg("cny gifts, $30 per pack, need 100 packs, jane@acme.com, company is acme"),
	}

	first := Extract(history)
	second := Extract(history)

	assert.Equal(t, first, second)
}

func TestExtract_EmptyHistory(t *testing.T) {
	record := Extract(nil)

	assert.Equal(t, 0, record.SetCount())
	assert.Equal(t, "0/6", record.Completion())
	assert.False(t, record.IsComplete())
}

func TestExtract_SpecialRequestsNeverExtracted(t *testing.T) {
	history := []models.Message{
		userMsg("special request: please include engraved pens and custom packaging"),
	}

	record := Extract(history)

	assert.Empty(t, record.SpecialRequests)
	assert.False(t, record.IsSet(SlotSpecialRequests))
}

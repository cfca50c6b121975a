package genai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackResponse_TriggerSelection(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected string
	}{
		{
			name:     "email trigger",
			message:  "can you send the quote to my email?",
			expected: "Perfect! What email address should I send your customized quotation to?",
		},
		{
			name:     "company trigger",
			message:  "it's for my organization",
			expected: "Great! Which company should I prepare this quotation for?",
		},
		{
			name:     "budget trigger",
			message:  "what would that cost us?",
			expected: "Excellent! What's your ideal budget per pack or per person?",
		},
		{
			name:     "quantity trigger",
			message:  "how many can you do in bulk?",
			expected: "Perfect! How many gift packs or recipients are we preparing for?",
		},
		{
			name:     "occasion trigger",
			message:  "what's a good purpose for these?",
			expected: "Wonderful! What's the occasion for these gifts?",
		},
		{
			name:     "cny trigger",
			message:  "looking at cny hampers",
			expected: "Perfect timing for CNY gifts!",
		},
		{
			name:     "conference trigger",
			message:  "our workshop is next month",
			expected: "Conference giveaways are great for engagement!",
		},
		{
			name:     "featured trigger",
			message:  "show me featured items",
			expected: "I'd love to show you our featured items!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response := FallbackResponse(tt.message)
			assert.True(t, strings.HasPrefix(response, tt.expected),
				"message %q got %q", tt.message, response)
		})
	}
}

func TestFallbackResponse_FirstTriggerWins(t *testing.T) {
	// "email" appears in an earlier trigger than "budget"; order decides.
	response := FallbackResponse("email me the budget options")

	assert.Contains(t, response, "What email address should I send your customized quotation to?")
}

func TestFallbackResponse_DefaultGreeting(t *testing.T) {
	response := FallbackResponse("hello there")

	assert.Contains(t, response, "Hi! I'm Mary from PrintnGift.")
}

func TestFallbackResponse_CaseInsensitive(t *testing.T) {
	assert.Equal(t, FallbackResponse("EMAIL please"), FallbackResponse("email please"))
}

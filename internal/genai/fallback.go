package genai

import "strings"

// fallbackTrigger maps a keyword set to a canned, data-collection-focused
// reply. Triggers are checked in order; the first with any keyword present
// wins.
type fallbackTrigger struct {
	keywords []string
	response string
}

var fallbackTriggers = []fallbackTrigger{
	{
		keywords: []string{"email", "@", "send", "quotation", "quote"},
		response: "Perfect! What email address should I send your customized quotation to? I'll include several options based on your requirements.",
	},
	{
		keywords: []string{"company", "business", "organization", "firm"},
		response: "Great! Which company should I prepare this quotation for? This helps me customize the recommendations for your needs.",
	},
	{
		keywords: []string{"budget", "price", "cost", "spend", "$"},
		response: "Excellent! What's your ideal budget per pack or per person? This helps me suggest the most suitable options within your range.",
	},
	{
		keywords: []string{"quantity", "number", "how many", "people", "recipients", "packs"},
		response: "Perfect! How many gift packs or recipients are we preparing for? This helps determine the best bulk pricing options.",
	},
	{
		keywords: []string{"occasion", "event", "purpose", "reason", "celebration"},
		response: "Wonderful! What's the occasion for these gifts? This helps me recommend the most appropriate items and presentation.",
	},
	{
		keywords: []string{"special", "request", "prefer", "include", "want", "need"},
		response: "Great! Any specific items you'd like included in the packs or special requirements? This ensures we create exactly what you envision.",
	},
	{
		keywords: []string{"client", "customer", "appreciation"},
		response: "Client appreciation gifts! How many clients are you gifting to, and what's your budget per pack? I'll suggest premium options that leave lasting impressions.",
	},
	{
		keywords: []string{"employee", "staff", "team", "recognition"},
		response: "Employee recognition is so important! How many team members, and what's your budget per person? I'll recommend items that boost morale and show appreciation.",
	},
	{
		keywords: []string{"chinese new year", "cny", "festive", "holiday"},
		response: "Perfect timing for CNY gifts! How many recipients and what's your budget per pack? I'll suggest traditional options with festive packaging.",
	},
	{
		keywords: []string{"conference", "event", "seminar", "workshop"},
		response: "Conference giveaways are great for engagement! How many attendees and what's your budget per pack? I'll suggest practical items with excellent branding potential.",
	},
	{
		keywords: []string{"featured", "popular", "recommend", "suggest", "show"},
		response: "I'd love to show you our featured items! First, what's the occasion and how many gift packs do you need? This helps me recommend the perfect options.",
	},
}

const defaultFallback = "Hi! I'm Mary from PrintnGift. I'd love to help you find perfect corporate gifts! What's the occasion, and how many gift packs do you need? This helps me suggest the best options for you."

// FallbackVisionResponse stands in when the image model is unavailable.
const FallbackVisionResponse = "I can see your image! Let me suggest some relevant gift options from our collection."

// FallbackResponse returns a deterministic canned reply keyed off the last
// user message, used whenever the generation collaborator fails so the
// conversation can continue.
func FallbackResponse(message string) string {
	lower := strings.ToLower(message)
	for _, trigger := range fallbackTriggers {
		for _, kw := range trigger.keywords {
			if strings.Contains(lower, kw) {
				return trigger.response
			}
		}
	}
	return defaultFallback
}

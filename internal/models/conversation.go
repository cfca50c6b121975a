package models

import "time"

// Role identifies the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single conversation turn. Immutable once appended; ordering
// within a conversation is semantically meaningful.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ConversationEntry couples a message history with its last-activity time.
// Owned exclusively by the conversation store.
type ConversationEntry struct {
	Messages     []Message `json:"messages"`
	LastActivity time.Time `json:"last_activity"`
}

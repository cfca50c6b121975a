// Package store owns conversation state: ordered message histories keyed by
// conversation id, with last-activity tracking and time-based eviction.
// Callers depend on the Store interface, not on a shared map, so backends can
// be swapped and tests can run in isolation.
package store

import (
	"context"
	"time"

	"quotation-engine/internal/models"
)

// Store is the conversation lifecycle contract. Appends to different ids must
// not interfere; appends to the same id serialize so history ordering is
// preserved for extraction. An append either fully completes or leaves prior
// state unchanged.
type Store interface {
	// Append adds a message to the conversation. When id is empty or unknown
	// a fresh globally-unique id is allocated and an empty entry created
	// first. The entry's last-activity time is updated and the full history
	// after the append is returned alongside the effective id.
	Append(ctx context.Context, id string, msg models.Message) (string, []models.Message, error)

	// Get returns a snapshot of the conversation's history, or an error
	// wrapping errors.ErrNotFound for an unknown id.
	Get(ctx context.Context, id string) ([]models.Message, error)

	// IDs returns the ids of every live conversation.
	IDs(ctx context.Context) ([]string, error)

	// Entries returns a snapshot of every live conversation keyed by id.
	Entries(ctx context.Context) (map[string]models.ConversationEntry, error)

	// Len returns the number of live conversations.
	Len(ctx context.Context) (int, error)

	// EvictOlderThan removes every conversation whose last activity predates
	// now minus age and reports how many were removed. Eviction is
	// unconditional whole-entry deletion with no drain or notification.
	EvictOlderThan(ctx context.Context, age time.Duration) (int, error)
}

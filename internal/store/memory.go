package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	apperrors "quotation-engine/internal/common/errors"
	"quotation-engine/internal/models"
)

// MemoryStore keeps conversations in a process-local map guarded by a
// read-write mutex. All returned histories are copies, so callers always work
// on a consistent snapshot and can never observe a torn entry.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]*models.ConversationEntry
	now     func() time.Time
}

// NewMemoryStore constructs an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*models.ConversationEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Append(_ context.Context, id string, msg models.Message) (string, []models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if id == "" || !ok {
		id = uuid.NewString()
		entry = &models.ConversationEntry{}
		s.entries[id] = entry
	}

	entry.Messages = append(entry.Messages, msg)
	entry.LastActivity = s.now()

	return id, copyMessages(entry.Messages), nil
}

func (s *MemoryStore) Get(_ context.Context, id string) ([]models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[id]
	if !ok {
		return nil, apperrors.NewConversationNotFoundError(id)
	}
	return copyMessages(entry.Messages), nil
}

func (s *MemoryStore) IDs(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.entries))
	for id := range s.entries {
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *MemoryStore) Entries(_ context.Context) (map[string]models.ConversationEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]models.ConversationEntry, len(s.entries))
	for id, entry := range s.entries {
		out[id] = models.ConversationEntry{
			Messages:     copyMessages(entry.Messages),
			LastActivity: entry.LastActivity,
		}
	}
	return out, nil
}

func (s *MemoryStore) Len(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries), nil
}

func (s *MemoryStore) EvictOlderThan(_ context.Context, age time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-age)
	removed := 0
	for id, entry := range s.entries {
		if entry.LastActivity.Before(cutoff) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed, nil
}

func copyMessages(msgs []models.Message) []models.Message {
	out := make([]models.Message, len(msgs))
	copy(out, msgs)
	return out
}

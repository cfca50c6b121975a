package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"quotation-engine/internal/common/config"
	apperrors "quotation-engine/internal/common/errors"
	"quotation-engine/internal/models"
)

const redisKeyPrefix = "conversation:"

// RedisStore is an alternative Store backend keeping each conversation entry
// as a JSON value under a keyspace TTL. The TTL mirrors the idle threshold,
// so Redis expires idle conversations on its own; EvictOlderThan remains for
// API parity and for sweeps with a different age. A process-local mutex
// serializes read-modify-write appends; the engine runs a single process per
// store, so no cross-process coordination is needed.
type RedisStore struct {
	client  *redis.Client
	idleTTL time.Duration
	mu      sync.Mutex
	now     func() time.Time
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, cfg config.RedisConfig, idleTTL time.Duration) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &RedisStore{client: client, idleTTL: idleTTL, now: time.Now}, nil
}

// Close releases the underlying connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) Append(ctx context.Context, id string, msg models.Message) (string, []models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var entry models.ConversationEntry
	known := false

	if id != "" {
		raw, err := s.client.Get(ctx, redisKeyPrefix+id).Result()
		switch {
		case err == nil:
			if err := json.Unmarshal([]byte(raw), &entry); err != nil {
				return "", nil, fmt.Errorf("decode conversation %s: %w", id, err)
			}
			known = true
		case err != redis.Nil:
			return "", nil, fmt.Errorf("load conversation %s: %w", id, err)
		}
	}

	if id == "" || !known {
		id = uuid.NewString()
		entry = models.ConversationEntry{}
	}

	entry.Messages = append(entry.Messages, msg)
	entry.LastActivity = s.now()

	raw, err := json.Marshal(&entry)
	if err != nil {
		return "", nil, fmt.Errorf("encode conversation %s: %w", id, err)
	}
	if err := s.client.Set(ctx, redisKeyPrefix+id, raw, s.idleTTL).Err(); err != nil {
		return "", nil, fmt.Errorf("store conversation %s: %w", id, err)
	}

	return id, entry.Messages, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) ([]models.Message, error) {
	raw, err := s.client.Get(ctx, redisKeyPrefix+id).Result()
	if err == redis.Nil {
		return nil, apperrors.NewConversationNotFoundError(id)
	}
	if err != nil {
		return nil, fmt.Errorf("load conversation %s: %w", id, err)
	}

	var entry models.ConversationEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return nil, fmt.Errorf("decode conversation %s: %w", id, err)
	}
	return entry.Messages, nil
}

func (s *RedisStore) IDs(ctx context.Context) ([]string, error) {
	var ids []string
	iter := s.client.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		ids = append(ids, strings.TrimPrefix(iter.Val(), redisKeyPrefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan conversations: %w", err)
	}
	return ids, nil
}

func (s *RedisStore) Entries(ctx context.Context) (map[string]models.ConversationEntry, error) {
	ids, err := s.IDs(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string]models.ConversationEntry, len(ids))
	for _, id := range ids {
		raw, err := s.client.Get(ctx, redisKeyPrefix+id).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("load conversation %s: %w", id, err)
		}
		var entry models.ConversationEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			continue
		}
		out[id] = entry
	}
	return out, nil
}

func (s *RedisStore) Len(ctx context.Context) (int, error) {
	ids, err := s.IDs(ctx)
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}

func (s *RedisStore) EvictOlderThan(ctx context.Context, age time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.IDs(ctx)
	if err != nil {
		return 0, err
	}

	cutoff := s.now().Add(-age)
	removed := 0
	for _, id := range ids {
		raw, err := s.client.Get(ctx, redisKeyPrefix+id).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return removed, fmt.Errorf("load conversation %s: %w", id, err)
		}

		var entry models.ConversationEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			// Undecodable entries are dead weight; remove them too.
			entry.LastActivity = time.Time{}
		}

		if entry.LastActivity.Before(cutoff) {
			if err := s.client.Del(ctx, redisKeyPrefix+id).Err(); err != nil {
				return removed, fmt.Errorf("evict conversation %s: %w", id, err)
			}
			removed++
		}
	}
	return removed, nil
}

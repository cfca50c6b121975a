package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quotation-engine/internal/common/config"
	apperrors "quotation-engine/internal/common/errors"
)

func setupRedisStore(t *testing.T, idleTTL time.Duration) (*RedisStore, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	s, err := NewRedisStore(context.Background(), config.RedisConfig{Address: mr.Addr()}, idleTTL)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s, mr
}

func TestRedisStore_AppendAndGet(t *testing.T) {
	s, _ := setupRedisStore(t, 30*time.Minute)
	ctx := context.Background()

	id, history, err := s.Append(ctx, "", userMessage("hello"))
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Len(t, history, 1)

	sameID, history, err := s.Append(ctx, id, userMessage("again"))
	require.NoError(t, err)
	assert.Equal(t, id, sameID)
	require.Len(t, history, 2)
	assert.Equal(t, "hello", history[0].Content)

	stored, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestRedisStore_AppendUnknownIDAllocatesFresh(t *testing.T) {
	s, _ := setupRedisStore(t, 30*time.Minute)

	id, history, err := s.Append(context.Background(), "never-stored", userMessage("hi"))

	require.NoError(t, err)
	assert.NotEqual(t, "never-stored", id)
	assert.Len(t, history, 1)
}

func TestRedisStore_GetUnknownID(t *testing.T) {
	s, _ := setupRedisStore(t, 30*time.Minute)

	_, err := s.Get(context.Background(), "missing")

	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestRedisStore_KeyspaceTTLExpiresIdleConversations(t *testing.T) {
	s, mr := setupRedisStore(t, 30*time.Minute)
	ctx := context.Background()

	id, _, err := s.Append(ctx, "", userMessage("hello"))
	require.NoError(t, err)

	mr.FastForward(31 * time.Minute)

	_, err = s.Get(ctx, id)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestRedisStore_AppendRefreshesTTL(t *testing.T) {
	s, mr := setupRedisStore(t, 30*time.Minute)
	ctx := context.Background()

	id, _, err := s.Append(ctx, "", userMessage("hello"))
	require.NoError(t, err)

	mr.FastForward(20 * time.Minute)
	_, _, err = s.Append(ctx, id, userMessage("still here"))
	require.NoError(t, err)

	mr.FastForward(20 * time.Minute)

	history, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestRedisStore_IDsAndEntries(t *testing.T) {
	s, _ := setupRedisStore(t, 30*time.Minute)
	ctx := context.Background()

	first, _, err := s.Append(ctx, "", userMessage("a"))
	require.NoError(t, err)
	second, _, err := s.Append(ctx, "", userMessage("b"))
	require.NoError(t, err)

	ids, err := s.IDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{first, second}, ids)

	entries, err := s.Entries(ctx)
	require.NoError(t, err)
	require.Contains(t, entries, first)
	assert.Len(t, entries[first].Messages, 1)
	assert.False(t, entries[first].LastActivity.IsZero())

	n, err := s.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestRedisStore_EvictOlderThan(t *testing.T) {
	s, _ := setupRedisStore(t, 30*time.Minute)
	ctx := context.Background()

	current := time.Now()
	s.now = func() time.Time { return current.Add(-time.Hour) }
	staleID, _, err := s.Append(ctx, "", userMessage("stale"))
	require.NoError(t, err)

	s.now = func() time.Time { return current }
	freshID, _, err := s.Append(ctx, "", userMessage("fresh"))
	require.NoError(t, err)

	removed, err := s.EvictOlderThan(ctx, 30*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = s.Get(ctx, staleID)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	_, err = s.Get(ctx, freshID)
	assert.NoError(t, err)
}

func TestRedisStore_EvictRemovesUndecodableEntries(t *testing.T) {
	s, mr := setupRedisStore(t, 30*time.Minute)
	ctx := context.Background()

	require.NoError(t, mr.Set(redisKeyPrefix+"broken", "not json"))

	removed, err := s.EvictOlderThan(ctx, 30*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
}

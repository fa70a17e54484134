package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreGetSetIncr(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	n, err := s.Incr(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, s.Set(ctx, "k", 5, 0))
	v, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(5), v)

	require.NoError(t, s.Del(ctx, "k"))
	ok, err = s.Has(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreTTLExpiry(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	s.Now = func() time.Time { return now }

	require.NoError(t, s.Set(ctx, "k", 1, time.Hour))

	now = now.Add(59 * time.Minute)
	ok, err := s.Has(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)

	now = now.Add(2 * time.Minute)
	ok, err = s.Has(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreScanPrefix(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Set(ctx, "post:like_count:1", 1, 0))
	require.NoError(t, s.Set(ctx, "post:like_count:2", 2, 0))
	require.NoError(t, s.Set(ctx, "other:3", 3, 0))

	keys, err := s.ScanPrefix(ctx, "post:like_count:")
	require.NoError(t, err)
	assert.Len(t, keys, 2)
}

func TestMemoryStoreBadValue(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	s.SetRaw("k")

	_, ok, err := s.Get(ctx, "k")
	assert.True(t, ok)
	assert.ErrorIs(t, err, ErrBadValue)

	_, err = s.Incr(ctx, "k")
	assert.ErrorIs(t, err, ErrBadValue)
}

package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryProviderRoundTrip(t *testing.T) {
	mem := NewMemoryProvider()
	ctx := context.Background()

	_, err := mem.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, mem.Set(ctx, "k", []byte("v"), time.Hour))

	value, err := mem.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), value)

	exists, err := mem.Exists(ctx, "k")
	require.NoError(t, err)
	assert.True(t, exists)

	deleted, err := mem.Delete(ctx, "k")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = mem.Delete(ctx, "k")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestMemoryProviderTTLExpiry(t *testing.T) {
	mem := NewMemoryProvider()
	ctx := context.Background()

	current := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mem.now = func() time.Time { return current }

	require.NoError(t, mem.Set(ctx, "k", []byte("v"), time.Minute))

	current = current.Add(30 * time.Second)
	_, err := mem.Get(ctx, "k")
	require.NoError(t, err)

	current = current.Add(31 * time.Second)
	_, err = mem.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	exists, err := mem.Exists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Equal(t, 0, mem.Len())
}

func TestMemoryProviderZeroTTLNeverExpires(t *testing.T) {
	mem := NewMemoryProvider()
	ctx := context.Background()

	current := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mem.now = func() time.Time { return current }

	require.NoError(t, mem.Set(ctx, "k", []byte("v"), 0))
	current = current.Add(1000 * time.Hour)

	_, err := mem.Get(ctx, "k")
	assert.NoError(t, err)
}

func TestMemoryProviderKeysPrefix(t *testing.T) {
	mem := NewMemoryProvider()
	ctx := context.Background()

	require.NoError(t, mem.Set(ctx, "room:AAAA0000", []byte("a"), time.Hour))
	require.NoError(t, mem.Set(ctx, "room:BBBB1111", []byte("b"), time.Hour))
	require.NoError(t, mem.Set(ctx, "other:key", []byte("c"), time.Hour))

	keys, err := mem.Keys(ctx, "room:")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"room:AAAA0000", "room:BBBB1111"}, keys)
}

func TestMemoryProviderCopiesValues(t *testing.T) {
	mem := NewMemoryProvider()
	ctx := context.Background()

	original := []byte("value")
	require.NoError(t, mem.Set(ctx, "k", original, time.Hour))
	original[0] = 'X'

	got, err := mem.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), got)

	got[0] = 'Y'
	again, err := mem.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), again)
}

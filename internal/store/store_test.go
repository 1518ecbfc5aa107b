package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, ok, err := s.Get(ctx, KeyLessons)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, KeyLessons, []byte(`[{"id":"a"}]`)))

	raw, ok, err := s.Get(ctx, KeyLessons)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":"a"}]`, string(raw))
}

func TestStoreSetOverwrites(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyRewardPoints, []byte(`10`)))
	require.NoError(t, s.Set(ctx, KeyRewardPoints, []byte(`25`)))

	raw, ok, err := s.Get(ctx, KeyRewardPoints)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `25`, string(raw))
}

func TestStoreDelete(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeySeenWords, []byte(`["a"]`)))
	require.NoError(t, s.Delete(ctx, KeySeenWords))

	_, ok, err := s.Get(ctx, KeySeenWords)
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is a no-op.
	require.NoError(t, s.Delete(ctx, KeySeenWords))
}

func TestStoreClear(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyLessons, []byte(`[]`)))
	require.NoError(t, s.Set(ctx, KeyMistakes, []byte(`[]`)))
	require.NoError(t, s.Clear(ctx))

	for _, key := range []string{KeyLessons, KeyMistakes} {
		_, ok, err := s.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok, "key %q should be gone", key)
	}
}

func TestDefaultDBPathEnvOverride(t *testing.T) {
	p := filepath.Join(t.TempDir(), "custom", "my.db")
	t.Setenv("PINDRILL_DB", p)

	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestDefaultDBPathXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PINDRILL_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)

	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "pindrill", "pindrill.db"), got)
}

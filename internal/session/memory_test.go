package session

import (
	"context"
	"testing"
	"time"

	"sahyogjeevan/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_CreateAndGet(t *testing.T) {
	store := NewMemoryStore(0)
	defer store.Close()
	ctx := context.Background()

	sess := New(42, models.UserRoleWorker, time.Hour)
	require.NoError(t, store.Create(ctx, sess))

	got, err := store.Get(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), got.UserID)
	assert.Equal(t, models.UserRoleWorker, got.Role)

	// Mutating the returned copy must not touch the stored session.
	got.UserID = 99
	again, err := store.Get(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), again.UserID)
}

func TestMemoryStore_UnknownToken(t *testing.T) {
	store := NewMemoryStore(0)
	defer store.Close()

	_, err := store.Get(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_ExpiredSession(t *testing.T) {
	store := NewMemoryStore(0)
	defer store.Close()
	ctx := context.Background()

	sess := New(1, models.UserRoleEmployer, -time.Minute)
	require.NoError(t, store.Create(ctx, sess))

	_, err := store.Get(ctx, sess.Token)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, store.Len(), "expired entry is removed on access")
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore(0)
	defer store.Close()
	ctx := context.Background()

	sess := New(1, models.UserRoleWorker, time.Hour)
	require.NoError(t, store.Create(ctx, sess))
	require.NoError(t, store.Delete(ctx, sess.Token))

	_, err := store.Get(ctx, sess.Token)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting again is a no-op.
	assert.NoError(t, store.Delete(ctx, sess.Token))
}

func TestMemoryStore_DeleteByUser(t *testing.T) {
	store := NewMemoryStore(0)
	defer store.Close()
	ctx := context.Background()

	first := New(7, models.UserRoleWorker, time.Hour)
	second := New(7, models.UserRoleWorker, time.Hour)
	other := New(8, models.UserRoleWorker, time.Hour)
	require.NoError(t, store.Create(ctx, first))
	require.NoError(t, store.Create(ctx, second))
	require.NoError(t, store.Create(ctx, other))

	require.NoError(t, store.DeleteByUser(ctx, 7))

	_, err := store.Get(ctx, first.Token)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.Get(ctx, second.Token)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := store.Get(ctx, other.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(8), got.UserID)
}

func TestMemoryStore_Prune(t *testing.T) {
	store := NewMemoryStore(0)
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, New(1, models.UserRoleWorker, -time.Minute)))
	require.NoError(t, store.Create(ctx, New(2, models.UserRoleWorker, time.Hour)))
	require.Equal(t, 2, store.Len())

	store.prune()
	assert.Equal(t, 1, store.Len())
}

func TestNewToken_OpaqueAndUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token := NewToken()
		assert.Len(t, token, 64)
		assert.NotContains(t, token, "-")
		assert.False(t, seen[token])
		seen[token] = true
	}
}

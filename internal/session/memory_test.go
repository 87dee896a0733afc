package session

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	sess := Session{
		UserID: uuid.New(),
		Email:  "seeker@example.com",
		Role:   "job_seeker",
	}

	id := NewID()
	assert.NoError(t, store.Set(ctx, id, sess, time.Minute))

	got, err := store.Get(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, sess, got)
}

func TestMemoryStoreMissingID(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), NewID())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	id := NewID()
	assert.NoError(t, store.Set(ctx, id, Session{Email: "x@example.com"}, 10*time.Millisecond))

	time.Sleep(20 * time.Millisecond)

	_, err := store.Get(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreDestroy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	id := NewID()
	assert.NoError(t, store.Set(ctx, id, Session{Email: "x@example.com"}, time.Minute))
	assert.NoError(t, store.Destroy(ctx, id))

	_, err := store.Get(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)

	// destroying twice is not an error
	assert.NoError(t, store.Destroy(ctx, id))
}

func TestTTLFallsBackToDefault(t *testing.T) {
	t.Setenv("SESSION_TTL_HOURS", "")
	assert.Equal(t, DefaultTTL, TTL())

	t.Setenv("SESSION_TTL_HOURS", "nonsense")
	assert.Equal(t, DefaultTTL, TTL())

	t.Setenv("SESSION_TTL_HOURS", "2")
	assert.Equal(t, 2*time.Hour, TTL())
}

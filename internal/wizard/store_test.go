package wizard

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quote-simulator/internal/common/database"
	stderrors "quote-simulator/internal/common/errors"
	"quote-simulator/internal/pricing"
)

// ==========================================================================
// Helpers
// ==========================================================================

func newTestStore(t *testing.T, ttl time.Duration) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := &database.RedisClient{
		Client: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}
	t.Cleanup(func() { _ = client.Close() })
	return NewStore(client, ttl), mr
}

// ==========================================================================
// Session lifecycle
// ==========================================================================

func TestCreate_MintsSessionID(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)

	session, stdErr := store.Create(context.Background())
	require.Nil(t, stdErr)

	_, err := uuid.Parse(session.ID)
	assert.NoError(t, err, "session id must be a uuid")
	assert.NotNil(t, session.Answers)
	assert.Empty(t, session.Answers)

	loaded, stdErr := store.Load(context.Background(), session.ID)
	require.Nil(t, stdErr)
	assert.Equal(t, session.ID, loaded.ID)
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	answers := pricing.Answers{
		"type-projet":      "ecommerce",
		"tool-connections": "crm,paiement",
	}
	saved, stdErr := store.Save(ctx, "session-1", answers)
	require.Nil(t, stdErr)
	assert.False(t, saved.UpdatedAt.IsZero())

	loaded, stdErr := store.Load(ctx, "session-1")
	require.Nil(t, stdErr)
	assert.Equal(t, answers, loaded.Answers)
	assert.Equal(t, "session-1", loaded.ID)
}

func TestSave_LastWriteWins(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	_, stdErr := store.Save(ctx, "s", pricing.Answers{"design": "non"})
	require.Nil(t, stdErr)
	_, stdErr = store.Save(ctx, "s", pricing.Answers{"design": "oui-complet"})
	require.Nil(t, stdErr)

	loaded, stdErr := store.Load(ctx, "s")
	require.Nil(t, stdErr)
	assert.Equal(t, "oui-complet", loaded.Answers.Get("design"))
	assert.NotContains(t, loaded.Answers, "type-projet")
}

func TestSave_NilAnswersBecomeEmpty(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)

	saved, stdErr := store.Save(context.Background(), "s", nil)
	require.Nil(t, stdErr)
	assert.NotNil(t, saved.Answers)
}

func TestLoad_MissingSession(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)

	_, stdErr := store.Load(context.Background(), "nope")
	require.NotNil(t, stdErr)
	assert.Equal(t, stderrors.ErrCodeSessionNotFound, stdErr.Code)
}

func TestLoad_ExpiredSession(t *testing.T) {
	store, mr := newTestStore(t, time.Minute)
	ctx := context.Background()

	_, stdErr := store.Save(ctx, "s", pricing.Answers{"delai": "urgent"})
	require.Nil(t, stdErr)

	mr.FastForward(2 * time.Minute)

	_, stdErr = store.Load(ctx, "s")
	require.NotNil(t, stdErr)
	assert.Equal(t, stderrors.ErrCodeSessionNotFound, stdErr.Code)
}

func TestSave_AppliesTTL(t *testing.T) {
	store, mr := newTestStore(t, 30*time.Minute)

	_, stdErr := store.Save(context.Background(), "s", pricing.Answers{})
	require.Nil(t, stdErr)

	ttl := mr.TTL(keyPrefix + "s")
	assert.Equal(t, 30*time.Minute, ttl)
}

func TestDelete(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	_, stdErr := store.Save(ctx, "s", pricing.Answers{})
	require.Nil(t, stdErr)
	require.Nil(t, store.Delete(ctx, "s"))

	_, stdErr = store.Load(ctx, "s")
	require.NotNil(t, stdErr)
	assert.Equal(t, stderrors.ErrCodeSessionNotFound, stdErr.Code)

	assert.Nil(t, store.Delete(ctx, "s"), "deleting an absent session is not an error")
}

func TestSave_StoreFailure(t *testing.T) {
	store, mr := newTestStore(t, time.Hour)
	mr.Close()

	_, stdErr := store.Save(context.Background(), "s", pricing.Answers{})
	require.NotNil(t, stdErr)
	assert.Equal(t, stderrors.ErrCodeSessionStoreFailed, stdErr.Code)
}

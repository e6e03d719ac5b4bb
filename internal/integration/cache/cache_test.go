package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restobill/backend/internal/domain/entity"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return server, client
}

func TestCartStoreMissingCartReadsEmpty(t *testing.T) {
	_, client := setupRedis(t)
	store := NewCartStore(client, time.Hour)

	cart, err := store.Get(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.True(t, cart.IsEmpty())
	assert.NotNil(t, cart.Lines)
}

func TestCartStoreSaveAndReload(t *testing.T) {
	_, client := setupRedis(t)
	store := NewCartStore(client, time.Hour)
	sessionID := uuid.New()

	idly := entity.NewMenuItem("Idly", decimal.NewFromInt(15), "", "breakfast", true)
	cart := entity.NewCart()
	cart.AddItem(idly, 3)
	require.NoError(t, store.Save(context.Background(), sessionID, cart))

	reloaded, err := store.Get(context.Background(), sessionID)
	require.NoError(t, err)

	require.Len(t, reloaded.Lines, 1)
	line := reloaded.Lines[idly.ID.String()]
	require.NotNil(t, line)
	assert.Equal(t, "Idly", line.Name)
	assert.Equal(t, 3, line.Quantity)
	assert.Equal(t, "15.00", line.UnitPrice.StringFixed(2))
	assert.Equal(t, "45.00", reloaded.Total().StringFixed(2))
}

func TestCartStoreSessionsAreIsolated(t *testing.T) {
	_, client := setupRedis(t)
	store := NewCartStore(client, time.Hour)

	idly := entity.NewMenuItem("Idly", decimal.NewFromInt(15), "", "breakfast", true)
	first := entity.NewCart()
	first.AddItem(idly, 1)
	require.NoError(t, store.Save(context.Background(), uuid.New(), first))

	other, err := store.Get(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.True(t, other.IsEmpty())
}

func TestCartStoreExpiresWithTTL(t *testing.T) {
	server, client := setupRedis(t)
	store := NewCartStore(client, time.Minute)
	sessionID := uuid.New()

	idly := entity.NewMenuItem("Idly", decimal.NewFromInt(15), "", "breakfast", true)
	cart := entity.NewCart()
	cart.AddItem(idly, 1)
	require.NoError(t, store.Save(context.Background(), sessionID, cart))

	server.FastForward(2 * time.Minute)

	reloaded, err := store.Get(context.Background(), sessionID)
	require.NoError(t, err)
	assert.True(t, reloaded.IsEmpty())
}

func TestCartStoreClear(t *testing.T) {
	_, client := setupRedis(t)
	store := NewCartStore(client, time.Hour)
	sessionID := uuid.New()

	idly := entity.NewMenuItem("Idly", decimal.NewFromInt(15), "", "breakfast", true)
	cart := entity.NewCart()
	cart.AddItem(idly, 2)
	require.NoError(t, store.Save(context.Background(), sessionID, cart))

	require.NoError(t, store.Clear(context.Background(), sessionID))
	// Clearing again is not an error.
	require.NoError(t, store.Clear(context.Background(), sessionID))

	reloaded, err := store.Get(context.Background(), sessionID)
	require.NoError(t, err)
	assert.True(t, reloaded.IsEmpty())
}

func TestReportCacheMissAndHit(t *testing.T) {
	_, client := setupRedis(t)
	reportCache := NewReportCache(client)
	ctx := context.Background()

	_, hit, err := reportCache.Get(ctx, "daily|2024-03-09|all|pdf")
	require.NoError(t, err)
	assert.False(t, hit)

	payload := []byte("%PDF-1.4 fake")
	require.NoError(t, reportCache.Set(ctx, "daily|2024-03-09|all|pdf", payload, 5*time.Minute))

	cached, hit, err := reportCache.Get(ctx, "daily|2024-03-09|all|pdf")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, payload, cached)
}

func TestReportCacheKeysAreFormatSpecific(t *testing.T) {
	_, client := setupRedis(t)
	reportCache := NewReportCache(client)
	ctx := context.Background()

	require.NoError(t, reportCache.Set(ctx, "daily|2024-03-09|all|pdf", []byte("pdf"), time.Minute))

	_, hit, err := reportCache.Get(ctx, "daily|2024-03-09|all|xlsx")
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestReportCacheEntriesExpire(t *testing.T) {
	server, client := setupRedis(t)
	reportCache := NewReportCache(client)
	ctx := context.Background()

	require.NoError(t, reportCache.Set(ctx, "monthly|2024-03|all|xlsx", []byte("sheet"), 5*time.Minute))
	server.FastForward(6 * time.Minute)

	_, hit, err := reportCache.Get(ctx, "monthly|2024-03|all|xlsx")
	require.NoError(t, err)
	assert.False(t, hit)
}

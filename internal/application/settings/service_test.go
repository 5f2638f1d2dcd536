package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/fridgewise/core/internal/infrastructure/persistence/memory"
	"github.com/fridgewise/core/internal/ports/outbound"
)

func TestOnboarded_FreshInstallIsFalse(t *testing.T) {
	svc := NewService(memory.NewStore(), zaptest.NewLogger(t))

	done, err := svc.Onboarded(context.Background())

	require.NoError(t, err)
	assert.False(t, done)
}

func TestSetOnboarded_RoundTrips(t *testing.T) {
	svc := NewService(memory.NewStore(), zaptest.NewLogger(t))
	ctx := context.Background()

	require.NoError(t, svc.SetOnboarded(ctx, true))
	done, err := svc.Onboarded(ctx)
	require.NoError(t, err)
	assert.True(t, done)

	require.NoError(t, svc.SetOnboarded(ctx, false))
	done, err = svc.Onboarded(ctx)
	require.NoError(t, err)
	assert.False(t, done)
}

func TestClearAllData_EmptiesEverythingAndRestoresStatsBaseline(t *testing.T) {
	store := memory.NewStore()
	svc := NewService(store, zaptest.NewLogger(t))
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, outbound.CollectionInventory, []byte(`[{"name":"Milk"}]`)))
	require.NoError(t, store.Set(ctx, outbound.CollectionHistory, []byte(`[{"id":"r-1"}]`)))
	require.NoError(t, store.Set(ctx, outbound.CollectionStats, []byte(`{"moneySaved":450}`)))
	require.NoError(t, svc.SetOnboarded(ctx, true))

	require.NoError(t, svc.ClearAllData(ctx))

	for _, collection := range outbound.Collections() {
		if collection == outbound.CollectionStats {
			continue
		}
		data, err := store.Get(ctx, collection)
		require.NoError(t, err)
		assert.Nil(t, data, "collection %s must be empty after a reset", collection)
	}

	data, err := store.Get(ctx, outbound.CollectionStats)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"moneySaved":0`, "stats restart from the baseline, not from the old totals")

	done, err := svc.Onboarded(ctx)
	require.NoError(t, err)
	assert.False(t, done, "a reset takes the user back through onboarding")
}

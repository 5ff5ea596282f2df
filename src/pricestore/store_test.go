package pricestore

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	price, err := store.Get(ctx, "USD")
	require.NoError(t, err)
	assert.Zero(t, price, "unset currency reads as 0")

	require.NoError(t, store.Set(ctx, "USD", 2400.5))
	price, err = store.Get(ctx, "USD")
	require.NoError(t, err)
	assert.Equal(t, 2400.5, price)

	// last write wins
	require.NoError(t, store.Set(ctx, "USD", 2350))
	price, err = store.Get(ctx, "USD")
	require.NoError(t, err)
	assert.Equal(t, 2350.0, price)
}

func TestMemoryStoreConcurrent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = store.Set(ctx, "VND", float64(46000000+i))
		}(i)
		go func() {
			defer wg.Done()
			_, _ = store.Get(ctx, "VND")
		}()
	}
	wg.Wait()

	price, err := store.Get(ctx, "VND")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, price, 46000000.0)
}

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "prices.db")

	store, err := OpenSQLite(path)
	require.NoError(t, err)
	defer store.Close()

	price, err := store.Get(ctx, "EUR")
	require.NoError(t, err)
	assert.Zero(t, price)

	require.NoError(t, store.Set(ctx, "EUR", 2100.25))
	require.NoError(t, store.Set(ctx, "EUR", 2155.75))

	price, err = store.Get(ctx, "EUR")
	require.NoError(t, err)
	assert.Equal(t, 2155.75, price)
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "prices.db")

	store, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "GBP", 1900))
	require.NoError(t, store.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	price, err := reopened.Get(ctx, "GBP")
	require.NoError(t, err)
	assert.Equal(t, 1900.0, price)
}

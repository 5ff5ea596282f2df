package goldprice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tdnguyen/aureus/src/pricestore"
)

func newTestService(t *testing.T, handler http.HandlerFunc, store pricestore.Store) (*Service, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	svc := NewService(Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Timeout: 2 * time.Second,
		Store:   store,
	})
	return svc, server
}

func TestCurrencyFor(t *testing.T) {
	tests := []struct {
		country string
		want    string
	}{
		{"USA", "USD"},
		{"united states", "USD"},
		{"UK", "GBP"},
		{"Japan", "JPY"},
		{"VIETNAM", "VND"},
		{"vn", "VND"},
		{"  Germany  ", "EUR"},
		{"unknownland", "USD"},
		{"", "USD"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CurrencyFor(tt.country), "country %q", tt.country)
	}
}

func TestLookupLive(t *testing.T) {
	var gotQuery map[string]string
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"api_key": r.URL.Query().Get("api_key"),
			"base":    r.URL.Query().Get("base"),
			"symbols": r.URL.Query().Get("symbols"),
		}
		w.Write([]byte(`{"rates":{"JPY":341234.5678}}`))
	}, pricestore.NewMemoryStore())

	quote := svc.Lookup(context.Background(), "Japan")

	assert.Equal(t, "JPY", quote.Currency)
	assert.Equal(t, "Japan", quote.Country)
	assert.Equal(t, ProvenanceLive, quote.Source)
	assert.Equal(t, 341234.57, quote.Price, "price rounds to 2 decimals")
	assert.Equal(t, "test-key", gotQuery["api_key"])
	assert.Equal(t, "XAU", gotQuery["base"])
	assert.Equal(t, "JPY", gotQuery["symbols"])

	_, err := time.Parse(time.RFC3339, quote.Timestamp)
	assert.NoError(t, err, "timestamp is RFC3339")
}

// Lookup must never raise: every failure shape degrades to cached data.
func TestLookupDegradation(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "http 500",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"rates":`))
			},
		},
		{
			name: "empty rates",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"rates":{}}`))
			},
		},
		{
			name: "zero price",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"rates":{"USD":0}}`))
			},
		},
		{
			name: "negative price",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"rates":{"USD":-12.5}}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := pricestore.NewMemoryStore()
			require.NoError(t, store.Set(context.Background(), "USD", 2345.67))

			svc, _ := newTestService(t, tt.handler, store)
			quote := svc.Lookup(context.Background(), "usa")

			assert.Equal(t, ProvenanceCached, quote.Source)
			assert.Equal(t, 2345.67, quote.Price)
			assert.Equal(t, "USD", quote.Currency)
		})
	}
}

func TestLookupTimeout(t *testing.T) {
	store := pricestore.NewMemoryStore()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"rates":{"USD":2400}}`))
	}))
	t.Cleanup(server.Close)

	svc := NewService(Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Timeout: 20 * time.Millisecond,
		Store:   store,
	})

	quote := svc.Lookup(context.Background(), "usa")
	assert.Equal(t, ProvenanceCached, quote.Source)
	assert.Zero(t, quote.Price, "never-updated currency falls back to 0")
}

func TestLookupRemembersLastGoodPrice(t *testing.T) {
	store := pricestore.NewMemoryStore()
	fail := false
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"rates":{"USD":2400}}`))
	}, store)

	live := svc.Lookup(context.Background(), "usa")
	require.Equal(t, ProvenanceLive, live.Source)
	require.Equal(t, 2400.0, live.Price)

	fail = true
	cached := svc.Lookup(context.Background(), "usa")
	assert.Equal(t, ProvenanceCached, cached.Source)
	assert.Equal(t, 2400.0, cached.Price)
}

func TestLookupUnmappedCountryDefaultsToUSD(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "USD", r.URL.Query().Get("symbols"))
		w.Write([]byte(`{"rates":{"USD":2100}}`))
	}, pricestore.NewMemoryStore())

	quote := svc.Lookup(context.Background(), "unknownland")
	assert.Equal(t, "USD", quote.Currency)
	assert.Equal(t, ProvenanceLive, quote.Source)
}

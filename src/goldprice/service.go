// Package goldprice looks up the current gold price for a country against an
// external quote API and degrades to the last known good price when the API
// misbehaves. Lookup never surfaces an error to its caller.
package goldprice

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/tdnguyen/aureus/src/pricestore"
)

const (
	defaultBaseURL = "https://api.metalpriceapi.com/v1"
	defaultTimeout = 10 * time.Second

	// baseSymbol is the quote base: one troy ounce of gold.
	baseSymbol = "XAU"
)

// Config holds the configuration for the price lookup service.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	// Store is the last-known-good price table used as fallback.
	Store pricestore.Store
	// Optional HTTP client override, used in tests.
	HTTPClient *http.Client
	// Optional logger
	Logger *slog.Logger
}

// Service is the price lookup service.
type Service struct {
	config     Config
	httpClient *http.Client
	logger     *slog.Logger
	store      pricestore.Store
}

// NewService creates a price lookup service.
func NewService(config Config) *Service {
	if config.BaseURL == "" {
		config.BaseURL = defaultBaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = defaultTimeout
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.Timeout}
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "goldprice")

	store := config.Store
	if store == nil {
		store = pricestore.NewMemoryStore()
	}

	return &Service{
		config:     config,
		httpClient: httpClient,
		logger:     logger,
		store:      store,
	}
}

// ratesResponse is the expected API payload shape.
type ratesResponse struct {
	Rates map[string]float64 `json:"rates"`
}

// Lookup resolves country to a currency, fetches a live quote, and returns a
// Quote. Any upstream failure or invalid price degrades to the last known
// good price for the currency with provenance "cached".
func (s *Service) Lookup(ctx context.Context, country string) Quote {
	currency := CurrencyFor(country)
	logger := s.logger.With("country", country, "currency", currency)

	quote := Quote{
		Currency:  currency,
		Country:   country,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	price, err := s.fetchRate(ctx, currency)
	switch {
	case err != nil:
		logger.Warn("live price fetch failed, using last known good price", "error", err)
	case price < 0:
		logger.Warn("live price is negative, using last known good price", "price", price)
		err = fmt.Errorf("invalid price %v", price)
	case price == 0:
		logger.Warn("live price is zero, using last known good price")
		err = fmt.Errorf("zero price")
	}

	if err != nil {
		cached, storeErr := s.store.Get(ctx, currency)
		if storeErr != nil {
			logger.Error("failed to read fallback price", "error", storeErr)
			cached = 0
		}
		quote.Price = cached
		quote.Source = ProvenanceCached
		return quote
	}

	price = math.Round(price*100) / 100
	if storeErr := s.store.Set(ctx, currency, price); storeErr != nil {
		logger.Error("failed to record last known good price", "error", storeErr)
	}

	logger.Debug("live price retrieved", "price", price)
	quote.Price = price
	quote.Source = ProvenanceLive
	return quote
}

// fetchRate issues the live price request for one currency.
func (s *Service) fetchRate(ctx context.Context, currency string) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	endpoint := s.config.BaseURL + "/latest"
	params := url.Values{}
	params.Set("api_key", s.config.APIKey)
	params.Set("base", baseSymbol)
	params.Set("symbols", currency)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var data ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return 0, fmt.Errorf("failed to decode response: %w", err)
	}

	rate, ok := data.Rates[currency]
	if !ok {
		return 0, fmt.Errorf("no rate for %s in response", currency)
	}
	return rate, nil
}

// Package pricestore holds the last known good gold price per currency. The
// price lookup service writes it on every successful live retrieval and reads
// it as fallback when the upstream API degrades.
package pricestore

import (
	"context"
	"sync"
)

// Store is the injectable key-value table of last known good prices.
// Implementations must be safe for concurrent use; staleness is acceptable,
// torn writes are not.
type Store interface {
	// Get returns the last recorded price for the currency, or 0 if the
	// currency has never been recorded.
	Get(ctx context.Context, currency string) (float64, error)

	// Set overwrites the recorded price for the currency. Last write wins.
	Set(ctx context.Context, currency string, price float64) error
}

// MemoryStore is a mutex-guarded in-process Store.
type MemoryStore struct {
	mu     sync.RWMutex
	prices map[string]float64
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{prices: make(map[string]float64)}
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, currency string) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prices[currency], nil
}

// Set implements Store.
func (s *MemoryStore) Set(_ context.Context, currency string, price float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prices[currency] = price
	return nil
}

var _ Store = (*MemoryStore)(nil)

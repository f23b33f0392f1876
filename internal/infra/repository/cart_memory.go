package repository

import (
	"context"
	"encoding/json"
	"sync"

	domain "github.com/stylehub/barber-api/internal/domain/pos"
)

// CartMemoryStore backs single-process deployments and tests. Carts
// round-trip through JSON so both stores share the same semantics.
type CartMemoryStore struct {
	mu    sync.RWMutex
	carts map[string][]byte
}

func NewCartMemoryStore() *CartMemoryStore {
	return &CartMemoryStore{carts: make(map[string][]byte)}
}

func (s *CartMemoryStore) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	s.mu.RLock()
	raw, ok := s.carts[sessionID]
	s.mu.RUnlock()

	if !ok {
		return nil, nil
	}

	var cart domain.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (s *CartMemoryStore) Save(ctx context.Context, sessionID string, cart *domain.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.carts[sessionID] = raw
	s.mu.Unlock()
	return nil
}

func (s *CartMemoryStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.carts, sessionID)
	s.mu.Unlock()
	return nil
}

// Compile-time check
var _ domain.CartStore = (*CartMemoryStore)(nil)

package cart

import (
	"context"
	"sync"
)

// MemoryStore holds session carts in process memory. Suitable for a
// single replica; use the Redis store when running more than one.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]Cart
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string]Cart)}
}

func (s *MemoryStore) Load(_ context.Context, sessionID string) (Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.carts[sessionID]
	if !ok {
		return Cart{}, nil
	}
	// Copy the item slice so callers never share backing arrays with the
	// stored cart.
	out := Cart{Items: make([]Item, len(c.Items))}
	copy(out.Items, c.Items)
	return out, nil
}

func (s *MemoryStore) Save(_ context.Context, sessionID string, c Cart) error {
	stored := Cart{Items: make([]Item, len(c.Items))}
	copy(stored.Items, c.Items)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[sessionID] = stored
	return nil
}

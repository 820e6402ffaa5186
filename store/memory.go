// Package store provides the cart registry and seed-data sources for a shopping session.
package store

import (
	"context"
	"shopcart/domain"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// InMemoryCartStore is a thread-safe in-memory domain.CartStore
type InMemoryCartStore struct {
	mu    sync.RWMutex
	carts map[uuid.UUID]*domain.Cart
}

// NewInMemoryCartStore constructs a new InMemoryCartStore
func NewInMemoryCartStore() *InMemoryCartStore {
	return &InMemoryCartStore{
		carts: make(map[uuid.UUID]*domain.Cart),
	}
}

// compile-time assertion that InMemoryCartStore implements domain.CartStore
var _ domain.CartStore = (*InMemoryCartStore)(nil)

func (s *InMemoryCartStore) Create(ctx context.Context, customerID string) (uuid.UUID, error) {
	select {
	case <-ctx.Done():
		return uuid.Nil, ctx.Err()
	default:
	}

	cart, err := domain.NewCart(customerID)
	if err != nil {
		return uuid.Nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[cart.ID()] = cart
	return cart.ID(), nil
}

func (s *InMemoryCartStore) View(ctx context.Context, id uuid.UUID, fn func(*domain.Cart) error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, ok := s.carts[id]
	if !ok {
		return domain.NewCartNotFoundError(id.String())
	}
	return fn(cart)
}

func (s *InMemoryCartStore) Update(ctx context.Context, id uuid.UUID, fn func(*domain.Cart) error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[id]
	if !ok {
		return domain.NewCartNotFoundError(id.String())
	}
	return fn(cart)
}

func (s *InMemoryCartStore) Delete(ctx context.Context, id uuid.UUID) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.carts[id]; !ok {
		return domain.NewCartNotFoundError(id.String())
	}
	delete(s.carts, id)
	return nil
}

func (s *InMemoryCartStore) List(ctx context.Context, filter domain.CartFilter) ([]domain.CartSummary, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.CartSummary, 0, len(s.carts))
	for id, c := range s.carts {
		if filter.CustomerID != "" && c.CustomerID().String() != filter.CustomerID {
			continue
		}
		out = append(out, domain.CartSummary{
			ID:         id,
			CustomerID: c.CustomerID().String(),
			Lines:      c.Len(),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].CustomerID != out[j].CustomerID {
			return out[i].CustomerID < out[j].CustomerID
		}
		return out[i].ID.String() < out[j].ID.String()
	})

	return out, nil
}

package order

import (
	"context"
	"sync"

	"retify/internal/domain"
)

type memoryRepo struct {
	mu     sync.RWMutex
	orders []domain.Order
}

// NewMemory builds an empty in-memory order archive.
func NewMemory() Repository {
	return &memoryRepo{}
}

func (r *memoryRepo) Save(_ context.Context, o domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o.Items = domain.CopyCart(o.Items)
	r.orders = append(r.orders, o)
	return nil
}

// ListByEmail returns the user's orders, newest first.
func (r *memoryRepo) ListByEmail(_ context.Context, email string) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []domain.Order{}
	for i := len(r.orders) - 1; i >= 0; i-- {
		if r.orders[i].User.Email == email {
			o := r.orders[i]
			o.Items = domain.CopyCart(o.Items)
			out = append(out, o)
		}
	}
	return out, nil
}

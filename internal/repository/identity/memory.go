package identity

import (
	"context"
	"sync"
	"time"

	"retify/internal/domain"
)

type memoryRepo struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

// NewMemory builds an empty in-memory identity repository.
func NewMemory() Repository {
	return &memoryRepo{users: make(map[string]domain.User)}
}

// Create inserts the user under a single lock hold. The existence check and
// the insert are one atomic step; an existing record is never replaced.
func (r *memoryRepo) Create(_ context.Context, u domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.Email]; ok {
		return nil, domain.ErrAlreadyExists
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	r.users[u.Email] = u
	return &u, nil
}

func (r *memoryRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

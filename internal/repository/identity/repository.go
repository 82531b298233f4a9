package identity

import (
	"context"

	"retify/internal/domain"
)

// Repository stores identity records keyed by email. Create must be an
// atomic check-and-insert so concurrent registrations of the same email
// cannot both succeed.
type Repository interface {
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

package order

import (
	"context"

	"retify/internal/domain"
)

// Repository archives orders produced by checkout. The archive lives for the
// process lifetime only.
type Repository interface {
	Save(ctx context.Context, o domain.Order) error
	ListByEmail(ctx context.Context, email string) ([]domain.Order, error)
}

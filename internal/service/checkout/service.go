package checkout

import (
	"context"
	"fmt"
	"time"

	"retify/internal/domain"
	orderrepo "retify/internal/repository/order"
	"retify/internal/session"

	"github.com/google/uuid"
)

// Service turns a session's cart into an order. Recording the order and
// clearing the cart happen under one session-lock hold; if the order cannot
// be recorded the cart is left untouched.
type Service struct {
	sessions *session.Store
	orders   orderrepo.Repository
	now      func() time.Time
}

func New(sessions *session.Store, orders orderrepo.Repository) *Service {
	return &Service{
		sessions: sessions,
		orders:   orders,
		now:      time.Now,
	}
}

// Input carries the checkout request. RentalPeriod is in months; the handler
// defaults an absent period to 1. Address is free-form.
type Input struct {
	RentalPeriod int
	Address      map[string]interface{}
}

// Checkout validates preconditions in order (identity first, then cart),
// computes total = sum(price * quantity * rental months), archives the order
// snapshot and clears the cart.
func (s *Service) Checkout(ctx context.Context, token string, in Input) (*domain.Order, error) {
	if in.RentalPeriod < 1 {
		return nil, fmt.Errorf("%w: rental period must be at least 1 month", domain.ErrInvalidInput)
	}
	address := in.Address
	if address == nil {
		address = map[string]interface{}{}
	}

	var placed *domain.Order
	err := s.sessions.Update(token, func(sess *session.Session) error {
		if sess.User == nil {
			return domain.ErrUnauthorized
		}
		if len(sess.Cart) == 0 {
			return domain.ErrCartEmpty
		}

		var total int64
		for _, line := range sess.Cart {
			total += line.Price * int64(line.Quantity) * int64(in.RentalPeriod)
		}

		o := domain.Order{
			OrderID:      newOrderID(),
			User:         *sess.User,
			Items:        domain.CopyCart(sess.Cart),
			RentalPeriod: in.RentalPeriod,
			Total:        total,
			Address:      address,
			OrderDate:    s.now().UTC(),
			Status:       domain.OrderStatusConfirmed,
		}
		if err := s.orders.Save(ctx, o); err != nil {
			return fmt.Errorf("record order: %w", err)
		}
		sess.Cart = nil
		placed = &o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return placed, nil
}

// Orders lists the identity's past orders, newest first.
func (s *Service) Orders(ctx context.Context, token string) ([]domain.Order, error) {
	profile, ok, err := s.sessions.Identity(token)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.orders.ListByEmail(ctx, profile.Email)
}

// newOrderID keeps the original RET prefix but derives uniqueness from a
// random UUID rather than a wall-clock timestamp, which collides within the
// same second under concurrency.
func newOrderID() string {
	return "RET-" + uuid.NewString()
}

package cart

import (
	"context"
	"fmt"
	"strings"

	"retify/internal/domain"
	"retify/internal/session"
)

// Service mutates the session-scoped cart. All operations run under the
// session's lock, so concurrent requests on one session serialize.
type Service struct {
	sessions *session.Store
}

func New(sessions *session.Store) *Service {
	return &Service{sessions: sessions}
}

// AddItemInput carries the listing reference sent by the client. Title,
// price and image are snapshotted into the cart line as given.
type AddItemInput struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Price int64  `json:"price"`
	Image string `json:"image"`
	Type  string `json:"type"`
}

func (in AddItemInput) validate() (domain.Collection, error) {
	col, ok := domain.ParseCollection(in.Type)
	if !ok {
		return "", fmt.Errorf("%w: unknown item type %q", domain.ErrInvalidInput, in.Type)
	}
	if in.ID <= 0 {
		return "", fmt.Errorf("%w: item id required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Title) == "" {
		return "", fmt.Errorf("%w: item title required", domain.ErrInvalidInput)
	}
	if in.Price < 0 {
		return "", fmt.Errorf("%w: item price must not be negative", domain.ErrInvalidInput)
	}
	return col, nil
}

// Get returns the current ordered cart, empty when never touched.
func (s *Service) Get(_ context.Context, token string) ([]domain.CartLine, error) {
	return s.sessions.Cart(token)
}

// Add merges the item into the cart: an existing (id, type) line has its
// quantity incremented by 1, otherwise a new quantity-1 line is appended,
// preserving insertion order. Returns the full updated cart.
func (s *Service) Add(_ context.Context, token string, in AddItemInput) ([]domain.CartLine, error) {
	col, err := in.validate()
	if err != nil {
		return nil, err
	}
	var cart []domain.CartLine
	err = s.sessions.Update(token, func(sess *session.Session) error {
		for i := range sess.Cart {
			if sess.Cart[i].ID == in.ID && sess.Cart[i].Type == col {
				sess.Cart[i].Quantity++
				cart = domain.CopyCart(sess.Cart)
				return nil
			}
		}
		sess.Cart = append(sess.Cart, domain.CartLine{
			ID:       in.ID,
			Title:    in.Title,
			Price:    in.Price,
			Image:    in.Image,
			Type:     col,
			Quantity: 1,
		})
		cart = domain.CopyCart(sess.Cart)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// Remove filters out the matching line. Removing an absent line is a silent
// no-op.
func (s *Service) Remove(_ context.Context, token string, id int, tag string) ([]domain.CartLine, error) {
	col, ok := domain.ParseCollection(tag)
	if !ok {
		return nil, fmt.Errorf("%w: unknown item type %q", domain.ErrInvalidInput, tag)
	}
	var cart []domain.CartLine
	err := s.sessions.Update(token, func(sess *session.Session) error {
		kept := sess.Cart[:0]
		for _, line := range sess.Cart {
			if !(line.ID == id && line.Type == col) {
				kept = append(kept, line)
			}
		}
		sess.Cart = kept
		cart = domain.CopyCart(sess.Cart)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateQuantity sets the matching line's quantity exactly; a quantity of
// zero or less removes the line. Unknown (id, type) pairs are a no-op.
func (s *Service) UpdateQuantity(ctx context.Context, token string, id int, tag string, quantity int) ([]domain.CartLine, error) {
	col, ok := domain.ParseCollection(tag)
	if !ok {
		return nil, fmt.Errorf("%w: unknown item type %q", domain.ErrInvalidInput, tag)
	}
	if quantity <= 0 {
		return s.Remove(ctx, token, id, tag)
	}
	var cart []domain.CartLine
	err := s.sessions.Update(token, func(sess *session.Session) error {
		for i := range sess.Cart {
			if sess.Cart[i].ID == id && sess.Cart[i].Type == col {
				sess.Cart[i].Quantity = quantity
				break
			}
		}
		cart = domain.CopyCart(sess.Cart)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cart, nil
}

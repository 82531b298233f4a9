package session

import (
	"sync"
	"testing"
	"time"

	"retify/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestIssueCreatesEmptySession(t *testing.T) {
	store := NewStore(time.Hour)
	token, err := store.Issue()
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.True(t, store.Has(token))

	cart, err := store.Cart(token)
	require.NoError(t, err)
	require.Empty(t, cart)

	_, ok, err := store.Identity(token)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestUnknownTokenIsNotFound(t *testing.T) {
	store := NewStore(time.Hour)
	err := store.Update("nope", func(*Session) error { return nil })
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.False(t, store.Has("nope"))
}

func TestExpiredSessionIsEvicted(t *testing.T) {
	store := NewStore(-time.Second)
	token, err := store.Issue()
	require.NoError(t, err)
	require.False(t, store.Has(token))
	require.ErrorIs(t, store.BindIdentity(token, domain.Profile{Email: "a@b.c"}), domain.ErrNotFound)
}

func TestBindAndClearIdentity(t *testing.T) {
	store := NewStore(time.Hour)
	token, err := store.Issue()
	require.NoError(t, err)

	require.NoError(t, store.BindIdentity(token, domain.Profile{Email: "admin@retify.com", Name: "Admin"}))
	p, ok, err := store.Identity(token)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "admin@retify.com", p.Email)

	require.NoError(t, store.ClearIdentity(token))
	_, ok, err = store.Identity(token)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestUpdateRollsBackOnError(t *testing.T) {
	store := NewStore(time.Hour)
	token, err := store.Issue()
	require.NoError(t, err)

	require.NoError(t, store.Update(token, func(s *Session) error {
		s.Cart = append(s.Cart, domain.CartLine{ID: 1, Type: domain.CollectionVehicle, Quantity: 1})
		return nil
	}))

	boom := domain.ErrInvalidInput
	err = store.Update(token, func(s *Session) error {
		s.Cart[0].Quantity = 99
		s.Cart = nil
		return boom
	})
	require.ErrorIs(t, err, boom)

	cart, err := store.Cart(token)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	require.Equal(t, 1, cart[0].Quantity)
}

func TestCartReturnsCopy(t *testing.T) {
	store := NewStore(time.Hour)
	token, err := store.Issue()
	require.NoError(t, err)
	require.NoError(t, store.Update(token, func(s *Session) error {
		s.Cart = []domain.CartLine{{ID: 1, Type: domain.CollectionProperty, Quantity: 2}}
		return nil
	}))

	cart, err := store.Cart(token)
	require.NoError(t, err)
	cart[0].Quantity = 50

	again, err := store.Cart(token)
	require.NoError(t, err)
	require.Equal(t, 2, again[0].Quantity)
}

func TestSessionsAreIsolated(t *testing.T) {
	store := NewStore(time.Hour)
	a, err := store.Issue()
	require.NoError(t, err)
	b, err := store.Issue()
	require.NoError(t, err)
	require.NotEqual(t, a, b)

	require.NoError(t, store.Update(a, func(s *Session) error {
		s.Cart = []domain.CartLine{{ID: 7, Type: domain.CollectionElectronic, Quantity: 1}}
		return nil
	}))

	cart, err := store.Cart(b)
	require.NoError(t, err)
	require.Empty(t, cart)
}

func TestConcurrentUpdatesSerialize(t *testing.T) {
	store := NewStore(time.Hour)
	token, err := store.Issue()
	require.NoError(t, err)

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_ = store.Update(token, func(s *Session) error {
				if len(s.Cart) == 0 {
					s.Cart = []domain.CartLine{{ID: 1, Type: domain.CollectionVehicle, Quantity: 0}}
				}
				s.Cart[0].Quantity++
				return nil
			})
		}()
	}
	wg.Wait()

	cart, err := store.Cart(token)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	require.Equal(t, workers, cart[0].Quantity)
}

package session

import (
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"

	"retify/internal/domain"
)

// Session is the per-client state bundling an optional identity snapshot and
// the cart. Callers only ever see it inside Update/View closures; the store
// retains ownership.
type Session struct {
	User      *domain.Profile
	Cart      []domain.CartLine
	CreatedAt time.Time
}

type entry struct {
	mu        sync.Mutex
	session   Session
	expiresAt time.Time
}

// Store holds server-side sessions addressed by opaque tokens.
//
// Concurrency contract: every Update and View call runs with that session's
// own mutex held for the full duration of the closure, so concurrent
// requests on the same session serialize while different sessions never
// block each other. The store map has its own lock and is only held long
// enough to resolve a token.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	ttl      time.Duration
}

// NewStore builds a Store whose sessions expire ttl after issuance. Expired
// sessions are evicted lazily on access.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*entry),
		ttl:      ttl,
	}
}

// TTL exposes the session lifetime, for cookie max-age alignment.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Issue creates a fresh session with an empty cart and no identity, and
// returns its token.
func (s *Store) Issue() (string, error) {
	token, err := randomToken()
	if err != nil {
		return "", err
	}
	now := time.Now()
	e := &entry{
		session:   Session{CreatedAt: now},
		expiresAt: now.Add(s.ttl),
	}
	s.mu.Lock()
	s.sessions[token] = e
	s.mu.Unlock()
	return token, nil
}

// Has reports whether the token resolves to a live session.
func (s *Store) Has(token string) bool {
	return s.resolve(token) != nil
}

// Update runs fn with the session locked. State changes made by fn are kept
// only when fn returns nil.
func (s *Store) Update(token string, fn func(*Session) error) error {
	e := s.resolve(token)
	if e == nil {
		return domain.ErrNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	snapshot := e.session
	snapshot.Cart = domain.CopyCart(e.session.Cart)
	if err := fn(&e.session); err != nil {
		e.session = snapshot
		return err
	}
	return nil
}

// View runs fn with the session locked, for reads.
func (s *Store) View(token string, fn func(Session)) error {
	e := s.resolve(token)
	if e == nil {
		return domain.ErrNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.session)
	return nil
}

// BindIdentity attaches an identity snapshot to the session.
func (s *Store) BindIdentity(token string, p domain.Profile) error {
	return s.Update(token, func(sess *Session) error {
		bound := p
		sess.User = &bound
		return nil
	})
}

// ClearIdentity detaches the identity; the cart is left as is.
func (s *Store) ClearIdentity(token string) error {
	return s.Update(token, func(sess *Session) error {
		sess.User = nil
		return nil
	})
}

// Identity returns the bound identity snapshot, or ok=false when none is
// bound.
func (s *Store) Identity(token string) (domain.Profile, bool, error) {
	var p domain.Profile
	var ok bool
	err := s.View(token, func(sess Session) {
		if sess.User != nil {
			p = *sess.User
			ok = true
		}
	})
	return p, ok, err
}

// Cart returns a copy of the session's cart, empty when never touched.
func (s *Store) Cart(token string) ([]domain.CartLine, error) {
	var cart []domain.CartLine
	err := s.View(token, func(sess Session) {
		cart = domain.CopyCart(sess.Cart)
	})
	return cart, err
}

func (s *Store) resolve(token string) *entry {
	s.mu.RLock()
	e, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return nil
	}
	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil
	}
	return e
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

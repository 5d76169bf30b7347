package store

import (
	"sync"

	"github.com/google/uuid"

	"github.com/sathish19189/Ecommerce-project/models"
)

// Sessions holds per-client session state. Every cart mutation goes through
// this store so a single lock covers it; callers only ever see value copies.
type Sessions struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

func NewSessions() *Sessions {
	return &Sessions{sessions: make(map[string]*models.Session)}
}

// Create starts a fresh anonymous session and returns a copy of it.
func (s *Sessions) Create() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &models.Session{
		ID:   uuid.New().String(),
		Cart: make(map[int]int),
	}
	s.sessions[sess.ID] = sess
	return snapshot(sess)
}

// Get returns a copy of the session, if it exists.
func (s *Sessions) Get(id string) (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, exists := s.sessions[id]
	if !exists {
		return models.Session{}, false
	}
	return snapshot(sess), true
}

// Login attaches an authenticated identity to the session.
func (s *Sessions) Login(id, username string, isAdmin bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, exists := s.sessions[id]
	if !exists {
		return ErrSessionNotFound
	}
	sess.User = username
	sess.IsAdmin = isAdmin
	return nil
}

// Delete drops the session entirely. Identity and cart go together; the
// client gets a fresh anonymous session on its next request.
func (s *Sessions) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// AddToCart merges qty into the session's entry for productID.
func (s *Sessions) AddToCart(id string, productID, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, exists := s.sessions[id]
	if !exists {
		return ErrSessionNotFound
	}
	sess.Cart[productID] += qty
	return nil
}

// RemoveFromCart drops the entry for productID. Removing an item that is not
// in the cart is a silent no-op.
func (s *Sessions) RemoveFromCart(id string, productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, exists := s.sessions[id]
	if !exists {
		return ErrSessionNotFound
	}
	delete(sess.Cart, productID)
	return nil
}

// CartSnapshot returns a value copy of the session's cart.
func (s *Sessions) CartSnapshot(id string) (map[int]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, exists := s.sessions[id]
	if !exists {
		return nil, ErrSessionNotFound
	}
	return copyCart(sess.Cart), nil
}

// ClearCart empties the session's cart, keeping the identity.
func (s *Sessions) ClearCart(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, exists := s.sessions[id]
	if !exists {
		return ErrSessionNotFound
	}
	sess.Cart = make(map[int]int)
	return nil
}

func snapshot(sess *models.Session) models.Session {
	return models.Session{
		ID:      sess.ID,
		User:    sess.User,
		IsAdmin: sess.IsAdmin,
		Cart:    copyCart(sess.Cart),
	}
}

func copyCart(cart map[int]int) map[int]int {
	out := make(map[int]int, len(cart))
	for id, qty := range cart {
		out[id] = qty
	}
	return out
}

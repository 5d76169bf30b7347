package store

import (
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/sathish19189/Ecommerce-project/models"
)

// Credentials is the in-memory account store. Accounts are created once at
// signup and never mutated or deleted.
type Credentials struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewCredentials() *Credentials {
	return &Credentials{users: make(map[string]models.User)}
}

// Register creates an account. The first account ever registered becomes the
// admin; everyone after that is a regular user.
func (s *Credentials) Register(username, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[username]; exists {
		return ErrUsernameTaken
	}
	s.users[username] = models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		IsAdmin:      len(s.users) == 0,
	}
	return nil
}

// Verify checks a username/password pair. Unknown users and wrong passwords
// fail the same way so callers cannot probe which usernames exist.
func (s *Credentials) Verify(username, password string) (models.User, error) {
	s.mu.RLock()
	user, exists := s.users[username]
	s.mu.RUnlock()

	if !exists {
		return models.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

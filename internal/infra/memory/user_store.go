package memory

import (
	"sync"

	"console-quiz-service/internal/domain"
)

// UserStore is the in-memory store of registered users, in registration
// order.
type UserStore struct {
	mu    sync.RWMutex
	users []domain.User
}

func NewUserStore() *UserStore {
	return &UserStore{}
}

// Exists reports whether some stored user has exactly this username and
// password. Login and duplicate-registration checks share this
// predicate, so two accounts may carry the same username as long as
// their passwords differ.
func (s *UserStore) Exists(username, password string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username && u.Password == password {
			return true
		}
	}
	return false
}

// Add appends a user unless an identical username+password pair is
// already stored.
func (s *UserStore) Add(user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username && u.Password == user.Password {
			return domain.ErrDuplicateUser
		}
	}
	s.users = append(s.users, user)
	return nil
}

// Remove deletes the first user with the given username, shifting later
// users left.
func (s *UserStore) Remove(username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.users {
		if u.Username == username {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

// FindByUsername returns the first user with the given username.
func (s *UserStore) FindByUsername(username string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrUserNotFound
}

// GetAll returns a snapshot of every stored user in registration order.
func (s *UserStore) GetAll() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make([]domain.User, len(s.users))
	copy(snapshot, s.users)
	return snapshot
}

package users

import (
	"sync"

	"github.com/pkg/errors"
)

var ErrUserNotFound = errors.New("user not found")

// InMemoryRepo is an in-memory implementation of Repo.
type InMemoryRepo struct {
	mu    sync.RWMutex
	users map[string]User // userID -> User
}

var _ Repo = (*InMemoryRepo)(nil)

func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{users: make(map[string]User)}
}

func (r *InMemoryRepo) Upsert(user *User) error {
	if user == nil || user.ID == "" {
		return errors.New("[InMemoryRepo.Upsert] user ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Store a copy to avoid external modifications
	r.users[user.ID] = *user
	return nil
}

func (r *InMemoryRepo) GetByID(id string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

func (r *InMemoryRepo) GetByEmail(email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *InMemoryRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.users, id)
	return nil
}

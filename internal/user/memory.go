package user

import (
	"context"
	"sync"
)

var _ Repository = &MemoryRepository{}

// MemoryRepository keeps the directory in an RWMutex-guarded slice, in
// insertion order. It is the default backend and the one used by the test
// suite. Reads hand out copies so callers never observe a torn write.
type MemoryRepository struct {
	mu    sync.RWMutex
	users []User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) List(_ context.Context) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]User, len(r.users))
	copy(users, r.users)
	return users, nil
}

func (r *MemoryRepository) Find(_ context.Context, userID int64) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *MemoryRepository) Insert(_ context.Context, u User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = append(r.users, u)
	return nil
}

func (r *MemoryRepository) Update(_ context.Context, u User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == u.ID {
			r.users[i] = u
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryRepository) Delete(_ context.Context, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == userID {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

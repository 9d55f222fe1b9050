package memory

import (
	"context"
	"strings"
	"sync"

	"link-in-bio/pkg/storage"
)

type UserStore struct {
	mu    sync.RWMutex
	users []storage.User
}

func NewUserStore(seed []storage.User) *UserStore {
	users := make([]storage.User, len(seed))
	copy(users, seed)
	return &UserStore{users: users}
}

func (s *UserStore) GetByID(ctx context.Context, id string) (*storage.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].ID == id {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, nil
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*storage.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, email) {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, nil
}

package memory

import (
	"context"
	"time"

	"github.com/gfdmit/blogdesk/internal/repository"
)

func (s *Store) CreateUser(ctx context.Context, username, passwordHash string) (repository.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return repository.User{}, repository.ErrDuplicate
		}
	}
	user := repository.User{
		ID:           s.nextID(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	s.users[user.ID] = user
	return user, nil
}

func (s *Store) UserByUsername(ctx context.Context, username string) (repository.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return repository.User{}, repository.ErrNotFound
}

func (s *Store) UserByID(ctx context.Context, id int) (repository.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return repository.User{}, repository.ErrNotFound
	}
	return u, nil
}

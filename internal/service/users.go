package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gfdmit/blogdesk/internal/auth"
	"github.com/gfdmit/blogdesk/internal/repository"
)

func (svc *Service) Register(ctx context.Context, username, password string) (repository.User, error) {
	if err := auth.ValidatePassword(password); err != nil {
		return repository.User{}, fmt.Errorf("%w password: %v", ErrInvalid, err)
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return repository.User{}, err
	}

	user, err := svc.repo.CreateUser(ctx, username, hash)
	if errors.Is(err, repository.ErrDuplicate) {
		return repository.User{}, fmt.Errorf("username %w", ErrConflict)
	}
	return user, err
}

// Login deliberately reports the same error for an unknown username and a
// wrong password so the endpoint cannot be used to enumerate users.
func (svc *Service) Login(ctx context.Context, username, password string) (repository.User, string, error) {
	user, err := svc.repo.UserByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return repository.User{}, "", ErrInvalidCredentials
	}
	if err != nil {
		return repository.User{}, "", err
	}
	if !auth.VerifyPassword(password, user.PasswordHash) {
		return repository.User{}, "", ErrInvalidCredentials
	}

	token, err := svc.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return repository.User{}, "", err
	}
	return user, token, nil
}

func (svc *Service) UserByID(ctx context.Context, id int) (repository.User, error) {
	user, err := svc.repo.UserByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return repository.User{}, ErrNotFound
	}
	return user, err
}

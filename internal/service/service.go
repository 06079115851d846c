package service

import (
	"errors"

	"github.com/gfdmit/blogdesk/internal/auth"
	"github.com/gfdmit/blogdesk/internal/repository"
)

// Sentinel errors translated by the handler layer into envelope codes.
var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("already exists")
	ErrForbidden          = errors.New("not authorized")
	ErrInUse              = errors.New("cannot delete")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalid            = errors.New("invalid")
	ErrParentNotFound     = errors.New("parent comment not found")
)

type Service struct {
	repo   repository.Repository
	tokens *auth.TokenManager
}

func New(repo repository.Repository, tokens *auth.TokenManager) *Service {
	return &Service{repo: repo, tokens: tokens}
}

func normalizePage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}
	return page, size
}

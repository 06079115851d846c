package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gfdmit/blogdesk/internal/repository"
)

func (svc *Service) SiteInfo(ctx context.Context) (repository.SiteInfo, error) {
	info, err := svc.repo.SiteInfo(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return repository.SiteInfo{}, fmt.Errorf("site info %w", ErrNotFound)
	}
	return info, err
}

func (svc *Service) Menus(ctx context.Context) ([]repository.Menu, error) {
	return svc.repo.Menus(ctx)
}

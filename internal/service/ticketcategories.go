package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gfdmit/blogdesk/internal/repository"
)

func (svc *Service) TicketCategories(ctx context.Context) ([]repository.TicketCategoryCount, error) {
	return svc.repo.ListTicketCategories(ctx)
}

func (svc *Service) CreateTicketCategory(ctx context.Context, name string, description *string) (repository.TicketCategory, error) {
	category, err := svc.repo.CreateTicketCategory(ctx, name, description)
	if errors.Is(err, repository.ErrDuplicate) {
		return repository.TicketCategory{}, fmt.Errorf("ticket category name %w", ErrConflict)
	}
	return category, err
}

func (svc *Service) UpdateTicketCategory(ctx context.Context, id int, patch repository.TicketCategoryPatch) (repository.TicketCategory, error) {
	category, err := svc.repo.UpdateTicketCategory(ctx, id, patch)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return repository.TicketCategory{}, fmt.Errorf("ticket category %w", ErrNotFound)
	case errors.Is(err, repository.ErrDuplicate):
		return repository.TicketCategory{}, fmt.Errorf("ticket category name %w", ErrConflict)
	}
	return category, err
}

func (svc *Service) DeleteTicketCategory(ctx context.Context, id int) error {
	if _, err := svc.repo.TicketCategoryByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("ticket category %w", ErrNotFound)
		}
		return err
	}
	count, err := svc.repo.TicketCountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("ticket category has tickets, %w", ErrInUse)
	}
	return svc.repo.DeleteTicketCategory(ctx, id)
}

// TicketCategoryCount is the per-category ticket count used after mutations
// so handlers can return the computed field without a second list call.
func (svc *Service) TicketCategoryCount(ctx context.Context, id int) (int, error) {
	return svc.repo.TicketCountByCategory(ctx, id)
}

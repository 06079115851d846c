package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gfdmit/blogdesk/internal/repository"
)

const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
	StatusClosed     = "closed"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

var (
	validStatuses = map[string]bool{
		StatusOpen: true, StatusInProgress: true, StatusResolved: true, StatusClosed: true,
	}
	validPriorities = map[string]bool{
		PriorityLow: true, PriorityMedium: true, PriorityHigh: true, PriorityUrgent: true,
	}
)

func checkStatus(status string) error {
	if !validStatuses[status] {
		return fmt.Errorf("%w status %q", ErrInvalid, status)
	}
	return nil
}

func checkPriority(priority string) error {
	if !validPriorities[priority] {
		return fmt.Errorf("%w priority %q", ErrInvalid, priority)
	}
	return nil
}

func (svc *Service) checkTicketCategory(ctx context.Context, id *int) error {
	if id == nil {
		return nil
	}
	if _, err := svc.repo.TicketCategoryByID(ctx, *id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("ticket category %w", ErrNotFound)
		}
		return err
	}
	return nil
}

func (svc *Service) ListTickets(ctx context.Context, f repository.TicketFilter) ([]repository.Ticket, int, error) {
	f.Page, f.Size = normalizePage(f.Page, f.Size)
	if f.Status != "" {
		if err := checkStatus(f.Status); err != nil {
			return nil, 0, err
		}
	}
	if f.Priority != "" {
		if err := checkPriority(f.Priority); err != nil {
			return nil, 0, err
		}
	}
	return svc.repo.ListTickets(ctx, f)
}

func (svc *Service) Ticket(ctx context.Context, id int) (repository.Ticket, error) {
	ticket, err := svc.repo.TicketByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return repository.Ticket{}, fmt.Errorf("ticket %w", ErrNotFound)
	}
	return ticket, err
}

func (svc *Service) CreateTicket(ctx context.Context, in repository.TicketInput) (repository.Ticket, error) {
	if in.Status == "" {
		in.Status = StatusOpen
	}
	if in.Priority == "" {
		in.Priority = PriorityMedium
	}
	if err := checkStatus(in.Status); err != nil {
		return repository.Ticket{}, err
	}
	if err := checkPriority(in.Priority); err != nil {
		return repository.Ticket{}, err
	}
	if err := svc.checkTicketCategory(ctx, in.CategoryID); err != nil {
		return repository.Ticket{}, err
	}
	return svc.repo.CreateTicket(ctx, in)
}

func (svc *Service) UpdateTicket(ctx context.Context, id int, patch repository.TicketPatch) (repository.Ticket, error) {
	if patch.Status != nil {
		if err := checkStatus(*patch.Status); err != nil {
			return repository.Ticket{}, err
		}
	}
	if patch.Priority != nil {
		if err := checkPriority(*patch.Priority); err != nil {
			return repository.Ticket{}, err
		}
	}
	if err := svc.checkTicketCategory(ctx, patch.CategoryID); err != nil {
		return repository.Ticket{}, err
	}

	ticket, err := svc.repo.UpdateTicket(ctx, id, patch)
	if errors.Is(err, repository.ErrNotFound) {
		return repository.Ticket{}, fmt.Errorf("ticket %w", ErrNotFound)
	}
	return ticket, err
}

func (svc *Service) DeleteTicket(ctx context.Context, id int) error {
	err := svc.repo.DeleteTicket(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("ticket %w", ErrNotFound)
	}
	return err
}

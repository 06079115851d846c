package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gfdmit/blogdesk/internal/repository"
)

func (svc *Service) ListQuickReplies(ctx context.Context, f repository.QuickReplyFilter) ([]repository.QuickReply, int, error) {
	f.Page, f.Size = normalizePage(f.Page, f.Size)
	return svc.repo.ListQuickReplies(ctx, f)
}

func (svc *Service) QuickReply(ctx context.Context, id int) (repository.QuickReply, error) {
	reply, err := svc.repo.QuickReplyByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return repository.QuickReply{}, fmt.Errorf("quick reply %w", ErrNotFound)
	}
	return reply, err
}

func (svc *Service) CreateQuickReply(ctx context.Context, in repository.QuickReplyInput) (repository.QuickReply, error) {
	return svc.repo.CreateQuickReply(ctx, in)
}

func (svc *Service) UpdateQuickReply(ctx context.Context, id int, patch repository.QuickReplyPatch) (repository.QuickReply, error) {
	reply, err := svc.repo.UpdateQuickReply(ctx, id, patch)
	if errors.Is(err, repository.ErrNotFound) {
		return repository.QuickReply{}, fmt.Errorf("quick reply %w", ErrNotFound)
	}
	return reply, err
}

func (svc *Service) DeleteQuickReply(ctx context.Context, id int) error {
	err := svc.repo.DeleteQuickReply(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("quick reply %w", ErrNotFound)
	}
	return err
}

// UseQuickReply bumps the template's use counter with a single atomic update.
func (svc *Service) UseQuickReply(ctx context.Context, id int) (repository.QuickReply, error) {
	err := svc.repo.IncrementQuickReplyUse(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return repository.QuickReply{}, fmt.Errorf("quick reply %w", ErrNotFound)
	}
	if err != nil {
		return repository.QuickReply{}, err
	}
	return svc.repo.QuickReplyByID(ctx, id)
}

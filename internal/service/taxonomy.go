package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gfdmit/blogdesk/internal/repository"
)

func (svc *Service) Categories(ctx context.Context) ([]repository.CategoryCount, error) {
	return svc.repo.ListCategories(ctx)
}

func (svc *Service) CreateCategory(ctx context.Context, name string) (repository.Category, error) {
	category, err := svc.repo.CreateCategory(ctx, name)
	if errors.Is(err, repository.ErrDuplicate) {
		return repository.Category{}, fmt.Errorf("category name %w", ErrConflict)
	}
	return category, err
}

func (svc *Service) RenameCategory(ctx context.Context, id int, name string) (repository.Category, error) {
	category, err := svc.repo.UpdateCategory(ctx, id, name)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return repository.Category{}, fmt.Errorf("category %w", ErrNotFound)
	case errors.Is(err, repository.ErrDuplicate):
		return repository.Category{}, fmt.Errorf("category name %w", ErrConflict)
	}
	return category, err
}

// DeleteCategory refuses to remove a category that still has posts.
func (svc *Service) DeleteCategory(ctx context.Context, id int) error {
	if _, err := svc.repo.CategoryByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("category %w", ErrNotFound)
		}
		return err
	}
	count, err := svc.repo.PostCountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("category has posts, %w", ErrInUse)
	}
	return svc.repo.DeleteCategory(ctx, id)
}

// CategoryPostCount lets handlers report the post count after a rename
// without refetching the whole list.
func (svc *Service) CategoryPostCount(ctx context.Context, id int) (int, error) {
	return svc.repo.PostCountByCategory(ctx, id)
}

func (svc *Service) Tags(ctx context.Context) ([]repository.TagCount, error) {
	return svc.repo.ListTags(ctx)
}

func (svc *Service) CreateTag(ctx context.Context, name string) (repository.Tag, error) {
	tag, err := svc.repo.CreateTag(ctx, name)
	if errors.Is(err, repository.ErrDuplicate) {
		return repository.Tag{}, fmt.Errorf("tag name %w", ErrConflict)
	}
	return tag, err
}

func (svc *Service) RenameTag(ctx context.Context, id int, name string) (repository.Tag, error) {
	tag, err := svc.repo.UpdateTag(ctx, id, name)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return repository.Tag{}, fmt.Errorf("tag %w", ErrNotFound)
	case errors.Is(err, repository.ErrDuplicate):
		return repository.Tag{}, fmt.Errorf("tag name %w", ErrConflict)
	}
	return tag, err
}

func (svc *Service) DeleteTag(ctx context.Context, id int) error {
	if _, err := svc.repo.TagByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("tag %w", ErrNotFound)
		}
		return err
	}
	count, err := svc.repo.PostCountByTag(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("tag has posts, %w", ErrInUse)
	}
	return svc.repo.DeleteTag(ctx, id)
}

func (svc *Service) TagPostCount(ctx context.Context, id int) (int, error) {
	return svc.repo.PostCountByTag(ctx, id)
}

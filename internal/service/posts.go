package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gfdmit/blogdesk/internal/repository"
)

func (svc *Service) ListPosts(ctx context.Context, f repository.PostFilter) ([]repository.Post, int, error) {
	f.Page, f.Size = normalizePage(f.Page, f.Size)
	return svc.repo.ListPosts(ctx, f)
}

func (svc *Service) Post(ctx context.Context, id int) (repository.Post, error) {
	post, err := svc.repo.PostByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return repository.Post{}, fmt.Errorf("post %w", ErrNotFound)
	}
	return post, err
}

func (svc *Service) checkPostRefs(ctx context.Context, categoryID *int, tagIDs []int) ([]int, error) {
	if categoryID != nil {
		if _, err := svc.repo.CategoryByID(ctx, *categoryID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("category %w", ErrNotFound)
			}
			return nil, err
		}
	}

	// a post's tag set has no duplicates
	seen := map[int]bool{}
	unique := []int{}
	for _, id := range tagIDs {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}
	if len(unique) > 0 {
		tags, err := svc.repo.TagsByIDs(ctx, unique)
		if err != nil {
			return nil, err
		}
		if len(tags) != len(unique) {
			return nil, fmt.Errorf("tag %w", ErrNotFound)
		}
	}
	return unique, nil
}

func (svc *Service) CreatePost(ctx context.Context, in repository.PostInput) (repository.Post, error) {
	unique, err := svc.checkPostRefs(ctx, in.CategoryID, in.TagIDs)
	if err != nil {
		return repository.Post{}, err
	}
	in.TagIDs = unique
	return svc.repo.CreatePost(ctx, in)
}

func (svc *Service) UpdatePost(ctx context.Context, id, callerID int, patch repository.PostPatch) (repository.Post, error) {
	post, err := svc.Post(ctx, id)
	if err != nil {
		return repository.Post{}, err
	}
	if post.AuthorID == nil || *post.AuthorID != callerID {
		return repository.Post{}, ErrForbidden
	}

	var tagIDs []int
	if patch.TagIDs != nil {
		tagIDs = *patch.TagIDs
	}
	unique, err := svc.checkPostRefs(ctx, patch.CategoryID, tagIDs)
	if err != nil {
		return repository.Post{}, err
	}
	if patch.TagIDs != nil {
		patch.TagIDs = &unique
	}
	return svc.repo.UpdatePost(ctx, id, patch)
}

func (svc *Service) DeletePost(ctx context.Context, id, callerID int) error {
	post, err := svc.Post(ctx, id)
	if err != nil {
		return err
	}
	if post.AuthorID == nil || *post.AuthorID != callerID {
		return ErrForbidden
	}
	return svc.repo.DeletePost(ctx, id)
}

func (svc *Service) AddView(ctx context.Context, id int) error {
	err := svc.repo.IncrementViews(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("post %w", ErrNotFound)
	}
	return err
}

func (svc *Service) AddLike(ctx context.Context, id int) error {
	err := svc.repo.IncrementLikes(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("post %w", ErrNotFound)
	}
	return err
}

type ArchivePost struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
}

type ArchiveYear struct {
	Year  int           `json:"year"`
	Posts []ArchivePost `json:"posts"`
}

// Archive groups all posts by year, newest year first. Entries arrive from
// the repository already ordered by date descending, so within a year the
// order is preserved as-is.
func (svc *Service) Archive(ctx context.Context) ([]ArchiveYear, error) {
	entries, err := svc.repo.ArchiveEntries(ctx)
	if err != nil {
		return nil, err
	}

	years := []ArchiveYear{}
	index := map[int]int{}
	for _, entry := range entries {
		year := entry.Date.Year()
		i, ok := index[year]
		if !ok {
			years = append(years, ArchiveYear{Year: year, Posts: []ArchivePost{}})
			i = len(years) - 1
			index[year] = i
		}
		years[i].Posts = append(years[i].Posts, ArchivePost{
			ID:    entry.ID,
			Title: entry.Title,
			Date:  entry.Date.Format(time.DateOnly),
		})
	}
	return years, nil
}

package memory

import (
	"context"
	"sort"
	"time"

	"github.com/gfdmit/blogdesk/internal/repository"
)

func (s *Store) CommentsByPost(ctx context.Context, postID int) ([]repository.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comments := []repository.Comment{}
	for _, c := range s.comments {
		if c.PostID == postID {
			comments = append(comments, *c)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		if !comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].CreatedAt.Before(comments[j].CreatedAt)
		}
		return comments[i].ID < comments[j].ID
	})
	return comments, nil
}

func (s *Store) CommentByID(ctx context.Context, id int) (repository.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.comments[id]
	if !ok {
		return repository.Comment{}, repository.ErrNotFound
	}
	return *c, nil
}

func (s *Store) CreateComment(ctx context.Context, in repository.CommentInput) (repository.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := &repository.Comment{
		ID:          s.nextID(),
		PostID:      in.PostID,
		ParentID:    in.ParentID,
		AuthorName:  in.AuthorName,
		AuthorEmail: in.AuthorEmail,
		Content:     in.Content,
		CreatedAt:   time.Now(),
		UserID:      in.UserID,
	}
	s.comments[c.ID] = c
	return *c, nil
}

func (s *Store) DeleteComment(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.comments[id]; !ok {
		return repository.ErrNotFound
	}
	for _, c := range s.comments {
		if c.ParentID != nil && *c.ParentID == id {
			c.ParentID = nil
		}
	}
	delete(s.comments, id)
	return nil
}

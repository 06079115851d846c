package memory

import (
	"context"
	"sort"
	"time"

	"github.com/gfdmit/blogdesk/internal/repository"
)

func matchQuickReply(q *repository.QuickReply, f repository.QuickReplyFilter) bool {
	if f.Search != "" && !containsFold(q.Title, f.Search) && !containsFold(q.Content, f.Search) {
		return false
	}
	if f.Category != "" && (q.Category == nil || *q.Category != f.Category) {
		return false
	}
	return true
}

func (s *Store) ListQuickReplies(ctx context.Context, f repository.QuickReplyFilter) ([]repository.QuickReply, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := []*repository.QuickReply{}
	for _, q := range s.quickReplies {
		if matchQuickReply(q, f) {
			matched = append(matched, q)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})

	replies := []repository.QuickReply{}
	for _, q := range paginate(matched, f.Page, f.Size) {
		replies = append(replies, *q)
	}
	return replies, len(matched), nil
}

func (s *Store) QuickReplyByID(ctx context.Context, id int) (repository.QuickReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.quickReplies[id]
	if !ok {
		return repository.QuickReply{}, repository.ErrNotFound
	}
	return *q, nil
}

func (s *Store) CreateQuickReply(ctx context.Context, in repository.QuickReplyInput) (repository.QuickReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	q := &repository.QuickReply{
		ID:        s.nextID(),
		Title:     in.Title,
		Content:   in.Content,
		Category:  in.Category,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.quickReplies[q.ID] = q
	return *q, nil
}

func (s *Store) UpdateQuickReply(ctx context.Context, id int, patch repository.QuickReplyPatch) (repository.QuickReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.quickReplies[id]
	if !ok {
		return repository.QuickReply{}, repository.ErrNotFound
	}
	if patch.Title != nil {
		q.Title = *patch.Title
	}
	if patch.Content != nil {
		q.Content = *patch.Content
	}
	if patch.Category != nil {
		category := *patch.Category
		q.Category = &category
	}
	q.UpdatedAt = time.Now()
	return *q, nil
}

func (s *Store) DeleteQuickReply(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.quickReplies[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.quickReplies, id)
	return nil
}

func (s *Store) IncrementQuickReplyUse(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.quickReplies[id]
	if !ok {
		return repository.ErrNotFound
	}
	q.UseCount++
	return nil
}

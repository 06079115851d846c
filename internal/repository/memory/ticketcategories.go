package memory

import (
	"context"
	"sort"

	"github.com/gfdmit/blogdesk/internal/repository"
)

func (s *Store) ListTicketCategories(ctx context.Context) ([]repository.TicketCategoryCount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories := []repository.TicketCategoryCount{}
	for _, c := range s.ticketCategories {
		categories = append(categories, repository.TicketCategoryCount{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Count:       s.ticketCountByCategory(c.ID),
		})
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories, nil
}

func (s *Store) ticketCountByCategory(id int) int {
	count := 0
	for _, rec := range s.tickets {
		if rec.categoryID != nil && *rec.categoryID == id {
			count++
		}
	}
	return count
}

func (s *Store) TicketCategoryByID(ctx context.Context, id int) (repository.TicketCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.ticketCategories[id]
	if !ok {
		return repository.TicketCategory{}, repository.ErrNotFound
	}
	return c, nil
}

func (s *Store) TicketCategoryByName(ctx context.Context, name string) (repository.TicketCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.ticketCategories {
		if c.Name == name {
			return c, nil
		}
	}
	return repository.TicketCategory{}, repository.ErrNotFound
}

func (s *Store) CreateTicketCategory(ctx context.Context, name string, description *string) (repository.TicketCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.ticketCategories {
		if c.Name == name {
			return repository.TicketCategory{}, repository.ErrDuplicate
		}
	}
	c := repository.TicketCategory{ID: s.nextID(), Name: name, Description: description}
	s.ticketCategories[c.ID] = c
	return c, nil
}

func (s *Store) UpdateTicketCategory(ctx context.Context, id int, patch repository.TicketCategoryPatch) (repository.TicketCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.ticketCategories[id]
	if !ok {
		return repository.TicketCategory{}, repository.ErrNotFound
	}
	if patch.Name != nil {
		for _, other := range s.ticketCategories {
			if other.ID != id && other.Name == *patch.Name {
				return repository.TicketCategory{}, repository.ErrDuplicate
			}
		}
		c.Name = *patch.Name
	}
	if patch.Description != nil {
		description := *patch.Description
		c.Description = &description
	}
	s.ticketCategories[id] = c
	return c, nil
}

func (s *Store) DeleteTicketCategory(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ticketCategories[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.ticketCategories, id)
	return nil
}

func (s *Store) TicketCountByCategory(ctx context.Context, id int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ticketCountByCategory(id), nil
}

package memory

import (
	"context"
	"sort"
	"time"

	"github.com/gfdmit/blogdesk/internal/repository"
)

func (s *Store) readTicket(rec *ticketRecord) repository.Ticket {
	t := repository.Ticket{
		ID:          rec.id,
		Title:       rec.title,
		Description: rec.description,
		Status:      rec.status,
		Priority:    rec.priority,
		CategoryID:  rec.categoryID,
		UserID:      rec.userID,
		CreatedAt:   rec.createdAt,
		UpdatedAt:   rec.updatedAt,
	}
	if rec.categoryID != nil {
		if c, ok := s.ticketCategories[*rec.categoryID]; ok {
			name := c.Name
			t.CategoryName = &name
		}
	}
	if u, ok := s.users[rec.userID]; ok {
		t.Username = u.Username
	}
	return t
}

func matchTicket(rec *ticketRecord, f repository.TicketFilter) bool {
	if f.Search != "" && !containsFold(rec.title, f.Search) && !containsFold(rec.description, f.Search) {
		return false
	}
	if f.Status != "" && rec.status != f.Status {
		return false
	}
	if f.Priority != "" && rec.priority != f.Priority {
		return false
	}
	if f.CategoryID != 0 && (rec.categoryID == nil || *rec.categoryID != f.CategoryID) {
		return false
	}
	return true
}

func (s *Store) ListTickets(ctx context.Context, f repository.TicketFilter) ([]repository.Ticket, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := []*ticketRecord{}
	for _, rec := range s.tickets {
		if matchTicket(rec, f) {
			matched = append(matched, rec)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].createdAt.Equal(matched[j].createdAt) {
			return matched[i].createdAt.After(matched[j].createdAt)
		}
		return matched[i].id > matched[j].id
	})

	tickets := []repository.Ticket{}
	for _, rec := range paginate(matched, f.Page, f.Size) {
		tickets = append(tickets, s.readTicket(rec))
	}
	return tickets, len(matched), nil
}

func (s *Store) TicketByID(ctx context.Context, id int) (repository.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.tickets[id]
	if !ok {
		return repository.Ticket{}, repository.ErrNotFound
	}
	return s.readTicket(rec), nil
}

func (s *Store) CreateTicket(ctx context.Context, in repository.TicketInput) (repository.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	rec := &ticketRecord{
		id:          s.nextID(),
		title:       in.Title,
		description: in.Description,
		status:      in.Status,
		priority:    in.Priority,
		categoryID:  in.CategoryID,
		userID:      in.UserID,
		createdAt:   now,
		updatedAt:   now,
	}
	s.tickets[rec.id] = rec
	return s.readTicket(rec), nil
}

func (s *Store) UpdateTicket(ctx context.Context, id int, patch repository.TicketPatch) (repository.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.tickets[id]
	if !ok {
		return repository.Ticket{}, repository.ErrNotFound
	}
	if patch.Title != nil {
		rec.title = *patch.Title
	}
	if patch.Description != nil {
		rec.description = *patch.Description
	}
	if patch.Status != nil {
		rec.status = *patch.Status
	}
	if patch.Priority != nil {
		rec.priority = *patch.Priority
	}
	if patch.CategoryID != nil {
		categoryID := *patch.CategoryID
		rec.categoryID = &categoryID
	}
	rec.updatedAt = time.Now()
	return s.readTicket(rec), nil
}

func (s *Store) DeleteTicket(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tickets[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.tickets, id)
	return nil
}

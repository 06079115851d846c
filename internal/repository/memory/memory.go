// Package memory is an in-memory Repository used by tests and local
// development. It mirrors the semantics of the postgres implementation,
// including sentinel errors and result ordering.
package memory

import (
	"sync"
	"time"

	"github.com/gfdmit/blogdesk/internal/repository"
)

type postRecord struct {
	id         int
	title      string
	summary    string
	content    string
	categoryID *int
	authorID   *int
	date       time.Time
	views      int
	likes      int
}

type ticketRecord struct {
	id          int
	title       string
	description string
	status      string
	priority    string
	categoryID  *int
	userID      int
	createdAt   time.Time
	updatedAt   time.Time
}

type Store struct {
	mu  sync.Mutex
	seq int

	users            map[int]repository.User
	categories       map[int]repository.Category
	tags             map[int]repository.Tag
	posts            map[int]*postRecord
	postTags         map[int][]int
	comments         map[int]*repository.Comment
	siteInfo         *repository.SiteInfo
	menus            []repository.Menu
	ticketCategories map[int]repository.TicketCategory
	tickets          map[int]*ticketRecord
	quickReplies     map[int]*repository.QuickReply
}

var _ repository.Repository = (*Store)(nil)

func New() *Store {
	return &Store{
		users:            map[int]repository.User{},
		categories:       map[int]repository.Category{},
		tags:             map[int]repository.Tag{},
		posts:            map[int]*postRecord{},
		postTags:         map[int][]int{},
		comments:         map[int]*repository.Comment{},
		ticketCategories: map[int]repository.TicketCategory{},
		tickets:          map[int]*ticketRecord{},
		quickReplies:     map[int]*repository.QuickReply{},
	}
}

func (s *Store) nextID() int {
	s.seq++
	return s.seq
}

// SeedSiteInfo and SeedMenu fill tables that have no write API.
func (s *Store) SeedSiteInfo(info repository.SiteInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	info.ID = s.nextID()
	s.siteInfo = &info
}

func (s *Store) SeedMenu(m repository.Menu) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = s.nextID()
	s.menus = append(s.menus, m)
}

// SetPostDate backdates a post so date-dependent reads can be exercised.
func (s *Store) SetPostDate(id int, date time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.posts[id]; ok {
		rec.date = date
	}
}

// SetTicketCreatedAt backdates a ticket for trend and overview reads.
func (s *Store) SetTicketCreatedAt(id int, t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.tickets[id]; ok {
		rec.createdAt = t
	}
}

func dateOnly(t time.Time) string {
	return t.Format(time.DateOnly)
}

func paginate[T any](items []T, page, size int) []T {
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

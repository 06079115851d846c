package memory

import (
	"context"

	"github.com/gfdmit/blogdesk/internal/repository"
)

func (s *Store) SiteInfo(ctx context.Context) (repository.SiteInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.siteInfo == nil {
		return repository.SiteInfo{}, repository.ErrNotFound
	}
	return *s.siteInfo, nil
}

func (s *Store) Menus(ctx context.Context) ([]repository.Menu, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	menus := make([]repository.Menu, len(s.menus))
	copy(menus, s.menus)
	return menus, nil
}

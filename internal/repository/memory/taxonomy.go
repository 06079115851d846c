package memory

import (
	"context"
	"sort"

	"github.com/gfdmit/blogdesk/internal/repository"
)

func (s *Store) ListCategories(ctx context.Context) ([]repository.CategoryCount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories := []repository.CategoryCount{}
	for _, c := range s.categories {
		categories = append(categories, repository.CategoryCount{
			ID:    c.ID,
			Name:  c.Name,
			Count: s.postCountByCategory(c.ID),
		})
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories, nil
}

func (s *Store) postCountByCategory(id int) int {
	count := 0
	for _, rec := range s.posts {
		if rec.categoryID != nil && *rec.categoryID == id {
			count++
		}
	}
	return count
}

func (s *Store) CategoryByID(ctx context.Context, id int) (repository.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.categories[id]
	if !ok {
		return repository.Category{}, repository.ErrNotFound
	}
	return c, nil
}

func (s *Store) CategoryByName(ctx context.Context, name string) (repository.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return repository.Category{}, repository.ErrNotFound
}

func (s *Store) CreateCategory(ctx context.Context, name string) (repository.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.categories {
		if c.Name == name {
			return repository.Category{}, repository.ErrDuplicate
		}
	}
	c := repository.Category{ID: s.nextID(), Name: name}
	s.categories[c.ID] = c
	return c, nil
}

func (s *Store) UpdateCategory(ctx context.Context, id int, name string) (repository.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.categories[id]
	if !ok {
		return repository.Category{}, repository.ErrNotFound
	}
	for _, other := range s.categories {
		if other.ID != id && other.Name == name {
			return repository.Category{}, repository.ErrDuplicate
		}
	}
	c.Name = name
	s.categories[id] = c
	return c, nil
}

func (s *Store) DeleteCategory(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.categories, id)
	return nil
}

func (s *Store) PostCountByCategory(ctx context.Context, id int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.postCountByCategory(id), nil
}

func (s *Store) ListTags(ctx context.Context) ([]repository.TagCount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tags := []repository.TagCount{}
	for _, t := range s.tags {
		tags = append(tags, repository.TagCount{
			ID:    t.ID,
			Name:  t.Name,
			Count: s.postCountByTag(t.ID),
		})
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].ID < tags[j].ID })
	return tags, nil
}

func (s *Store) postCountByTag(id int) int {
	count := 0
	for _, tagIDs := range s.postTags {
		for _, tagID := range tagIDs {
			if tagID == id {
				count++
				break
			}
		}
	}
	return count
}

func (s *Store) TagByID(ctx context.Context, id int) (repository.Tag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tags[id]
	if !ok {
		return repository.Tag{}, repository.ErrNotFound
	}
	return t, nil
}

func (s *Store) TagByName(ctx context.Context, name string) (repository.Tag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.tags {
		if t.Name == name {
			return t, nil
		}
	}
	return repository.Tag{}, repository.ErrNotFound
}

func (s *Store) TagsByIDs(ctx context.Context, ids []int) ([]repository.Tag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wanted := map[int]bool{}
	for _, id := range ids {
		wanted[id] = true
	}
	tags := []repository.Tag{}
	for _, t := range s.tags {
		if wanted[t.ID] {
			tags = append(tags, t)
		}
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].ID < tags[j].ID })
	return tags, nil
}

func (s *Store) CreateTag(ctx context.Context, name string) (repository.Tag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.tags {
		if t.Name == name {
			return repository.Tag{}, repository.ErrDuplicate
		}
	}
	t := repository.Tag{ID: s.nextID(), Name: name}
	s.tags[t.ID] = t
	return t, nil
}

func (s *Store) UpdateTag(ctx context.Context, id int, name string) (repository.Tag, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tags[id]
	if !ok {
		return repository.Tag{}, repository.ErrNotFound
	}
	for _, other := range s.tags {
		if other.ID != id && other.Name == name {
			return repository.Tag{}, repository.ErrDuplicate
		}
	}
	t.Name = name
	s.tags[id] = t
	return t, nil
}

func (s *Store) DeleteTag(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tags[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.tags, id)
	return nil
}

func (s *Store) PostCountByTag(ctx context.Context, id int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.postCountByTag(id), nil
}

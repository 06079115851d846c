package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/gfdmit/blogdesk/internal/repository"
)

// readPost resolves relationship names at read time, the way the SQL
// implementation joins them, so renames are reflected immediately.
func (s *Store) readPost(rec *postRecord) repository.Post {
	post := repository.Post{
		ID:         rec.id,
		Title:      rec.title,
		Summary:    rec.summary,
		Content:    rec.content,
		CategoryID: rec.categoryID,
		Tags:       []string{},
		Date:       rec.date,
		AuthorID:   rec.authorID,
		Views:      rec.views,
		Likes:      rec.likes,
	}
	if rec.categoryID != nil {
		if c, ok := s.categories[*rec.categoryID]; ok {
			post.Category = c.Name
		}
	}
	if rec.authorID != nil {
		if u, ok := s.users[*rec.authorID]; ok {
			post.Author = u.Username
		}
	}
	for _, tagID := range s.postTags[rec.id] {
		if t, ok := s.tags[tagID]; ok {
			post.Tags = append(post.Tags, t.Name)
		}
	}
	sort.Strings(post.Tags)
	return post
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func (s *Store) matchPost(rec *postRecord, f repository.PostFilter) bool {
	if f.Search != "" &&
		!containsFold(rec.title, f.Search) &&
		!containsFold(rec.summary, f.Search) &&
		!containsFold(rec.content, f.Search) {
		return false
	}
	if f.Category != "" {
		if rec.categoryID == nil {
			return false
		}
		c, ok := s.categories[*rec.categoryID]
		if !ok || c.Name != f.Category {
			return false
		}
	}
	if f.Tag != "" {
		found := false
		for _, tagID := range s.postTags[rec.id] {
			if t, ok := s.tags[tagID]; ok && t.Name == f.Tag {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.Date != "" && dateOnly(rec.date) != f.Date {
		return false
	}
	return true
}

func sortPostRecords(records []*postRecord) {
	sort.Slice(records, func(i, j int) bool {
		di, dj := dateOnly(records[i].date), dateOnly(records[j].date)
		if di != dj {
			return di > dj
		}
		return records[i].id > records[j].id
	})
}

func (s *Store) ListPosts(ctx context.Context, f repository.PostFilter) ([]repository.Post, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := []*postRecord{}
	for _, rec := range s.posts {
		if s.matchPost(rec, f) {
			matched = append(matched, rec)
		}
	}
	sortPostRecords(matched)

	posts := []repository.Post{}
	for _, rec := range paginate(matched, f.Page, f.Size) {
		posts = append(posts, s.readPost(rec))
	}
	return posts, len(matched), nil
}

func (s *Store) PostByID(ctx context.Context, id int) (repository.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.posts[id]
	if !ok {
		return repository.Post{}, repository.ErrNotFound
	}
	return s.readPost(rec), nil
}

func (s *Store) CreatePost(ctx context.Context, in repository.PostInput) (repository.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	authorID := in.AuthorID
	rec := &postRecord{
		id:         s.nextID(),
		title:      in.Title,
		summary:    in.Summary,
		content:    in.Content,
		categoryID: in.CategoryID,
		authorID:   &authorID,
		date:       time.Now(),
	}
	s.posts[rec.id] = rec
	s.postTags[rec.id] = append([]int{}, in.TagIDs...)
	return s.readPost(rec), nil
}

func (s *Store) UpdatePost(ctx context.Context, id int, patch repository.PostPatch) (repository.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.posts[id]
	if !ok {
		return repository.Post{}, repository.ErrNotFound
	}
	if patch.Title != nil {
		rec.title = *patch.Title
	}
	if patch.Summary != nil {
		rec.summary = *patch.Summary
	}
	if patch.Content != nil {
		rec.content = *patch.Content
	}
	if patch.CategoryID != nil {
		categoryID := *patch.CategoryID
		rec.categoryID = &categoryID
	}
	if patch.TagIDs != nil {
		s.postTags[id] = append([]int{}, (*patch.TagIDs)...)
	}
	return s.readPost(rec), nil
}

func (s *Store) DeletePost(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[id]; !ok {
		return repository.ErrNotFound
	}
	for commentID, c := range s.comments {
		if c.PostID == id {
			delete(s.comments, commentID)
		}
	}
	delete(s.postTags, id)
	delete(s.posts, id)
	return nil
}

func (s *Store) IncrementViews(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.posts[id]
	if !ok {
		return repository.ErrNotFound
	}
	rec.views++
	return nil
}

func (s *Store) IncrementLikes(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.posts[id]
	if !ok {
		return repository.ErrNotFound
	}
	rec.likes++
	return nil
}

func (s *Store) ArchiveEntries(ctx context.Context) ([]repository.ArchiveEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := []*postRecord{}
	for _, rec := range s.posts {
		records = append(records, rec)
	}
	sortPostRecords(records)

	entries := []repository.ArchiveEntry{}
	for _, rec := range records {
		entries = append(entries, repository.ArchiveEntry{ID: rec.id, Title: rec.title, Date: rec.date})
	}
	return entries, nil
}

package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/gfdmit/blogdesk/internal/repository"
	"github.com/lib/pq"
)

const postColumns = `p.id, p.title, p.summary, p.content, p.category_id, COALESCE(c.name, ''),
	p.date, p.author_id, COALESCE(u.username, ''), p.views, p.likes`

const postJoins = `FROM posts p
	LEFT JOIN categories c ON c.id = p.category_id
	LEFT JOIN users u ON u.id = p.author_id`

func scanPost(row interface{ Scan(...interface{}) error }) (repository.Post, error) {
	post := repository.Post{}
	err := row.Scan(&post.ID, &post.Title, &post.Summary, &post.Content,
		&post.CategoryID, &post.Category, &post.Date, &post.AuthorID, &post.Author,
		&post.Views, &post.Likes)
	return post, err
}

func postConditions(f repository.PostFilter) (string, []interface{}) {
	var (
		conds []string
		args  []interface{}
	)
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(p.title ILIKE $%d OR p.summary ILIKE $%d OR p.content ILIKE $%d)", n, n, n))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		conds = append(conds, fmt.Sprintf("c.name = $%d", len(args)))
	}
	if f.Tag != "" {
		args = append(args, f.Tag)
		conds = append(conds, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM post_tags pt JOIN tags t ON t.id = pt.tag_id WHERE pt.post_id = p.id AND t.name = $%d)", len(args)))
	}
	if f.Date != "" {
		args = append(args, f.Date)
		conds = append(conds, fmt.Sprintf("p.date = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func (pr *postgresRepository) ListPosts(ctx context.Context, f repository.PostFilter) ([]repository.Post, int, error) {
	where, args := postConditions(f)

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) %s %s", postJoins, where)
	if err := pr.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, f.Size, (f.Page-1)*f.Size)
	query := fmt.Sprintf("SELECT %s %s %s ORDER BY p.date DESC, p.id DESC LIMIT $%d OFFSET $%d",
		postColumns, postJoins, where, len(args)-1, len(args))

	rows, err := pr.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	posts := []repository.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, 0, err
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := pr.attachTags(ctx, posts); err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// attachTags resolves tag names for a page of posts with one batched query
// instead of one query per row.
func (pr *postgresRepository) attachTags(ctx context.Context, posts []repository.Post) error {
	ids := make([]int, 0, len(posts))
	index := make(map[int]int, len(posts))
	for i := range posts {
		posts[i].Tags = []string{}
		ids = append(ids, posts[i].ID)
		index[posts[i].ID] = i
	}
	if len(ids) == 0 {
		return nil
	}

	rows, err := pr.db.QueryContext(ctx,
		"SELECT pt.post_id, t.name FROM post_tags pt JOIN tags t ON t.id = pt.tag_id WHERE pt.post_id = ANY($1) ORDER BY t.name",
		pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			postID int
			name   string
		)
		if err := rows.Scan(&postID, &name); err != nil {
			return err
		}
		if i, ok := index[postID]; ok {
			posts[i].Tags = append(posts[i].Tags, name)
		}
	}
	return rows.Err()
}

func (pr *postgresRepository) PostByID(ctx context.Context, id int) (repository.Post, error) {
	query := fmt.Sprintf("SELECT %s %s WHERE p.id = $1", postColumns, postJoins)
	post, err := scanPost(pr.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return repository.Post{}, wrapNotFound(err)
	}

	page := []repository.Post{post}
	if err := pr.attachTags(ctx, page); err != nil {
		return repository.Post{}, err
	}
	return page[0], nil
}

func (pr *postgresRepository) CreatePost(ctx context.Context, in repository.PostInput) (repository.Post, error) {
	tx, err := pr.db.BeginTx(ctx, nil)
	if err != nil {
		return repository.Post{}, err
	}
	defer tx.Rollback()

	var postID int
	err = tx.QueryRowContext(ctx,
		"INSERT INTO posts (title, summary, content, category_id, author_id) VALUES ($1, $2, $3, $4, $5) RETURNING id",
		in.Title, in.Summary, in.Content, in.CategoryID, in.AuthorID).Scan(&postID)
	if err != nil {
		return repository.Post{}, err
	}

	for _, tagID := range in.TagIDs {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO post_tags (post_id, tag_id) VALUES ($1, $2)", postID, tagID); err != nil {
			return repository.Post{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return repository.Post{}, err
	}
	return pr.PostByID(ctx, postID)
}

func (pr *postgresRepository) UpdatePost(ctx context.Context, id int, patch repository.PostPatch) (repository.Post, error) {
	tx, err := pr.db.BeginTx(ctx, nil)
	if err != nil {
		return repository.Post{}, err
	}
	defer tx.Rollback()

	var (
		sets []string
		args []interface{}
	)
	set := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Title != nil {
		set("title", *patch.Title)
	}
	if patch.Summary != nil {
		set("summary", *patch.Summary)
	}
	if patch.Content != nil {
		set("content", *patch.Content)
	}
	if patch.CategoryID != nil {
		set("category_id", *patch.CategoryID)
	}

	if len(sets) > 0 {
		args = append(args, id)
		query := fmt.Sprintf("UPDATE posts SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
		if err := affected(tx.ExecContext(ctx, query, args...)); err != nil {
			return repository.Post{}, err
		}
	} else {
		var exists int
		if err := tx.QueryRowContext(ctx, "SELECT 1 FROM posts WHERE id = $1", id).Scan(&exists); err != nil {
			return repository.Post{}, wrapNotFound(err)
		}
	}

	if patch.TagIDs != nil {
		if _, err := tx.ExecContext(ctx, "DELETE FROM post_tags WHERE post_id = $1", id); err != nil {
			return repository.Post{}, err
		}
		for _, tagID := range *patch.TagIDs {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO post_tags (post_id, tag_id) VALUES ($1, $2)", id, tagID); err != nil {
				return repository.Post{}, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return repository.Post{}, err
	}
	return pr.PostByID(ctx, id)
}

func (pr *postgresRepository) DeletePost(ctx context.Context, id int) error {
	tx, err := pr.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM comments WHERE post_id = $1", id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM post_tags WHERE post_id = $1", id); err != nil {
		return err
	}
	if err := affected(tx.ExecContext(ctx, "DELETE FROM posts WHERE id = $1", id)); err != nil {
		return err
	}
	return tx.Commit()
}

func (pr *postgresRepository) IncrementViews(ctx context.Context, id int) error {
	return affected(pr.db.ExecContext(ctx, "UPDATE posts SET views = views + 1 WHERE id = $1", id))
}

func (pr *postgresRepository) IncrementLikes(ctx context.Context, id int) error {
	return affected(pr.db.ExecContext(ctx, "UPDATE posts SET likes = likes + 1 WHERE id = $1", id))
}

func (pr *postgresRepository) ArchiveEntries(ctx context.Context) ([]repository.ArchiveEntry, error) {
	rows, err := pr.db.QueryContext(ctx, "SELECT id, title, date FROM posts ORDER BY date DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []repository.ArchiveEntry{}
	for rows.Next() {
		entry := repository.ArchiveEntry{}
		if err := rows.Scan(&entry.ID, &entry.Title, &entry.Date); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

package postgres

import (
	"context"

	"github.com/gfdmit/blogdesk/internal/repository"
	"github.com/lib/pq"
)

func (pr *postgresRepository) ListCategories(ctx context.Context) ([]repository.CategoryCount, error) {
	rows, err := pr.db.QueryContext(ctx, `
		SELECT c.id, c.name, COUNT(p.id)
		FROM categories c
		LEFT JOIN posts p ON p.category_id = c.id
		GROUP BY c.id, c.name
		ORDER BY c.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []repository.CategoryCount{}
	for rows.Next() {
		c := repository.CategoryCount{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Count); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (pr *postgresRepository) CategoryByID(ctx context.Context, id int) (repository.Category, error) {
	c := repository.Category{}
	err := pr.db.QueryRowContext(ctx, "SELECT id, name FROM categories WHERE id = $1", id).Scan(&c.ID, &c.Name)
	if err != nil {
		return repository.Category{}, wrapNotFound(err)
	}
	return c, nil
}

func (pr *postgresRepository) CategoryByName(ctx context.Context, name string) (repository.Category, error) {
	c := repository.Category{}
	err := pr.db.QueryRowContext(ctx, "SELECT id, name FROM categories WHERE name = $1", name).Scan(&c.ID, &c.Name)
	if err != nil {
		return repository.Category{}, wrapNotFound(err)
	}
	return c, nil
}

func (pr *postgresRepository) CreateCategory(ctx context.Context, name string) (repository.Category, error) {
	c := repository.Category{}
	err := pr.db.QueryRowContext(ctx,
		"INSERT INTO categories (name) VALUES ($1) RETURNING id, name", name).Scan(&c.ID, &c.Name)
	if err != nil {
		return repository.Category{}, wrapDuplicate(err)
	}
	return c, nil
}

func (pr *postgresRepository) UpdateCategory(ctx context.Context, id int, name string) (repository.Category, error) {
	c := repository.Category{}
	err := pr.db.QueryRowContext(ctx,
		"UPDATE categories SET name = $1 WHERE id = $2 RETURNING id, name", name, id).Scan(&c.ID, &c.Name)
	if err != nil {
		return repository.Category{}, wrapDuplicate(wrapNotFound(err))
	}
	return c, nil
}

func (pr *postgresRepository) DeleteCategory(ctx context.Context, id int) error {
	return affected(pr.db.ExecContext(ctx, "DELETE FROM categories WHERE id = $1", id))
}

func (pr *postgresRepository) PostCountByCategory(ctx context.Context, id int) (int, error) {
	var count int
	err := pr.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM posts WHERE category_id = $1", id).Scan(&count)
	return count, err
}

func (pr *postgresRepository) ListTags(ctx context.Context) ([]repository.TagCount, error) {
	rows, err := pr.db.QueryContext(ctx, `
		SELECT t.id, t.name, COUNT(pt.post_id)
		FROM tags t
		LEFT JOIN post_tags pt ON pt.tag_id = t.id
		GROUP BY t.id, t.name
		ORDER BY t.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := []repository.TagCount{}
	for rows.Next() {
		t := repository.TagCount{}
		if err := rows.Scan(&t.ID, &t.Name, &t.Count); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

func (pr *postgresRepository) TagByID(ctx context.Context, id int) (repository.Tag, error) {
	t := repository.Tag{}
	err := pr.db.QueryRowContext(ctx, "SELECT id, name FROM tags WHERE id = $1", id).Scan(&t.ID, &t.Name)
	if err != nil {
		return repository.Tag{}, wrapNotFound(err)
	}
	return t, nil
}

func (pr *postgresRepository) TagByName(ctx context.Context, name string) (repository.Tag, error) {
	t := repository.Tag{}
	err := pr.db.QueryRowContext(ctx, "SELECT id, name FROM tags WHERE name = $1", name).Scan(&t.ID, &t.Name)
	if err != nil {
		return repository.Tag{}, wrapNotFound(err)
	}
	return t, nil
}

func (pr *postgresRepository) TagsByIDs(ctx context.Context, ids []int) ([]repository.Tag, error) {
	rows, err := pr.db.QueryContext(ctx,
		"SELECT id, name FROM tags WHERE id = ANY($1) ORDER BY id", pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := []repository.Tag{}
	for rows.Next() {
		t := repository.Tag{}
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

func (pr *postgresRepository) CreateTag(ctx context.Context, name string) (repository.Tag, error) {
	t := repository.Tag{}
	err := pr.db.QueryRowContext(ctx,
		"INSERT INTO tags (name) VALUES ($1) RETURNING id, name", name).Scan(&t.ID, &t.Name)
	if err != nil {
		return repository.Tag{}, wrapDuplicate(err)
	}
	return t, nil
}

func (pr *postgresRepository) UpdateTag(ctx context.Context, id int, name string) (repository.Tag, error) {
	t := repository.Tag{}
	err := pr.db.QueryRowContext(ctx,
		"UPDATE tags SET name = $1 WHERE id = $2 RETURNING id, name", name, id).Scan(&t.ID, &t.Name)
	if err != nil {
		return repository.Tag{}, wrapDuplicate(wrapNotFound(err))
	}
	return t, nil
}

func (pr *postgresRepository) DeleteTag(ctx context.Context, id int) error {
	return affected(pr.db.ExecContext(ctx, "DELETE FROM tags WHERE id = $1", id))
}

func (pr *postgresRepository) PostCountByTag(ctx context.Context, id int) (int, error) {
	var count int
	err := pr.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM post_tags WHERE tag_id = $1", id).Scan(&count)
	return count, err
}

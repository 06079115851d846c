package postgres

import (
	"context"

	"github.com/gfdmit/blogdesk/internal/repository"
)

const commentColumns = "id, post_id, parent_id, author_name, author_email, content, created_at, user_id"

func (pr *postgresRepository) CommentsByPost(ctx context.Context, postID int) ([]repository.Comment, error) {
	rows, err := pr.db.QueryContext(ctx,
		"SELECT "+commentColumns+" FROM comments WHERE post_id = $1 ORDER BY created_at, id", postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []repository.Comment{}
	for rows.Next() {
		c := repository.Comment{}
		err := rows.Scan(&c.ID, &c.PostID, &c.ParentID, &c.AuthorName, &c.AuthorEmail,
			&c.Content, &c.CreatedAt, &c.UserID)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (pr *postgresRepository) CommentByID(ctx context.Context, id int) (repository.Comment, error) {
	c := repository.Comment{}
	err := pr.db.QueryRowContext(ctx,
		"SELECT "+commentColumns+" FROM comments WHERE id = $1", id).Scan(
		&c.ID, &c.PostID, &c.ParentID, &c.AuthorName, &c.AuthorEmail, &c.Content, &c.CreatedAt, &c.UserID)
	if err != nil {
		return repository.Comment{}, wrapNotFound(err)
	}
	return c, nil
}

func (pr *postgresRepository) CreateComment(ctx context.Context, in repository.CommentInput) (repository.Comment, error) {
	var commentID int
	err := pr.db.QueryRowContext(ctx,
		"INSERT INTO comments (post_id, parent_id, author_name, author_email, content, user_id) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id",
		in.PostID, in.ParentID, in.AuthorName, in.AuthorEmail, in.Content, in.UserID).Scan(&commentID)
	if err != nil {
		return repository.Comment{}, err
	}
	return pr.CommentByID(ctx, commentID)
}

// DeleteComment detaches replies first so they survive as top-level comments.
func (pr *postgresRepository) DeleteComment(ctx context.Context, id int) error {
	tx, err := pr.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "UPDATE comments SET parent_id = NULL WHERE parent_id = $1", id); err != nil {
		return err
	}
	if err := affected(tx.ExecContext(ctx, "DELETE FROM comments WHERE id = $1", id)); err != nil {
		return err
	}
	return tx.Commit()
}

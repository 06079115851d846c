package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/gfdmit/blogdesk/internal/repository"
)

const quickReplyColumns = "id, title, content, category, use_count, created_at, updated_at"

func scanQuickReply(row interface{ Scan(...interface{}) error }) (repository.QuickReply, error) {
	q := repository.QuickReply{}
	err := row.Scan(&q.ID, &q.Title, &q.Content, &q.Category, &q.UseCount, &q.CreatedAt, &q.UpdatedAt)
	return q, err
}

func (pr *postgresRepository) ListQuickReplies(ctx context.Context, f repository.QuickReplyFilter) ([]repository.QuickReply, int, error) {
	var (
		conds []string
		args  []interface{}
	)
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(title ILIKE $%d OR content ILIKE $%d)", n, n))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := pr.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT COUNT(*) FROM quick_replies %s", where), args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, f.Size, (f.Page-1)*f.Size)
	query := fmt.Sprintf("SELECT %s FROM quick_replies %s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d",
		quickReplyColumns, where, len(args)-1, len(args))

	rows, err := pr.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	replies := []repository.QuickReply{}
	for rows.Next() {
		q, err := scanQuickReply(rows)
		if err != nil {
			return nil, 0, err
		}
		replies = append(replies, q)
	}
	return replies, total, rows.Err()
}

func (pr *postgresRepository) QuickReplyByID(ctx context.Context, id int) (repository.QuickReply, error) {
	q, err := scanQuickReply(pr.db.QueryRowContext(ctx,
		"SELECT "+quickReplyColumns+" FROM quick_replies WHERE id = $1", id))
	if err != nil {
		return repository.QuickReply{}, wrapNotFound(err)
	}
	return q, nil
}

func (pr *postgresRepository) CreateQuickReply(ctx context.Context, in repository.QuickReplyInput) (repository.QuickReply, error) {
	q, err := scanQuickReply(pr.db.QueryRowContext(ctx,
		"INSERT INTO quick_replies (title, content, category) VALUES ($1, $2, $3) RETURNING "+quickReplyColumns,
		in.Title, in.Content, in.Category))
	if err != nil {
		return repository.QuickReply{}, err
	}
	return q, nil
}

func (pr *postgresRepository) UpdateQuickReply(ctx context.Context, id int, patch repository.QuickReplyPatch) (repository.QuickReply, error) {
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
	if patch.Content != nil {
		set("content", *patch.Content)
	}
	if patch.Category != nil {
		set("category", *patch.Category)
	}
	sets = append(sets, "updated_at = NOW()")

	args = append(args, id)
	query := fmt.Sprintf("UPDATE quick_replies SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), quickReplyColumns)

	q, err := scanQuickReply(pr.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return repository.QuickReply{}, wrapNotFound(err)
	}
	return q, nil
}

func (pr *postgresRepository) DeleteQuickReply(ctx context.Context, id int) error {
	return affected(pr.db.ExecContext(ctx, "DELETE FROM quick_replies WHERE id = $1", id))
}

func (pr *postgresRepository) IncrementQuickReplyUse(ctx context.Context, id int) error {
	return affected(pr.db.ExecContext(ctx,
		"UPDATE quick_replies SET use_count = use_count + 1 WHERE id = $1", id))
}

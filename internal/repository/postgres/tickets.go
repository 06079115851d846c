package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/gfdmit/blogdesk/internal/repository"
)

const ticketColumns = `t.id, t.title, t.description, t.status, t.priority,
	t.category_id, tc.name, t.user_id, COALESCE(u.username, ''), t.created_at, t.updated_at`

const ticketJoins = `FROM tickets t
	LEFT JOIN ticket_categories tc ON tc.id = t.category_id
	LEFT JOIN users u ON u.id = t.user_id`

func scanTicket(row interface{ Scan(...interface{}) error }) (repository.Ticket, error) {
	t := repository.Ticket{}
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.Priority,
		&t.CategoryID, &t.CategoryName, &t.UserID, &t.Username, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func ticketConditions(f repository.TicketFilter) (string, []interface{}) {
	var (
		conds []string
		args  []interface{}
	)
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(t.title ILIKE $%d OR t.description ILIKE $%d)", n, n))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("t.status = $%d", len(args)))
	}
	if f.Priority != "" {
		args = append(args, f.Priority)
		conds = append(conds, fmt.Sprintf("t.priority = $%d", len(args)))
	}
	if f.CategoryID != 0 {
		args = append(args, f.CategoryID)
		conds = append(conds, fmt.Sprintf("t.category_id = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func (pr *postgresRepository) ListTickets(ctx context.Context, f repository.TicketFilter) ([]repository.Ticket, int, error) {
	where, args := ticketConditions(f)

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) %s %s", ticketJoins, where)
	if err := pr.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, f.Size, (f.Page-1)*f.Size)
	query := fmt.Sprintf("SELECT %s %s %s ORDER BY t.created_at DESC, t.id DESC LIMIT $%d OFFSET $%d",
		ticketColumns, ticketJoins, where, len(args)-1, len(args))

	rows, err := pr.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	tickets := []repository.Ticket{}
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, 0, err
		}
		tickets = append(tickets, t)
	}
	return tickets, total, rows.Err()
}

func (pr *postgresRepository) TicketByID(ctx context.Context, id int) (repository.Ticket, error) {
	query := fmt.Sprintf("SELECT %s %s WHERE t.id = $1", ticketColumns, ticketJoins)
	t, err := scanTicket(pr.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return repository.Ticket{}, wrapNotFound(err)
	}
	return t, nil
}

func (pr *postgresRepository) CreateTicket(ctx context.Context, in repository.TicketInput) (repository.Ticket, error) {
	var ticketID int
	err := pr.db.QueryRowContext(ctx,
		"INSERT INTO tickets (title, description, status, priority, category_id, user_id) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id",
		in.Title, in.Description, in.Status, in.Priority, in.CategoryID, in.UserID).Scan(&ticketID)
	if err != nil {
		return repository.Ticket{}, err
	}
	return pr.TicketByID(ctx, ticketID)
}

func (pr *postgresRepository) UpdateTicket(ctx context.Context, id int, patch repository.TicketPatch) (repository.Ticket, error) {
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
	if patch.Description != nil {
		set("description", *patch.Description)
	}
	if patch.Status != nil {
		set("status", *patch.Status)
	}
	if patch.Priority != nil {
		set("priority", *patch.Priority)
	}
	if patch.CategoryID != nil {
		set("category_id", *patch.CategoryID)
	}
	sets = append(sets, "updated_at = NOW()")

	args = append(args, id)
	query := fmt.Sprintf("UPDATE tickets SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
	if err := affected(pr.db.ExecContext(ctx, query, args...)); err != nil {
		return repository.Ticket{}, err
	}
	return pr.TicketByID(ctx, id)
}

func (pr *postgresRepository) DeleteTicket(ctx context.Context, id int) error {
	return affected(pr.db.ExecContext(ctx, "DELETE FROM tickets WHERE id = $1", id))
}

package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/gfdmit/blogdesk/internal/repository"
)

func (pr *postgresRepository) ListTicketCategories(ctx context.Context) ([]repository.TicketCategoryCount, error) {
	rows, err := pr.db.QueryContext(ctx, `
		SELECT tc.id, tc.name, tc.description, COUNT(t.id)
		FROM ticket_categories tc
		LEFT JOIN tickets t ON t.category_id = tc.id
		GROUP BY tc.id, tc.name, tc.description
		ORDER BY tc.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []repository.TicketCategoryCount{}
	for rows.Next() {
		c := repository.TicketCategoryCount{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Count); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (pr *postgresRepository) TicketCategoryByID(ctx context.Context, id int) (repository.TicketCategory, error) {
	c := repository.TicketCategory{}
	err := pr.db.QueryRowContext(ctx,
		"SELECT id, name, description FROM ticket_categories WHERE id = $1", id).Scan(&c.ID, &c.Name, &c.Description)
	if err != nil {
		return repository.TicketCategory{}, wrapNotFound(err)
	}
	return c, nil
}

func (pr *postgresRepository) TicketCategoryByName(ctx context.Context, name string) (repository.TicketCategory, error) {
	c := repository.TicketCategory{}
	err := pr.db.QueryRowContext(ctx,
		"SELECT id, name, description FROM ticket_categories WHERE name = $1", name).Scan(&c.ID, &c.Name, &c.Description)
	if err != nil {
		return repository.TicketCategory{}, wrapNotFound(err)
	}
	return c, nil
}

func (pr *postgresRepository) CreateTicketCategory(ctx context.Context, name string, description *string) (repository.TicketCategory, error) {
	c := repository.TicketCategory{}
	err := pr.db.QueryRowContext(ctx,
		"INSERT INTO ticket_categories (name, description) VALUES ($1, $2) RETURNING id, name, description",
		name, description).Scan(&c.ID, &c.Name, &c.Description)
	if err != nil {
		return repository.TicketCategory{}, wrapDuplicate(err)
	}
	return c, nil
}

func (pr *postgresRepository) UpdateTicketCategory(ctx context.Context, id int, patch repository.TicketCategoryPatch) (repository.TicketCategory, error) {
	var (
		sets []string
		args []interface{}
	)
	set := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Name != nil {
		set("name", *patch.Name)
	}
	if patch.Description != nil {
		set("description", *patch.Description)
	}
	if len(sets) == 0 {
		return pr.TicketCategoryByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE ticket_categories SET %s WHERE id = $%d RETURNING id, name, description",
		strings.Join(sets, ", "), len(args))

	c := repository.TicketCategory{}
	if err := pr.db.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.Name, &c.Description); err != nil {
		return repository.TicketCategory{}, wrapDuplicate(wrapNotFound(err))
	}
	return c, nil
}

func (pr *postgresRepository) DeleteTicketCategory(ctx context.Context, id int) error {
	return affected(pr.db.ExecContext(ctx, "DELETE FROM ticket_categories WHERE id = $1", id))
}

func (pr *postgresRepository) TicketCountByCategory(ctx context.Context, id int) (int, error) {
	var count int
	err := pr.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tickets WHERE category_id = $1", id).Scan(&count)
	return count, err
}

package postgres

import (
	"context"

	"github.com/gfdmit/blogdesk/internal/repository"
)

func (pr *postgresRepository) groupedCounts(ctx context.Context, column string) (map[string]int, error) {
	rows, err := pr.db.QueryContext(ctx,
		"SELECT "+column+", COUNT(*) FROM tickets GROUP BY "+column)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var (
			key   string
			count int
		)
		if err := rows.Scan(&key, &count); err != nil {
			return nil, err
		}
		counts[key] = count
	}
	return counts, rows.Err()
}

func (pr *postgresRepository) TicketStatusCounts(ctx context.Context) (map[string]int, error) {
	return pr.groupedCounts(ctx, "status")
}

func (pr *postgresRepository) TicketPriorityCounts(ctx context.Context) (map[string]int, error) {
	return pr.groupedCounts(ctx, "priority")
}

func (pr *postgresRepository) TicketCountToday(ctx context.Context) (int, error) {
	var count int
	err := pr.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM tickets WHERE created_at::date = CURRENT_DATE").Scan(&count)
	return count, err
}

func (pr *postgresRepository) TicketTrend(ctx context.Context, days int) ([]repository.TrendPoint, error) {
	rows, err := pr.db.QueryContext(ctx, `
		SELECT to_char(created_at::date, 'YYYY-MM-DD'), COUNT(*)
		FROM tickets
		WHERE created_at >= NOW() - make_interval(days => $1)
		GROUP BY created_at::date
		ORDER BY created_at::date`, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trend := []repository.TrendPoint{}
	for rows.Next() {
		p := repository.TrendPoint{}
		if err := rows.Scan(&p.Date, &p.Count); err != nil {
			return nil, err
		}
		trend = append(trend, p)
	}
	return trend, rows.Err()
}

func (pr *postgresRepository) TicketCategoryDistribution(ctx context.Context) ([]repository.CategoryDistribution, error) {
	rows, err := pr.db.QueryContext(ctx, `
		SELECT tc.id, tc.name, COUNT(t.id)
		FROM ticket_categories tc
		LEFT JOIN tickets t ON t.category_id = tc.id
		GROUP BY tc.id, tc.name
		ORDER BY COUNT(t.id) DESC, tc.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	distribution := []repository.CategoryDistribution{}
	for rows.Next() {
		var (
			id    int
			name  string
			count int
		)
		if err := rows.Scan(&id, &name, &count); err != nil {
			return nil, err
		}
		categoryID := id
		distribution = append(distribution, repository.CategoryDistribution{
			CategoryID:   &categoryID,
			CategoryName: name,
			Count:        count,
		})
	}
	return distribution, rows.Err()
}

func (pr *postgresRepository) UncategorizedTicketCount(ctx context.Context) (int, error) {
	var count int
	err := pr.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM tickets WHERE category_id IS NULL").Scan(&count)
	return count, err
}

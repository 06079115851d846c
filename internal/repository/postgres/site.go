package postgres

import (
	"context"

	"github.com/gfdmit/blogdesk/internal/repository"
)

func (pr *postgresRepository) SiteInfo(ctx context.Context) (repository.SiteInfo, error) {
	info := repository.SiteInfo{}
	err := pr.db.QueryRowContext(ctx,
		"SELECT id, title, description, icp, footer FROM site_info ORDER BY id LIMIT 1").Scan(
		&info.ID, &info.Title, &info.Description, &info.ICP, &info.Footer)
	if err != nil {
		return repository.SiteInfo{}, wrapNotFound(err)
	}
	return info, nil
}

func (pr *postgresRepository) Menus(ctx context.Context) ([]repository.Menu, error) {
	rows, err := pr.db.QueryContext(ctx, "SELECT id, title, path, url FROM menus ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	menus := []repository.Menu{}
	for rows.Next() {
		m := repository.Menu{}
		if err := rows.Scan(&m.ID, &m.Title, &m.Path, &m.URL); err != nil {
			return nil, err
		}
		menus = append(menus, m)
	}
	return menus, rows.Err()
}

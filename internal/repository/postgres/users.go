package postgres

import (
	"context"

	"github.com/gfdmit/blogdesk/internal/repository"
)

func (pr *postgresRepository) CreateUser(ctx context.Context, username, passwordHash string) (repository.User, error) {
	user := repository.User{}
	err := pr.db.QueryRowContext(ctx,
		"INSERT INTO users (username, password_hash) VALUES ($1, $2) RETURNING id, username, password_hash, created_at",
		username, passwordHash).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		return repository.User{}, wrapDuplicate(err)
	}
	return user, nil
}

func (pr *postgresRepository) UserByUsername(ctx context.Context, username string) (repository.User, error) {
	user := repository.User{}
	err := pr.db.QueryRowContext(ctx,
		"SELECT id, username, password_hash, created_at FROM users WHERE username = $1",
		username).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		return repository.User{}, wrapNotFound(err)
	}
	return user, nil
}

func (pr *postgresRepository) UserByID(ctx context.Context, id int) (repository.User, error) {
	user := repository.User{}
	err := pr.db.QueryRowContext(ctx,
		"SELECT id, username, password_hash, created_at FROM users WHERE id = $1",
		id).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		return repository.User{}, wrapNotFound(err)
	}
	return user, nil
}
